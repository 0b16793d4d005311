package menu

import "strings"

// ImageMatch is the decorative presentation for a recognized category.
type ImageMatch struct {
	ImageURL string
	Emoji    string
}

// DefaultEmoji is used for category names that match no configuration.
const DefaultEmoji = "📋"

type categoryImageConfig struct {
	keywords []string
	imageURL string
	emoji    string
}

// categoryImageTable is scanned in order and the first configuration with
// any matching keyword wins, so order breaks ties for overlapping keywords.
var categoryImageTable = []categoryImageConfig{
	{
		keywords: []string{"breakfast", "brunch", "morning"},
		imageURL: "/category-images/breakfast.png",
		emoji:    "🍳",
	},
	{
		keywords: []string{"lunch", "sandwich", "sandwiches", "burgers"},
		imageURL: "/category-images/burger.png",
		emoji:    "🍔",
	},
	{
		keywords: []string{"dinner", "mains", "entrees", "main course"},
		imageURL: "https://images.unsplash.com/photo-1546069901-ba9599a7e63c?w=400&h=300&fit=crop",
		emoji:    "🍽️",
	},
	{
		keywords: []string{"pizza", "pizzas"},
		imageURL: "/category-images/pizza.png",
		emoji:    "🍕",
	},
	{
		keywords: []string{"pasta", "spaghetti", "noodles"},
		imageURL: "/category-images/pasta.png",
		emoji:    "🍝",
	},
	{
		keywords: []string{"salad", "salads", "greens"},
		imageURL: "/category-images/salad.png",
		emoji:    "🥗",
	},
	{
		keywords: []string{"dessert", "desserts", "sweets", "cake", "cakes", "pastry", "pastries"},
		imageURL: "/category-images/dessert.png",
		emoji:    "🍰",
	},
	{
		keywords: []string{"coffee", "espresso", "latte", "cappuccino", "hot drinks"},
		imageURL: "https://images.unsplash.com/photo-1495474472287-4d71bcdd2085?w=400&h=300&fit=crop",
		emoji:    "☕",
	},
	{
		keywords: []string{"drinks", "beverages", "cold drinks", "soda", "juice"},
		imageURL: "https://images.unsplash.com/photo-1437418747212-8d9709afab22?w=400&h=300&fit=crop",
		emoji:    "🥤",
	},
	{
		keywords: []string{"cocktail", "cocktails", "bar", "alcohol", "wine", "beer"},
		imageURL: "/category-images/cocktail.png",
		emoji:    "🍹",
	},
	{
		keywords: []string{"appetizer", "appetizers", "starters", "snacks"},
		imageURL: "https://images.unsplash.com/photo-1599974244258-a8e2c5b90df0?w=400&h=300&fit=crop",
		emoji:    "🍤",
	},
	{
		keywords: []string{"soup", "soups"},
		imageURL: "https://images.unsplash.com/photo-1547592166-23ac45744acd?w=400&h=300&fit=crop",
		emoji:    "🍲",
	},
	{
		keywords: []string{"sushi", "japanese", "asian"},
		imageURL: "https://images.unsplash.com/photo-1579584425555-c3ce17fd4351?w=400&h=300&fit=crop",
		emoji:    "🍣",
	},
	{
		keywords: []string{"ice cream", "gelato", "frozen"},
		imageURL: "/category-images/ice-cream.png",
		emoji:    "🍦",
	},
	{
		keywords: []string{"vegetarian", "vegan", "plant-based"},
		imageURL: "https://images.unsplash.com/photo-1540914124281-342587941389?w=400&h=300&fit=crop",
		emoji:    "🥬",
	},
	{
		keywords: []string{"seafood", "fish", "shellfish"},
		imageURL: "/category-images/fish.png",
		emoji:    "🐟",
	},
	{
		keywords: []string{"steak", "meat", "bbq", "grill"},
		imageURL: "/category-images/steak.png",
		emoji:    "🥩",
	},
}

// CategoryImage returns the decorative image and emoji for a category name,
// or nil when no keyword matches.
func CategoryImage(categoryName string) *ImageMatch {
	if categoryName == "" {
		return nil
	}

	normalized := strings.ToLower(categoryName)

	for _, config := range categoryImageTable {
		for _, keyword := range config.keywords {
			if strings.Contains(normalized, keyword) {
				return &ImageMatch{ImageURL: config.imageURL, Emoji: config.emoji}
			}
		}
	}

	return nil
}

// CategoryEmoji returns just the emoji for inline use, falling back to
// DefaultEmoji when the name matches nothing.
func CategoryEmoji(categoryName string) string {
	if match := CategoryImage(categoryName); match != nil {
		return match.Emoji
	}
	return DefaultEmoji
}
