package menu

import "time"

// MenuItem is a single dish on a menu. Price is the formatted string the
// backend extracted from the image, not a number.
type MenuItem struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description,omitempty"`
}

// MenuCategory groups items under a section heading. Item order is display
// order and must be preserved. IsMain distinguishes primary sections from
// inline sub-sections; unset means main.
type MenuCategory struct {
	Name   string     `json:"name"`
	Items  []MenuItem `json:"items"`
	IsMain *bool      `json:"is_main,omitempty"`
}

// Main reports whether the category is a primary section (default true).
func (c MenuCategory) Main() bool {
	return c.IsMain == nil || *c.IsMain
}

// MenuData is the full structured menu produced by the backend. MenuID is
// empty before the backend has saved the menu. RawText carries the
// unstructured OCR output and is only shown when Categories is empty.
type MenuData struct {
	MenuID         string         `json:"menu_id,omitempty"`
	RestaurantName string         `json:"restaurant_name"`
	Categories     []MenuCategory `json:"categories"`
	RawText        string         `json:"raw_text,omitempty"`
}

// MenuSummary is the lightweight listing projection of a saved menu.
type MenuSummary struct {
	ID             string    `json:"id"`
	RestaurantName string    `json:"restaurant_name"`
	CreatedAt      time.Time `json:"created_at"`
	ImagePath      string    `json:"image_path"`
}

// MenuList is the response envelope of the list endpoint.
type MenuList struct {
	Menus []MenuSummary `json:"menus"`
	Total int           `json:"total"`
}
