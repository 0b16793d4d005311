package menu

// HeaderVariant selects how a section heading is presented. Exactly one
// variant applies per category based on its name, image match, and Main flag.
type HeaderVariant int

const (
	// HeaderNone is used for categories without a name.
	HeaderNone HeaderVariant = iota
	// HeaderImage is a main category with an image match: large title with
	// emoji and a side image.
	HeaderImage
	// HeaderPlain is a category with no image match: title sized by Main.
	HeaderPlain
	// HeaderEmoji is a sub-category with an image match: small title with an
	// inline emoji and no image block.
	HeaderEmoji
)

// Section is one rendered category: heading presentation plus its items in
// original order.
type Section struct {
	Title   string
	Variant HeaderVariant
	Main    bool
	Image   *ImageMatch
	Items   []MenuItem
}

// ImageHeader reports whether the section uses the large-title-with-side-
// image heading.
func (s Section) ImageHeader() bool { return s.Variant == HeaderImage }

// PlainHeader reports whether the section uses a text-only heading.
func (s Section) PlainHeader() bool { return s.Variant == HeaderPlain }

// EmojiHeader reports whether the section uses the small inline-emoji
// heading.
func (s Section) EmojiHeader() bool { return s.Variant == HeaderEmoji }

// Emoji returns the section's inline emoji, empty when no image matched.
func (s Section) Emoji() string {
	if s.Image == nil {
		return ""
	}
	return s.Image.Emoji
}

// Document is the renderable form of a menu. When Sections is empty RawText
// holds the unstructured OCR fallback.
type Document struct {
	RestaurantName string
	Sections       []Section
	RawText        string
}

// Render formats a menu for display. It is a pure function: category and
// item order is preserved and prices pass through as opaque text. A menu
// with no categories renders as the raw-text fallback instead.
func Render(data MenuData) Document {
	doc := Document{RestaurantName: data.RestaurantName}

	if len(data.Categories) == 0 {
		doc.RawText = data.RawText
		return doc
	}

	doc.Sections = make([]Section, 0, len(data.Categories))
	for _, category := range data.Categories {
		section := Section{
			Title: category.Name,
			Main:  category.Main(),
			Image: CategoryImage(category.Name),
			Items: category.Items,
		}

		switch {
		case category.Name == "":
			section.Variant = HeaderNone
		case section.Image == nil:
			section.Variant = HeaderPlain
		case section.Main:
			section.Variant = HeaderImage
		default:
			section.Variant = HeaderEmoji
		}

		doc.Sections = append(doc.Sections, section)
	}

	return doc
}
