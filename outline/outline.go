// Package outline parses outline-style markdown into a three-level
// document model: sections (pages), titled boxes, and the elements
// inside them. The model is built in a single pass and is read-only
// afterward.
package outline

// ElementKind discriminates the content units a box can hold.
type ElementKind int

const (
	Paragraph ElementKind = iota
	Bullet
	Checkbox
)

// String returns the lowercase kind name.
func (k ElementKind) String() string {
	switch k {
	case Paragraph:
		return "paragraph"
	case Bullet:
		return "bullet"
	case Checkbox:
		return "checkbox"
	default:
		return "unknown"
	}
}

// Element is the smallest content unit. Text has inline bold markers
// already resolved by the parser.
type Element struct {
	Kind ElementKind
	Text string
}

// Box is a titled grouping of elements. Element order is render order.
type Box struct {
	Title    string
	Elements []Element
}

// Page is a top-level section holding boxes in insertion order.
type Page struct {
	Title string
	Boxes []Box
}

// Document is the parsed outline: an ordered sequence of pages.
type Document struct {
	Pages []Page
}
