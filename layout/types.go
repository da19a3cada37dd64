package layout

// This file defines the layout result model shared by the flow engine,
// the renderer, and the debug JSON dump. All coordinates are page
// coordinates in millimeters with the origin at the top-left corner.

// Result holds the laid-out physical pages and document metadata.
type Result struct {
	Pages []Page       `json:"pages"`
	Meta  DocumentMeta `json:"meta"`
}

// DocumentMeta carries the PDF info dictionary values.
type DocumentMeta struct {
	Title   string `json:"title"`
	Creator string `json:"creator"`
}

// Page records one physical page's size, the template it was opened
// under, and the primitives ready to draw.
type Page struct {
	Width    float64   `json:"width"`
	Height   float64   `json:"height"`
	Template string    `json:"template"` // "section" or "body"
	Texts    []TextBox `json:"texts"`
	Rects    []Rect    `json:"rects,omitempty"`
	Lines    []Line    `json:"lines,omitempty"`
}

// TextBox is a positioned, already-wrapped text block.
type TextBox struct {
	Content    string     `json:"content"`
	X          float64    `json:"x"`
	Y          float64    `json:"y"`
	Width      float64    `json:"width"`
	LineHeight float64    `json:"lineHeight"`
	Font       string     `json:"font"`
	FontSize   float64    `json:"fontSize"`
	Color      Color      `json:"color"`
	Lines      []TextLine `json:"lines"`
	Height     float64    `json:"height"`
}

// TextLine is one wrapped line with its measured width and height.
type TextLine struct {
	Content   string  `json:"content"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	GapBefore float64 `json:"gapBefore,omitempty"`
}

// Color uses 0-255 RGB channels.
type Color struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// Line is a straight stroke, used for the section heading rule.
type Line struct {
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Color Color   `json:"color"`
	Width float64 `json:"width"`
}

// Rect is an axis-aligned rectangle. A nil FillColor means no fill; a
// StrokeWidth of zero or less means no stroke.
type Rect struct {
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	StrokeColor Color   `json:"strokeColor"`
	StrokeWidth float64 `json:"strokeWidth"`
	FillColor   *Color  `json:"fillColor,omitempty"`
}

// Face names understood by the renderer and the fonts package.
const (
	FontBody = "body"
	FontBold = "bold"
)
