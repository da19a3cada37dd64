package layout

// BuildOptions configures a layout build. A zero Theme means
// DefaultTheme.
type BuildOptions struct {
	Typesetter Typesetter
	Theme      Theme
}

// Typesetter splits text into drawable lines under a width constraint.
// font is a face name from types.go; width, fontSize and lineHeight are
// millimeters. Measuring must be deterministic: the same inputs always
// yield the same lines.
type Typesetter interface {
	LayoutLines(content string, width float64, font string, fontSize, lineHeight float64) ([]TextLine, error)
}
