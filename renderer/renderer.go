package renderer

import "github.com/kestrelpress/playsheet/layout"

// Renderer turns a layout result into final output bytes, e.g. a PDF.
type Renderer interface {
	Render(result *layout.Result) ([]byte, error)
}
