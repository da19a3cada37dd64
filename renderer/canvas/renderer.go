// Package canvasrenderer draws layout results into PDF documents via
// github.com/tdewolff/canvas. It also implements layout.Typesetter, so
// the same font metrics drive both line wrapping and drawing.
package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"strings"
	"sync"
	"unicode"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/kestrelpress/playsheet/fonts"
	"github.com/kestrelpress/playsheet/layout"
	"github.com/kestrelpress/playsheet/renderer"
)

// Renderer renders layout pages into a PDF byte stream.
type Renderer struct {
	fontMu       sync.Mutex
	fontFamilies map[string]*canvas.FontFamily
}

var (
	_ renderer.Renderer = (*Renderer)(nil)
	_ layout.Typesetter = (*Renderer)(nil)
)

// NewRenderer creates a canvas-based PDF renderer.
func NewRenderer() *Renderer {
	return &Renderer{fontFamilies: map[string]*canvas.FontFamily{}}
}

// Render renders the result into a PDF byte slice.
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("render: result is nil")
	}
	if len(result.Pages) == 0 {
		return nil, fmt.Errorf("render: no pages to render")
	}

	var buf bytes.Buffer
	writer := pdf.New(&buf, result.Pages[0].Width, result.Pages[0].Height, nil)
	writer.SetInfo(result.Meta.Title, "", "", "", result.Meta.Creator)
	for i, page := range result.Pages {
		if i > 0 {
			writer.NewPage(page.Width, page.Height)
		}
		c := canvas.New(page.Width, page.Height)
		ctx := canvas.NewContext(c)
		// Layout coordinates put the origin at the top-left corner.
		ctx.SetCoordSystem(canvas.CartesianIV)

		if err := r.drawPage(ctx, page); err != nil {
			return nil, err
		}
		c.RenderTo(writer)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("render: writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// drawPage draws shapes first so text lands on top of the box
// backgrounds and title bars.
func (r *Renderer) drawPage(ctx *canvas.Context, page layout.Page) error {
	drawRects(ctx, page.Rects)
	drawLines(ctx, page.Lines)
	for _, tb := range page.Texts {
		if err := r.drawTextBox(ctx, tb); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) drawTextBox(ctx *canvas.Context, tb layout.TextBox) error {
	// TextBox coordinates, sizes and line heights are mm; font faces
	// are created in pt, so convert once at this boundary.
	face, err := r.fontFace(tb.Font, toPt(tb.FontSize), tb.Color)
	if err != nil {
		return err
	}

	lines := tb.Lines
	if len(lines) == 0 {
		lines = []layout.TextLine{{Content: tb.Content, Height: tb.LineHeight}}
	}

	cursorY := tb.Y
	for _, line := range lines {
		cursorY += line.GapBefore

		lineHeight := line.Height
		if lineHeight <= 0 {
			lineHeight = tb.FontSize
		}

		// The baseline sits the face's ascent below the line top.
		baseline := cursorY + face.Metrics().Ascent
		ctx.DrawText(tb.X, baseline, canvas.NewTextLine(face, line.Content, canvas.Left))
		cursorY += lineHeight
	}
	return nil
}

func drawRects(ctx *canvas.Context, rects []layout.Rect) {
	for _, rc := range rects {
		if rc.FillColor != nil {
			ctx.SetFillColor(colorFromLayout(*rc.FillColor))
		} else {
			ctx.SetFillColor(color.RGBA{})
		}
		if rc.StrokeWidth > 0 {
			ctx.SetStrokeColor(colorFromLayout(rc.StrokeColor))
			ctx.SetStrokeWidth(rc.StrokeWidth)
		} else {
			ctx.SetStrokeColor(color.RGBA{})
			ctx.SetStrokeWidth(0)
		}
		ctx.DrawPath(rc.X, rc.Y, canvas.Rectangle(rc.Width, rc.Height))
	}
}

func drawLines(ctx *canvas.Context, lines []layout.Line) {
	for _, ln := range lines {
		if ln.Width <= 0 {
			continue
		}
		ctx.SetStrokeColor(colorFromLayout(ln.Color))
		ctx.SetStrokeWidth(ln.Width)
		p := &canvas.Path{}
		p.MoveTo(0, 0)
		p.LineTo(ln.X2-ln.X1, ln.Y2-ln.Y1)
		ctx.DrawPath(ln.X1, ln.Y1, p)
	}
}

// LayoutLines implements layout.Typesetter with a greedy word wrap:
// break at whitespace, and split inside a word only when the word alone
// exceeds the width. All widths are mm.
func (r *Renderer) LayoutLines(content string, width float64, font string, fontSize, lineHeight float64) ([]layout.TextLine, error) {
	face, err := r.fontFace(font, toPt(fontSize), layout.Color{R: 30, G: 30, B: 30})
	if err != nil {
		return nil, err
	}

	lines := greedyWrapTokens(content, width, face)
	textHeight := face.Metrics().LineHeight
	if textHeight <= 0 {
		textHeight = lineHeight
	}
	leading := math.Max(lineHeight-textHeight, 0)
	if len(lines) == 0 {
		lines = []layout.TextLine{{Content: "", Width: 0, Height: textHeight}}
	}
	for i := range lines {
		if lines[i].Height <= 0 {
			lines[i].Height = textHeight
		}
		if i == 0 {
			lines[i].GapBefore = 0
		} else {
			lines[i].GapBefore = leading
		}
	}
	return lines, nil
}

func (r *Renderer) fontFace(name string, sizePt float64, col layout.Color) (*canvas.FontFace, error) {
	family, err := r.ensureFontFamily(name)
	if err != nil {
		return nil, err
	}
	return family.Face(sizePt, colorFromLayout(col), canvas.FontRegular, canvas.FontNormal), nil
}

func (r *Renderer) ensureFontFamily(name string) (*canvas.FontFamily, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if family, ok := r.fontFamilies[name]; ok {
		return family, nil
	}

	data, err := fonts.Load(name)
	if err != nil {
		return nil, err
	}
	family := canvas.NewFontFamily(name)
	if err := family.LoadFont(data, 0, canvas.FontRegular); err != nil {
		return nil, fmt.Errorf("render: loading font %q: %w", name, err)
	}
	r.fontFamilies[name] = family
	return family, nil
}

func colorFromLayout(c layout.Color) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, 1.0)
}

func toPt(mm float64) float64 { return mm * layout.MmToPt }

func greedyWrapTokens(content string, width float64, face *canvas.FontFace) []layout.TextLine {
	limit := width
	if limit <= 0 {
		limit = math.MaxFloat64
	}

	tokens := tokenizeContent(content)
	var lines []layout.TextLine
	var builder strings.Builder
	currentWidth := 0.0

	emit := func(force bool) {
		if builder.Len() == 0 {
			if force {
				lines = append(lines, layout.TextLine{Content: "", Width: 0})
			}
			return
		}
		lines = append(lines, layout.TextLine{
			Content: builder.String(),
			Width:   currentWidth,
		})
		builder.Reset()
		currentWidth = 0
	}

	appendToken := func(token string) {
		builder.WriteString(token)
		currentWidth += face.TextWidth(token)
	}

	for _, token := range tokens {
		if token == "\n" {
			emit(true)
			continue
		}

		tokenWidth := face.TextWidth(token)
		if currentWidth > 0 && currentWidth+tokenWidth > limit {
			emit(false)
		}
		if tokenWidth <= limit {
			appendToken(token)
			if currentWidth > limit {
				emit(false)
			}
			continue
		}

		for _, chunk := range splitTokenByWidth(token, limit, face) {
			chunkWidth := face.TextWidth(chunk)
			if currentWidth > 0 && currentWidth+chunkWidth > limit {
				emit(false)
			}
			appendToken(chunk)
			if currentWidth > limit {
				emit(false)
			}
		}
	}

	emit(true)
	return lines
}

// tokenizeContent splits text into alternating word and whitespace
// runs, keeping explicit newlines as their own tokens.
func tokenizeContent(s string) []string {
	var tokens []string
	var builder strings.Builder
	lastWasSpace := false
	flush := func() {
		if builder.Len() == 0 {
			return
		}
		tokens = append(tokens, builder.String())
		builder.Reset()
	}

	for _, r := range s {
		if r == '\r' {
			continue
		}
		if r == '\n' {
			flush()
			tokens = append(tokens, "\n")
			lastWasSpace = false
			continue
		}
		isSpace := unicode.IsSpace(r)
		if builder.Len() == 0 {
			lastWasSpace = isSpace
		} else if lastWasSpace != isSpace {
			flush()
			lastWasSpace = isSpace
		}
		builder.WriteRune(r)
	}
	flush()
	return tokens
}

// splitTokenByWidth breaks a single overlong token into chunks that
// each fit within the limit, always keeping at least one rune per
// chunk.
func splitTokenByWidth(token string, limit float64, face *canvas.FontFace) []string {
	if limit <= 0 || limit == math.MaxFloat64 {
		return []string{token}
	}
	var parts []string
	var builder strings.Builder
	for _, r := range token {
		builder.WriteRune(r)
		if face.TextWidth(builder.String()) > limit && builder.Len() > 1 {
			runes := []rune(builder.String())
			parts = append(parts, string(runes[:len(runes)-1]))
			builder.Reset()
			builder.WriteRune(r)
		}
	}
	if builder.Len() > 0 {
		parts = append(parts, builder.String())
	}
	return parts
}
