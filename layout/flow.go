package layout

import (
	"math"

	"github.com/kestrelpress/playsheet/outline"
)

// The drawable content units form a closed set: paragraph, bullet,
// checkbox and box. Each one measures its own height for a given width
// and places positioned primitives into a page accumulator. Measuring
// and placing are separate phases so the flow engine can decide where a
// unit lands before anything is emitted; measuring twice at the same
// width yields the same height.
type flowable interface {
	measure(width float64) (float64, error)
	place(acc *pageAccumulator, x, y, width float64) error
}

// composer turns text into measured TextBoxes using the typesetter and
// theme shared by all flowables of one build.
type composer struct {
	ts    Typesetter
	theme Theme
}

// composeText wraps content at the given width and returns the text box
// with its total height. Heights and gaps missing from the typesetter
// are backfilled from the font size and leading.
func (c *composer) composeText(content, font string, size, leading Length, col Color, width float64) (TextBox, float64, error) {
	fontSize := size.ToMM()
	lineHeight := leading.ToMM()

	lines, err := c.ts.LayoutLines(content, width, font, fontSize, lineHeight)
	if err != nil {
		return TextBox{}, 0, err
	}
	if len(lines) == 0 {
		lines = []TextLine{{Content: "", Width: 0, Height: fontSize}}
	}

	defaultLeading := math.Max(lineHeight-fontSize, 0)
	total := 0.0
	for i := range lines {
		if lines[i].Height <= 0 {
			lines[i].Height = fontSize
		}
		if i == 0 {
			lines[i].GapBefore = 0
		} else if lines[i].GapBefore <= 0 {
			lines[i].GapBefore = defaultLeading
		}
		total += lines[i].GapBefore + lines[i].Height
	}

	tb := TextBox{
		Content:    content,
		Width:      width,
		LineHeight: lineHeight,
		Font:       font,
		FontSize:   fontSize,
		Color:      col,
		Lines:      lines,
		Height:     total,
	}
	return tb, total, nil
}

func (c *composer) bodyText(content string, width float64) (TextBox, float64, error) {
	return c.composeText(content, FontBody, c.theme.BodyFontSize, c.theme.BodyLeading, c.theme.Text, width)
}

// paragraphFlow is a plain wrapped text block.
type paragraphFlow struct {
	c    *composer
	text string
}

func (p *paragraphFlow) measure(width float64) (float64, error) {
	_, h, err := p.c.bodyText(p.text, width)
	return h, err
}

func (p *paragraphFlow) place(acc *pageAccumulator, x, y, width float64) error {
	tb, _, err := p.c.bodyText(p.text, width)
	if err != nil {
		return err
	}
	tb.X, tb.Y = x, y
	acc.appendText(tb)
	return nil
}

// bulletFlow draws a bullet glyph with a hanging indent: wrapped
// continuation lines align under the text, not under the glyph.
type bulletFlow struct {
	c    *composer
	text string
}

func (b *bulletFlow) textWidth(width float64) float64 {
	return width - b.c.theme.BulletIndent.ToMM()
}

func (b *bulletFlow) measure(width float64) (float64, error) {
	_, h, err := b.c.bodyText(b.text, b.textWidth(width))
	return h, err
}

func (b *bulletFlow) place(acc *pageAccumulator, x, y, width float64) error {
	indent := b.c.theme.BulletIndent.ToMM()

	glyph, _, err := b.c.bodyText("•", indent)
	if err != nil {
		return err
	}
	glyph.X, glyph.Y = x, y
	acc.appendText(glyph)

	tb, _, err := b.c.bodyText(b.text, width-indent)
	if err != nil {
		return err
	}
	tb.X, tb.Y = x+indent, y
	acc.appendText(tb)
	return nil
}

// checkboxFlow draws a stroked square at the left edge with the text
// beside it. The item is never shorter than the square, so single-line
// items keep the glyph fully inside their height.
type checkboxFlow struct {
	c    *composer
	text string
}

// squareInset keeps the square a hair below the item's top edge.
const squareInset = 1.0 // pt

func (cb *checkboxFlow) textWidth(width float64) float64 {
	return width - cb.c.theme.CheckboxSize.ToMM() - cb.c.theme.CheckboxGap.ToMM()
}

func (cb *checkboxFlow) minHeight() float64 {
	return cb.c.theme.CheckboxSize.ToMM() + 2*squareInset*PtToMm
}

func (cb *checkboxFlow) measure(width float64) (float64, error) {
	_, th, err := cb.c.bodyText(cb.text, cb.textWidth(width))
	if err != nil {
		return 0, err
	}
	return math.Max(th, cb.minHeight()), nil
}

func (cb *checkboxFlow) place(acc *pageAccumulator, x, y, width float64) error {
	size := cb.c.theme.CheckboxSize.ToMM()
	gap := cb.c.theme.CheckboxGap.ToMM()

	tb, th, err := cb.c.bodyText(cb.text, cb.textWidth(width))
	if err != nil {
		return err
	}
	h := math.Max(th, cb.minHeight())

	acc.appendRect(Rect{
		X:           x,
		Y:           y + squareInset*PtToMm,
		Width:       size,
		Height:      size,
		StrokeColor: cb.c.theme.Dark,
		StrokeWidth: cb.c.theme.CheckboxStroke.ToMM(),
	})

	// Text sits at the bottom of the item's height.
	tb.X = x + size + gap
	tb.Y = y + h - th
	acc.appendText(tb)
	return nil
}

// boxFlow is the atomic titled container: a background, a border, a
// solid title bar and the child flowables stacked inside the padded
// interior. It reports one total height and is never drawn partially —
// the flow engine moves the whole box when it does not fit.
type boxFlow struct {
	c        *composer
	title    string
	children []flowable
}

func newBoxFlow(c *composer, box outline.Box) *boxFlow {
	bf := &boxFlow{c: c, title: box.Title}
	for _, el := range box.Elements {
		switch el.Kind {
		case outline.Bullet:
			bf.children = append(bf.children, &bulletFlow{c: c, text: el.Text})
		case outline.Checkbox:
			bf.children = append(bf.children, &checkboxFlow{c: c, text: el.Text})
		default:
			bf.children = append(bf.children, &paragraphFlow{c: c, text: el.Text})
		}
	}
	return bf
}

func (b *boxFlow) measure(width float64) (float64, error) {
	padding := b.c.theme.BoxPadding.ToMM()
	spacing := b.c.theme.ItemSpacing.ToMM()
	inner := width - 2*padding

	total := b.c.theme.BoxTitleBarHeight.ToMM() + padding
	for _, child := range b.children {
		h, err := child.measure(inner)
		if err != nil {
			return 0, err
		}
		total += h + spacing
	}
	if len(b.children) > 0 {
		total -= spacing // no trailing spacing after the last item
	}
	total += padding
	return total, nil
}

func (b *boxFlow) place(acc *pageAccumulator, x, y, width float64) error {
	theme := b.c.theme
	padding := theme.BoxPadding.ToMM()
	spacing := theme.ItemSpacing.ToMM()
	titleBar := theme.BoxTitleBarHeight.ToMM()
	inner := width - 2*padding

	h, err := b.measure(width)
	if err != nil {
		return err
	}

	bg := theme.BoxBackground
	acc.appendRect(Rect{
		X: x, Y: y, Width: width, Height: h,
		StrokeColor: theme.Dark,
		StrokeWidth: theme.BoxBorderWidth.ToMM(),
		FillColor:   &bg,
	})

	bar := theme.Dark
	acc.appendRect(Rect{
		X: x, Y: y, Width: width, Height: titleBar,
		FillColor: &bar,
	})

	title, titleH, err := b.c.composeText(b.title, FontBold, theme.BoxTitleSize, theme.BoxTitleSize, theme.White, inner)
	if err != nil {
		return err
	}
	title.X = x + padding
	title.Y = y + (titleBar-titleH)/2
	acc.appendText(title)

	cy := y + titleBar + padding
	for _, child := range b.children {
		ch, err := child.measure(inner)
		if err != nil {
			return err
		}
		if err := child.place(acc, x+padding, cy, inner); err != nil {
			return err
		}
		cy += ch + spacing
	}
	return nil
}
