package layout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kestrelpress/playsheet/outline"
)

// Build lays the document's boxes into two-column pages and returns the
// positioned primitives. Each outline page (section) starts a fresh
// physical page under the section-title template; overflow pages within
// a section continue under the body template with no heading band.
func Build(doc *outline.Document, opts BuildOptions) (*Result, error) {
	if doc == nil {
		return nil, errors.New("layout: document is nil")
	}
	if opts.Typesetter == nil {
		return nil, errors.New("layout: missing Typesetter")
	}
	theme := opts.Theme
	if theme == (Theme{}) {
		theme = DefaultTheme()
	}

	eng := newFlowEngine(theme, opts.Typesetter)

	// The first section's title is preloaded into the pending-title
	// slot before any page exists, so the very first page opens under
	// the section template without a forced break.
	if len(doc.Pages) > 0 {
		eng.cur.pendingTitle = doc.Pages[0].Title
	}
	if err := eng.startPage(eng.sectionTpl); err != nil {
		return nil, err
	}

	for i, sec := range doc.Pages {
		if i > 0 {
			// Section boundary: write the pending title, select the
			// section template for exactly one page, and force a
			// break. startPage reverts the selection to body so
			// continuation pages carry no heading band.
			eng.cur.pendingTitle = sec.Title
			if err := eng.startPage(eng.sectionTpl); err != nil {
				return nil, err
			}
		}
		for j, box := range sec.Boxes {
			bf := newBoxFlow(eng.comp, box)
			if err := eng.placeBox(bf, j > 0); err != nil {
				return nil, err
			}
		}
	}

	meta := DocumentMeta{Creator: "playsheet"}
	if len(doc.Pages) > 0 {
		meta.Title = doc.Pages[0].Title
	}
	return &Result{Pages: eng.pc.pages(), Meta: meta}, nil
}

// template describes one page layout: where its columns start and what
// its page-start hook draws. Both templates share the column widths and
// the column bottom; only the column top and the hook differ.
type template struct {
	name      string
	colTop    float64
	pageStart func(acc *pageAccumulator, cur *flowCursor) error
}

// flowCursor is the explicit flow state threaded through the fold over
// the box sequence: the current column, the vertical offset, the active
// page template and the template selected for the next break. The
// pending title is written once per section and read by the section
// template's page-start hook; the hook never clears it — reverting the
// selection to the body template is what stops the heading from
// repeating.
type flowCursor struct {
	col          int
	y            float64
	active       *template
	next         *template
	pendingTitle string
}

type flowEngine struct {
	geo  geometry
	comp *composer
	pc   *pageCollector
	cur  *flowCursor

	sectionTpl *template
	bodyTpl    *template
}

func newFlowEngine(theme Theme, ts Typesetter) *flowEngine {
	geo := theme.geometry()
	eng := &flowEngine{
		geo:  geo,
		comp: &composer{ts: ts, theme: theme},
		pc:   newPageCollector(geo),
		cur:  &flowCursor{},
	}
	eng.bodyTpl = &template{
		name:   "body",
		colTop: geo.marginT,
		// Body pages draw nothing at page start; in particular the
		// pending title is never read here.
		pageStart: nil,
	}
	eng.sectionTpl = &template{
		name:      "section",
		colTop:    geo.marginT + theme.TitleAreaHeight.ToMM(),
		pageStart: eng.drawSectionHeading,
	}
	eng.cur.next = eng.bodyTpl
	return eng
}

// startPage opens a new physical page under the given template, resets
// the cursor to the top of the left column, runs the template's
// page-start hook and reverts the template selection to body.
func (e *flowEngine) startPage(tpl *template) error {
	acc := e.pc.newPage(tpl.name)
	e.cur.active = tpl
	e.cur.next = e.bodyTpl
	e.cur.col = 0
	e.cur.y = tpl.colTop
	if tpl.pageStart != nil {
		return tpl.pageStart(acc, e.cur)
	}
	return nil
}

// drawSectionHeading is the section template's page-start hook: the
// upper-cased section title with a rule beneath it, drawn in the header
// band above the columns. An empty pending title draws nothing.
func (e *flowEngine) drawSectionHeading(acc *pageAccumulator, cur *flowCursor) error {
	if cur.pendingTitle == "" {
		return nil
	}
	theme := e.comp.theme

	lift := theme.HeadingLift.ToMM()
	tb, _, err := e.comp.composeText(strings.ToUpper(cur.pendingTitle), FontBold,
		theme.HeadingSize, theme.HeadingSize, theme.Dark, e.geo.contentW)
	if err != nil {
		return err
	}
	tb.X = e.geo.marginL
	tb.Y = e.geo.marginT - lift - theme.HeadingSize.ToMM()
	acc.appendText(tb)

	ruleY := e.geo.marginT - lift + theme.RuleGap.ToMM()
	acc.appendLine(Line{
		X1:    e.geo.marginL,
		Y1:    ruleY,
		X2:    e.geo.pageW - e.geo.marginR,
		Y2:    ruleY,
		Color: theme.Dark,
		Width: theme.RuleWidth.ToMM(),
	})
	return nil
}

// placeBox allocates the box's full height in the current column, or
// advances to the next column or page until it fits. Boxes are atomic:
// they land whole or not at all. A box taller than a full body column
// can never be placed and is a fatal layout error.
func (e *flowEngine) placeBox(bf *boxFlow, spaced bool) error {
	h, err := bf.measure(e.geo.colW)
	if err != nil {
		return err
	}
	if h > e.geo.colBottom-e.bodyTpl.colTop {
		return fmt.Errorf("layout: box %q is %.1fmm tall and exceeds the column height", bf.title, h)
	}

	if spaced {
		e.cur.y += e.comp.theme.BoxSpacing.ToMM()
	}
	for e.cur.y+h > e.geo.colBottom {
		if err := e.advance(); err != nil {
			return err
		}
	}

	x := e.geo.marginL + float64(e.cur.col)*(e.geo.colW+e.geo.gutter)
	if err := bf.place(e.pc.curr(), x, e.cur.y, e.geo.colW); err != nil {
		return err
	}
	e.cur.y += h
	return nil
}

// advance moves the flow to the top of the right column, or, when that
// is exhausted too, onto a new page under the currently selected
// template.
func (e *flowEngine) advance() error {
	if e.cur.col == 0 {
		e.cur.col = 1
		e.cur.y = e.cur.active.colTop
		return nil
	}
	return e.startPage(e.cur.next)
}

// pageAccumulator gathers the primitives of one physical page while the
// flow engine walks the box sequence.
type pageAccumulator struct {
	template string
	texts    []TextBox
	rects    []Rect
	lines    []Line
}

func (p *pageAccumulator) appendText(tb TextBox) { p.texts = append(p.texts, tb) }
func (p *pageAccumulator) appendRect(r Rect)     { p.rects = append(p.rects, r) }
func (p *pageAccumulator) appendLine(l Line)     { p.lines = append(p.lines, l) }

type pageCollector struct {
	geo  geometry
	accs []*pageAccumulator
}

func newPageCollector(geo geometry) *pageCollector {
	return &pageCollector{geo: geo}
}

func (pc *pageCollector) newPage(template string) *pageAccumulator {
	acc := &pageAccumulator{template: template}
	pc.accs = append(pc.accs, acc)
	return acc
}

func (pc *pageCollector) curr() *pageAccumulator {
	return pc.accs[len(pc.accs)-1]
}

func (pc *pageCollector) pages() []Page {
	out := make([]Page, len(pc.accs))
	for i, acc := range pc.accs {
		out[i] = Page{
			Width:    pc.geo.pageW,
			Height:   pc.geo.pageH,
			Template: acc.template,
			Texts:    acc.texts,
			Rects:    acc.rects,
			Lines:    acc.lines,
		}
	}
	return out
}
