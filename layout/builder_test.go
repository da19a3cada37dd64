package layout

import (
	"math"
	"strings"
	"testing"

	"github.com/kestrelpress/playsheet/outline"
)

// stubTypesetter is a minimal deterministic Typesetter for layout
// tests; it avoids pulling in the renderer and its font machinery.
// Every call yields exactly one line whose height is the font size.
type stubTypesetter struct{}

func (s *stubTypesetter) LayoutLines(content string, width float64, font string, fontSize, lineHeight float64) ([]TextLine, error) {
	return []TextLine{{Content: content, Width: 0, Height: fontSize}}, nil
}

// wrappingTypesetter splits on words, two words per line, so tests can
// exercise multi-line text boxes without real font metrics.
type wrappingTypesetter struct{}

func (s *wrappingTypesetter) LayoutLines(content string, width float64, font string, fontSize, lineHeight float64) ([]TextLine, error) {
	words := strings.Fields(content)
	if len(words) == 0 {
		return []TextLine{{Content: "", Width: 0, Height: fontSize}}, nil
	}
	var lines []TextLine
	for i := 0; i < len(words); i += 2 {
		end := i + 2
		if end > len(words) {
			end = len(words)
		}
		lines = append(lines, TextLine{Content: strings.Join(words[i:end], " "), Height: fontSize})
	}
	return lines, nil
}

func buildDoc(t *testing.T, doc *outline.Document) *Result {
	t.Helper()
	res, err := Build(doc, BuildOptions{Typesetter: &stubTypesetter{}})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	return res
}

func paragraphBox(title string) outline.Box {
	return outline.Box{
		Title:    title,
		Elements: []outline.Element{{Kind: outline.Paragraph, Text: "note"}},
	}
}

func repeatBoxes(n int) []outline.Box {
	boxes := make([]outline.Box, n)
	for i := range boxes {
		boxes[i] = paragraphBox("Drill")
	}
	return boxes
}

// boxBackgrounds returns the filled container rectangles of a page,
// distinguishable from title bars by their fill color.
func boxBackgrounds(page Page, theme Theme) []Rect {
	var out []Rect
	for _, rc := range page.Rects {
		if rc.FillColor != nil && *rc.FillColor == theme.BoxBackground {
			out = append(out, rc)
		}
	}
	return out
}

func TestTextBoxTotalHeightInvariant(t *testing.T) {
	doc := &outline.Document{Pages: []outline.Page{{
		Title: "Session",
		Boxes: []outline.Box{{
			Title:    "Warm Up",
			Elements: []outline.Element{{Kind: outline.Paragraph, Text: "one two three four five six"}},
		}},
	}}}
	res, err := Build(doc, BuildOptions{Typesetter: &wrappingTypesetter{}})
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}

	checked := false
	for _, tb := range res.Pages[0].Texts {
		if len(tb.Lines) < 2 {
			continue
		}
		sum := 0.0
		for _, ln := range tb.Lines {
			sum += ln.GapBefore + ln.Height
		}
		if math.Abs(sum-tb.Height) > 1e-9 {
			t.Fatalf("TextBox height %g does not match line sum %g", tb.Height, sum)
		}
		if tb.Lines[0].GapBefore != 0 {
			t.Fatalf("first line GapBefore must be 0, got %g", tb.Lines[0].GapBefore)
		}
		checked = true
	}
	if !checked {
		t.Fatal("no multi-line text box found on the page")
	}
}

func TestSectionPageCarriesHeadingAndRule(t *testing.T) {
	doc := &outline.Document{Pages: []outline.Page{{
		Title: "Serve Practice",
		Boxes: []outline.Box{paragraphBox("Toss")},
	}}}
	res := buildDoc(t, doc)

	if len(res.Pages) != 1 {
		t.Fatalf("expected 1 page, got %d", len(res.Pages))
	}
	page := res.Pages[0]
	if page.Template != "section" {
		t.Fatalf("expected section template, got %q", page.Template)
	}

	found := false
	for _, tb := range page.Texts {
		if tb.Content == "SERVE PRACTICE" {
			if tb.Font != FontBold {
				t.Fatalf("heading must use the bold face, got %q", tb.Font)
			}
			found = true
		}
	}
	if !found {
		t.Fatal("upper-cased section heading not drawn")
	}
	if len(page.Lines) != 1 {
		t.Fatalf("expected exactly one heading rule, got %d lines", len(page.Lines))
	}
	theme := DefaultTheme()
	rule := page.Lines[0]
	if rule.X1 != theme.MarginLeft.ToMM() {
		t.Fatalf("rule starts at %g, want left margin %g", rule.X1, theme.MarginLeft.ToMM())
	}
	wantX2 := theme.PageWidth.ToMM() - theme.MarginRight.ToMM()
	if math.Abs(rule.X2-wantX2) > 1e-9 {
		t.Fatalf("rule ends at %g, want right margin %g", rule.X2, wantX2)
	}
}

func TestSectionBoundaryStartsNewPage(t *testing.T) {
	doc := &outline.Document{Pages: []outline.Page{
		{Title: "First", Boxes: []outline.Box{paragraphBox("A")}},
		{Title: "Second", Boxes: []outline.Box{paragraphBox("B")}},
	}}
	res := buildDoc(t, doc)

	if len(res.Pages) != 2 {
		t.Fatalf("expected 2 pages, got %d", len(res.Pages))
	}
	for i, want := range []string{"FIRST", "SECOND"} {
		page := res.Pages[i]
		if page.Template != "section" {
			t.Fatalf("page %d: expected section template, got %q", i, page.Template)
		}
		found := false
		for _, tb := range page.Texts {
			if tb.Content == want {
				found = true
			}
		}
		if !found {
			t.Fatalf("page %d: heading %q not drawn", i, want)
		}
	}
	if res.Meta.Title != "First" {
		t.Fatalf("document title should be the first section title, got %q", res.Meta.Title)
	}
}

func TestContinuationPagesUseBodyTemplate(t *testing.T) {
	doc := &outline.Document{Pages: []outline.Page{{
		Title: "Long Session",
		Boxes: repeatBoxes(50),
	}}}
	res := buildDoc(t, doc)

	if len(res.Pages) < 2 {
		t.Fatalf("expected the section to overflow onto more pages, got %d", len(res.Pages))
	}
	if res.Pages[0].Template != "section" {
		t.Fatalf("first page template = %q, want section", res.Pages[0].Template)
	}
	headings := 0
	for i, page := range res.Pages {
		if i > 0 {
			if page.Template != "body" {
				t.Fatalf("page %d template = %q, want body", i, page.Template)
			}
			if len(page.Lines) != 0 {
				t.Fatalf("page %d: continuation pages must not carry the heading rule", i)
			}
		}
		for _, tb := range page.Texts {
			if tb.Content == "LONG SESSION" {
				headings++
			}
		}
	}
	if headings != 1 {
		t.Fatalf("section heading drawn %d times, want exactly once", headings)
	}
}

func TestBoxesStayWithinColumns(t *testing.T) {
	doc := &outline.Document{Pages: []outline.Page{{
		Title: "Bounds",
		Boxes: repeatBoxes(40),
	}}}
	res := buildDoc(t, doc)

	theme := DefaultTheme()
	geo := theme.geometry()
	leftX := geo.marginL
	rightX := geo.marginL + geo.colW + geo.gutter
	const eps = 1e-9

	for i, page := range res.Pages {
		colTop := geo.marginT
		if page.Template == "section" {
			colTop += theme.TitleAreaHeight.ToMM()
		}
		for _, rc := range boxBackgrounds(page, theme) {
			if math.Abs(rc.X-leftX) > eps && math.Abs(rc.X-rightX) > eps {
				t.Fatalf("page %d: box at x=%g sits in neither column", i, rc.X)
			}
			if math.Abs(rc.Width-geo.colW) > eps {
				t.Fatalf("page %d: box width %g, want column width %g", i, rc.Width, geo.colW)
			}
			if rc.Y < colTop-eps {
				t.Fatalf("page %d: box top %g above column top %g", i, rc.Y, colTop)
			}
			if rc.Y+rc.Height > geo.colBottom+eps {
				t.Fatalf("page %d: box bottom %g below column bottom %g", i, rc.Y+rc.Height, geo.colBottom)
			}
		}
	}
}

func TestLeftColumnFillsBeforeRight(t *testing.T) {
	doc := &outline.Document{Pages: []outline.Page{{
		Title: "Order",
		Boxes: repeatBoxes(20),
	}}}
	res := buildDoc(t, doc)

	theme := DefaultTheme()
	geo := theme.geometry()
	rightX := geo.marginL + geo.colW + geo.gutter

	page := res.Pages[0]
	boxes := boxBackgrounds(page, theme)
	if len(boxes) < 2 {
		t.Fatalf("expected several boxes on the first page, got %d", len(boxes))
	}
	if boxes[0].X != geo.marginL {
		t.Fatalf("first box at x=%g, want left column %g", boxes[0].X, geo.marginL)
	}
	// Once the flow switches to the right column it never returns to
	// the left one on the same page.
	inRight := false
	for i, rc := range boxes {
		if math.Abs(rc.X-rightX) < 1e-9 {
			inRight = true
		} else if inRight {
			t.Fatalf("box %d back in the left column after the right one started", i)
		}
	}
	if !inRight {
		t.Fatal("right column never used on a full page")
	}
}

func TestBoxSpacingBetweenNeighbors(t *testing.T) {
	doc := &outline.Document{Pages: []outline.Page{{
		Title: "Spacing",
		Boxes: repeatBoxes(2),
	}}}
	res := buildDoc(t, doc)

	theme := DefaultTheme()
	boxes := boxBackgrounds(res.Pages[0], theme)
	if len(boxes) != 2 {
		t.Fatalf("expected 2 boxes, got %d", len(boxes))
	}
	gap := boxes[1].Y - (boxes[0].Y + boxes[0].Height)
	if math.Abs(gap-theme.BoxSpacing.ToMM()) > 1e-9 {
		t.Fatalf("inter-box gap %g, want %g", gap, theme.BoxSpacing.ToMM())
	}
}

func TestOversizeBoxFails(t *testing.T) {
	elements := make([]outline.Element, 80)
	for i := range elements {
		elements[i] = outline.Element{Kind: outline.Checkbox, Text: "rep"}
	}
	doc := &outline.Document{Pages: []outline.Page{{
		Title: "Too Tall",
		Boxes: []outline.Box{{Title: "Marathon", Elements: elements}},
	}}}

	_, err := Build(doc, BuildOptions{Typesetter: &stubTypesetter{}})
	if err == nil {
		t.Fatal("expected error for a box taller than a column")
	}
	if !strings.Contains(err.Error(), "Marathon") {
		t.Fatalf("error should name the offending box, got %q", err.Error())
	}
}

func TestEmptyDocumentProducesSinglePage(t *testing.T) {
	res := buildDoc(t, &outline.Document{})

	if len(res.Pages) != 1 {
		t.Fatalf("expected 1 page for an empty document, got %d", len(res.Pages))
	}
	page := res.Pages[0]
	if page.Template != "section" {
		t.Fatalf("expected section template, got %q", page.Template)
	}
	if len(page.Texts) != 0 || len(page.Lines) != 0 || len(page.Rects) != 0 {
		t.Fatal("empty document must produce a blank page")
	}
}

func TestBuildValidatesInputs(t *testing.T) {
	if _, err := Build(nil, BuildOptions{Typesetter: &stubTypesetter{}}); err == nil {
		t.Fatal("expected error for nil document")
	}
	if _, err := Build(&outline.Document{}, BuildOptions{}); err == nil {
		t.Fatal("expected error for missing typesetter")
	}
}
