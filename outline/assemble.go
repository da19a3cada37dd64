package outline

import "strings"

// parserState names the container currently open while folding lines
// into the document. The zero value means nothing is open yet.
type parserState int

const (
	stateNoPage parserState = iota
	stateInPage
	stateInBox
)

// assembler folds classified lines into a Document. It is the explicit
// state machine behind Parse: every marker transition first flushes the
// paragraph accumulator, and container flushes cascade (box into page,
// page into document) so nothing is left dangling at end of input.
type assembler struct {
	state parserState
	doc   Document
	page  Page
	box   Box
	para  []string
}

func assemble(lines []*line) *Document {
	a := &assembler{}
	for _, ln := range lines {
		a.feed(ln)
	}
	a.flushPage()
	return &a.doc
}

func (a *assembler) feed(ln *line) {
	text := ""
	if ln.Text != nil {
		text = strings.TrimSpace(*ln.Text)
	}

	if ln.Marker == nil {
		if text == "" {
			// Blank line: ends the paragraph, opens nothing.
			a.flushPara()
			return
		}
		a.para = append(a.para, text)
		return
	}

	switch *ln.Marker {
	case markerPage:
		a.flushPage()
		a.page = Page{Title: text}
		a.state = stateInPage
	case markerBox:
		a.flushBox()
		// A box heading before any section heading is dropped.
		if a.state != stateNoPage {
			a.box = Box{Title: text}
			a.state = stateInBox
		}
	case markerCheckbox:
		a.appendElement(Checkbox, text)
	case markerBullet:
		a.appendElement(Bullet, text)
	}
}

// appendElement emits an item element into the open box. Items outside
// any box are dropped.
func (a *assembler) appendElement(kind ElementKind, text string) {
	a.flushPara()
	if a.state != stateInBox {
		return
	}
	a.box.Elements = append(a.box.Elements, Element{Kind: kind, Text: ResolveBold(text)})
}

// flushPara joins the accumulated paragraph lines with single spaces and
// emits them into the open box. The accumulator is cleared either way,
// so paragraph text never leaks across container boundaries.
func (a *assembler) flushPara() {
	if len(a.para) == 0 {
		return
	}
	if a.state == stateInBox {
		a.box.Elements = append(a.box.Elements, Element{
			Kind: Paragraph,
			Text: ResolveBold(strings.Join(a.para, " ")),
		})
	}
	a.para = a.para[:0]
}

func (a *assembler) flushBox() {
	a.flushPara()
	if a.state != stateInBox {
		return
	}
	a.page.Boxes = append(a.page.Boxes, a.box)
	a.box = Box{}
	a.state = stateInPage
}

func (a *assembler) flushPage() {
	a.flushBox()
	if a.state == stateNoPage {
		return
	}
	a.doc.Pages = append(a.doc.Pages, a.page)
	a.page = Page{}
	a.state = stateNoPage
}
