// Package transpose swaps the two heading levels of an outline
// markdown file: every ## grouping becomes a top-level # section and
// vice versa, with all content preserved. Content before the first #
// heading or outside a ## heading is dropped.
package transpose

import "strings"

// section is one top-level heading with its sub-headings in first-seen
// order.
type section struct {
	title string
	subs  []*subsection
}

type subsection struct {
	title   string
	content []string
}

func (s *section) sub(title string) *subsection {
	for _, ss := range s.subs {
		if ss.title == title {
			return ss
		}
	}
	ss := &subsection{title: title}
	s.subs = append(s.subs, ss)
	return ss
}

// Transpose parses the input lines, flips the heading axes and renders
// the result back to markdown.
func Transpose(lines []string) string {
	return render(flip(parse(lines)))
}

// parse builds the {h1: {h2: content}} structure, deduplicating
// repeated headings and keeping first-seen order on both levels.
func parse(lines []string) []*section {
	var secs []*section
	find := func(title string) *section {
		for _, s := range secs {
			if s.title == title {
				return s
			}
		}
		s := &section{title: title}
		secs = append(secs, s)
		return s
	}

	var cur *section
	var curSub *subsection
	for _, line := range lines {
		switch {
		case strings.HasPrefix(line, "# "):
			cur = find(strings.TrimSpace(line[2:]))
			curSub = nil
		case strings.HasPrefix(line, "## ") && cur != nil:
			curSub = cur.sub(strings.TrimSpace(line[3:]))
		default:
			if cur != nil && curSub != nil {
				curSub.content = append(curSub.content, line)
			}
		}
	}
	return secs
}

// flip turns {h1: {h2: content}} into {h2: {h1: content}}. The new
// top-level order is the first-seen order of the old sub-headings; the
// new sub-order within each section is the old top-level order.
func flip(secs []*section) []*section {
	var order []string
	seen := map[string]bool{}
	for _, s := range secs {
		for _, ss := range s.subs {
			if !seen[ss.title] {
				seen[ss.title] = true
				order = append(order, ss.title)
			}
		}
	}

	out := make([]*section, 0, len(order))
	for _, title := range order {
		t := &section{title: title}
		for _, s := range secs {
			for _, ss := range s.subs {
				if ss.title == title {
					t.subs = append(t.subs, &subsection{title: s.title, content: ss.content})
				}
			}
		}
		out = append(out, t)
	}
	return out
}

// render writes the structure back out: each content block is trimmed
// of surrounding blank lines and followed by one blank line, sections
// are separated by a blank line.
func render(secs []*section) string {
	sections := make([]string, 0, len(secs))
	for _, s := range secs {
		parts := []string{"# " + s.title + "\n"}
		for _, ss := range s.subs {
			parts = append(parts, "## "+ss.title+"\n")
			parts = append(parts, trimBlank(ss.content)...)
			parts = append(parts, "")
		}
		sections = append(sections, strings.Join(parts, "\n"))
	}
	return strings.Join(sections, "\n\n") + "\n"
}

func trimBlank(lines []string) []string {
	start, end := 0, len(lines)
	for start < end && strings.TrimSpace(lines[start]) == "" {
		start++
	}
	for end > start && strings.TrimSpace(lines[end-1]) == "" {
		end--
	}
	return lines[start:end]
}
