package outline

import "regexp"

var boldPattern = regexp.MustCompile(`\*\*(.+?)\*\*`)

// ResolveBold resolves inline **bold** markers in element text. The
// layout stage renders a single face per element, so resolution strips
// the markers and keeps the enclosed text. Unpaired markers pass
// through unchanged.
func ResolveBold(text string) string {
	return boldPattern.ReplaceAllString(text, "$1")
}
