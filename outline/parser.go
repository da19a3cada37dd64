package outline

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// The lexer classifies each physical line by its leading marker. Marker
// rules are ordered longest-first so "## " wins over "# " and the
// checkbox marker wins over the plain bullet. A marker can only occur at
// the start of a line: Rest consumes everything up to the newline, so
// after any non-marker character the rest of the line is a single token.
var (
	lineLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "CheckboxMarker", Pattern: `- \[ \] `},
		{Name: "BoxMarker", Pattern: `## `},
		{Name: "PageMarker", Pattern: `# `},
		{Name: "BulletMarker", Pattern: `- `},
		{Name: "Newline", Pattern: `\r?\n`},
		{Name: "Rest", Pattern: `[^\r\n]+`},
	})

	lineParser = participle.MustBuild[file](
		participle.Lexer(lineLexer),
	)
)

// file is the flat line-level AST: classification happens here, document
// assembly happens in the state machine (assemble.go).
type file struct {
	Lines []*line `parser:"@@*"`
}

// line captures exactly one physical line: an optional leading marker
// and the raw remainder. The remainder may itself contain marker-shaped
// tokens ("# # x"); capturing the whole token run into one string keeps
// it intact. A blank line is a line with neither part.
type line struct {
	Pos lexer.Position

	Marker *string `parser:"@(CheckboxMarker | BoxMarker | PageMarker | BulletMarker)?"`
	Text   *string `parser:"@(Rest | CheckboxMarker | BoxMarker | PageMarker | BulletMarker)* Newline"`
}

// Marker literals as produced by the lexer.
const (
	markerPage     = "# "
	markerBox      = "## "
	markerBullet   = "- "
	markerCheckbox = "- [ ] "
)

// Parse reads outline text and builds the document model.
func Parse(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read outline input: %w", err)
	}
	return ParseString(string(data))
}

// ParseString parses outline text from a string.
func ParseString(input string) (*Document, error) {
	// The grammar terminates every line with a newline token.
	if input != "" && !strings.HasSuffix(input, "\n") {
		input += "\n"
	}
	ast, err := lineParser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("lex outline input: %w", err)
	}
	return assemble(ast.Lines), nil
}
