package transpose

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransposeSwapsHeadingLevels(t *testing.T) {
	input := []string{
		"# Coach",
		"## Warmup",
		"jog laps",
		"",
		"stretch",
		"## Drills",
		"ladder",
		"# Players",
		"## Warmup",
		"arrive early",
	}

	got := Transpose(input)
	want := strings.Join([]string{
		"# Warmup",
		"",
		"## Coach",
		"",
		"jog laps",
		"",
		"stretch",
		"",
		"## Players",
		"",
		"arrive early",
		"",
		"",
		"# Drills",
		"",
		"## Coach",
		"",
		"ladder",
		"",
		"",
	}, "\n")
	require.Equal(t, want, got)
}

func TestTransposePreservesFirstSeenOrder(t *testing.T) {
	input := []string{
		"# B",
		"## Late",
		"x",
		"# A",
		"## Early",
		"y",
		"## Late",
		"z",
	}

	got := Transpose(input)
	lateIdx := strings.Index(got, "# Late")
	earlyIdx := strings.Index(got, "# Early")
	require.GreaterOrEqual(t, lateIdx, 0)
	require.GreaterOrEqual(t, earlyIdx, 0)
	// Late was seen first across the file, so it leads the output.
	require.Less(t, lateIdx, earlyIdx)

	// Within Late, B precedes A because that is the old top-level order.
	section := got[lateIdx:earlyIdx]
	require.Less(t, strings.Index(section, "## B"), strings.Index(section, "## A"))
}

func TestTransposeDropsOrphanContent(t *testing.T) {
	input := []string{
		"stray preamble",
		"## Orphan",
		"lost",
		"# Kept",
		"between headings", // no ## open yet, dropped
		"## Sub",
		"kept line",
	}

	got := Transpose(input)
	require.NotContains(t, got, "stray preamble")
	require.NotContains(t, got, "Orphan")
	require.NotContains(t, got, "between headings")
	require.Contains(t, got, "# Sub\n")
	require.Contains(t, got, "## Kept\n")
	require.Contains(t, got, "kept line")
}

func TestTransposeMergesDuplicateHeadings(t *testing.T) {
	input := []string{
		"# Team",
		"## Notes",
		"first",
		"# Team",
		"## Notes",
		"second",
	}

	got := Transpose(input)
	require.Equal(t, 1, strings.Count(got, "# Notes"))
	require.Equal(t, 1, strings.Count(got, "## Team"))
	first := strings.Index(got, "first")
	second := strings.Index(got, "second")
	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, second, first)
}

func TestTransposeTrimsContentBlankLines(t *testing.T) {
	input := []string{
		"# A",
		"## B",
		"",
		"",
		"body",
		"",
		"",
	}

	got := Transpose(input)
	require.Equal(t, "# B\n\n## A\n\nbody\n\n", got)
}

func TestTransposeEmptyInput(t *testing.T) {
	require.Equal(t, "\n", Transpose(nil))
}
