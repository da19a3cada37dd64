package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Theme collects the page geometry, spacing, colors and type sizes the
// flow engine lays out with. The defaults reproduce the letter-format
// checklist look; individual values can be overridden from config.
type Theme struct {
	PageWidth  Length
	PageHeight Length

	MarginLeft   Length
	MarginRight  Length
	MarginTop    Length
	MarginBottom Length
	Gutter       Length

	// TitleAreaHeight is the header band reserved at the top of a
	// section's first page; body pages use the full column height.
	TitleAreaHeight Length

	BodyFontSize Length
	BodyLeading  Length
	HeadingSize  Length
	BoxTitleSize Length

	BulletIndent   Length
	CheckboxSize   Length
	CheckboxGap    Length
	CheckboxStroke Length

	BoxPadding        Length
	BoxTitleBarHeight Length
	BoxBorderWidth    Length
	ItemSpacing       Length
	BoxSpacing        Length

	HeadingLift Length // heading baseline sits this far above the top margin line
	RuleGap     Length // rule sits this far below the heading baseline
	RuleWidth   Length

	Dark          Color
	Text          Color
	White         Color
	BoxBackground Color
}

func pt(v float64) Length { return Length{Value: v, Unit: UnitPT} }

// DefaultTheme returns the standard letter-page checklist theme.
func DefaultTheme() Theme {
	return Theme{
		PageWidth:  pt(612),
		PageHeight: pt(792),

		MarginLeft:   pt(54),
		MarginRight:  pt(54),
		MarginTop:    pt(72),
		MarginBottom: pt(54),
		Gutter:       pt(18),

		TitleAreaHeight: pt(50),

		BodyFontSize: pt(8),
		BodyLeading:  pt(11),
		HeadingSize:  pt(24),
		BoxTitleSize: pt(10),

		BulletIndent:   pt(12),
		CheckboxSize:   pt(7),
		CheckboxGap:    pt(5),
		CheckboxStroke: pt(0.75),

		BoxPadding:        pt(8),
		BoxTitleBarHeight: pt(20),
		BoxBorderWidth:    pt(1.5),
		ItemSpacing:       pt(4),
		BoxSpacing:        pt(10),

		HeadingLift: pt(10),
		RuleGap:     pt(8),
		RuleWidth:   pt(2),

		Dark:          Color{R: 0x1a, G: 0x1a, B: 0x1a},
		Text:          Color{R: 0x22, G: 0x22, B: 0x22},
		White:         Color{R: 0xff, G: 0xff, B: 0xff},
		BoxBackground: Color{R: 0xf5, G: 0xf5, B: 0xf0},
	}
}

// ParseColor parses a #rgb or #rrggbb hex color.
func ParseColor(value string) (Color, error) {
	v := strings.TrimPrefix(strings.TrimSpace(value), "#")
	switch len(v) {
	case 3:
		return Color{
			R: mustHex(strings.Repeat(string(v[0]), 2)),
			G: mustHex(strings.Repeat(string(v[1]), 2)),
			B: mustHex(strings.Repeat(string(v[2]), 2)),
		}, nil
	case 6:
		return Color{
			R: mustHex(v[0:2]),
			G: mustHex(v[2:4]),
			B: mustHex(v[4:6]),
		}, nil
	default:
		return Color{}, fmt.Errorf("cannot parse color value %q", value)
	}
}

func mustHex(s string) int {
	v, _ := strconv.ParseInt(s, 16, 64)
	return int(v)
}

// geometry resolves the theme's page metrics to millimeters once per
// build.
type geometry struct {
	pageW, pageH                       float64
	marginL, marginR, marginT, marginB float64
	gutter                             float64
	contentW, colW                     float64
	colBottom                          float64
}

func (t Theme) geometry() geometry {
	g := geometry{
		pageW:   t.PageWidth.ToMM(),
		pageH:   t.PageHeight.ToMM(),
		marginL: t.MarginLeft.ToMM(),
		marginR: t.MarginRight.ToMM(),
		marginT: t.MarginTop.ToMM(),
		marginB: t.MarginBottom.ToMM(),
		gutter:  t.Gutter.ToMM(),
	}
	g.contentW = g.pageW - g.marginL - g.marginR
	g.colW = (g.contentW - g.gutter) / 2
	g.colBottom = g.pageH - g.marginB
	return g
}
