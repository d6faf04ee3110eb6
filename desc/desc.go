// Package desc parses the compact description strings used to name
// fonts, lengths and margins, for example "Noto Serif Bold Italic
// 12pt", "6mm" or "30mm 20mm".
package desc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/ByLCY/vellum/layout"
)

var (
	descLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t,]+`},
		{Name: "Number", Pattern: `(?:\d+\.\d+|\d+)(?:pt|mm|cm|in|du)?`},
		{Name: "Word", Pattern: `[A-Za-z][A-Za-z0-9_-]*`},
	})

	fontParser = participle.MustBuild[fontDesc](
		participle.Lexer(descLexer),
		participle.Elide("Whitespace"),
	)
	lengthParser = participle.MustBuild[lengthDesc](
		participle.Lexer(descLexer),
		participle.Elide("Whitespace"),
	)
	marginsParser = participle.MustBuild[marginsDesc](
		participle.Lexer(descLexer),
		participle.Elide("Whitespace"),
	)
)

type fontDesc struct {
	Items []fontItem `parser:"@@+"`
}

type fontItem struct {
	Word *string    `parser:"  @Word"`
	Size *sizeValue `parser:"| @Number"`
}

type lengthDesc struct {
	Value sizeValue `parser:"@Number"`
}

type marginsDesc struct {
	Values []marginValue `parser:"@@+"`
}

type marginValue struct {
	Value sizeValue `parser:"@Number"`
}

// sizeValue splits a number token into its magnitude and unit suffix on
// capture.
type sizeValue struct {
	value float64
	unit  string
}

func (s *sizeValue) Capture(values []string) error {
	raw := values[0]
	cut := len(raw)
	for cut > 0 && (raw[cut-1] < '0' || raw[cut-1] > '9') && raw[cut-1] != '.' {
		cut--
	}
	v, err := strconv.ParseFloat(raw[:cut], 64)
	if err != nil {
		return fmt.Errorf("malformed number %q: %w", raw, err)
	}
	s.value = v
	s.unit = raw[cut:]
	return nil
}

// length converts the value, constructing bare numbers with bare.
func (s sizeValue) length(bare func(float64) layout.Length) layout.Length {
	switch s.unit {
	case "mm":
		return layout.Mm(s.value)
	case "cm":
		return layout.Cm(s.value)
	case "in":
		return layout.Inches(s.value)
	case "pt":
		return layout.Pt(s.value)
	case "du":
		return layout.DeviceUnits(s.value)
	}
	return bare(s.value)
}

var weightNames = map[string]layout.FontWeight{
	"thin":        layout.WeightThin,
	"ultra-light": layout.WeightUltraLight,
	"ultralight":  layout.WeightUltraLight,
	"extra-light": layout.WeightUltraLight,
	"extralight":  layout.WeightUltraLight,
	"light":       layout.WeightLight,
	"semi-light":  layout.WeightSemiLight,
	"semilight":   layout.WeightSemiLight,
	"demi-light":  layout.WeightSemiLight,
	"demilight":   layout.WeightSemiLight,
	"book":        layout.WeightBook,
	"normal":      layout.WeightNormal,
	"regular":     layout.WeightNormal,
	"medium":      layout.WeightMedium,
	"semi-bold":   layout.WeightSemiBold,
	"semibold":    layout.WeightSemiBold,
	"demi-bold":   layout.WeightSemiBold,
	"demibold":    layout.WeightSemiBold,
	"bold":        layout.WeightBold,
	"ultra-bold":  layout.WeightUltraBold,
	"ultrabold":   layout.WeightUltraBold,
	"extra-bold":  layout.WeightUltraBold,
	"extrabold":   layout.WeightUltraBold,
	"heavy":       layout.WeightHeavy,
	"black":       layout.WeightHeavy,
	"ultra-heavy": layout.WeightUltraHeavy,
	"ultraheavy":  layout.WeightUltraHeavy,
	"extra-black": layout.WeightUltraHeavy,
	"extrablack":  layout.WeightUltraHeavy,
}

var styleNames = map[string]layout.FontStyle{
	"roman":   layout.StyleNormal,
	"upright": layout.StyleNormal,
	"italic":  layout.StyleItalic,
	"oblique": layout.StyleOblique,
}

// ParseFont parses a font description such as "Noto Serif Bold Italic
// 12pt". The size comes last and defaults to points when the number
// carries no unit; weight and style keywords are picked off the end;
// whatever remains is the family. An absent family resolves to the
// renderer's default.
func ParseFont(s string) (layout.FontSpec, error) {
	parsed, err := fontParser.ParseString("", s)
	if err != nil {
		return layout.FontSpec{}, fmt.Errorf("parse font description %q: %w", s, err)
	}
	spec := layout.DefaultFont()
	spec.Family = ""
	items := parsed.Items

	if last := items[len(items)-1]; last.Size != nil {
		spec.Size = last.Size.length(layout.Pt)
		items = items[:len(items)-1]
	}

	var weightSet, styleSet bool
	for len(items) > 0 {
		last := items[len(items)-1]
		if last.Word == nil {
			break
		}
		word := strings.ToLower(*last.Word)
		if w, ok := weightNames[word]; ok {
			if !weightSet {
				spec.Weight = w
				weightSet = true
			}
			items = items[:len(items)-1]
			continue
		}
		if st, ok := styleNames[word]; ok {
			if !styleSet {
				spec.Style = st
				styleSet = true
			}
			items = items[:len(items)-1]
			continue
		}
		break
	}

	words := make([]string, 0, len(items))
	for _, it := range items {
		if it.Word == nil {
			return layout.FontSpec{}, fmt.Errorf("font description %q: the size must come last", s)
		}
		words = append(words, *it.Word)
	}
	spec.Family = strings.Join(words, " ")
	return spec, nil
}

// ParseLength parses a length such as "12.5mm" or "8pt". Units are mm,
// cm, in, pt and du; bare numbers are millimeters.
func ParseLength(s string) (layout.Length, error) {
	parsed, err := lengthParser.ParseString("", s)
	if err != nil {
		return 0, fmt.Errorf("parse length %q: %w", s, err)
	}
	return parsed.Value.length(layout.Mm), nil
}

// ParseMargins parses up to four lengths: one value is uniform, two
// are vertical/horizontal, three are top/right/bottom and four are
// top/right/bottom/left. Values beyond the fourth are ignored.
func ParseMargins(s string) (layout.Margins, error) {
	parsed, err := marginsParser.ParseString("", s)
	if err != nil {
		return layout.Margins{}, fmt.Errorf("parse margins %q: %w", s, err)
	}
	v := make([]layout.Length, len(parsed.Values))
	for i, m := range parsed.Values {
		v[i] = m.Value.length(layout.Mm)
	}
	switch len(v) {
	case 1:
		return layout.MarginsUniform(v[0]), nil
	case 2:
		return layout.MarginsVH(v[0], v[1]), nil
	case 3:
		return layout.NewMargins(v[0], v[2], 0, v[1]), nil
	default:
		return layout.NewMargins(v[0], v[2], v[3], v[1]), nil
	}
}
