package layout

// FontWeight is the weight axis of a font description, thinnest to
// heaviest. The scale mirrors the named weights font descriptions use;
// mapping them to whatever a font file actually provides is the
// renderer's job.
type FontWeight int

const (
	WeightThin FontWeight = iota
	WeightUltraLight
	WeightLight
	WeightSemiLight
	WeightBook
	WeightNormal
	WeightMedium
	WeightSemiBold
	WeightBold
	WeightUltraBold
	WeightHeavy
	WeightUltraHeavy
)

func (w FontWeight) String() string {
	switch w {
	case WeightThin:
		return "thin"
	case WeightUltraLight:
		return "ultra-light"
	case WeightLight:
		return "light"
	case WeightSemiLight:
		return "semi-light"
	case WeightBook:
		return "book"
	case WeightNormal:
		return "normal"
	case WeightMedium:
		return "medium"
	case WeightSemiBold:
		return "semi-bold"
	case WeightBold:
		return "bold"
	case WeightUltraBold:
		return "ultra-bold"
	case WeightHeavy:
		return "heavy"
	case WeightUltraHeavy:
		return "ultra-heavy"
	default:
		return "normal"
	}
}

// FontStyle selects the slant variant of a face.
type FontStyle int

const (
	StyleNormal FontStyle = iota
	StyleOblique
	StyleItalic
)

func (s FontStyle) String() string {
	switch s {
	case StyleOblique:
		return "oblique"
	case StyleItalic:
		return "italic"
	default:
		return "normal"
	}
}

// FontSpec describes a font the way a document requests it: a family
// name (which may be a generic name like "serif" or "monospace"), a
// size, a weight and a slant.
type FontSpec struct {
	Family string
	Size   Length
	Weight FontWeight
	Style  FontStyle
}

// PlainFont returns a normal-weight upright spec.
func PlainFont(family string, size Length) FontSpec {
	return FontSpec{Family: family, Size: size, Weight: WeightNormal, Style: StyleNormal}
}

// BoldFont returns a bold upright spec.
func BoldFont(family string, size Length) FontSpec {
	return FontSpec{Family: family, Size: size, Weight: WeightBold, Style: StyleNormal}
}

// DefaultFont is a 10pt serif.
func DefaultFont() FontSpec { return PlainFont("serif", Pt(10)) }

// TextAlignment positions lines horizontally inside a text box.
type TextAlignment int

const (
	AlignLeft TextAlignment = iota
	AlignCenter
	AlignRight
)

// TextStyle bundles everything needed to shape a run of text.
type TextStyle struct {
	Font      FontSpec
	Alignment TextAlignment
	Justify   bool

	// LineHeight is a multiplier on the font's natural line height;
	// 1.0 keeps lines at their natural distance.
	LineHeight float64

	// Indent shifts the first line right by the given amount; negative
	// values shift the continuation lines instead (hanging indent).
	Indent Length
}

// DefaultTextStyle is a left-aligned default font with single spacing.
func DefaultTextStyle() TextStyle {
	return TextStyle{Font: DefaultFont(), Alignment: AlignLeft, LineHeight: 1.0}
}

// Spacing is the extra gap inserted between consecutive lines on top of
// their natural height.
func (s TextStyle) Spacing() Length {
	return Length(float64(s.Font.Size) * (s.LineHeight - 1.0))
}
