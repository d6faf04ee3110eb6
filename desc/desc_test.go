package desc_test

import (
	"math"
	"testing"

	"github.com/ByLCY/vellum/desc"
	"github.com/ByLCY/vellum/layout"
)

func lengthNear(t *testing.T, what string, got, want layout.Length) {
	t.Helper()
	if math.Abs(float64(got-want)) > 1e-9 {
		t.Fatalf("%s = %v, want %v", what, got, want)
	}
}

func TestParseFontFull(t *testing.T) {
	spec, err := desc.ParseFont("Noto Serif Bold Italic 12pt")
	if err != nil {
		t.Fatalf("ParseFont: %v", err)
	}
	if spec.Family != "Noto Serif" {
		t.Errorf("family = %q, want %q", spec.Family, "Noto Serif")
	}
	if spec.Weight != layout.WeightBold {
		t.Errorf("weight = %v, want bold", spec.Weight)
	}
	if spec.Style != layout.StyleItalic {
		t.Errorf("style = %v, want italic", spec.Style)
	}
	lengthNear(t, "size", spec.Size, layout.Pt(12))
}

func TestParseFontFamilyOnly(t *testing.T) {
	spec, err := desc.ParseFont("monospace")
	if err != nil {
		t.Fatalf("ParseFont: %v", err)
	}
	if spec.Family != "monospace" {
		t.Errorf("family = %q", spec.Family)
	}
	if spec.Weight != layout.WeightNormal || spec.Style != layout.StyleNormal {
		t.Errorf("spec = %+v, want normal weight and style", spec)
	}
	lengthNear(t, "default size", spec.Size, layout.Pt(10))
}

func TestParseFontSizeUnits(t *testing.T) {
	spec, err := desc.ParseFont("serif 11")
	if err != nil {
		t.Fatalf("ParseFont: %v", err)
	}
	lengthNear(t, "bare size", spec.Size, layout.Pt(11))

	spec, err = desc.ParseFont("serif 6mm")
	if err != nil {
		t.Fatalf("ParseFont: %v", err)
	}
	lengthNear(t, "mm size", spec.Size, layout.Mm(6))
}

func TestParseFontKeywordVariants(t *testing.T) {
	cases := []struct {
		in     string
		family string
		weight layout.FontWeight
		style  layout.FontStyle
	}{
		{"Inter Semi-Bold 10", "Inter", layout.WeightSemiBold, layout.StyleNormal},
		{"Inter semibold 10", "Inter", layout.WeightSemiBold, layout.StyleNormal},
		{"Sans Ultra-Light Oblique 8pt", "Sans", layout.WeightUltraLight, layout.StyleOblique},
		{"Lexend Thin 10", "Lexend", layout.WeightThin, layout.StyleNormal},
		{"serif regular 10", "serif", layout.WeightNormal, layout.StyleNormal},
	}
	for _, c := range cases {
		spec, err := desc.ParseFont(c.in)
		if err != nil {
			t.Errorf("ParseFont(%q): %v", c.in, err)
			continue
		}
		if spec.Family != c.family || spec.Weight != c.weight || spec.Style != c.style {
			t.Errorf("ParseFont(%q) = %+v, want %s %v %v", c.in, spec, c.family, c.weight, c.style)
		}
	}
}

func TestParseFontSizeMustComeLast(t *testing.T) {
	if _, err := desc.ParseFont("12pt Serif"); err == nil {
		t.Error("leading size accepted")
	}
}

func TestParseFontEmpty(t *testing.T) {
	if _, err := desc.ParseFont(""); err == nil {
		t.Error("empty description accepted")
	}
	if _, err := desc.ParseFont("   "); err == nil {
		t.Error("blank description accepted")
	}
}

func TestParseLength(t *testing.T) {
	cases := []struct {
		in   string
		want layout.Length
	}{
		{"12.5mm", layout.Mm(12.5)},
		{"2cm", layout.Cm(2)},
		{"1in", layout.Inches(1)},
		{"8pt", layout.Pt(8)},
		{"1024du", layout.Pt(1)},
		{"7", layout.Mm(7)},
	}
	for _, c := range cases {
		got, err := desc.ParseLength(c.in)
		if err != nil {
			t.Errorf("ParseLength(%q): %v", c.in, err)
			continue
		}
		lengthNear(t, c.in, got, c.want)
	}
}

func TestParseLengthErrors(t *testing.T) {
	for _, in := range []string{"", "abc", "7kg"} {
		if _, err := desc.ParseLength(in); err == nil {
			t.Errorf("ParseLength(%q) succeeded", in)
		}
	}
}

func TestParseMargins(t *testing.T) {
	cases := []struct {
		in   string
		want layout.Margins
	}{
		{"15mm", layout.MarginsUniform(layout.Mm(15))},
		{"30mm 20mm", layout.MarginsVH(layout.Mm(30), layout.Mm(20))},
		{"10 8 6", layout.NewMargins(layout.Mm(10), layout.Mm(6), 0, layout.Mm(8))},
		{"10 8 6 4", layout.NewMargins(layout.Mm(10), layout.Mm(6), layout.Mm(4), layout.Mm(8))},
		{"10 8 6 4 99", layout.NewMargins(layout.Mm(10), layout.Mm(6), layout.Mm(4), layout.Mm(8))},
	}
	for _, c := range cases {
		got, err := desc.ParseMargins(c.in)
		if err != nil {
			t.Errorf("ParseMargins(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseMargins(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestParseMarginsEmpty(t *testing.T) {
	if _, err := desc.ParseMargins(""); err == nil {
		t.Error("empty margins accepted")
	}
}
