package layout

import (
	"math"
	"testing"
)

func TestTextBoxSizeAndBaseline(t *testing.T) {
	tb := NewTextBox(stubTypesetter{}).SetText("aaaa bb cc")
	tb.SetMaxWidth(Mm(12))
	size := tb.Size()
	// Two lines ("aaaa", "bb cc") of 2mm runes at the 10pt default size.
	lengthNear(t, size.X, Mm(10), "width of the widest line")
	lengthNear(t, size.Y, 2*Pt(10), "height of two lines")
	base, ok := tb.Baseline()
	if !ok {
		t.Fatalf("text box must always have a baseline")
	}
	lengthNear(t, base, Length(0.8*float64(Pt(10))), "baseline at the first ascent")
}

func TestTextBoxEmptyStillMeasures(t *testing.T) {
	tb := NewTextBox(stubTypesetter{})
	size := tb.Size()
	lengthNear(t, size.X, 0, "empty width")
	lengthNear(t, size.Y, Pt(10), "empty box keeps one line of height")
	if _, ok := tb.Baseline(); !ok {
		t.Fatalf("empty text box still has a baseline")
	}
}

func TestTextBoxLineHeightSpacing(t *testing.T) {
	tb := NewTextBox(stubTypesetter{}).SetText("aaaa bb cc").SetLineHeight(1.5)
	tb.SetMaxWidth(Mm(12))
	want := 2*Pt(10) + Length(0.5*float64(Pt(10)))
	lengthNear(t, tb.Height(), want, "two lines plus half a font size of spacing")
}

func TestTextBoxNaturalWidthKeepsConstraint(t *testing.T) {
	tb := NewTextBox(stubTypesetter{}).SetText("aaaa bb cc")
	tb.SetMaxWidth(Mm(12))
	lengthNear(t, tb.NaturalWidth(), Mm(20), "natural width ignores the limit")
	lengthNear(t, tb.MaxWidth(), Mm(12), "constraint survives the natural width probe")
	lengthNear(t, tb.Size().X, Mm(10), "constrained size unchanged")
}

func TestTextBoxMinWidthIsZero(t *testing.T) {
	tb := NewTextBox(stubTypesetter{}).SetText("whatever")
	lengthNear(t, tb.MinWidth(), 0, "min width")
}

func TestTextBoxDrawAdvancesLines(t *testing.T) {
	tb := NewTextBox(stubTypesetter{}).SetText("aaaa bb cc").SetLineHeight(1.2)
	tb.SetMaxWidth(Mm(12))
	s := &recordingSurface{}
	if err := tb.Draw(s, Vec(Mm(5), Mm(7))); err != nil {
		t.Fatalf("draw: %v", err)
	}
	texts := s.byKind("text")
	if len(texts) != 2 {
		t.Fatalf("expected 2 text ops, got %d", len(texts))
	}
	lengthNear(t, texts[0].pos.X, Mm(5), "first line x")
	lengthNear(t, texts[0].pos.Y, Mm(7), "first line y")
	lineHeight := Pt(10)
	spacing := Length(0.2 * float64(Pt(10)))
	lengthNear(t, texts[1].pos.Y, Mm(7)+lineHeight+spacing, "second line y includes spacing")
}

func TestTextBoxDrawAlignment(t *testing.T) {
	base := func() *TextBox {
		tb := NewTextBox(stubTypesetter{}).SetText("aaaa bb cc")
		tb.SetMaxWidth(Mm(12))
		return tb
	}

	s := &recordingSurface{}
	if err := base().AlignRight().Draw(s, Vector2{}); err != nil {
		t.Fatalf("draw right: %v", err)
	}
	texts := s.byKind("text")
	// First line "aaaa" is 8mm wide in a 12mm box.
	lengthNear(t, texts[0].pos.X, Mm(4), "right-aligned first line x")

	s = &recordingSurface{}
	if err := base().AlignCenter().Draw(s, Vector2{}); err != nil {
		t.Fatalf("draw center: %v", err)
	}
	texts = s.byKind("text")
	lengthNear(t, texts[0].pos.X, Mm(2), "centered first line x")
}

func TestTextBoxDrawJustifyStretch(t *testing.T) {
	tb := NewTextBox(stubTypesetter{}).SetText("aaaa bb cc").SetJustify(true)
	tb.SetMaxWidth(Mm(12))
	s := &recordingSurface{}
	if err := tb.Draw(s, Vector2{}); err != nil {
		t.Fatalf("draw: %v", err)
	}
	texts := s.byKind("text")
	if texts[0].stretch.Mm() != 12 {
		t.Fatalf("soft-wrapped line must stretch to the box: got %g", texts[0].stretch.Mm())
	}
	if texts[1].stretch != 0 {
		t.Fatalf("paragraph-final line must not stretch: got %g", texts[1].stretch.Mm())
	}
}

func TestTextBoxFluentSettersInvalidate(t *testing.T) {
	tb := NewTextBox(stubTypesetter{}).SetText("abcd")
	first := tb.Size()
	tb.SetText("abcdabcd")
	second := tb.Size()
	if math.Abs(second.X.Mm()-2*first.X.Mm()) > 1e-9 {
		t.Fatalf("size must track text changes: %g vs %g", first.X.Mm(), second.X.Mm())
	}
	if tb.MakeBold().Style().Font.Weight != WeightBold {
		t.Fatalf("MakeBold did not stick")
	}
	if tb.MakeItalic().Style().Font.Style != StyleItalic {
		t.Fatalf("MakeItalic did not stick")
	}
	if tb.SetFontFamily("monospace").Style().Font.Family != "monospace" {
		t.Fatalf("SetFontFamily did not stick")
	}
}
