package layout

// TextBox lays out a single run of styled text. Mutations invalidate the
// cached shaping, which is rebuilt on the next measurement.
type TextBox struct {
	ts       Typesetter
	text     string
	style    TextStyle
	color    Color
	maxWidth Length
	shaped   *ShapedText
}

var _ DrawableMut = (*TextBox)(nil)

// NewTextBox creates an empty black text box with the default style.
func NewTextBox(ts Typesetter) *TextBox {
	return &TextBox{ts: ts, style: DefaultTextStyle(), color: Black}
}

func (t *TextBox) invalidate() { t.shaped = nil }

func (t *TextBox) shape() *ShapedText {
	if t.shaped == nil {
		t.shaped = t.ts.Shape(t.spans(), t.maxWidth, t.style)
	}
	return t.shaped
}

func (t *TextBox) spans() []Span { return []Span{{Text: t.text}} }

// Text returns the current text content.
func (t *TextBox) Text() string { return t.text }

// Style returns the current text style.
func (t *TextBox) Style() TextStyle { return t.style }

// Color returns the drawing color.
func (t *TextBox) Color() Color { return t.color }

// SetText replaces the text content.
func (t *TextBox) SetText(text string) *TextBox {
	t.text = text
	t.invalidate()
	return t
}

// SetColor sets the drawing color.
func (t *TextBox) SetColor(c Color) *TextBox {
	t.color = c
	return t
}

// SetStyle replaces the whole text style.
func (t *TextBox) SetStyle(style TextStyle) *TextBox {
	t.style = style
	t.invalidate()
	return t
}

// SetFont replaces the font spec.
func (t *TextBox) SetFont(font FontSpec) *TextBox {
	t.style.Font = font
	t.invalidate()
	return t
}

// SetFontFamily changes the font family.
func (t *TextBox) SetFontFamily(family string) *TextBox {
	t.style.Font.Family = family
	t.invalidate()
	return t
}

// SetFontSize changes the font size.
func (t *TextBox) SetFontSize(size Length) *TextBox {
	t.style.Font.Size = size
	t.invalidate()
	return t
}

// SetFontWeight changes the font weight.
func (t *TextBox) SetFontWeight(weight FontWeight) *TextBox {
	t.style.Font.Weight = weight
	t.invalidate()
	return t
}

// MakeBold sets the font weight to bold.
func (t *TextBox) MakeBold() *TextBox { return t.SetFontWeight(WeightBold) }

// MakeThin sets the font weight to thin.
func (t *TextBox) MakeThin() *TextBox { return t.SetFontWeight(WeightThin) }

// SetFontStyle changes the slant variant.
func (t *TextBox) SetFontStyle(style FontStyle) *TextBox {
	t.style.Font.Style = style
	t.invalidate()
	return t
}

// MakeItalic sets the slant to italic.
func (t *TextBox) MakeItalic() *TextBox { return t.SetFontStyle(StyleItalic) }

// MakeOblique sets the slant to oblique.
func (t *TextBox) MakeOblique() *TextBox { return t.SetFontStyle(StyleOblique) }

// SetAlignment sets the horizontal alignment.
func (t *TextBox) SetAlignment(a TextAlignment) *TextBox {
	t.style.Alignment = a
	t.invalidate()
	return t
}

// AlignLeft aligns lines to the left edge.
func (t *TextBox) AlignLeft() *TextBox { return t.SetAlignment(AlignLeft) }

// AlignCenter centers lines in the box.
func (t *TextBox) AlignCenter() *TextBox { return t.SetAlignment(AlignCenter) }

// AlignRight aligns lines to the right edge.
func (t *TextBox) AlignRight() *TextBox { return t.SetAlignment(AlignRight) }

// SetJustify toggles justification of soft-wrapped lines.
func (t *TextBox) SetJustify(justify bool) *TextBox {
	t.style.Justify = justify
	t.invalidate()
	return t
}

// SetLineHeight sets the line height multiplier.
func (t *TextBox) SetLineHeight(factor float64) *TextBox {
	t.style.LineHeight = factor
	t.invalidate()
	return t
}

// SetMaxWidth sets the width constraint; values <= 0 clear it.
func (t *TextBox) SetMaxWidth(width Length) {
	t.maxWidth = width
	t.invalidate()
}

// MaxWidth reports the width constraint; <= 0 means unconstrained.
func (t *TextBox) MaxWidth() Length { return t.maxWidth }

// MinWidth is zero: text can always wrap down to nothing.
func (t *TextBox) MinWidth() Length { return 0 }

// Size is the size of the shaped text under the current constraint.
func (t *TextBox) Size() Vector2 { return t.shape().Size() }

// Width is the current width of the shaped text.
func (t *TextBox) Width() Length { return t.Size().X }

// Height is the current height of the shaped text.
func (t *TextBox) Height() Length { return t.Size().Y }

// Baseline is the distance from the top to the first baseline. Even an
// empty text box has one line and therefore a baseline.
func (t *TextBox) Baseline() (Length, bool) {
	return t.shape().Baseline(), true
}

// NaturalWidth is the shaped width with no constraint applied. The
// current constraint is left untouched.
func (t *TextBox) NaturalWidth() Length {
	if t.maxWidth <= 0 {
		return t.Size().X
	}
	return t.ts.Shape(t.spans(), 0, t.style).Size().X
}

// Draw renders the text with its top-left corner at position. Lines are
// aligned inside the constraint box, or inside the widest line when the
// box is unconstrained; justified soft-wrapped lines stretch to the box
// width.
func (t *TextBox) Draw(s Surface, position Vector2) error {
	shaped := t.shape()
	box := t.maxWidth
	if box <= 0 {
		box = shaped.Size().X
	}
	cursor := position.Y
	for i, line := range shaped.Lines {
		if i > 0 {
			cursor += shaped.Spacing
		}
		x := position.X + line.Indent
		visual := line.Width + line.Indent
		switch t.style.Alignment {
		case AlignCenter:
			x += (box - visual) / 2
		case AlignRight:
			x += box - visual
		}
		var stretch Length
		if t.style.Justify && !line.HardBreak && box > visual {
			stretch = box - line.Indent
		}
		if err := s.DrawText(Vec(x, cursor), line, t.style, t.color, stretch); err != nil {
			return err
		}
		cursor += line.Height
	}
	return nil
}
