package layout

// A4 is the portrait A4 paper size.
var A4 = Vec(Mm(210), Mm(297))

// Page pairs a drawing surface with a paper size and text margins. The
// margins only affect the text area helpers; drawing positions stay in
// absolute page coordinates.
type Page struct {
	surface Surface
	size    Vector2
	margins Margins
}

// NewPage wraps a surface of the given size with 30mm vertical and
// 20mm horizontal margins.
func NewPage(surface Surface, size Vector2) *Page {
	return &Page{
		surface: surface,
		size:    size,
		margins: MarginsVH(Mm(30), Mm(20)),
	}
}

// Surface returns the page's drawing surface.
func (p *Page) Surface() Surface { return p.surface }

// Size returns the paper size.
func (p *Page) Size() Vector2 { return p.size }

// Margins returns the current text margins.
func (p *Page) Margins() Margins { return p.margins }

// SetMargins replaces all four margins.
func (p *Page) SetMargins(m Margins) *Page {
	p.margins = m
	return p
}

// SetVerticalMargins sets the top and bottom margin.
func (p *Page) SetVerticalMargins(value Length) *Page {
	p.margins.Top = value
	p.margins.Bottom = value
	return p
}

// SetHorizontalMargins sets the left and right margin.
func (p *Page) SetHorizontalMargins(value Length) *Page {
	p.margins.Left = value
	p.margins.Right = value
	return p
}

func (p *Page) SetTopMargin(value Length) *Page {
	p.margins.Top = value
	return p
}

func (p *Page) SetBottomMargin(value Length) *Page {
	p.margins.Bottom = value
	return p
}

func (p *Page) SetLeftMargin(value Length) *Page {
	p.margins.Left = value
	return p
}

func (p *Page) SetRightMargin(value Length) *Page {
	p.margins.Right = value
	return p
}

// TextArea is the page rectangle inset by the margins.
func (p *Page) TextArea() Rectangle {
	return Rect(Vector2{}, p.size).Shrink(p.margins)
}

// TextWidth is the usable width between the horizontal margins.
func (p *Page) TextWidth() Length {
	return p.size.X - p.margins.TotalHorizontal()
}

// TextHeight is the usable height between the vertical margins.
func (p *Page) TextHeight() Length {
	return p.size.Y - p.margins.TotalVertical()
}

// Draw renders a drawable onto the page at an absolute position.
func (p *Page) Draw(d Drawable, position Vector2) error {
	return d.Draw(p.surface, position)
}

// Clear erases everything drawn on the page so far.
func (p *Page) Clear() {
	p.surface.Clear()
}
