package layout

// AnchorX picks the horizontal reference point of a drawable.
type AnchorX int

const (
	AnchorLeft AnchorX = iota
	AnchorCenterX
	AnchorRight
)

// AnchorY picks the vertical reference point of a drawable.
type AnchorY int

const (
	AnchorTop AnchorY = iota
	AnchorBaseline
	AnchorCenterY
	AnchorBottom
)

// Offset wraps a drawable so that a chosen anchor point of it lands at
// the draw position, shifted by a fixed offset. Measurements are passed
// through untouched; only drawing moves.
type Offset struct {
	inner   Drawable
	offset  Vector2
	anchorX AnchorX
	anchorY AnchorY
}

var _ DrawableMut = (*Offset)(nil)

// NewOffset wraps inner with the given offset and (left, top) anchors.
func NewOffset(inner Drawable, offset Vector2) *Offset {
	return &Offset{inner: inner, offset: offset}
}

// Inner returns the wrapped drawable.
func (o *Offset) Inner() Drawable { return o.inner }

// Offset returns the current offset.
func (o *Offset) Offset() Vector2 { return o.offset }

// SetOffset replaces the offset.
func (o *Offset) SetOffset(offset Vector2) *Offset {
	o.offset = offset
	return o
}

// AddOffset shifts the current offset by delta.
func (o *Offset) AddOffset(delta Vector2) *Offset {
	o.offset = o.offset.Add(delta)
	return o
}

// SubOffset shifts the current offset back by delta.
func (o *Offset) SubOffset(delta Vector2) *Offset {
	o.offset = o.offset.Sub(delta)
	return o
}

// SetAnchorX sets the horizontal anchor.
func (o *Offset) SetAnchorX(a AnchorX) *Offset {
	o.anchorX = a
	return o
}

// SetAnchorY sets the vertical anchor.
func (o *Offset) SetAnchorY(a AnchorY) *Offset {
	o.anchorY = a
	return o
}

// AnchorLeft anchors the left edge.
func (o *Offset) AnchorLeft() *Offset { return o.SetAnchorX(AnchorLeft) }

// AnchorCenterX anchors the horizontal center.
func (o *Offset) AnchorCenterX() *Offset { return o.SetAnchorX(AnchorCenterX) }

// AnchorRight anchors the right edge.
func (o *Offset) AnchorRight() *Offset { return o.SetAnchorX(AnchorRight) }

// AnchorTop anchors the top edge.
func (o *Offset) AnchorTop() *Offset { return o.SetAnchorY(AnchorTop) }

// AnchorBaseline anchors the first text baseline. Drawables without a
// baseline fall back to the top edge.
func (o *Offset) AnchorBaseline() *Offset { return o.SetAnchorY(AnchorBaseline) }

// AnchorCenterY anchors the vertical center.
func (o *Offset) AnchorCenterY() *Offset { return o.SetAnchorY(AnchorCenterY) }

// AnchorBottom anchors the bottom edge.
func (o *Offset) AnchorBottom() *Offset { return o.SetAnchorY(AnchorBottom) }

// Draw draws the wrapped drawable so that its anchor point lands at
// position plus the offset.
func (o *Offset) Draw(s Surface, position Vector2) error {
	position = position.Add(o.offset)
	if o.anchorX == AnchorLeft && o.anchorY == AnchorTop {
		return o.inner.Draw(s, position)
	}

	size := o.inner.Size()
	var align Vector2
	switch o.anchorX {
	case AnchorCenterX:
		align.X = size.X / 2
	case AnchorRight:
		align.X = size.X
	}
	switch o.anchorY {
	case AnchorBaseline:
		if base, ok := o.inner.Baseline(); ok {
			align.Y = base
		}
	case AnchorCenterY:
		align.Y = size.Y / 2
	case AnchorBottom:
		align.Y = size.Y
	}
	return o.inner.Draw(s, position.Sub(align))
}

func (o *Offset) MinWidth() Length { return o.inner.MinWidth() }

func (o *Offset) MaxWidth() Length { return o.inner.MaxWidth() }

func (o *Offset) Size() Vector2 { return o.inner.Size() }

func (o *Offset) Baseline() (Length, bool) { return o.inner.Baseline() }

func (o *Offset) NaturalWidth() Length { return o.inner.NaturalWidth() }

// SetMaxWidth forwards to the wrapped drawable when it is mutable.
func (o *Offset) SetMaxWidth(width Length) {
	if inner, ok := o.inner.(DrawableMut); ok {
		inner.SetMaxWidth(width)
	}
}
