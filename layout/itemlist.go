package layout

// ItemList stacks drawables vertically, each preceded by a bullet. The
// bullet column is as wide as the bullet glyph plus the bullet spacing;
// width constraints forwarded to the items account for it.
type ItemList struct {
	bullet        Drawable
	items         []DrawableMut
	bulletWidth   Length
	bulletSpacing Length
	maxWidth      Length

	// running maxima over the added items
	minTextWidth     Length
	naturalTextWidth Length
}

var _ DrawableMut = (*ItemList)(nil)

// NewItemList creates an empty list whose bullet is a "•" in the given
// font. The bullet spacing defaults to the measured bullet width.
func NewItemList(ts Typesetter, bulletFont FontSpec) *ItemList {
	bullet := NewTextBox(ts).SetText("•").SetFont(bulletFont)
	width := bullet.Width()
	return &ItemList{
		bullet:        bullet,
		bulletWidth:   width,
		bulletSpacing: width,
	}
}

// BulletWidth is the measured width of the bullet glyph.
func (l *ItemList) BulletWidth() Length { return l.bulletWidth }

// BulletSpacing is the gap between the bullet and the item content.
func (l *ItemList) BulletSpacing() Length { return l.bulletSpacing }

// SetBulletSpacing changes the gap between bullet and items and
// re-forwards the width constraint.
func (l *ItemList) SetBulletSpacing(spacing Length) *ItemList {
	l.bulletSpacing = spacing
	if l.maxWidth > 0 {
		l.SetMaxWidth(l.maxWidth)
	}
	return l
}

// indent is the full width of the bullet column.
func (l *ItemList) indent() Length { return l.bulletWidth + l.bulletSpacing }

// AddItem appends an item, applying the current width constraint to it.
func (l *ItemList) AddItem(item DrawableMut) *ItemList {
	if l.maxWidth > 0 {
		item.SetMaxWidth(l.maxWidth - l.indent())
	}
	l.minTextWidth = l.minTextWidth.Max(item.MinWidth())
	l.naturalTextWidth = l.naturalTextWidth.Max(item.NaturalWidth())
	l.items = append(l.items, item)
	return l
}

// Items returns the items in insertion order.
func (l *ItemList) Items() []DrawableMut { return l.items }

// IsEmpty reports whether the list has no items.
func (l *ItemList) IsEmpty() bool { return len(l.items) == 0 }

// Clear removes all items.
func (l *ItemList) Clear() {
	l.items = nil
	l.minTextWidth = 0
	l.naturalTextWidth = 0
}

// SetMaxWidth constrains the whole list; items receive the constraint
// minus the bullet column, unclamped, so a column wider than the limit
// leaves the items unconstrained.
func (l *ItemList) SetMaxWidth(width Length) {
	l.maxWidth = width
	forward := Length(0)
	if width > 0 {
		forward = width - l.indent()
	}
	for _, item := range l.items {
		item.SetMaxWidth(forward)
	}
}

// MaxWidth reports the width constraint; <= 0 means unconstrained.
func (l *ItemList) MaxWidth() Length { return l.maxWidth }

// MinWidth is the widest item minimum plus the bullet column, or zero
// for an empty list.
func (l *ItemList) MinWidth() Length {
	if l.IsEmpty() {
		return 0
	}
	return l.minTextWidth + l.indent()
}

// NaturalWidth is the widest item natural width plus the bullet column,
// or zero for an empty list.
func (l *ItemList) NaturalWidth() Length {
	if l.IsEmpty() {
		return 0
	}
	return l.naturalTextWidth + l.indent()
}

// Size is the bullet column plus the widest item by the summed item
// heights.
func (l *ItemList) Size() Vector2 {
	if l.IsEmpty() {
		return Vector2{}
	}
	var w, h Length
	for _, item := range l.items {
		size := item.Size()
		w = w.Max(size.X)
		h += size.Y
	}
	return Vec(w+l.indent(), h)
}

// Baseline is the first item's baseline, if it has one.
func (l *ItemList) Baseline() (Length, bool) {
	if l.IsEmpty() {
		return 0, false
	}
	return l.items[0].Baseline()
}

// DrawBullet draws just the bullet glyph at position.
func (l *ItemList) DrawBullet(s Surface, position Vector2) error {
	return l.bullet.Draw(s, position)
}

// DrawItem draws the bullet and the item at the given index, the item
// shifted right past the bullet column.
func (l *ItemList) DrawItem(s Surface, position Vector2, index int) error {
	if err := l.DrawBullet(s, position); err != nil {
		return err
	}
	return l.items[index].Draw(s, position.Add(Vec(l.indent(), 0)))
}

// Draw renders the items top to bottom.
func (l *ItemList) Draw(s Surface, position Vector2) error {
	cursor := position
	for i, item := range l.items {
		if err := l.DrawItem(s, cursor, i); err != nil {
			return err
		}
		cursor.Y += item.Size().Y
	}
	return nil
}
