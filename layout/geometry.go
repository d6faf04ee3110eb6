package layout

import "math"

// Vector2 is a 2D point or size with length-typed components.
type Vector2 struct {
	X Length
	Y Length
}

// Vec is shorthand for Vector2{X: x, Y: y}.
func Vec(x, y Length) Vector2 { return Vector2{X: x, Y: y} }

// Add returns the component-wise sum of v and o.
func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }

// Sub returns the component-wise difference of v and o.
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }

// Neg returns the vector pointing the opposite way.
func (v Vector2) Neg() Vector2 { return Vector2{-v.X, -v.Y} }

// Mul scales both components by f.
func (v Vector2) Mul(f float64) Vector2 {
	return Vector2{Length(float64(v.X) * f), Length(float64(v.Y) * f)}
}

// Div divides both components by f.
func (v Vector2) Div(f float64) Vector2 {
	return Vector2{Length(float64(v.X) / f), Length(float64(v.Y) / f)}
}

// Norm is the euclidean length of the vector.
func (v Vector2) Norm() Length {
	return Length(math.Hypot(float64(v.X), float64(v.Y)))
}

// Rectangle is an axis-aligned rectangle described by its top-left and
// bottom-right corners.
type Rectangle struct {
	Min Vector2
	Max Vector2
}

// Rect constructs a rectangle from two corners.
func Rect(min, max Vector2) Rectangle { return Rectangle{Min: min, Max: max} }

// RectPosSize constructs a rectangle from a top-left corner and a size.
func RectPosSize(pos, size Vector2) Rectangle {
	return Rectangle{Min: pos, Max: pos.Add(size)}
}

// RectXYWH constructs a rectangle from top-left coordinates and extents.
func RectXYWH(x, y, w, h Length) Rectangle {
	return Rectangle{Min: Vec(x, y), Max: Vec(x+w, y+h)}
}

// Size returns the extents of the rectangle.
func (r Rectangle) Size() Vector2 { return r.Max.Sub(r.Min) }

// Shrink insets the rectangle by the given margins.
func (r Rectangle) Shrink(m Margins) Rectangle {
	return Rectangle{
		Min: Vec(r.Min.X+m.Left, r.Min.Y+m.Top),
		Max: Vec(r.Max.X-m.Right, r.Max.Y-m.Bottom),
	}
}

// Grow outsets the rectangle by the given margins. It is the inverse of
// Shrink.
func (r Rectangle) Grow(m Margins) Rectangle {
	return Rectangle{
		Min: Vec(r.Min.X-m.Left, r.Min.Y-m.Top),
		Max: Vec(r.Max.X+m.Right, r.Max.Y+m.Bottom),
	}
}

// Margins are per-side insets around a rectangle, in page units.
type Margins struct {
	Top    Length
	Bottom Length
	Left   Length
	Right  Length
}

// NewMargins builds margins from all four sides.
func NewMargins(top, bottom, left, right Length) Margins {
	return Margins{Top: top, Bottom: bottom, Left: left, Right: right}
}

// MarginsVH builds margins with one vertical and one horizontal inset.
func MarginsVH(vertical, horizontal Length) Margins {
	return Margins{Top: vertical, Bottom: vertical, Left: horizontal, Right: horizontal}
}

// MarginsUniform applies the same inset on every side.
func MarginsUniform(all Length) Margins {
	return Margins{Top: all, Bottom: all, Left: all, Right: all}
}

// TotalVertical is the summed top and bottom inset.
func (m Margins) TotalVertical() Length { return m.Top + m.Bottom }

// TotalHorizontal is the summed left and right inset.
func (m Margins) TotalHorizontal() Length { return m.Left + m.Right }
