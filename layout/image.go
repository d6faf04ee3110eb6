package layout

import "image"

// ScaleMode controls how an image with both a width and a height
// override is scaled.
type ScaleMode int

const (
	// ScaleFit scales uniformly so the image fits inside the overrides.
	ScaleFit ScaleMode = iota

	// ScaleStretch matches the overrides exactly, ignoring the aspect
	// ratio.
	ScaleStretch
)

// Image draws a raster image. Pixels map to points unless a width or
// height override rescales the image.
type Image struct {
	img    image.Image
	width  Length
	height Length
	mode   ScaleMode
}

var _ DrawableMut = (*Image)(nil)

// NewImage wraps an image for drawing at one point per pixel.
func NewImage(img image.Image) *Image {
	return &Image{img: img}
}

// Image returns the wrapped image.
func (i *Image) Image() image.Image { return i.img }

// SetWidth overrides the drawn width; <= 0 removes the override.
func (i *Image) SetWidth(width Length) *Image {
	i.width = width
	return i
}

// SetHeight overrides the drawn height; <= 0 removes the override.
func (i *Image) SetHeight(height Length) *Image {
	i.height = height
	return i
}

// SetScaleMode selects how both overrides together scale the image.
func (i *Image) SetScaleMode(mode ScaleMode) *Image {
	i.mode = mode
	return i
}

// Fit selects uniform scaling.
func (i *Image) Fit() *Image { return i.SetScaleMode(ScaleFit) }

// Stretch selects exact scaling.
func (i *Image) Stretch() *Image { return i.SetScaleMode(ScaleStretch) }

// ImageSize is the pixel size of the image, one point per pixel.
func (i *Image) ImageSize() Vector2 {
	bounds := i.img.Bounds()
	return Vec(Pt(float64(bounds.Dx())), Pt(float64(bounds.Dy())))
}

// Size is the drawn size. A single override scales the image
// proportionally; with both set, ScaleStretch matches them exactly
// while ScaleFit picks the smaller uniform scale.
func (i *Image) Size() Vector2 {
	imageSize := i.ImageSize()
	switch {
	case i.width <= 0 && i.height <= 0:
		return imageSize
	case i.height <= 0:
		return imageSize.Mul(float64(i.width / imageSize.X))
	case i.width <= 0:
		return imageSize.Mul(float64(i.height / imageSize.Y))
	}
	if i.mode == ScaleStretch {
		return Vec(i.width, i.height)
	}
	scale := (i.width / imageSize.X).Min(i.height / imageSize.Y)
	return imageSize.Mul(float64(scale))
}

func (i *Image) MinWidth() Length { return 0 }

// MaxWidth reports the width override.
func (i *Image) MaxWidth() Length { return i.width }

// SetMaxWidth overrides the drawn width, like SetWidth.
func (i *Image) SetMaxWidth(width Length) { i.width = width }

// NaturalWidth is the pixel width in points.
func (i *Image) NaturalWidth() Length {
	return Pt(float64(i.img.Bounds().Dx()))
}

// Baseline reports no baseline; images anchor by their top edge.
func (i *Image) Baseline() (Length, bool) { return 0, false }

// Draw renders the image at position, scaled to the drawn size.
func (i *Image) Draw(s Surface, position Vector2) error {
	return s.DrawImage(position, i.img, i.Size())
}
