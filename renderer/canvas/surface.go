package canvasrenderer

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/tdewolff/canvas"
	xdraw "golang.org/x/image/draw"

	"github.com/ByLCY/vellum/layout"
)

// hairline is the stroke width used when a caller passes none.
const hairline = 0.2 * layout.Millimeter

// pageSurface draws one page into an in-memory canvas, in millimeters
// with the origin at the top-left corner. The canvas is handed to a
// document writer when the page is added.
type pageSurface struct {
	context *Context
	size    layout.Vector2
	canvas  *canvas.Canvas
	ctx     *canvas.Context
}

var _ layout.Surface = (*pageSurface)(nil)

func newPageSurface(c *Context, size layout.Vector2) *pageSurface {
	s := &pageSurface{context: c, size: size}
	s.reset()
	return s
}

func (s *pageSurface) reset() {
	s.canvas = canvas.New(s.size.X.Mm(), s.size.Y.Mm())
	s.ctx = canvas.NewContext(s.canvas)
	s.ctx.SetCoordSystem(canvas.CartesianIV)
}

// DrawText draws the shaped line with its top-left corner at position.
// When stretch exceeds the line's measured width, the inter-word gaps
// are widened so the drawn line spans exactly stretch.
func (s *pageSurface) DrawText(position layout.Vector2, line layout.ShapedLine, style layout.TextStyle, col layout.Color, stretch layout.Length) error {
	type run struct {
		span  layout.Span
		face  *canvas.FontFace
		width layout.Length
		gaps  int
	}
	runs := make([]run, 0, len(line.Spans))
	var natural layout.Length
	gaps := 0
	for _, span := range line.Spans {
		if span.Text == "" {
			continue
		}
		face, err := s.face(style.Font, span, col)
		if err != nil {
			return err
		}
		r := run{
			span:  span,
			face:  face,
			width: layout.Mm(face.TextWidth(span.Text)),
			gaps:  strings.Count(span.Text, " "),
		}
		runs = append(runs, r)
		natural += r.width
		gaps += r.gaps
	}

	var perGap layout.Length
	if stretch > natural && gaps > 0 {
		perGap = (stretch - natural) / layout.Length(gaps)
	}

	x := position.X
	baseline := position.Y + line.Ascent
	for _, r := range runs {
		advance := r.width + perGap*layout.Length(r.gaps)
		if r.span.Background != nil {
			s.FillRect(layout.RectPosSize(layout.Vec(x, position.Y), layout.Vec(advance, line.Height)), *r.span.Background)
		}
		if perGap > 0 {
			s.drawStretched(r.face, r.span.Text, x, baseline, perGap)
		} else {
			s.ctx.DrawText(x.Mm(), baseline.Mm(), canvas.NewTextLine(r.face, r.span.Text, canvas.Left))
		}
		x += advance
	}
	return nil
}

func (s *pageSurface) face(font layout.FontSpec, span layout.Span, col layout.Color) (*canvas.FontFace, error) {
	spec := font
	if span.Bold {
		spec.Weight = layout.WeightBold
	}
	if span.Italic {
		spec.Style = layout.StyleItalic
	}
	ink := col
	if span.Foreground != nil {
		ink = *span.Foreground
	}
	var deco []canvas.FontDecorator
	if span.Underline {
		deco = append(deco, canvas.FontUnderline)
	}
	face, err := s.context.fonts.Face(spec, toCanvasColor(ink), deco...)
	if err != nil {
		return nil, fmt.Errorf("resolve font %s: %w", spec.Family, err)
	}
	return face, nil
}

// drawStretched draws the text word by word, widening every space by
// perGap.
func (s *pageSurface) drawStretched(face *canvas.FontFace, text string, x, baseline, perGap layout.Length) {
	for _, seg := range splitSpaceRuns(text) {
		w := layout.Mm(face.TextWidth(seg))
		if seg[0] == ' ' {
			x += w + perGap*layout.Length(len(seg))
			continue
		}
		s.ctx.DrawText(x.Mm(), baseline.Mm(), canvas.NewTextLine(face, seg, canvas.Left))
		x += w
	}
}

// splitSpaceRuns splits text into alternating runs of spaces and
// non-spaces.
func splitSpaceRuns(text string) []string {
	var segs []string
	start := 0
	for i := 0; i < len(text); i++ {
		if (text[i] == ' ') != (text[start] == ' ') {
			segs = append(segs, text[start:i])
			start = i
		}
	}
	if start < len(text) {
		segs = append(segs, text[start:])
	}
	return segs
}

func (s *pageSurface) FillRect(r layout.Rectangle, col layout.Color) {
	size := r.Size()
	if size.X <= 0 || size.Y <= 0 {
		return
	}
	s.ctx.SetFillColor(toCanvasColor(col))
	s.ctx.SetStrokeColor(color.RGBA{0, 0, 0, 0})
	s.ctx.DrawPath(r.Min.X.Mm(), r.Min.Y.Mm(), canvas.Rectangle(size.X.Mm(), size.Y.Mm()))
}

func (s *pageSurface) StrokeLine(from, to layout.Vector2, width layout.Length, col layout.Color) {
	if width <= 0 {
		width = hairline
	}
	s.ctx.SetFillColor(color.RGBA{0, 0, 0, 0})
	s.ctx.SetStrokeColor(toCanvasColor(col))
	s.ctx.SetStrokeWidth(width.Mm())
	p := &canvas.Path{}
	p.MoveTo(0, 0)
	p.LineTo((to.X - from.X).Mm(), (to.Y - from.Y).Mm())
	s.ctx.DrawPath(from.X.Mm(), from.Y.Mm(), p)
}

// DrawImage blits img scaled to size. The canvas backend only scales
// uniformly, so when the target aspect ratio deviates from the image's
// the pixels are resampled first.
func (s *pageSurface) DrawImage(position layout.Vector2, img image.Image, size layout.Vector2) error {
	if img == nil {
		return fmt.Errorf("draw image: nil image")
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return fmt.Errorf("draw image: empty image")
	}
	if size.X <= 0 || size.Y <= 0 {
		return fmt.Errorf("draw image: target size %v is empty", size)
	}
	imageAspect := float64(bounds.Dx()) / float64(bounds.Dy())
	targetAspect := float64(size.X / size.Y)
	if math.Abs(imageAspect-targetAspect) > 1e-6 {
		height := int(math.Round(float64(bounds.Dx()) / targetAspect))
		if height < 1 {
			height = 1
		}
		img = resample(img, bounds.Dx(), height)
		bounds = img.Bounds()
	}
	dpmm := float64(bounds.Dx()) / size.X.Mm()
	s.ctx.DrawImage(position.X.Mm(), position.Y.Mm(), img, canvas.DPMM(dpmm))
	return nil
}

func resample(img image.Image, w, h int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), xdraw.Over, nil)
	return dst
}

// Clear drops everything drawn so far and starts a fresh canvas.
func (s *pageSurface) Clear() { s.reset() }

func toCanvasColor(c layout.Color) color.Color {
	return canvas.RGBA(c.R, c.G, c.B, float64(c.A)/255.0)
}
