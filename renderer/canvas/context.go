// Package canvasrenderer typesets and rasterizes pages through
// github.com/tdewolff/canvas.
package canvasrenderer

import (
	"fmt"
	"io"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/vellum/fonts"
	"github.com/ByLCY/vellum/layout"
)

// Options configures a rendering context.
type Options struct {
	// BaseDir anchors relative font paths.
	BaseDir string

	// Fonts registers font data by family name, loaded on first use.
	// Each entry provides the family's regular face; further weights
	// and slants can be registered on the context's catalog.
	Fonts map[string]fonts.Resource

	// DefaultFamily resolves specs without a family and serves as the
	// last fallback; empty means serif.
	DefaultFamily string
}

// Context shapes text and creates pages and document writers. It
// implements layout.Typesetter.
type Context struct {
	fonts *fonts.Catalog
}

var _ layout.Typesetter = (*Context)(nil)

// NewContext validates the options and prepares the font catalog.
// Font data is not loaded until a face is first requested.
func NewContext(opts Options) (*Context, error) {
	catalog := fonts.NewCatalog(opts.BaseDir, opts.DefaultFamily)
	for name, res := range opts.Fonts {
		if name == "" {
			return nil, fmt.Errorf("font resource registered without a family name")
		}
		if len(res.Bytes) == 0 && res.Path == "" {
			return nil, fmt.Errorf("font %s: resource has neither bytes nor a path", name)
		}
		catalog.Register(name, layout.WeightNormal, layout.StyleNormal, res)
	}
	return &Context{fonts: catalog}, nil
}

// Fonts exposes the font catalog, for registering further weights and
// slants.
func (c *Context) Fonts() *fonts.Catalog { return c.fonts }

// Page creates an A4 page drawing through this context.
func (c *Context) Page() *layout.Page {
	return c.PageSized(layout.A4)
}

// PageSized creates a page of the given size.
func (c *Context) PageSized(size layout.Vector2) *layout.Page {
	return layout.NewPage(newPageSurface(c, size), size)
}

// PDF creates a document writer that emits the added pages as PDF.
func (c *Context) PDF(w io.Writer) *PDFWriter {
	return newPDFWriter(w)
}

// Shape lays the spans out as wrapped lines. Shaping itself cannot
// fail: when no font face resolves, rough estimates based on the font
// size stand in and the error surfaces once the text is drawn.
func (c *Context) Shape(spans []layout.Span, width layout.Length, style layout.TextStyle) *layout.ShapedText {
	return wrapSpans(spans, width, style, c.newMeasurer(style))
}

// faceMeasurer measures text through canvas font faces, falling back
// to size-based estimates when a face cannot be resolved.
type faceMeasurer struct {
	context *Context
	font    layout.FontSpec
	base    *canvas.FontFace
	variant map[spanVariant]*canvas.FontFace
}

type spanVariant struct {
	bold   bool
	italic bool
}

func (c *Context) newMeasurer(style layout.TextStyle) *faceMeasurer {
	m := &faceMeasurer{
		context: c,
		font:    style.Font,
		variant: make(map[spanVariant]*canvas.FontFace),
	}
	if face, err := c.fonts.Face(style.Font, canvas.Black); err == nil {
		m.base = face
	}
	return m
}

func (m *faceMeasurer) faceFor(span layout.Span) *canvas.FontFace {
	if !span.Bold && !span.Italic {
		return m.base
	}
	key := spanVariant{bold: span.Bold, italic: span.Italic}
	if face, ok := m.variant[key]; ok {
		return face
	}
	spec := m.font
	if span.Bold {
		spec.Weight = layout.WeightBold
	}
	if span.Italic {
		spec.Style = layout.StyleItalic
	}
	face, err := m.context.fonts.Face(spec, canvas.Black)
	if err != nil {
		face = m.base
	}
	m.variant[key] = face
	return face
}

func (m *faceMeasurer) width(span layout.Span, text string) layout.Length {
	if face := m.faceFor(span); face != nil {
		return layout.Mm(face.TextWidth(text))
	}
	return estimateWidth(text, m.font.Size)
}

func (m *faceMeasurer) lineMetrics() (height, ascent layout.Length) {
	if m.base != nil {
		metrics := m.base.Metrics()
		return layout.Mm(metrics.LineHeight), layout.Mm(metrics.Ascent)
	}
	return estimateLineMetrics(m.font.Size)
}

// estimateWidth approximates text extents at half the font size per
// rune, enough to keep layout code running without any usable font.
func estimateWidth(text string, size layout.Length) layout.Length {
	return layout.Length(len([]rune(text))) * size / 2
}

func estimateLineMetrics(size layout.Length) (height, ascent layout.Length) {
	return size * 6 / 5, size * 4 / 5
}
