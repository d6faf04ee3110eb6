package canvasrenderer

import (
	"fmt"
	"io"

	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/vellum/layout"
	"github.com/ByLCY/vellum/renderer"
)

type documentInfo struct {
	title    string
	subject  string
	keywords string
	author   string
	creator  string
}

// PDFWriter collects pages into a PDF document. The underlying writer
// is created when the first page arrives so that page's dimensions
// become the document default.
type PDFWriter struct {
	w      io.Writer
	writer *pdf.PDF
	info   *documentInfo
	closed bool
}

var _ renderer.DocumentWriter = (*PDFWriter)(nil)

func newPDFWriter(w io.Writer) *PDFWriter {
	return &PDFWriter{w: w}
}

// SetInfo records the document metadata written into the PDF's info
// dictionary.
func (p *PDFWriter) SetInfo(title, subject, keywords, author, creator string) {
	p.info = &documentInfo{
		title:    title,
		subject:  subject,
		keywords: keywords,
		author:   author,
		creator:  creator,
	}
	if p.writer != nil {
		p.applyInfo()
	}
}

func (p *PDFWriter) applyInfo() {
	if p.info == nil {
		return
	}
	p.writer.SetInfo(p.info.title, p.info.subject, p.info.keywords, p.info.author, p.info.creator)
}

// Add appends the page to the document.
func (p *PDFWriter) Add(page *layout.Page) error {
	if p.closed {
		return fmt.Errorf("add page: writer already closed")
	}
	surface, ok := page.Surface().(*pageSurface)
	if !ok {
		return fmt.Errorf("add page: surface %T was not created by this renderer", page.Surface())
	}
	size := page.Size()
	if p.writer == nil {
		p.writer = pdf.New(p.w, size.X.Mm(), size.Y.Mm(), nil)
		p.applyInfo()
	} else {
		p.writer.NewPage(size.X.Mm(), size.Y.Mm())
	}
	surface.canvas.RenderTo(p.writer)
	return nil
}

// Close finalizes the document. Closing a writer that never received a
// page emits a single empty A4 page, since a PDF needs at least one.
func (p *PDFWriter) Close() error {
	if p.closed {
		return nil
	}
	p.closed = true
	if p.writer == nil {
		p.writer = pdf.New(p.w, layout.A4.X.Mm(), layout.A4.Y.Mm(), nil)
		p.applyInfo()
	}
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("finalize PDF: %w", err)
	}
	return nil
}
