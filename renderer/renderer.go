// Package renderer defines how finished pages leave the program.
package renderer

import "github.com/ByLCY/vellum/layout"

// DocumentWriter consumes pages one by one and writes them into an
// output document such as a PDF.
type DocumentWriter interface {
	// Add appends a page to the document.
	Add(page *layout.Page) error

	// Close finalizes the document. No pages may be added afterwards.
	Close() error
}
