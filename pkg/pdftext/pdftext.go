// Package pdftext extracts per-page plain text from gazette PDF files. Text
// extraction quality and column order are this layer's contract; everything
// downstream treats the output as opaque page blobs.
package pdftext

import (
	"fmt"
	"strings"

	pdflib "github.com/ledongthuc/pdf"
)

// Pages returns the plain text of each page of the PDF at path, in page
// order. Pages without extractable text are skipped; only an unreadable or
// corrupt file is an error.
func Pages(path string) ([]string, error) {
	f, reader, err := pdflib.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	var pages []string
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		pages = append(pages, text)
	}
	return pages, nil
}
