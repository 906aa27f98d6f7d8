package extract

import (
	"context"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor pulls the text layer out of a PDF. Pages that fail to decode
// are skipped; a fully scanned document simply yields too little text, which
// the caller turns into the OCR offer. No plain-text fallback exists for
// PDFs — a broken file is fatal.
type PDFExtractor struct{}

func (e *PDFExtractor) SupportedTypes() []string { return []string{"pdf"} }

func (e *PDFExtractor) Extract(ctx context.Context, path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &ExtractionError{FileType: "pdf", Message: "opening PDF", Cause: err}
	}
	defer func() { _ = f.Close() }()

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
