// Package extract converts resume files into raw text, the sole input of the
// parsing pipeline. Format decoders are registered per declared type; OCR is
// an injected capability tried only behind an explicit confirmation gate.
package extract

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// minUsableRunes is the threshold below which extracted text is considered
// unusable and the OCR offer kicks in.
const minUsableRunes = 20

// Extractor decodes one file format into plain text.
type Extractor interface {
	Extract(ctx context.Context, path string) (string, error)
	SupportedTypes() []string
}

// OCREngine recognizes text from a rendered page image. External capability,
// injected; the core never depends on a concrete implementation.
type OCREngine interface {
	RecognizeText(ctx context.Context, image []byte, language string) (string, error)
}

// PageRenderer rasterizes a document's pages for the OCR path.
type PageRenderer interface {
	RenderPages(ctx context.Context, path string) ([][]byte, error)
}

// ConfirmFunc is the gate asked before the expensive OCR fallback runs.
type ConfirmFunc func(reason string) bool

// Registry maps declared file types to their extractors.
type Registry struct {
	extractors map[string]Extractor
}

// NewRegistry returns a registry with the built-in pdf, docx, and txt
// extractors registered.
func NewRegistry() *Registry {
	r := &Registry{extractors: make(map[string]Extractor)}
	for _, e := range []Extractor{&PDFExtractor{}, &DOCXExtractor{}, &TXTExtractor{}} {
		for _, t := range e.SupportedTypes() {
			r.extractors[t] = e
		}
	}
	return r
}

// Register adds or replaces the extractor for a file type.
func (r *Registry) Register(fileType string, e Extractor) {
	r.extractors[strings.ToLower(fileType)] = e
}

// Get resolves the extractor for a declared type. Legacy ".doc" is an
// explicit unsupported case with a conversion hint, never attempted.
func (r *Registry) Get(fileType string) (Extractor, error) {
	fileType = strings.ToLower(strings.TrimPrefix(fileType, "."))
	if fileType == "doc" {
		return nil, &UnsupportedTypeError{
			FileType: "doc",
			Hint:     "legacy Word documents are not supported; convert to PDF, DOCX, or TXT first",
		}
	}
	e, ok := r.extractors[fileType]
	if !ok {
		return nil, &UnsupportedTypeError{FileType: fileType}
	}
	return e, nil
}

// DetectType derives the declared file type from a file name's extension.
func DetectType(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

// Options carries the injected boundary capabilities for ExtractText.
// Zero value means native extraction only, no OCR path.
type Options struct {
	OCR      OCREngine
	Renderer PageRenderer
	Confirm  ConfirmFunc
	Language string
}

// ExtractText runs the ordered extraction strategy chain for one file:
// native decoding first, then — only when the failure looks like a scanned
// document, an OCR engine is wired in, and the confirmation gate agrees —
// per-page OCR. All-or-nothing: a failed chain yields no partial text.
func ExtractText(ctx context.Context, reg *Registry, path, declaredType string, opts Options) (string, error) {
	extractor, err := reg.Get(declaredType)
	if err != nil {
		return "", err
	}

	text, err := extractor.Extract(ctx, path)
	if err == nil {
		if length := len([]rune(strings.TrimSpace(text))); length < minUsableRunes {
			err = &InsufficientTextError{Length: length}
		} else {
			return text, nil
		}
	}

	if !isScannedFailure(err) || opts.OCR == nil || opts.Renderer == nil {
		return "", err
	}
	if opts.Confirm == nil || !opts.Confirm("the document appears to be scanned; optical character recognition is slow and may be inaccurate") {
		return "", err
	}

	return recognizePages(ctx, path, opts)
}

// recognizePages renders every page and feeds it to the OCR engine, pages in
// sequence. The combined output must still clear the usable-text threshold.
func recognizePages(ctx context.Context, path string, opts Options) (string, error) {
	pages, err := opts.Renderer.RenderPages(ctx, path)
	if err != nil {
		return "", &ExtractionError{FileType: "pdf", Message: "rendering pages for OCR", Cause: err}
	}

	var sb strings.Builder
	for i, page := range pages {
		text, err := opts.OCR.RecognizeText(ctx, page, opts.Language)
		if err != nil {
			return "", &ExtractionError{FileType: "pdf", Message: fmt.Sprintf("OCR failed on page %d", i+1), Cause: err}
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	combined := sb.String()
	if length := len([]rune(strings.TrimSpace(combined))); length < minUsableRunes {
		return "", &OCRInsufficientTextError{Length: length}
	}
	return combined, nil
}

// isScannedFailure matches the failure signature that justifies offering
// OCR: the typed insufficient-text error, or a decoder message mentioning
// missing selectable text.
func isScannedFailure(err error) bool {
	var insufficient *InsufficientTextError
	if errors.As(err, &insufficient) {
		return true
	}
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "no selectable text") || strings.Contains(msg, "scanned")
}
