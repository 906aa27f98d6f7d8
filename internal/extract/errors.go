package extract

import "fmt"

// UnsupportedTypeError signals a declared file type the registry cannot
// handle. Fatal to the parse attempt; the hint tells the user what to do.
type UnsupportedTypeError struct {
	FileType string
	Hint     string
}

func (e *UnsupportedTypeError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("unsupported file type %q: %s", e.FileType, e.Hint)
	}
	return fmt.Sprintf("unsupported file type %q: please use a PDF, DOCX, or TXT file", e.FileType)
}

// InsufficientTextError signals that extraction succeeded mechanically but
// produced too little text to parse. For PDFs this usually means a scanned
// document with no selectable text, which is the trigger for the OCR offer.
type InsufficientTextError struct {
	Length int
}

func (e *InsufficientTextError) Error() string {
	return fmt.Sprintf("extracted only %d characters: the document likely has no selectable text (scanned image?)", e.Length)
}

// ExtractionError wraps a failure inside a format decoder.
type ExtractionError struct {
	FileType string
	Message  string
	Cause    error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s extraction failed: %s: %v", e.FileType, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s extraction failed: %s", e.FileType, e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// OCRInsufficientTextError signals that the OCR fallback also came back
// below the usable-text threshold.
type OCRInsufficientTextError struct {
	Length int
}

func (e *OCRInsufficientTextError) Error() string {
	return fmt.Sprintf("OCR recovered only %d characters: try a clearer scan or a text-based PDF, DOCX, or TXT export", e.Length)
}
