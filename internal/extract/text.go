package extract

import (
	"context"
	"os"
)

// TXTExtractor passes plain text files through unchanged.
type TXTExtractor struct{}

func (e *TXTExtractor) SupportedTypes() []string { return []string{"txt", "text"} }

func (e *TXTExtractor) Extract(ctx context.Context, path string) (string, error) {
	data, err := readFile(path)
	if err != nil {
		return "", &ExtractionError{FileType: "txt", Message: "reading file", Cause: err}
	}
	return string(data), nil
}

func readFile(path string) ([]byte, error) {
	return os.ReadFile(path)
}
