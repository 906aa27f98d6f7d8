package extract

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFExtractor_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.pdf")

	_, err := (&PDFExtractor{}).Extract(context.Background(), path)

	var extraction *ExtractionError
	require.ErrorAs(t, err, &extraction)
	assert.Equal(t, "pdf", extraction.FileType)
}

func TestPDFExtractor_NotAPDF(t *testing.T) {
	path := writeTempFile(t, "fake.pdf", "this is not a pdf at all")

	_, err := (&PDFExtractor{}).Extract(context.Background(), path)

	var extraction *ExtractionError
	assert.ErrorAs(t, err, &extraction)
}
