package extract

import (
	"archive/zip"
	"context"
	"encoding/xml"
	"io"
	"strings"
	"unicode/utf8"
)

// DOCXExtractor reads the main document part of an OOXML archive and
// flattens its paragraphs into lines. When the file is not a valid archive,
// one plain-text fallback is attempted before the failure surfaces; some
// exporters mislabel text files as .docx.
type DOCXExtractor struct{}

func (e *DOCXExtractor) SupportedTypes() []string { return []string{"docx"} }

func (e *DOCXExtractor) Extract(ctx context.Context, path string) (string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		if text, ok := readAsPlainText(path); ok {
			return text, nil
		}
		return "", &ExtractionError{FileType: "docx", Message: "opening DOCX archive", Cause: err}
	}
	defer func() { _ = r.Close() }()

	var docFile *zip.File
	for _, f := range r.File {
		if f.Name == "word/document.xml" {
			docFile = f
			break
		}
	}
	if docFile == nil {
		return "", &ExtractionError{FileType: "docx", Message: "word/document.xml not found in archive"}
	}

	rc, err := docFile.Open()
	if err != nil {
		return "", &ExtractionError{FileType: "docx", Message: "opening document.xml", Cause: err}
	}
	defer func() { _ = rc.Close() }()

	text, err := flattenDocumentXML(rc)
	if err != nil {
		return "", &ExtractionError{FileType: "docx", Message: "parsing document.xml", Cause: err}
	}
	return text, nil
}

// flattenDocumentXML streams through the document XML collecting the text
// runs (w:t), emitting a newline at each paragraph end (w:p) and a space at
// each tab (w:tab).
func flattenDocumentXML(r io.Reader) (string, error) {
	decoder := xml.NewDecoder(r)

	var sb strings.Builder
	inText := false
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}

		switch t := token.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "tab":
				sb.WriteString(" ")
			case "br":
				sb.WriteString("\n")
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				sb.WriteString("\n")
			}
		case xml.CharData:
			if inText {
				sb.Write(t)
			}
		}
	}

	return sb.String(), nil
}

// readAsPlainText reports whether the file content passes for text and
// returns it when it does.
func readAsPlainText(path string) (string, bool) {
	data, err := readFile(path)
	if err != nil {
		return "", false
	}
	if !utf8.Valid(data) {
		return "", false
	}
	text := string(data)
	if strings.TrimSpace(text) == "" {
		return "", false
	}
	return text, true
}
