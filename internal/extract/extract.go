// Package extract turns uploaded documents into plain text for prompt
// context augmentation.
package extract

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	apierrors "github.com/diogo/docchat/internal/errors"
)

// Extractor produces the plain-text content of an uploaded document.
type Extractor interface {
	Extract(data []byte, fileName string) (string, error)
}

// SupportedExtensions returns the file extensions docchat can ingest
func SupportedExtensions() []string {
	return []string{".pdf", ".txt", ".md"}
}

// DocumentExtractor dispatches on file type: PDFs go through the PDF text
// extractor, plain-text formats pass through unchanged.
type DocumentExtractor struct{}

var _ Extractor = (*DocumentExtractor)(nil)

// New creates a DocumentExtractor
func New() *DocumentExtractor {
	return &DocumentExtractor{}
}

// Extract returns the text content of data. Failures are reported as
// ExtractionError and never produce partial output.
func (e *DocumentExtractor) Extract(data []byte, fileName string) (string, error) {
	if len(data) == 0 {
		return "", apierrors.NewExtractionError(fileName, errEmptyDocument)
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	switch ext {
	case ".pdf":
		return extractPDF(data, fileName)
	case ".txt", ".md":
		if !utf8.Valid(data) {
			return "", apierrors.NewExtractionError(fileName, errNotUTF8)
		}
		return string(data), nil
	default:
		// No extension hint: fall back to content sniffing.
		if isPDF(data) {
			return extractPDF(data, fileName)
		}
		if utf8.Valid(data) {
			return string(data), nil
		}
		return "", apierrors.NewExtractionError(fileName, errUnsupportedType)
	}
}

// isPDF checks the magic bytes at the start of the payload
func isPDF(data []byte) bool {
	return len(data) >= 5 && string(data[:5]) == "%PDF-"
}
