package extract

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	apierrors "github.com/diogo/docchat/internal/errors"
)

var (
	errEmptyDocument   = errors.New("document is empty")
	errNotUTF8         = errors.New("file is not valid UTF-8 text")
	errUnsupportedType = errors.New("unsupported document type")
)

// extractPDF concatenates the text of every page, one page per line.
func extractPDF(data []byte, fileName string) (text string, err error) {
	// The pdf package panics on some malformed inputs; fold those into the
	// regular extraction error path.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = apierrors.NewExtractionError(fileName, fmt.Errorf("malformed PDF: %v", r))
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", apierrors.NewExtractionError(fileName, err)
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			return "", apierrors.NewExtractionError(fileName, err)
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}
