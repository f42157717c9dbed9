package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrNoText means the PDF was readable but contained no extractable text.
var ErrNoText = errors.New("no text could be extracted from the PDF")

// ErrUnsupported means the uploaded file is not a PDF.
var ErrUnsupported = errors.New("only PDF files are supported")

// PDFText extracts the text of every page, joined with newlines.
// Pages that yield no text are skipped rather than failing the whole
// document.
func PDFText(ctx context.Context, data []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	var chunks []string
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		chunks = append(chunks, text)
	}

	extracted := strings.TrimSpace(strings.Join(chunks, "\n"))
	if extracted == "" {
		return "", ErrNoText
	}
	return extracted, nil
}

// CheckFilename rejects files that are not named as PDFs before any
// bytes are parsed.
func CheckFilename(filename string) error {
	if strings.ToLower(filepath.Ext(filename)) != ".pdf" {
		return ErrUnsupported
	}
	return nil
}
