package resume

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	pdf "github.com/ledongthuc/pdf"

	"github.com/muhammedkado/find-job-with-ai/pkg/nlp"
)

// TextExtractor turns an uploaded document into plain text.
type TextExtractor interface {
	Extract(data []byte) (string, error)
}

// PDFExtractor extracts text from PDF files.
type PDFExtractor struct{}

var ErrNotPDF = errors.New("file is not a pdf document")

func (PDFExtractor) Extract(data []byte) (text string, err error) {
	if !bytes.HasPrefix(bytes.TrimLeft(data, "\x00\t\r\n "), []byte("%PDF")) {
		return "", ErrNotPDF
	}
	// The pdf reader panics on some corrupt inputs.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("corrupt pdf: %v", r)
		}
	}()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return nlp.NormalizeWhitespace(buf.String()), nil
}
