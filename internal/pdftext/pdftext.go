// Package pdftext extracts page-ordered plain text from statement
// PDFs. The pdf library panics on some malformed files, so everything
// here is wrapped in recover; a file we cannot read yields an error,
// never a crash.
package pdftext

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ledongthuc/pdf"
)

// maxTextBytes caps extracted text. Monthly statements run a few
// pages; anything past this is not a statement we can use.
const maxTextBytes = 512 * 1024

// Reader yields the concatenated text of a document. The runner
// depends on this interface so tests can substitute plain-text
// fixtures for real PDFs.
type Reader interface {
	ReadText(path string) (string, error)
}

// FileReader reads PDFs from disk.
type FileReader struct{}

// ReadText opens the PDF at path and returns its plain text in page
// order. The file handle is released before returning, even on
// failure.
func (FileReader) ReadText(path string) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("reading %s: panic in pdf library: %v", path, r)
		}
	}()

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}

	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extracting text from %s: %w", path, err)
	}

	buf, err := io.ReadAll(io.LimitReader(plain, maxTextBytes))
	if err != nil {
		return "", fmt.Errorf("reading text from %s: %w", path, err)
	}
	return string(buf), nil
}
