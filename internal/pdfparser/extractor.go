package pdfparser

import (
	"errors"
	"fmt"
	"strings"
)

// PDFExtractor defines the interface for extracting text from PDF files.
// This interface allows for dependency injection and makes the PDF parser testable
// by providing different implementations for production and testing.
type PDFExtractor interface {
	// ExtractText extracts text content from a PDF file at the given path.
	// Returns the extracted text as a string or an error if extraction fails.
	ExtractText(pdfPath string) (string, error)
}

// ErrNoText is returned when a PDF opens but carries no extractable text,
// typically a scanned image without a text layer.
var ErrNoText = errors.New("no extractable text")

// RealPDFExtractor reads the text layer with the pure Go PDF reader and
// falls back to the pdftotext command when that yields nothing.
type RealPDFExtractor struct {
	// DisablePdftotext turns the external fallback off.
	DisablePdftotext bool
}

// NewRealPDFExtractor creates a new RealPDFExtractor instance.
func NewRealPDFExtractor() *RealPDFExtractor {
	return &RealPDFExtractor{}
}

// ExtractText returns the document text, one visual row per line, pages
// concatenated in order.
func (e *RealPDFExtractor) ExtractText(pdfPath string) (string, error) {
	text, libErr := extractWithLibrary(pdfPath)
	if libErr == nil && strings.TrimSpace(text) != "" {
		return text, nil
	}

	if !e.DisablePdftotext {
		out, err := extractWithPdftotext(pdfPath)
		if err == nil && strings.TrimSpace(out) != "" {
			return out, nil
		}
	}

	if libErr != nil {
		return "", fmt.Errorf("reading PDF: %w", libErr)
	}
	return "", ErrNoText
}

// MockPDFExtractor implements PDFExtractor for testing purposes.
// It returns predefined mock data instead of actually extracting from PDF files.
type MockPDFExtractor struct {
	MockText string
	MockErr  error
}

// NewMockPDFExtractor creates a new MockPDFExtractor with the given mock data.
func NewMockPDFExtractor(mockText string, mockErr error) *MockPDFExtractor {
	return &MockPDFExtractor{
		MockText: mockText,
		MockErr:  mockErr,
	}
}

// ExtractText returns the predefined mock text or error.
func (e *MockPDFExtractor) ExtractText(pdfPath string) (string, error) {
	if e.MockErr != nil {
		return "", e.MockErr
	}
	return e.MockText, nil
}
