package parser

import (
	"path/filepath"
	"strings"

	"fjacquet/stmt-ledger/internal/parsererror"
)

// ParserType names an input adapter.
type ParserType string

const (
	PDF  ParserType = "pdf"
	Text ParserType = "text"
)

// TypeForFile picks the adapter for a file by extension.
func TypeForFile(path string) (ParserType, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".pdf":
		return PDF, nil
	case ".txt":
		return Text, nil
	default:
		return "", &parsererror.UnsupportedInputError{FilePath: path, Extension: ext}
	}
}
