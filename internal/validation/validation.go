// Package validation checks user supplied options and input paths.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/stmt-ledger/internal/parsererror"
)

// Conversion mode hints accepted by the CLI and web surface.
const (
	ModeAuto = "auto"
	ModeBank = "bank"
	ModePOS  = "pos"
)

// Supported input extensions.
const (
	ExtPDF  = ".pdf"
	ExtText = ".txt"
)

// IsValidPath checks if a given path exists and is accessible.
func IsValidPath(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return fmt.Errorf("path does not exist: %s", path)
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}

	if !info.IsDir() && !info.Mode().IsRegular() {
		return fmt.Errorf("path %s is neither a file nor a directory", path)
	}

	return nil
}

// NormalizeMode lower-cases a mode hint and maps "" to auto.
func NormalizeMode(mode string) string {
	m := strings.ToLower(strings.TrimSpace(mode))
	if m == "" {
		return ModeAuto
	}
	return m
}

// ValidateMode checks a mode hint.
func ValidateMode(mode string) error {
	switch NormalizeMode(mode) {
	case ModeAuto, ModeBank, ModePOS:
		return nil
	default:
		return &parsererror.ValidationError{
			Reason: fmt.Sprintf("unsupported mode '%s'. Supported modes are 'auto', 'bank', 'pos'", mode),
		}
	}
}

// IsSupportedInput reports whether path has an extension an input adapter
// can read.
func IsSupportedInput(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ExtPDF, ExtText:
		return true
	default:
		return false
	}
}

// ValidateInputFile checks that path is an existing regular file with a
// supported extension.
func ValidateInputFile(path string) error {
	if err := IsValidPath(path); err != nil {
		return &parsererror.ValidationError{FilePath: path, Reason: err.Error()}
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", path, err)
	}
	if info.IsDir() {
		return &parsererror.ValidationError{FilePath: path, Reason: "is a directory"}
	}
	if !IsSupportedInput(path) {
		return &parsererror.UnsupportedInputError{FilePath: path, Extension: filepath.Ext(path)}
	}
	return nil
}

// ValidateDelimiter checks that a CSV delimiter is a single character.
func ValidateDelimiter(delimiter string) error {
	if len([]rune(delimiter)) != 1 {
		return &parsererror.ValidationError{
			Reason: fmt.Sprintf("csv delimiter must be a single character, got '%s'", delimiter),
		}
	}
	return nil
}
