// Package parsererror defines the typed errors returned at the input and
// output boundaries of a conversion.
package parsererror

import "fmt"

// ParseError represents a failure to read a value from an input.
type ParseError struct {
	Parser string
	Field  string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: failed to parse %s='%s': %v",
		e.Parser, e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ValidationError represents a rejected option or input.
type ValidationError struct {
	FilePath string
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.FilePath == "" {
		return fmt.Sprintf("validation failed: %s", e.Reason)
	}
	return fmt.Sprintf("validation failed for %s: %s", e.FilePath, e.Reason)
}

// UnsupportedInputError is returned when no input adapter handles a file.
type UnsupportedInputError struct {
	FilePath  string
	Extension string
}

func (e *UnsupportedInputError) Error() string {
	return fmt.Sprintf("unsupported input %s: no adapter for extension '%s'", e.FilePath, e.Extension)
}

// InvalidFormatError represents an input that does not look like a
// statement the adapter can read.
type InvalidFormatError struct {
	FilePath             string
	ExpectedFormat       string
	ActualContentSnippet string
	Msg                  string
}

func (e *InvalidFormatError) Error() string {
	if e.ActualContentSnippet != "" {
		return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s. Content snippet: '%s'",
			e.FilePath, e.Msg, e.ExpectedFormat, e.ActualContentSnippet)
	}
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// DataExtractionError represents a readable file from which no statement
// text could be recovered.
type DataExtractionError struct {
	FilePath  string
	FieldName string
	Reason    string
	Err       error
}

func (e *DataExtractionError) Error() string {
	msg := fmt.Sprintf("data extraction failed in file '%s' for field '%s': %s",
		e.FilePath, e.FieldName, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DataExtractionError) Unwrap() error {
	return e.Err
}
