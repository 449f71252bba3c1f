package validation_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/stmt-ledger/internal/parsererror"
	"fjacquet/stmt-ledger/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidPath(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "statement.txt")
	require.NoError(t, os.WriteFile(testFile, []byte("test"), 0600))

	tests := []struct {
		name        string
		path        string
		expectError bool
		errContains string
	}{
		{name: "Valid file path", path: testFile},
		{name: "Valid directory path", path: tmpDir},
		{
			name:        "Non-existent path",
			path:        "/nonexistent/path/to/file.txt",
			expectError: true,
			errContains: "path does not exist",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.IsValidPath(tt.path)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateMode(t *testing.T) {
	tests := []struct {
		mode        string
		expectError bool
	}{
		{"auto", false},
		{"", false},
		{"BANK", false},
		{" pos ", false},
		{"xml", true},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			err := validation.ValidateMode(tt.mode)
			if tt.expectError {
				var ve *parsererror.ValidationError
				assert.True(t, errors.As(err, &ve))
			} else {
				assert.NoError(t, err)
			}
		})
	}
	assert.Equal(t, "auto", validation.NormalizeMode(""))
	assert.Equal(t, "pos", validation.NormalizeMode("POS"))
}

func TestValidateInputFile(t *testing.T) {
	dir := t.TempDir()
	pdf := filepath.Join(dir, "a.PDF")
	doc := filepath.Join(dir, "a.docx")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF-1.4"), 0600))
	require.NoError(t, os.WriteFile(doc, []byte("x"), 0600))

	assert.NoError(t, validation.ValidateInputFile(pdf))

	var unsupported *parsererror.UnsupportedInputError
	assert.ErrorAs(t, validation.ValidateInputFile(doc), &unsupported)

	var invalid *parsererror.ValidationError
	assert.ErrorAs(t, validation.ValidateInputFile(dir), &invalid)
	assert.ErrorAs(t, validation.ValidateInputFile(filepath.Join(dir, "missing.pdf")), &invalid)
}

func TestValidateDelimiter(t *testing.T) {
	assert.NoError(t, validation.ValidateDelimiter(","))
	assert.NoError(t, validation.ValidateDelimiter(";"))
	assert.Error(t, validation.ValidateDelimiter(""))
	assert.Error(t, validation.ValidateDelimiter(",,"))
}
