// Package fileutils provides the file operations shared by the commands and
// the upload server.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if !DirectoryExists(dirPath) {
		if err := os.MkdirAll(dirPath, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return nil
}

// OpenFile opens a file for reading, returning an error if the file doesn't exist
func OpenFile(filePath string) (*os.File, error) {
	if !FileExists(filePath) {
		return nil, fmt.Errorf("file does not exist: %s", filePath)
	}

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	return file, nil
}

// CreateFile creates or truncates a file for writing, creating parent
// directories as needed.
func CreateFile(filePath string) (*os.File, error) {
	if err := EnsureDirectoryExists(filepath.Dir(filePath)); err != nil {
		return nil, err
	}

	file, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}

	return file, nil
}

// ListFilesWithExtensions returns the regular files directly inside dirPath
// whose extension matches one of extensions, ignoring case, sorted by name.
func ListFilesWithExtensions(dirPath string, extensions ...string) ([]string, error) {
	if !DirectoryExists(dirPath) {
		return nil, fmt.Errorf("directory does not exist: %s", dirPath)
	}

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		for _, want := range extensions {
			if ext == strings.ToLower(want) {
				files = append(files, filepath.Join(dirPath, entry.Name()))
				break
			}
		}
	}

	sort.Strings(files)
	return files, nil
}
