// Package validation checks user-supplied paths and options before the
// commands act on them.
package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"unicode"
	"unicode/utf8"
)

// IsValidOutputPath checks that path can be written as a file: it must not
// be empty or an existing directory, and an existing parent must be a
// directory.
func IsValidOutputPath(path string) error {
	if path == "" {
		return fmt.Errorf("output path cannot be empty")
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return fmt.Errorf("output path is a directory: %s", path)
	}
	parent := filepath.Dir(path)
	info, err := os.Stat(parent)
	if os.IsNotExist(err) {
		// created on write
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking path %s: %w", parent, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("parent of %s is not a directory", path)
	}
	return nil
}

// IsValidDelimiter parses a CSV delimiter given on the command line.
func IsValidDelimiter(s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || size != len(s) {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError || unicode.IsLetter(r) || unicode.IsDigit(r) {
		return 0, fmt.Errorf("invalid delimiter %q", s)
	}
	return r, nil
}

// IsValidFilePermissions checks that a file holding personal finances is
// not readable by others.
func IsValidFilePermissions(mode os.FileMode) error {
	if mode&0007 != 0 {
		return fmt.Errorf("file permissions are too permissive: %s. Recommended 0600", mode.String())
	}
	return nil
}
