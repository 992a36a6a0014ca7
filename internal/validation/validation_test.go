package validation_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjacquet/financas/internal/validation"
)

func TestIsValidOutputPath(t *testing.T) {
	tmpDir := t.TempDir()
	existing := filepath.Join(tmpDir, "old.csv")
	require.NoError(t, os.WriteFile(existing, []byte("x"), 0600))

	tests := []struct {
		name        string
		path        string
		errContains string
	}{
		{"new file in existing dir", filepath.Join(tmpDir, "out.csv"), ""},
		{"overwrite existing file", existing, ""},
		{"missing parent is created later", filepath.Join(tmpDir, "a", "b", "out.csv"), ""},
		{"empty", "", "cannot be empty"},
		{"directory", tmpDir, "is a directory"},
		{"parent is a file", filepath.Join(existing, "out.csv"), "not a directory"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validation.IsValidOutputPath(tt.path)
			if tt.errContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestIsValidDelimiter(t *testing.T) {
	tests := []struct {
		in      string
		want    rune
		wantErr bool
	}{
		{",", ',', false},
		{";", ';', false},
		{"\t", '\t', false},
		{"", 0, true},
		{",,", 0, true},
		{"a", 0, true},
		{"1", 0, true},
		{`"`, 0, true},
		{"\n", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := validation.IsValidDelimiter(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsValidFilePermissions(t *testing.T) {
	tests := []struct {
		mode    os.FileMode
		wantErr bool
	}{
		{0600, false},
		{0640, false},
		{0644, true},
		{0666, true},
		{0777, true},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			err := validation.IsValidFilePermissions(tt.mode)
			assert.Equal(t, tt.wantErr, err != nil)
		})
	}
}
