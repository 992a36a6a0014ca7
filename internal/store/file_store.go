package store

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/financas/internal/directory"
	"fjacquet/financas/internal/fileutils"
	"fjacquet/financas/internal/logging"
	"fjacquet/financas/internal/models"
	"fjacquet/financas/internal/validation"
)

// FileStore keeps the directory in a single JSON or YAML file. The format
// follows the file extension (.yaml/.yml for YAML, anything else JSON).
type FileStore struct {
	Path        string
	DefaultUser string
	format      Format
	logger      logging.Logger
}

// NewFileStore creates a store for path.
func NewFileStore(path, defaultUser string, logger logging.Logger) *FileStore {
	if logger == nil {
		logger = logging.Discard()
	}
	s := &FileStore{
		Path:        path,
		DefaultUser: defaultUser,
		format:      formatFor(path),
		logger:      logger.WithField(logging.FieldStore, "file"),
	}
	if info, err := os.Stat(path); err == nil {
		if err := validation.IsValidFilePermissions(info.Mode().Perm()); err != nil {
			s.logger.WithError(err).Warn("State file is readable by other users", logging.F(logging.FieldFile, path))
		}
	}
	return s
}

func formatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads the file. A missing or empty file yields a fresh directory.
func (s *FileStore) Load(ctx context.Context, month string) (*directory.Directory, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) || (err == nil && len(bytes.TrimSpace(data)) == 0) {
		s.logger.Debug("State file not found, starting fresh", logging.F(logging.FieldFile, s.Path))
		return directory.New(s.DefaultUser, month), nil
	}
	if err != nil {
		return nil, fmt.Errorf("error reading state file: %w", err)
	}

	dir, err := decode(data, s.format, s.DefaultUser, month)
	if err != nil {
		return nil, fmt.Errorf("error parsing state file %s: %w", s.Path, err)
	}
	s.logger.Debug("State loaded",
		logging.F(logging.FieldFile, s.Path),
		logging.F(logging.FieldCount, len(dir.Users)))
	return dir, nil
}

// Save replaces the file atomically.
func (s *FileStore) Save(ctx context.Context, dir *directory.Directory) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encode(dir, s.format)
	if err != nil {
		return fmt.Errorf("error marshaling state: %w", err)
	}
	if err := fileutils.WriteFileAtomic(s.Path, data, models.PermissionDataFile); err != nil {
		return fmt.Errorf("error writing state file: %w", err)
	}
	s.logger.Debug("State saved", logging.F(logging.FieldFile, s.Path))
	return nil
}
