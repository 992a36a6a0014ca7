package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"

	_ "modernc.org/sqlite"

	"fjacquet/financas/internal/directory"
	"fjacquet/financas/internal/fileutils"
	"fjacquet/financas/internal/logging"
)

// SQLiteStore keeps the directory as a single JSON document row.
type SQLiteStore struct {
	DefaultUser string
	db          *sql.DB
	logger      logging.Logger
}

// NewSQLiteStore opens (and migrates) the database at dbPath.
func NewSQLiteStore(dbPath, defaultUser string, logger logging.Logger) (*SQLiteStore, error) {
	if logger == nil {
		logger = logging.Discard()
	}
	if err := fileutils.EnsureDirectoryExists(filepath.Dir(dbPath)); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// one writer; the engine already serializes load/save pairs
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteStore{
		DefaultUser: defaultUser,
		db:          db,
		logger:      logger.WithField(logging.FieldStore, "sqlite"),
	}, nil
}

// Close releases the database.
func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads the document row, or returns a fresh directory when there is none.
func (s *SQLiteStore) Load(ctx context.Context, month string) (*directory.Directory, error) {
	var document string
	err := s.db.QueryRowContext(ctx, `SELECT document FROM state WHERE id = 1`).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		s.logger.Debug("No stored state, starting fresh")
		return directory.New(s.DefaultUser, month), nil
	}
	if err != nil {
		return nil, fmt.Errorf("query state: %w", err)
	}

	dir, err := decode([]byte(document), FormatJSON, s.DefaultUser, month)
	if err != nil {
		return nil, fmt.Errorf("decode state: %w", err)
	}
	return dir, nil
}

// Save upserts the document row.
func (s *SQLiteStore) Save(ctx context.Context, dir *directory.Directory) error {
	data, err := encode(dir, FormatJSON)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO state (id, document, updated_at) VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`,
		string(data))
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	s.logger.Debug("State saved", logging.F(logging.FieldCount, len(dir.Users)))
	return nil
}
