// Package container provides dependency injection for the financas application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"
	"io"
	"os"

	"fjacquet/financas/internal/assistant"
	"fjacquet/financas/internal/config"
	"fjacquet/financas/internal/directory"
	"fjacquet/financas/internal/intent"
	"fjacquet/financas/internal/logging"
	"fjacquet/financas/internal/report"
	"fjacquet/financas/internal/store"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation - all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger     logging.Logger
	config     *config.Config
	store      store.StateStore
	classifier *intent.Classifier
	renderer   *report.Renderer
	service    *assistant.Service
	closer     io.Closer
}

// Option adjusts how NewContainer wires dependencies.
type Option func(*options)

type options struct {
	logOutput io.Writer
	clock     directory.Clock
	store     store.StateStore
	keywords  intent.KeywordSource
}

// WithLogOutput sends log lines to w instead of stderr.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) { o.logOutput = w }
}

// WithClock replaces the wall clock, mainly for tests.
func WithClock(c directory.Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithStore bypasses the configured backend.
func WithStore(s store.StateStore) Option {
	return func(o *options) { o.store = s }
}

// WithKeywords replaces the keywords.file reader.
func WithKeywords(src intent.KeywordSource) Option {
	return func(o *options) { o.keywords = src }
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config, opts ...Option) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	o := options{logOutput: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	// Create logger first as it's needed by other components
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format, o.logOutput)

	source := o.keywords
	if source == nil {
		source = store.NewKeywordStore(cfg.Keywords.File, logger)
	}
	keywords, err := source.LoadKeywords()
	if err != nil {
		return nil, fmt.Errorf("failed to load keywords: %w", err)
	}
	classifier := intent.NewClassifier(keywords, logger)
	renderer := report.NewRenderer(cfg.History.RecentLimit)

	st, closer, err := newStateStore(cfg, o.store, logger)
	if err != nil {
		return nil, err
	}

	clock := o.clock
	if clock == nil {
		clock = directory.SystemClock(cfg.Location())
	}

	service := assistant.NewService(st, classifier, renderer, assistant.Options{
		DefaultUser: cfg.Users.DefaultName,
		Clock:       clock,
	}, logger)

	logger.Debug("Container initialized",
		logging.F(logging.FieldStore, cfg.Data.Backend),
		logging.F(logging.FieldCount, len(classifier.RuleNames())))

	return &Container{
		logger:     logger,
		config:     cfg,
		store:      st,
		classifier: classifier,
		renderer:   renderer,
		service:    service,
		closer:     closer,
	}, nil
}

func newStateStore(cfg *config.Config, override store.StateStore, logger logging.Logger) (store.StateStore, io.Closer, error) {
	if override != nil {
		return override, nil, nil
	}
	switch cfg.Data.Backend {
	case config.BackendSQLite:
		s, err := store.NewSQLiteStore(cfg.Data.SQLitePath, cfg.Users.DefaultName, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return s, s, nil
	case config.BackendMemory:
		return store.NewMemoryStore(cfg.Users.DefaultName), nil, nil
	case config.BackendFile, "":
		return store.NewFileStore(cfg.Data.File, cfg.Users.DefaultName, logger), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown data backend: %s", cfg.Data.Backend)
	}
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the state store selected by data.backend.
func (c *Container) GetStore() store.StateStore {
	return c.store
}

// GetClassifier returns the message classifier.
func (c *Container) GetClassifier() *intent.Classifier {
	return c.classifier
}

// GetRenderer returns the response renderer.
func (c *Container) GetRenderer() *report.Renderer {
	return c.renderer
}

// GetService returns the message-processing service.
func (c *Container) GetService() *assistant.Service {
	return c.service
}

// Close releases the store, if it holds resources.
func (c *Container) Close() error {
	if c.closer == nil {
		return nil
	}
	if err := c.closer.Close(); err != nil {
		return fmt.Errorf("failed to close store: %w", err)
	}
	return nil
}
