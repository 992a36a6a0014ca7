// Package assistant is the message-processing engine: it loads the user
// directory, rolls the month over when needed, classifies the message,
// applies it to the selected user's ledger, saves and renders the reply.
package assistant

import (
	"context"
	"fmt"
	"sync"
	"time"

	"fjacquet/financas/internal/directory"
	"fjacquet/financas/internal/intent"
	"fjacquet/financas/internal/logging"
	"fjacquet/financas/internal/models"
	"fjacquet/financas/internal/report"
	"fjacquet/financas/internal/store"
)

// Options tunes a Service. Zero values pick the defaults.
type Options struct {
	DefaultUser string
	Clock       directory.Clock
}

// Service processes one message at a time. Concurrent callers are
// serialized so each load/mutate/save cycle completes before the next.
type Service struct {
	store       store.StateStore
	classifier  *intent.Classifier
	renderer    *report.Renderer
	clock       directory.Clock
	defaultUser string
	logger      logging.Logger

	mu sync.Mutex
}

// NewService wires a Service.
func NewService(st store.StateStore, classifier *intent.Classifier, renderer *report.Renderer, opts Options, logger logging.Logger) *Service {
	if logger == nil {
		logger = logging.Discard()
	}
	if opts.DefaultUser == "" {
		opts.DefaultUser = models.DefaultUserName
	}
	if opts.Clock == nil {
		opts.Clock = directory.SystemClock(nil)
	}
	if renderer == nil {
		renderer = report.NewRenderer(report.DefaultRecentLimit)
	}
	return &Service{
		store:       st,
		classifier:  classifier,
		renderer:    renderer,
		clock:       opts.Clock,
		defaultUser: opts.DefaultUser,
		logger:      logger,
	}
}

// Process handles one message and returns the reply. Domain failures
// (bad format, insufficient funds, unknown bill, ...) are part of the reply;
// the error is reserved for storage failures, in which case nothing was
// persisted.
func (s *Service) Process(ctx context.Context, message string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	now := s.clock()
	month := directory.MonthKey(now)

	dir, err := s.store.Load(ctx, month)
	if err != nil {
		return "", fmt.Errorf("failed to load state: %w", err)
	}

	rolled := dir.RollOverIfNeeded(month)
	if rolled {
		s.logger.Info("Month changed, transaction logs cleared", logging.F(logging.FieldMonth, month))
	}
	dir.ResolveCurrent()

	op := s.classifier.Classify(message)
	res := s.apply(dir, op, now)

	if res.dirty || rolled {
		if err := s.store.Save(ctx, dir); err != nil {
			return "", fmt.Errorf("failed to save state: %w", err)
		}
	}

	entry := s.logger.WithFields(
		logging.F(logging.FieldUser, dir.CurrentUser),
		logging.F(logging.FieldOperation, string(op.Kind)),
		logging.F(logging.FieldRule, op.Rule),
		logging.F(logging.FieldDuration, time.Since(start).Milliseconds()),
	)
	if res.err != nil {
		entry.WithError(res.err).Info("Message rejected")
	} else {
		entry.Info("Message processed")
	}
	return res.reply, nil
}

// Snapshot loads the directory as the next message would see it, without
// saving anything.
func (s *Service) Snapshot(ctx context.Context) (*directory.Directory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	month := directory.MonthKey(s.clock())
	dir, err := s.store.Load(ctx, month)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	dir.RollOverIfNeeded(month)
	dir.ResolveCurrent()
	return dir, nil
}
