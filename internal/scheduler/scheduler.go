package scheduler

import (
	"context"
	"log/slog"
	"time"

	"newsroom/internal/domain"
)

// Ingester runs one full ingestion pass.
type Ingester interface {
	Run(ctx context.Context) (*domain.IngestStats, error)
}

// Rotator rotates the voting period when it is due.
type Rotator interface {
	CheckDue(ctx context.Context) (*domain.RotationResult, bool, error)
}

// Scheduler drives the two periodic jobs: ingestion on a fixed interval and
// the date-guarded rotation check. The guard inside CheckDue is what makes
// a frequent check interval safe.
type Scheduler struct {
	ingester       Ingester
	rotator        Rotator
	ingestInterval time.Duration
	rotateInterval time.Duration
	runTimeout     time.Duration
	logger         *slog.Logger
}

func New(ingester Ingester, rotator Rotator, ingestInterval, rotateInterval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		ingester:       ingester,
		rotator:        rotator,
		ingestInterval: ingestInterval,
		rotateInterval: rotateInterval,
		runTimeout:     10 * time.Minute,
		logger:         logger.With("component", "scheduler"),
	}
}

// Start runs both jobs once immediately, then on their tickers until ctx is
// cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started",
		"ingest_interval", s.ingestInterval,
		"rotate_check_interval", s.rotateInterval,
	)

	s.runIngest(ctx)
	s.runRotationCheck(ctx)

	ingestTicker := time.NewTicker(s.ingestInterval)
	defer ingestTicker.Stop()

	rotateTicker := time.NewTicker(s.rotateInterval)
	defer rotateTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ingestTicker.C:
			s.runIngest(ctx)
		case <-rotateTicker.C:
			s.runRotationCheck(ctx)
		}
	}
}

func (s *Scheduler) runIngest(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	if _, err := s.ingester.Run(runCtx); err != nil {
		s.logger.Error("scheduled ingestion failed", "error", err)
	}
}

func (s *Scheduler) runRotationCheck(ctx context.Context) {
	runCtx, cancel := context.WithTimeout(ctx, s.runTimeout)
	defer cancel()

	result, rotated, err := s.rotator.CheckDue(runCtx)
	if err != nil {
		s.logger.Error("rotation check failed", "error", err)
		return
	}
	if rotated {
		s.logger.Info("scheduled rotation completed",
			"closed_period", result.ArchivedPeriod.PeriodNumber,
			"new_period", result.NewPeriod.PeriodNumber,
		)
	}
}
