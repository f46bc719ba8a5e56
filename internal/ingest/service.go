package ingest

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"newsroom/internal/domain"
)

// Service runs the pipeline and persists the survivors, announcing each new
// article on the publisher.
type Service struct {
	pipeline  *Pipeline
	articles  ArticleStore
	publisher Publisher
	logger    *slog.Logger
}

// NewService wires the ingestion service. publisher may be nil when no
// message bus is configured.
func NewService(pipeline *Pipeline, articles ArticleStore, publisher Publisher, logger *slog.Logger) *Service {
	return &Service{
		pipeline:  pipeline,
		articles:  articles,
		publisher: publisher,
		logger:    logger.With("component", "ingest"),
	}
}

// Run executes a full ingestion: fetch, reduce, persist.
func (s *Service) Run(ctx context.Context) (*domain.IngestStats, error) {
	return s.run(ctx, s.pipeline.FetchAll)
}

// RunHighPriority ingests only from high-priority sources, without the
// relevance filter.
func (s *Service) RunHighPriority(ctx context.Context) (*domain.IngestStats, error) {
	return s.run(ctx, s.pipeline.FetchHighPriority)
}

func (s *Service) run(ctx context.Context, fetch func(context.Context) FetchResult) (*domain.IngestStats, error) {
	startTime := time.Now()
	s.logger.Info("starting ingestion run")

	result := fetch(ctx)

	stats := &domain.IngestStats{
		TotalFetched: result.TotalFetched,
		AfterDedup:   result.AfterDedup,
		AfterFilter:  result.AfterFilter,
		Sources:      result.Sources,
	}

	for i := range result.Candidates {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		candidate := &result.Candidates[i]

		exists, err := s.articles.Exists(ctx, candidate.URLHash)
		if err != nil {
			return stats, err
		}
		if exists {
			stats.SkippedDuplicates++
			continue
		}

		id, err := s.articles.Insert(ctx, candidate)
		if errors.Is(err, domain.ErrDuplicateArticle) {
			// Lost a race with a concurrent insert.
			stats.SkippedDuplicates++
			continue
		}
		if err != nil {
			s.logger.Error("insert failed", "url", candidate.SourceURL, "error", err)
			stats.SkippedDuplicates++
			continue
		}

		stats.NewArticles++

		if s.publisher != nil {
			if err := s.publisher.Publish(ctx, id, candidate); err != nil {
				s.logger.Error("publish failed", "article_id", id, "error", err)
			}
		}
	}

	stats.Duration = time.Since(startTime)

	s.logger.Info("ingestion run complete",
		"fetched", stats.TotalFetched,
		"after_filter", stats.AfterFilter,
		"new", stats.NewArticles,
		"skipped", stats.SkippedDuplicates,
		"duration", stats.Duration,
	)

	return stats, nil
}
