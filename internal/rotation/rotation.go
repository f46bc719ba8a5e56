// Package rotation closes the active fortnightly voting period, records its
// winners, archives the rest, and opens the next period.
package rotation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"newsroom/internal/domain"
)

const winnerCount = 3

// Service performs voting period rotations. The whole rotation runs inside
// one transaction whose first statement claims the active period, so a crash
// leaves nothing half-closed and a concurrent invocation finds no period to
// claim.
type Service struct {
	periods  PeriodStore
	articles ArticleStore
	tx       TransactionManager
	logger   *slog.Logger
	location *time.Location
	now      func() time.Time
}

// NewService wires the rotation service. Period boundaries are computed in
// UK local time.
func NewService(periods PeriodStore, articles ArticleStore, tx TransactionManager, logger *slog.Logger) (*Service, error) {
	location, err := time.LoadLocation("Europe/London")
	if err != nil {
		return nil, fmt.Errorf("load timezone: %w", err)
	}

	return &Service{
		periods:  periods,
		articles: articles,
		tx:       tx,
		logger:   logger.With("component", "rotation"),
		location: location,
		now:      time.Now,
	}, nil
}

// Rotate closes the active period immediately, without checking its end
// date. Callers wanting the date guard use CheckDue.
func (s *Service) Rotate(ctx context.Context) (*domain.RotationResult, error) {
	var result *domain.RotationResult

	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		result, err = s.rotate(txCtx)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("period rotated",
		"closed_period", result.ArchivedPeriod.PeriodNumber,
		"winners", len(result.ArchivedPeriod.Winners),
		"archived_articles", result.ArchivedPeriod.ArticlesArchived,
		"new_period", result.NewPeriod.PeriodNumber,
	)

	return result, nil
}

func (s *Service) rotate(ctx context.Context) (*domain.RotationResult, error) {
	period, err := s.periods.ClaimActive(ctx)
	if err != nil {
		return nil, err
	}

	articles, err := s.articles.ListPublishedByVotes(ctx, period.ID)
	if err != nil {
		return nil, fmt.Errorf("list period articles: %w", err)
	}

	top := articles
	if len(top) > winnerCount {
		top = top[:winnerCount]
	}
	rest := articles[len(top):]

	winners := make([]domain.Winner, 0, len(top))
	for i, a := range top {
		rank := i + 1
		if err := s.articles.SetWinner(ctx, a.ID, rank, rank == 1); err != nil {
			return nil, fmt.Errorf("mark winner %d: %w", rank, err)
		}
		winners = append(winners, domain.Winner{
			Rank:  rank,
			ID:    a.ID,
			Title: a.Title,
			Votes: a.TotalVotes,
		})
	}

	if len(rest) > 0 {
		ids := make([]int64, len(rest))
		for i, a := range rest {
			ids[i] = a.ID
		}
		if err := s.articles.ArchiveByIDs(ctx, ids); err != nil {
			return nil, fmt.Errorf("archive non-winners: %w", err)
		}
	}

	totalVotes := 0
	for _, a := range articles {
		totalVotes += a.TotalVotes
	}

	snapshot := domain.PeriodClose{
		TotalArticles: len(articles),
		TotalVotes:    totalVotes,
	}
	if len(top) > 0 {
		snapshot.Winner1ID = &top[0].ID
	}
	if len(top) > 1 {
		snapshot.Winner2ID = &top[1].ID
	}
	if len(top) > 2 {
		snapshot.Winner3ID = &top[2].ID
	}

	if err := s.periods.Close(ctx, period.ID, snapshot); err != nil {
		return nil, fmt.Errorf("close period %d: %w", period.PeriodNumber, err)
	}

	if len(articles) == 0 {
		s.logger.Warn("closed period had no published articles", "period", period.PeriodNumber)
	}

	next := s.nextPeriod(period.PeriodNumber + 1)
	if _, err := s.periods.Create(ctx, next); err != nil {
		return nil, fmt.Errorf("create period %d: %w", next.PeriodNumber, err)
	}

	return &domain.RotationResult{
		ArchivedPeriod: domain.PeriodSummary{
			PeriodNumber:     period.PeriodNumber,
			TotalArticles:    len(articles),
			TotalVotes:       totalVotes,
			Winners:          winners,
			ArticlesArchived: len(rest),
		},
		NewPeriod: domain.NewPeriodSummary{
			PeriodNumber: next.PeriodNumber,
			StartDate:    next.StartDate,
			EndDate:      next.EndDate,
		},
	}, nil
}

// nextPeriod starts at midnight today in UK local time and runs for the
// fixed period length minus one second.
func (s *Service) nextPeriod(number int) *domain.VotingPeriod {
	now := s.now().In(s.location)
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location)

	return &domain.VotingPeriod{
		PeriodNumber: number,
		StartDate:    start,
		EndDate:      start.Add(domain.PeriodLength - time.Second),
		Status:       domain.PeriodActive,
	}
}

// CheckDue rotates only when the active period's end date has passed. It
// reports whether a rotation ran. No active period is not an error here; the
// next scheduled check simply looks again.
func (s *Service) CheckDue(ctx context.Context) (*domain.RotationResult, bool, error) {
	period, err := s.periods.GetActive(ctx)
	if errors.Is(err, domain.ErrNoActivePeriod) {
		s.logger.Warn("no active voting period to check")
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load active period: %w", err)
	}

	if days := period.DaysRemaining(s.now()); days > 0 {
		s.logger.Debug("period not due", "period", period.PeriodNumber, "days_remaining", days)
		return nil, false, nil
	}

	result, err := s.Rotate(ctx)
	if err != nil {
		return nil, false, err
	}
	return result, true, nil
}
