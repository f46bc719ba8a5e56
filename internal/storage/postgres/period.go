package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"newsroom/internal/domain"
)

const periodColumns = `
	id, period_number, start_date, end_date, status,
	winner_1_id, winner_2_id, winner_3_id,
	total_articles, total_votes, updated_at`

type PeriodStore struct {
	db *sqlx.DB
}

func NewPeriodStore(db *sqlx.DB) *PeriodStore {
	return &PeriodStore{db: db}
}

// GetActive returns the single active voting period, or
// domain.ErrNoActivePeriod.
func (s *PeriodStore) GetActive(ctx context.Context) (*domain.VotingPeriod, error) {
	query := `
		SELECT` + periodColumns + `
		FROM voting_periods
		WHERE status = 'active'
		ORDER BY period_number DESC
		LIMIT 1`

	var period domain.VotingPeriod
	err := sqlx.GetContext(ctx, executor(ctx, s.db), &period, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNoActivePeriod
	}
	if err != nil {
		return nil, err
	}
	return &period, nil
}

// ClaimActive atomically moves the active period to "rotating" and returns
// it. A concurrent claimer finds no active row and gets
// domain.ErrNoActivePeriod instead of racing the rotation.
func (s *PeriodStore) ClaimActive(ctx context.Context) (*domain.VotingPeriod, error) {
	query := `
		UPDATE voting_periods
		SET status = 'rotating'
		WHERE status = 'active'
		RETURNING` + periodColumns

	var period domain.VotingPeriod
	err := sqlx.GetContext(ctx, executor(ctx, s.db), &period, query)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNoActivePeriod
	}
	if err != nil {
		return nil, fmt.Errorf("claim active period: %w", err)
	}
	return &period, nil
}

// Close archives a claimed period with its winner references and snapshot
// totals.
func (s *PeriodStore) Close(ctx context.Context, id int64, snapshot domain.PeriodClose) error {
	query := `
		UPDATE voting_periods
		SET status = 'archived',
		    winner_1_id = $2,
		    winner_2_id = $3,
		    winner_3_id = $4,
		    total_articles = $5,
		    total_votes = $6,
		    updated_at = now()
		WHERE id = $1`

	_, err := executor(ctx, s.db).ExecContext(ctx, query,
		id,
		snapshot.Winner1ID,
		snapshot.Winner2ID,
		snapshot.Winner3ID,
		snapshot.TotalArticles,
		snapshot.TotalVotes,
	)
	return err
}

// Create opens a new voting period.
func (s *PeriodStore) Create(ctx context.Context, period *domain.VotingPeriod) (int64, error) {
	query := `
		INSERT INTO voting_periods (period_number, start_date, end_date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := executor(ctx, s.db).QueryRowxContext(ctx, query,
		period.PeriodNumber,
		period.StartDate,
		period.EndDate,
		period.Status,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("create period: %w", err)
	}

	period.ID = id
	return id, nil
}

// ListArchived returns the most recently closed periods, newest first.
func (s *PeriodStore) ListArchived(ctx context.Context, limit int) ([]domain.VotingPeriod, error) {
	query := `
		SELECT` + periodColumns + `
		FROM voting_periods
		WHERE status = 'archived'
		ORDER BY period_number DESC
		LIMIT $1`

	var periods []domain.VotingPeriod
	err := sqlx.SelectContext(ctx, executor(ctx, s.db), &periods, query, limit)
	return periods, err
}
