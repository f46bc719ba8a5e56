package rotation

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"newsroom/internal/domain"
)

// PeriodStore manages voting period rows. ClaimActive atomically moves the
// single active period to "rotating" and returns it, so two concurrent
// rotations cannot both proceed past it.
type PeriodStore interface {
	GetActive(ctx context.Context) (*domain.VotingPeriod, error)
	ClaimActive(ctx context.Context) (*domain.VotingPeriod, error)
	Close(ctx context.Context, id int64, snapshot domain.PeriodClose) error
	Create(ctx context.Context, period *domain.VotingPeriod) (int64, error)
}

// ArticleStore exposes the article operations rotation needs.
type ArticleStore interface {
	ListPublishedByVotes(ctx context.Context, periodID int64) ([]domain.Article, error)
	SetWinner(ctx context.Context, id int64, rank int, storyOfWeek bool) error
	ArchiveByIDs(ctx context.Context, ids []int64) error
}

// TransactionManager runs fn inside a single database transaction.
type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
