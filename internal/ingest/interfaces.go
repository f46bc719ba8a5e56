package ingest

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"newsroom/internal/domain"
)

// Source produces scored candidate articles from one upstream feed or API.
type Source interface {
	ID() string
	Name() string
	Fetch(ctx context.Context) ([]domain.Candidate, error)
}

// ArticleStore persists candidates. Insert returns
// domain.ErrDuplicateArticle when the URL hash is already present.
type ArticleStore interface {
	Exists(ctx context.Context, urlHash string) (bool, error)
	Insert(ctx context.Context, candidate *domain.Candidate) (int64, error)
}

// Publisher announces newly ingested articles downstream.
type Publisher interface {
	Publish(ctx context.Context, articleID int64, candidate *domain.Candidate) error
	Close() error
}
