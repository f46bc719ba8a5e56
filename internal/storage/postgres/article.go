package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"newsroom/internal/domain"
)

// uniqueViolation is the Postgres error code for duplicate keys.
const uniqueViolation = "23505"

type ArticleStore struct {
	db *sqlx.DB
}

func NewArticleStore(db *sqlx.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

// Exists reports whether an article with the given URL hash is already
// stored.
func (s *ArticleStore) Exists(ctx context.Context, urlHash string) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, s.db), &exists,
		"SELECT EXISTS (SELECT 1 FROM news_articles WHERE url_hash = $1)",
		urlHash,
	)
	return exists, err
}

// Insert stores an ingested candidate as a published article attached to
// the currently active voting period. A unique violation on the URL hash
// maps to domain.ErrDuplicateArticle.
func (s *ArticleStore) Insert(ctx context.Context, candidate *domain.Candidate) (int64, error) {
	query := `
		INSERT INTO news_articles (
			title, excerpt, content, source_url, source_name, author,
			published_at, featured_image, image_alt, category, interest_score,
			url_hash, read_time, status, moderation_status, published, topics,
			voting_period_id
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
			'published', 'auto-approved', TRUE, $14,
			(SELECT id FROM voting_periods WHERE status = 'active' ORDER BY period_number DESC LIMIT 1)
		)
		RETURNING id`

	interestScore := candidate.RelevanceScore
	if interestScore > 100 {
		interestScore = 100
	}

	var id int64
	err := executor(ctx, s.db).QueryRowxContext(ctx, query,
		candidate.Title,
		candidate.Excerpt,
		candidate.Content,
		candidate.SourceURL,
		candidate.SourceName,
		candidate.Author,
		candidate.PublishedAt,
		candidate.FeaturedImage,
		candidate.ImageAlt,
		candidate.Category,
		interestScore,
		candidate.URLHash,
		readTime(candidate.Content),
		pq.Array(candidate.Tags),
	).Scan(&id)

	if isUniqueViolation(err) {
		return 0, domain.ErrDuplicateArticle
	}
	if err != nil {
		return 0, fmt.Errorf("insert article: %w", err)
	}

	return id, nil
}

// InsertSubmission stores a community-submitted article awaiting
// moderation.
func (s *ArticleStore) InsertSubmission(ctx context.Context, sub *domain.Submission) (int64, error) {
	query := `
		INSERT INTO news_articles (
			title, excerpt, content, source_url, author, category,
			url_hash, read_time, status, moderation_status, published,
			published_at, submitted_at, topics
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, 'review', 'pending', FALSE,
			$9, $9, '{}'
		)
		RETURNING id`

	var id int64
	err := executor(ctx, s.db).QueryRowxContext(ctx, query,
		sub.Title,
		sub.Excerpt,
		sub.Content,
		sub.SourceURL,
		sub.SubmittedBy,
		sub.Category,
		sub.URLHash,
		readTime(sub.Content),
		time.Now(),
	).Scan(&id)

	if isUniqueViolation(err) {
		return 0, domain.ErrDuplicateArticle
	}
	if err != nil {
		return 0, fmt.Errorf("insert submission: %w", err)
	}

	return id, nil
}

// ListPublishedByVotes returns the period's published articles ranked by
// vote count, ties broken by interest score.
func (s *ArticleStore) ListPublishedByVotes(ctx context.Context, periodID int64) ([]domain.Article, error) {
	query := `
		SELECT id, title, total_votes, interest_score, status,
		       voting_period_id, weekly_rank, is_story_of_week,
		       source_url, source_name, published_at
		FROM news_articles
		WHERE voting_period_id = $1 AND status = 'published'
		ORDER BY total_votes DESC, interest_score DESC`

	var articles []domain.Article
	err := sqlx.SelectContext(ctx, executor(ctx, s.db), &articles, query, periodID)
	return articles, err
}

// SetWinner records an article's weekly rank; only rank 1 is the story of
// the week.
func (s *ArticleStore) SetWinner(ctx context.Context, id int64, rank int, storyOfWeek bool) error {
	_, err := executor(ctx, s.db).ExecContext(ctx,
		"UPDATE news_articles SET weekly_rank = $2, is_story_of_week = $3 WHERE id = $1",
		id, rank, storyOfWeek,
	)
	return err
}

// ArchiveByIDs moves non-winning articles out of circulation in one batch.
func (s *ArticleStore) ArchiveByIDs(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	_, err := executor(ctx, s.db).ExecContext(ctx,
		"UPDATE news_articles SET status = 'archived', published = FALSE WHERE id = ANY($1)",
		pq.Array(ids),
	)
	return err
}

// GetByIDs loads articles by id, preserving no particular order.
func (s *ArticleStore) GetByIDs(ctx context.Context, ids []int64) ([]domain.Article, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, title, total_votes, interest_score, status,
		       voting_period_id, weekly_rank, is_story_of_week,
		       source_url, source_name, published_at
		FROM news_articles
		WHERE id = ANY($1)`

	var articles []domain.Article
	err := sqlx.SelectContext(ctx, executor(ctx, s.db), &articles, query, pq.Array(ids))
	return articles, err
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// readTime estimates reading time at 200 words per minute, one minute
// minimum.
func readTime(content string) string {
	words := len(strings.Fields(content))
	minutes := (words + 199) / 200
	if minutes < 1 {
		minutes = 1
	}
	return fmt.Sprintf("%d min read", minutes)
}
