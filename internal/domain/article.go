package domain

import "time"

// Candidate is an article fetched from a feed or search API, scored and
// normalized but not yet persisted. Identity is the URLHash only; the store
// assigns primary keys on insert.
type Candidate struct {
	Title          string
	Excerpt        string
	Content        string
	SourceURL      string
	SourceName     string
	Author         string
	PublishedAt    time.Time
	FeaturedImage  *string
	ImageAlt       *string
	Category       string
	RelevanceScore int
	URLHash        string
	Tags           []string
}

// Submission is a community-submitted article awaiting moderation.
type Submission struct {
	Title       string
	SourceURL   string
	Excerpt     string
	Category    string
	Content     string
	SubmittedBy string
	URLHash     string
}

// Article statuses as stored in news_articles.status.
const (
	StatusPublished = "published"
	StatusArchived  = "archived"
	StatusReview    = "review"
)

// Article holds the persisted fields the ingestion and rotation jobs read
// and write. The full row carries more columns owned by the newsroom UI.
type Article struct {
	ID             int64     `db:"id"`
	Title          string    `db:"title"`
	TotalVotes     int       `db:"total_votes"`
	InterestScore  int       `db:"interest_score"`
	Status         string    `db:"status"`
	VotingPeriodID *int64    `db:"voting_period_id"`
	WeeklyRank     *int      `db:"weekly_rank"`
	IsStoryOfWeek  bool      `db:"is_story_of_week"`
	SourceURL      string    `db:"source_url"`
	SourceName     string    `db:"source_name"`
	PublishedAt    time.Time `db:"published_at"`
}
