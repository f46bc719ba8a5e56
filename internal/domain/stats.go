package domain

import "time"

// IngestStats holds statistics about one ingestion run.
type IngestStats struct {
	TotalFetched      int           `json:"totalFetched"`
	AfterDedup        int           `json:"afterDedup"`
	AfterFilter       int           `json:"afterFilter"`
	Sources           int           `json:"sources"`
	NewArticles       int           `json:"newArticles"`
	SkippedDuplicates int           `json:"skippedDuplicates"`
	Duration          time.Duration `json:"-"`
}

// Winner is one of the up-to-three top articles of a closed period.
type Winner struct {
	Rank  int    `json:"rank"`
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Votes int    `json:"votes"`
}

// PeriodSummary describes the period a rotation closed.
type PeriodSummary struct {
	PeriodNumber     int      `json:"periodNumber"`
	TotalArticles    int      `json:"totalArticles"`
	TotalVotes       int      `json:"totalVotes"`
	Winners          []Winner `json:"winners"`
	ArticlesArchived int      `json:"articlesArchived"`
}

// NewPeriodSummary describes the period a rotation opened.
type NewPeriodSummary struct {
	PeriodNumber int       `json:"periodNumber"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
}

// RotationResult is the outcome of one successful rotation.
type RotationResult struct {
	ArchivedPeriod PeriodSummary    `json:"archivedPeriod"`
	NewPeriod      NewPeriodSummary `json:"newPeriod"`
}
