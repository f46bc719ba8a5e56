package domain

import "errors"

var (
	// ErrDuplicateArticle reports an insert that lost to an article already
	// holding the same URL hash. Expected during ingestion, not a failure.
	ErrDuplicateArticle = errors.New("article already exists")

	// ErrNoActivePeriod reports a rotation attempt with no active voting
	// period to close.
	ErrNoActivePeriod = errors.New("no active voting period")
)
