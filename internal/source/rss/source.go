package rss

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"

	"newsroom/internal/domain"
	"newsroom/internal/relevance"
	"newsroom/internal/urlhash"
)

// maxItemsPerFeed caps how much of each feed one run considers.
const maxItemsPerFeed = 20

// Source fetches candidates from a single RSS/Atom feed.
type Source struct {
	feed   FeedSource
	parser *gofeed.Parser
	logger *slog.Logger
}

// Config holds RSS source configuration.
type Config struct {
	Timeout time.Duration
}

// New creates a source for one configured feed.
func New(feed FeedSource, cfg Config, logger *slog.Logger) *Source {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: timeout}
	parser.UserAgent = "BLKOUTNewsroom/1.0"

	return &Source{
		feed:   feed,
		parser: parser,
		logger: logger.With("source", feed.Name),
	}
}

// ID returns the source identifier.
func (s *Source) ID() string {
	return "rss:" + strings.ToLower(strings.ReplaceAll(s.feed.Name, " ", "-"))
}

// Name returns the human-readable feed name.
func (s *Source) Name() string {
	return s.feed.Name
}

// Fetch parses the feed and returns scored candidates.
func (s *Source) Fetch(ctx context.Context) ([]domain.Candidate, error) {
	feed, err := s.parser.ParseURLWithContext(s.feed.FeedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", s.feed.FeedURL, err)
	}

	items := feed.Items
	if len(items) > maxItemsPerFeed {
		items = items[:maxItemsPerFeed]
	}

	candidates := make([]domain.Candidate, 0, len(items))
	for _, item := range items {
		if item.Link == "" || item.Title == "" {
			continue
		}
		candidates = append(candidates, s.transform(item))
	}

	s.logger.Debug("fetched feed", "items", len(feed.Items), "candidates", len(candidates))

	return candidates, nil
}

func (s *Source) transform(item *gofeed.Item) domain.Candidate {
	content := CleanHTML(firstNonEmpty(item.Content, item.Description))
	excerpt := Excerpt(CleanHTML(firstNonEmpty(item.Description, item.Content)))

	title := strings.TrimSpace(item.Title)

	publishedAt := time.Now()
	if item.PublishedParsed != nil {
		publishedAt = *item.PublishedParsed
	}

	candidate := domain.Candidate{
		Title:          title,
		Excerpt:        excerpt,
		Content:        content,
		SourceURL:      item.Link,
		SourceName:     s.feed.Name,
		Author:         ExtractAuthor(item, s.feed.Name),
		PublishedAt:    publishedAt,
		ImageAlt:       &title,
		Category:       s.feed.Category,
		RelevanceScore: relevance.Score(item.Title, content),
		URLHash:        urlhash.Hash(item.Link),
		Tags:           s.feed.Tags,
	}

	if image, ok := ExtractImage(item); ok {
		candidate.FeaturedImage = &image
	}

	return candidate
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
