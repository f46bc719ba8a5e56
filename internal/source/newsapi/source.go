package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"newsroom/internal/domain"
	"newsroom/internal/relevance"
	"newsroom/internal/urlhash"
)

const (
	SourceID   = "newsapi"
	SourceName = "NewsAPI"

	defaultBaseURL = "https://newsapi.org/v2/everything"

	// removedSentinel marks articles NewsAPI has withdrawn but still lists.
	removedSentinel = "[Removed]"
)

// Config holds NewsAPI source configuration.
type Config struct {
	BaseURL    string
	APIKey     string
	MaxQueries int
	PageSize   int
	QueryDelay time.Duration
	Timeout    time.Duration
}

// Source fetches candidates from the NewsAPI keyword search. Queries run
// sequentially with a fixed pause between requests to stay inside the
// upstream rate limit.
type Source struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	maxQueries int
	pageSize   int
	queryDelay time.Duration
	logger     *slog.Logger
}

// New creates a NewsAPI source. An empty API key yields a source whose
// Fetch returns no candidates; that is a configuration state, not an error.
func New(cfg Config, logger *slog.Logger) *Source {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.MaxQueries == 0 {
		cfg.MaxQueries = 5
	}
	if cfg.PageSize == 0 {
		cfg.PageSize = 10
	}
	if cfg.QueryDelay == 0 {
		cfg.QueryDelay = 200 * time.Millisecond
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}

	return &Source{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		maxQueries: cfg.MaxQueries,
		pageSize:   cfg.PageSize,
		queryDelay: cfg.QueryDelay,
		logger:     logger.With("source", SourceID),
	}
}

// ID returns the source identifier.
func (s *Source) ID() string {
	return SourceID
}

// Name returns the human-readable name.
func (s *Source) Name() string {
	return SourceName
}

// Enabled reports whether an API key is configured.
func (s *Source) Enabled() bool {
	return s.apiKey != ""
}

// Fetch runs the configured keyword queries. Individual query failures are
// logged and skipped; the remaining queries still run.
func (s *Source) Fetch(ctx context.Context) ([]domain.Candidate, error) {
	if !s.Enabled() {
		s.logger.Info("no api key configured, skipping")
		return nil, nil
	}

	queries := Queries
	if len(queries) > s.maxQueries {
		queries = queries[:s.maxQueries]
	}

	var candidates []domain.Candidate

	for i, q := range queries {
		if i > 0 {
			select {
			case <-ctx.Done():
				return candidates, ctx.Err()
			case <-time.After(s.queryDelay):
			}
		}

		resp, err := s.search(ctx, q.Query)
		if err != nil {
			s.logger.Error("query failed", "query", q.Query, "error", err)
			continue
		}

		for _, item := range resp.Articles {
			if item.URL == "" || item.Title == "" || item.Title == removedSentinel {
				continue
			}
			candidates = append(candidates, s.transform(item, q))
		}
	}

	s.logger.Info("fetched from newsapi", "candidates", len(candidates))

	return candidates, nil
}

func (s *Source) search(ctx context.Context, query string) (*APIResponse, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("pageSize", fmt.Sprintf("%d", s.pageSize))
	params.Set("apiKey", s.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "BLKOUTNewsroom/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var apiResp APIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}

	return &apiResp, nil
}

func (s *Source) transform(item APIArticle, q Query) domain.Candidate {
	content := item.Content
	if content == "" {
		content = item.Description
	}

	excerpt := item.Description
	if excerpt == "" && len(content) > 300 {
		excerpt = content[:300]
	} else if excerpt == "" {
		excerpt = content
	}

	sourceName := item.Source.Name
	if sourceName == "" {
		sourceName = SourceName
	}

	author := item.Author
	if author == "" {
		author = sourceName
	}

	publishedAt := time.Now()
	if item.PublishedAt != "" {
		if parsed, err := time.Parse(time.RFC3339, item.PublishedAt); err == nil {
			publishedAt = parsed
		}
	}

	candidate := domain.Candidate{
		Title:          item.Title,
		Excerpt:        excerpt,
		Content:        content,
		SourceURL:      item.URL,
		SourceName:     sourceName,
		Author:         author,
		PublishedAt:    publishedAt,
		ImageAlt:       &item.Title,
		Category:       q.Category,
		RelevanceScore: relevance.Score(item.Title, content),
		URLHash:        urlhash.Hash(item.URL),
		Tags:           []string{"newsapi", q.Category},
	}

	if item.URLToImage != "" {
		candidate.FeaturedImage = &item.URLToImage
	}

	return candidate
}
