package ingest

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"newsroom/internal/domain"
	"newsroom/internal/relevance"
)

// scoreTieband is the score distance within which two candidates count as
// tied and recency decides their order.
const scoreTieband = 10

// Pipeline fetches candidates from all configured sources and reduces them
// to a deduplicated, relevance-filtered, sorted list.
type Pipeline struct {
	sources      []Source
	highPriority []Source
	search       Source
	minScore     int
	logger       *slog.Logger
}

// FetchResult is the output of one pipeline run.
type FetchResult struct {
	Candidates   []domain.Candidate
	TotalFetched int
	AfterDedup   int
	AfterFilter  int
	Sources      int
}

// NewPipeline assembles a pipeline. search may be nil when no key is
// configured; highPriority is the subset of sources used by the quick-update
// entry point.
func NewPipeline(sources, highPriority []Source, search Source, minScore int, logger *slog.Logger) *Pipeline {
	if minScore == 0 {
		minScore = relevance.DefaultMinScore
	}
	return &Pipeline{
		sources:      sources,
		highPriority: highPriority,
		search:       search,
		minScore:     minScore,
		logger:       logger.With("component", "pipeline"),
	}
}

// FetchAll runs every source and returns the surviving candidates. Source
// failures are contained: a failed source contributes nothing and the run
// still completes.
func (p *Pipeline) FetchAll(ctx context.Context) FetchResult {
	all := p.fetchConcurrent(ctx, p.sources)

	if p.search != nil {
		fromSearch, err := p.search.Fetch(ctx)
		if err != nil {
			p.logger.Error("search fetch failed", "source", p.search.ID(), "error", err)
		}
		all = append(all, fromSearch...)
	}

	deduped := deduplicate(all, p.logger)
	filtered := filterByScore(deduped, p.minScore)
	sortCandidates(filtered)

	p.logger.Info("pipeline run complete",
		"fetched", len(all),
		"after_dedup", len(deduped),
		"after_filter", len(filtered),
	)

	sources := len(p.sources)
	if p.search != nil {
		sources++
	}

	return FetchResult{
		Candidates:   filtered,
		TotalFetched: len(all),
		AfterDedup:   len(deduped),
		AfterFilter:  len(filtered),
		Sources:      sources,
	}
}

// FetchHighPriority runs only the high-priority sources, deduplicated but
// unfiltered.
func (p *Pipeline) FetchHighPriority(ctx context.Context) FetchResult {
	all := p.fetchConcurrent(ctx, p.highPriority)
	deduped := deduplicate(all, p.logger)

	return FetchResult{
		Candidates:   deduped,
		TotalFetched: len(all),
		AfterDedup:   len(deduped),
		AfterFilter:  len(deduped),
		Sources:      len(p.highPriority),
	}
}

// fetchConcurrent runs each source in its own goroutine. Every source writes
// only its own result slot, so no locking is needed.
func (p *Pipeline) fetchConcurrent(ctx context.Context, sources []Source) []domain.Candidate {
	results := make([][]domain.Candidate, len(sources))

	var wg sync.WaitGroup
	for i, src := range sources {
		wg.Add(1)
		go func(i int, src Source) {
			defer wg.Done()
			candidates, err := src.Fetch(ctx)
			if err != nil {
				p.logger.Error("source fetch failed", "source", src.ID(), "error", err)
				return
			}
			results[i] = candidates
		}(i, src)
	}
	wg.Wait()

	var all []domain.Candidate
	for _, r := range results {
		all = append(all, r...)
	}
	return all
}

// deduplicate drops later candidates carrying an already-seen URL hash.
func deduplicate(candidates []domain.Candidate, logger *slog.Logger) []domain.Candidate {
	seen := make(map[string]struct{}, len(candidates))
	unique := make([]domain.Candidate, 0, len(candidates))

	for _, c := range candidates {
		if _, ok := seen[c.URLHash]; ok {
			continue
		}
		seen[c.URLHash] = struct{}{}
		unique = append(unique, c)
	}

	if dropped := len(candidates) - len(unique); dropped > 0 {
		logger.Debug("dropped duplicates", "count", dropped)
	}

	return unique
}

func filterByScore(candidates []domain.Candidate, minScore int) []domain.Candidate {
	filtered := make([]domain.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if c.RelevanceScore >= minScore {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// sortCandidates orders by relevance score descending, except that scores
// within scoreTieband of each other count as equal and the more recent
// candidate comes first.
func sortCandidates(candidates []domain.Candidate) {
	sort.Slice(candidates, func(i, j int) bool {
		diff := candidates[i].RelevanceScore - candidates[j].RelevanceScore
		if diff > scoreTieband || diff < -scoreTieband {
			return diff > 0
		}
		return candidates[i].PublishedAt.After(candidates[j].PublishedAt)
	})
}
