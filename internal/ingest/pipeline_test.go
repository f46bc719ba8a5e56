package ingest

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"newsroom/internal/domain"
	"newsroom/internal/ingest/mocks"
)

type PipelineTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	logger *slog.Logger
}

func (s *PipelineTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func (s *PipelineTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestPipelineTestSuite(t *testing.T) {
	suite.Run(t, new(PipelineTestSuite))
}

func (s *PipelineTestSuite) newSource(id string, candidates []domain.Candidate, err error) *mocks.MockSource {
	src := mocks.NewMockSource(s.ctrl)
	src.EXPECT().ID().Return(id).AnyTimes()
	src.EXPECT().Name().Return(id).AnyTimes()
	src.EXPECT().Fetch(gomock.Any()).Return(candidates, err).AnyTimes()
	return src
}

func candidate(hash string, score int, publishedAt time.Time) domain.Candidate {
	return domain.Candidate{
		Title:          "article " + hash,
		SourceURL:      "https://example.com/" + hash,
		URLHash:        hash,
		RelevanceScore: score,
		PublishedAt:    publishedAt,
	}
}

func (s *PipelineTestSuite) TestFetchAll_MergesSources() {
	now := time.Now()
	a := s.newSource("a", []domain.Candidate{candidate("h1", 60, now)}, nil)
	b := s.newSource("b", []domain.Candidate{candidate("h2", 70, now)}, nil)

	p := NewPipeline([]Source{a, b}, nil, nil, 0, s.logger)
	result := p.FetchAll(context.Background())

	s.Equal(2, result.TotalFetched)
	s.Equal(2, result.AfterDedup)
	s.Equal(2, result.AfterFilter)
	s.Equal(2, result.Sources)
	s.Len(result.Candidates, 2)
}

func (s *PipelineTestSuite) TestFetchAll_SourceFailureContained() {
	now := time.Now()
	good := s.newSource("good", []domain.Candidate{candidate("h1", 60, now)}, nil)
	bad := s.newSource("bad", nil, errors.New("connection refused"))

	p := NewPipeline([]Source{good, bad}, nil, nil, 0, s.logger)
	result := p.FetchAll(context.Background())

	s.Equal(1, result.TotalFetched)
	s.Len(result.Candidates, 1)
}

func (s *PipelineTestSuite) TestFetchAll_DeduplicatesByURLHash() {
	now := time.Now()
	a := s.newSource("a", []domain.Candidate{candidate("same", 60, now), candidate("h2", 60, now)}, nil)
	b := s.newSource("b", []domain.Candidate{candidate("same", 60, now)}, nil)

	p := NewPipeline([]Source{a, b}, nil, nil, 0, s.logger)
	result := p.FetchAll(context.Background())

	s.Equal(3, result.TotalFetched)
	s.Equal(2, result.AfterDedup)
}

func (s *PipelineTestSuite) TestFetchAll_FilterBoundary() {
	now := time.Now()
	src := s.newSource("a", []domain.Candidate{
		candidate("keep", 35, now),
		candidate("drop", 34, now),
	}, nil)

	p := NewPipeline([]Source{src}, nil, nil, 35, s.logger)
	result := p.FetchAll(context.Background())

	s.Equal(1, result.AfterFilter)
	s.Require().Len(result.Candidates, 1)
	s.Equal("keep", result.Candidates[0].URLHash)
}

func (s *PipelineTestSuite) TestFetchAll_SortRecencyWinsInsideTieband() {
	older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)

	// Scores 50 and 55 are within the tieband, so the newer article leads
	// despite its lower score.
	src := s.newSource("a", []domain.Candidate{
		candidate("b", 55, older),
		candidate("a", 50, newer),
	}, nil)

	p := NewPipeline([]Source{src}, nil, nil, 0, s.logger)
	result := p.FetchAll(context.Background())

	s.Require().Len(result.Candidates, 2)
	s.Equal("a", result.Candidates[0].URLHash)
	s.Equal("b", result.Candidates[1].URLHash)
}

func (s *PipelineTestSuite) TestFetchAll_SortScoreWinsOutsideTieband() {
	older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	// A 15-point gap exceeds the tieband; the higher score leads even
	// though it is older.
	src := s.newSource("a", []domain.Candidate{
		candidate("d", 55, newer),
		candidate("c", 70, older),
	}, nil)

	p := NewPipeline([]Source{src}, nil, nil, 0, s.logger)
	result := p.FetchAll(context.Background())

	s.Require().Len(result.Candidates, 2)
	s.Equal("c", result.Candidates[0].URLHash)
	s.Equal("d", result.Candidates[1].URLHash)
}

func (s *PipelineTestSuite) TestFetchAll_SearchSourceIncluded() {
	now := time.Now()
	feed := s.newSource("feed", []domain.Candidate{candidate("h1", 60, now)}, nil)
	search := s.newSource("newsapi", []domain.Candidate{candidate("h2", 60, now)}, nil)

	p := NewPipeline([]Source{feed}, nil, search, 0, s.logger)
	result := p.FetchAll(context.Background())

	s.Equal(2, result.TotalFetched)
	s.Equal(2, result.Sources)
}

func (s *PipelineTestSuite) TestFetchHighPriority_NoFilter() {
	now := time.Now()
	src := s.newSource("high", []domain.Candidate{
		candidate("low-score", 10, now),
		candidate("low-score", 10, now),
	}, nil)

	p := NewPipeline(nil, []Source{src}, nil, 35, s.logger)
	result := p.FetchHighPriority(context.Background())

	// Deduplicated but not relevance-filtered.
	s.Equal(2, result.TotalFetched)
	s.Len(result.Candidates, 1)
	s.Equal(10, result.Candidates[0].RelevanceScore)
}
