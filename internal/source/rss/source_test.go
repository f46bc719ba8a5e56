package rss

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const testFeedXML = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:dc="http://purl.org/dc/elements/1.1/">
<channel>
  <title>Test Feed</title>
  <link>https://example.com</link>
  <item>
    <title>  Black queer artists celebrate in London  </title>
    <link>https://example.com/article-1</link>
    <description>&lt;p&gt;A &amp;amp; B showcase&lt;/p&gt;</description>
    <dc:creator>Jordan Writer</dc:creator>
    <pubDate>Mon, 05 Jan 2026 10:00:00 GMT</pubDate>
  </item>
  <item>
    <title>Missing link item</title>
  </item>
  <item>
    <title>Plain item</title>
    <link>https://example.com/article-2</link>
  </item>
</channel>
</rss>`

type SourceTestSuite struct {
	suite.Suite
	server *httptest.Server
	source *Source
}

func (s *SourceTestSuite) SetupTest() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = io.WriteString(w, testFeedXML)
	}))

	feed := FeedSource{
		Name:     "Test Feed",
		FeedURL:  s.server.URL,
		Category: "community",
		Tags:     []string{"test"},
		Priority: PriorityHigh,
		Active:   true,
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.source = New(feed, Config{Timeout: 5 * time.Second}, logger)
}

func (s *SourceTestSuite) TearDownTest() {
	s.server.Close()
}

func TestSourceTestSuite(t *testing.T) {
	suite.Run(t, new(SourceTestSuite))
}

func (s *SourceTestSuite) TestID() {
	s.Equal("rss:test-feed", s.source.ID())
	s.Equal("Test Feed", s.source.Name())
}

func (s *SourceTestSuite) TestFetch_SkipsItemsWithoutLink() {
	candidates, err := s.source.Fetch(context.Background())
	s.Require().NoError(err)
	s.Len(candidates, 2)
}

func (s *SourceTestSuite) TestFetch_TransformsItem() {
	candidates, err := s.source.Fetch(context.Background())
	s.Require().NoError(err)
	s.Require().NotEmpty(candidates)

	c := candidates[0]
	s.Equal("Black queer artists celebrate in London", c.Title)
	s.Equal("https://example.com/article-1", c.SourceURL)
	s.Equal("Test Feed", c.SourceName)
	s.Equal("Jordan Writer", c.Author)
	s.Equal("A & B showcase", c.Content)
	s.Equal("A & B showcase", c.Excerpt)
	s.Equal("community", c.Category)
	s.Equal([]string{"test"}, c.Tags)
	s.Equal(time.Date(2026, 1, 5, 10, 0, 0, 0, time.UTC), c.PublishedAt.UTC())
	s.NotEmpty(c.URLHash)
	s.Greater(c.RelevanceScore, 50)
}

func (s *SourceTestSuite) TestFetch_MissingDateDefaultsToNow() {
	candidates, err := s.source.Fetch(context.Background())
	s.Require().NoError(err)
	s.Require().Len(candidates, 2)

	plain := candidates[1]
	s.Equal("Plain item", plain.Title)
	s.WithinDuration(time.Now(), plain.PublishedAt, time.Minute)
}

func (s *SourceTestSuite) TestFetch_FeedError() {
	s.server.Close()
	_, err := s.source.Fetch(context.Background())
	s.Error(err)
}
