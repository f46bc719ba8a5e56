package rss

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type SanitizeTestSuite struct {
	suite.Suite
}

func TestSanitizeTestSuite(t *testing.T) {
	suite.Run(t, new(SanitizeTestSuite))
}

func (s *SanitizeTestSuite) TestCleanHTML_StripsTags() {
	got := CleanHTML(`<p>Hello <a href="https://example.com">world</a></p>`)
	s.Equal("Hello world", got)
}

func (s *SanitizeTestSuite) TestCleanHTML_DecodesEntities() {
	got := CleanHTML("Fish &amp; Chips &lt;tonight&gt; &quot;hot&quot;&nbsp;now")
	s.Equal(`Fish & Chips <tonight> "hot" now`, got)
}

func (s *SanitizeTestSuite) TestCleanHTML_CollapsesWhitespace() {
	got := CleanHTML("one\n\n  two\t\tthree")
	s.Equal("one two three", got)
}

func (s *SanitizeTestSuite) TestCleanHTML_Empty() {
	s.Equal("", CleanHTML(""))
}

func (s *SanitizeTestSuite) TestExcerpt_ShortTextUntouched() {
	s.Equal("short text", Excerpt("short text"))
}

func (s *SanitizeTestSuite) TestExcerpt_Boundary() {
	under := strings.Repeat("a", ExcerptLength-1)
	s.Equal(under, Excerpt(under))

	at := strings.Repeat("a", ExcerptLength)
	s.Equal(at+"...", Excerpt(at))

	over := strings.Repeat("a", ExcerptLength+50)
	got := Excerpt(over)
	s.Equal(ExcerptLength+3, len(got))
	s.True(strings.HasSuffix(got, "..."))
}

func (s *SanitizeTestSuite) TestExcerpt_RuneSafe() {
	text := strings.Repeat("é", ExcerptLength+10)
	got := Excerpt(text)
	s.Equal(strings.Repeat("é", ExcerptLength)+"...", got)
}
