package relevance

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type RelevanceTestSuite struct {
	suite.Suite
}

func TestRelevanceTestSuite(t *testing.T) {
	suite.Run(t, new(RelevanceTestSuite))
}

func (s *RelevanceTestSuite) TestScore_NeutralText() {
	score := Score("Stock markets rise", "Shares climbed today on strong earnings.")
	s.Equal(30, score)
}

func (s *RelevanceTestSuite) TestScore_HighKeywordStacksWithMedium() {
	// "black queer" scores as a high keyword and "queer" again as a medium one.
	score := Score("Black queer artists celebrate new exhibition", "A showcase of emerging voices.")
	s.Equal(30+15+8, score)
}

func (s *RelevanceTestSuite) TestScore_UKBonusAppliedOnce() {
	withLondon := Score("Black queer artists celebrate in London", "A showcase of emerging voices.")
	s.Equal(30+15+8+10, withLondon)

	// A second locale keyword must not add a second bonus.
	withBoth := Score("Black queer artists celebrate in London and across Britain", "A showcase of emerging voices.")
	s.Equal(withLondon, withBoth)
}

func (s *RelevanceTestSuite) TestScore_MediumAndLowKeywords() {
	// medium: pride. low: equality, rights.
	score := Score("Pride march calls for equality", "Campaigners demanded equal rights and workplace protections.")
	s.Equal(30+8+3+3, score)
}

func (s *RelevanceTestSuite) TestScore_ClampedAtHundred() {
	title := "black queer black gay black lgbtq black trans qtipoc blkout"
	// 6 high matches plus the medium overlaps push the raw total past 100.
	s.Equal(100, Score(title, ""))
}

func (s *RelevanceTestSuite) TestScore_CaseInsensitive() {
	s.Equal(
		Score("BLACK QUEER VOICES", "PRIDE IN LONDON"),
		Score("black queer voices", "pride in london"),
	)
}

func (s *RelevanceTestSuite) TestCategorize_TwoMatchesRequired() {
	// "film" alone is a single culture match, not enough.
	s.Equal(DefaultCategory, Categorize("A new film premieres", "Critics were impressed."))

	s.Equal("culture", Categorize("A new film premieres", "The soundtrack pairs music with bold fashion."))
}

func (s *RelevanceTestSuite) TestCategorize_FirstCategoryWins() {
	// Both liberation (protest, rights) and politics (law, parliament) reach
	// two matches; liberation is checked first.
	got := Categorize("New law on protest rights passes parliament", "")
	s.Equal("liberation", got)
}

func (s *RelevanceTestSuite) TestCategorize_Health() {
	s.Equal("health", Categorize("Mental health clinic opens", "Free therapy sessions for young people."))
}

func (s *RelevanceTestSuite) TestCategorize_DefaultsToCommunity() {
	s.Equal("community", Categorize("Stock markets rise today", "Shares climbed on strong earnings."))
}
