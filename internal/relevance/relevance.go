// Package relevance scores candidate articles against the newsroom's
// editorial focus: Black QTIPOC+ and UK LGBTQ+ community news.
package relevance

import "strings"

// Keyword sets and weights are fixed for behavioral parity across runs.
// Matching is case-insensitive substring matching over title + content.
var (
	HighKeywords = []string{"black queer", "black gay", "black lgbtq", "black trans", "qtipoc", "blkout"}

	MediumKeywords = []string{"lgbtq", "queer", "gay", "lesbian", "trans", "bisexual", "pride"}

	LowKeywords = []string{"diversity", "inclusion", "equality", "rights"}

	// UKKeywords give a flat locale bonus when any one appears.
	UKKeywords = []string{"uk", "britain", "london"}
)

const (
	baseScore    = 30
	highWeight   = 15
	mediumWeight = 8
	lowWeight    = 3
	ukBonus      = 10

	// DefaultMinScore is the ingestion pipeline's default filter threshold.
	DefaultMinScore = 35
)

// Score computes a 0-100 relevance score for an article.
func Score(title, content string) int {
	text := strings.ToLower(title + " " + content)

	score := baseScore
	for _, kw := range HighKeywords {
		if strings.Contains(text, kw) {
			score += highWeight
		}
	}
	for _, kw := range MediumKeywords {
		if strings.Contains(text, kw) {
			score += mediumWeight
		}
	}
	for _, kw := range LowKeywords {
		if strings.Contains(text, kw) {
			score += lowWeight
		}
	}
	for _, kw := range UKKeywords {
		if strings.Contains(text, kw) {
			score += ukBonus
			break
		}
	}

	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}
