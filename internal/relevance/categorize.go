package relevance

import "strings"

// DefaultCategory is used when no keyword category reaches two matches.
const DefaultCategory = "community"

type categoryKeywords struct {
	Category string
	Keywords []string
}

// CategoryKeywords lists newsroom categories with their trigger keywords.
// Order matters: the first category reaching two matches wins.
var CategoryKeywords = []categoryKeywords{
	{"liberation", []string{"liberation", "freedom", "justice", "activism", "protest", "rights", "equality"}},
	{"community", []string{"community", "celebration", "pride", "gathering", "event", "meetup"}},
	{"politics", []string{"law", "policy", "government", "parliament", "legislation", "vote", "election"}},
	{"culture", []string{"art", "music", "film", "theatre", "book", "fashion", "entertainment"}},
	{"health", []string{"health", "mental", "wellbeing", "hiv", "prep", "clinic", "therapy"}},
	{"technology", []string{"tech", "digital", "app", "online", "social media", "platform"}},
	{"features", []string{"interview", "profile", "story", "feature", "spotlight"}},
}

// Categorize picks the first category with at least two keyword matches in
// title + content, falling back to DefaultCategory.
func Categorize(title, content string) string {
	text := strings.ToLower(title + " " + content)

	for _, ck := range CategoryKeywords {
		matches := 0
		for _, kw := range ck.Keywords {
			if strings.Contains(text, kw) {
				matches++
			}
		}
		if matches >= 2 {
			return ck.Category
		}
	}

	return DefaultCategory
}
