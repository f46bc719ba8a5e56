package rss

import (
	"regexp"
	"strings"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)

	entityReplacer = strings.NewReplacer(
		"&nbsp;", " ",
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
	)
)

// ExcerptLength is the cap applied to article excerpts.
const ExcerptLength = 300

// CleanHTML strips tags, decodes the common entities feeds actually emit,
// and collapses whitespace.
func CleanHTML(html string) string {
	if html == "" {
		return ""
	}
	text := tagPattern.ReplaceAllString(html, " ")
	text = entityReplacer.Replace(text)
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Excerpt truncates cleaned text to ExcerptLength characters, marking
// truncation with a trailing ellipsis.
func Excerpt(text string) string {
	runes := []rune(text)
	if len(runes) < ExcerptLength {
		return text
	}
	return string(runes[:ExcerptLength]) + "..."
}
