package rss

import (
	"regexp"
	"strings"

	"github.com/mmcdole/gofeed"
)

var inlineImagePattern = regexp.MustCompile(`<img[^>]+src="([^"]+)"`)

// imageExtractor tries one way of resolving an item's featured image.
type imageExtractor func(*gofeed.Item) (string, bool)

// imageExtractors are tried in order; the first hit wins.
var imageExtractors = []imageExtractor{
	mediaContentImage,
	mediaThumbnailImage,
	enclosureImage,
	inlineImage,
}

// ExtractImage resolves an item's featured image, if any.
func ExtractImage(item *gofeed.Item) (string, bool) {
	for _, extract := range imageExtractors {
		if url, ok := extract(item); ok {
			return url, true
		}
	}
	return "", false
}

func mediaContentImage(item *gofeed.Item) (string, bool) {
	return mediaExtensionURL(item, "content")
}

func mediaThumbnailImage(item *gofeed.Item) (string, bool) {
	return mediaExtensionURL(item, "thumbnail")
}

func mediaExtensionURL(item *gofeed.Item, name string) (string, bool) {
	media, ok := item.Extensions["media"]
	if !ok {
		return "", false
	}
	for _, ext := range media[name] {
		if url := ext.Attrs["url"]; url != "" {
			return url, true
		}
	}
	return "", false
}

func enclosureImage(item *gofeed.Item) (string, bool) {
	for _, enc := range item.Enclosures {
		if enc.URL != "" && strings.HasPrefix(enc.Type, "image") {
			return enc.URL, true
		}
	}
	return "", false
}

func inlineImage(item *gofeed.Item) (string, bool) {
	if item.Content == "" {
		return "", false
	}
	match := inlineImagePattern.FindStringSubmatch(item.Content)
	if match == nil {
		return "", false
	}
	return match[1], true
}

// ExtractAuthor resolves an item's author: dc:creator, then the item author
// field, then the source name.
func ExtractAuthor(item *gofeed.Item, sourceName string) string {
	if dc := item.DublinCoreExt; dc != nil {
		for _, creator := range dc.Creator {
			if creator != "" {
				return creator
			}
		}
	}
	for _, author := range item.Authors {
		if author != nil && author.Name != "" {
			return author.Name
		}
	}
	return sourceName
}
