package rss

import (
	"testing"

	"github.com/mmcdole/gofeed"
	ext "github.com/mmcdole/gofeed/extensions"
	"github.com/stretchr/testify/suite"
)

type ExtractTestSuite struct {
	suite.Suite
}

func TestExtractTestSuite(t *testing.T) {
	suite.Run(t, new(ExtractTestSuite))
}

func mediaItem(name, url string) *gofeed.Item {
	return &gofeed.Item{
		Extensions: ext.Extensions{
			"media": {
				name: []ext.Extension{
					{Name: name, Attrs: map[string]string{"url": url}},
				},
			},
		},
	}
}

func (s *ExtractTestSuite) TestExtractImage_MediaContent() {
	url, ok := ExtractImage(mediaItem("content", "https://cdn.example.com/a.jpg"))
	s.True(ok)
	s.Equal("https://cdn.example.com/a.jpg", url)
}

func (s *ExtractTestSuite) TestExtractImage_MediaThumbnail() {
	url, ok := ExtractImage(mediaItem("thumbnail", "https://cdn.example.com/thumb.jpg"))
	s.True(ok)
	s.Equal("https://cdn.example.com/thumb.jpg", url)
}

func (s *ExtractTestSuite) TestExtractImage_Enclosure() {
	item := &gofeed.Item{
		Enclosures: []*gofeed.Enclosure{
			{URL: "https://cdn.example.com/audio.mp3", Type: "audio/mpeg"},
			{URL: "https://cdn.example.com/photo.jpg", Type: "image/jpeg"},
		},
	}
	url, ok := ExtractImage(item)
	s.True(ok)
	s.Equal("https://cdn.example.com/photo.jpg", url)
}

func (s *ExtractTestSuite) TestExtractImage_InlineImg() {
	item := &gofeed.Item{
		Content: `<p>Intro</p><img class="hero" src="https://cdn.example.com/inline.png" alt="">`,
	}
	url, ok := ExtractImage(item)
	s.True(ok)
	s.Equal("https://cdn.example.com/inline.png", url)
}

func (s *ExtractTestSuite) TestExtractImage_PrecedenceOrder() {
	// media:content outranks enclosure and inline images.
	item := mediaItem("content", "https://cdn.example.com/media.jpg")
	item.Enclosures = []*gofeed.Enclosure{{URL: "https://cdn.example.com/enc.jpg", Type: "image/jpeg"}}
	item.Content = `<img src="https://cdn.example.com/inline.jpg">`

	url, ok := ExtractImage(item)
	s.True(ok)
	s.Equal("https://cdn.example.com/media.jpg", url)
}

func (s *ExtractTestSuite) TestExtractImage_None() {
	_, ok := ExtractImage(&gofeed.Item{Content: "<p>no pictures here</p>"})
	s.False(ok)
}

func (s *ExtractTestSuite) TestExtractAuthor_DublinCore() {
	item := &gofeed.Item{
		DublinCoreExt: &ext.DublinCoreExtension{Creator: []string{"Jordan Writer"}},
		Authors:       []*gofeed.Person{{Name: "Fallback Person"}},
	}
	s.Equal("Jordan Writer", ExtractAuthor(item, "PinkNews"))
}

func (s *ExtractTestSuite) TestExtractAuthor_ItemAuthor() {
	item := &gofeed.Item{
		Authors: []*gofeed.Person{{Name: "Sam Reporter"}},
	}
	s.Equal("Sam Reporter", ExtractAuthor(item, "PinkNews"))
}

func (s *ExtractTestSuite) TestExtractAuthor_SourceFallback() {
	s.Equal("PinkNews", ExtractAuthor(&gofeed.Item{}, "PinkNews"))
}
