package rss

// Source priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// FeedSource describes one configured RSS/Atom feed.
type FeedSource struct {
	Name     string
	URL      string
	FeedURL  string
	Category string
	Priority string
	Tags     []string
	Region   string
	Active   bool
}

// Sources is the curated feed list: Black QTIPOC+ news and perspectives,
// UK LGBTQ+ community news, liberation and activism.
var Sources = []FeedSource{
	// UK LGBTQ+ news
	{
		Name:     "PinkNews",
		URL:      "https://www.pinknews.co.uk",
		FeedURL:  "https://www.pinknews.co.uk/feed/",
		Category: "community",
		Priority: PriorityHigh,
		Tags:     []string{"lgbtq", "uk", "news"},
		Region:   "uk",
		Active:   true,
	},
	{
		Name:     "Attitude",
		URL:      "https://www.attitude.co.uk",
		FeedURL:  "https://www.attitude.co.uk/feed/",
		Category: "culture",
		Priority: PriorityHigh,
		Tags:     []string{"lgbtq", "uk", "culture"},
		Region:   "uk",
		Active:   true,
	},
	{
		Name:     "Gay Times",
		URL:      "https://www.gaytimes.co.uk",
		FeedURL:  "https://www.gaytimes.co.uk/feed/",
		Category: "community",
		Priority: PriorityHigh,
		Tags:     []string{"lgbtq", "uk", "news"},
		Region:   "uk",
		Active:   true,
	},
	{
		Name:     "DIVA Magazine",
		URL:      "https://divamag.co.uk",
		FeedURL:  "https://divamag.co.uk/feed/",
		Category: "culture",
		Priority: PriorityMedium,
		Tags:     []string{"lgbtq", "uk", "women", "lesbian"},
		Region:   "uk",
		Active:   true,
	},

	// Black UK media
	{
		Name:     "The Voice",
		URL:      "https://www.voice-online.co.uk",
		FeedURL:  "https://www.voice-online.co.uk/feed/",
		Category: "community",
		Priority: PriorityHigh,
		Tags:     []string{"black", "uk", "news", "community"},
		Region:   "uk",
		Active:   true,
	},
	{
		Name:     "Black Ballad",
		URL:      "https://blackballad.co.uk",
		FeedURL:  "https://blackballad.co.uk/feed/",
		Category: "culture",
		Priority: PriorityHigh,
		Tags:     []string{"black", "women", "uk", "culture"},
		Region:   "uk",
		Active:   true,
	},
	{
		Name:     "gal-dem",
		URL:      "https://gal-dem.com",
		FeedURL:  "https://gal-dem.com/feed/",
		Category: "culture",
		Priority: PriorityHigh,
		Tags:     []string{"black", "women", "uk", "culture", "lgbtq"},
		Region:   "uk",
		Active:   true,
	},

	// Global LGBTQ+ news
	{
		Name:     "Them",
		URL:      "https://www.them.us",
		FeedURL:  "https://www.them.us/feed/rss",
		Category: "culture",
		Priority: PriorityMedium,
		Tags:     []string{"lgbtq", "trans", "nonbinary", "culture"},
		Region:   "us",
		Active:   true,
	},
	{
		Name:     "Out Magazine",
		URL:      "https://www.out.com",
		FeedURL:  "https://www.out.com/rss.xml",
		Category: "culture",
		Priority: PriorityMedium,
		Tags:     []string{"lgbtq", "culture", "entertainment"},
		Region:   "us",
		Active:   true,
	},
	{
		Name:     "The Advocate",
		URL:      "https://www.advocate.com",
		FeedURL:  "https://www.advocate.com/rss.xml",
		Category: "politics",
		Priority: PriorityMedium,
		Tags:     []string{"lgbtq", "politics", "news"},
		Region:   "us",
		Active:   true,
	},

	// Health and wellbeing
	{
		Name:     "Terrence Higgins Trust",
		URL:      "https://www.tht.org.uk",
		FeedURL:  "https://www.tht.org.uk/feed",
		Category: "health",
		Priority: PriorityHigh,
		Tags:     []string{"health", "hiv", "uk", "lgbtq"},
		Region:   "uk",
		Active:   true,
	},
	{
		Name:     "Stonewall UK",
		URL:      "https://www.stonewall.org.uk",
		FeedURL:  "https://www.stonewall.org.uk/feed",
		Category: "politics",
		Priority: PriorityHigh,
		Tags:     []string{"lgbtq", "uk", "rights", "policy"},
		Region:   "uk",
		Active:   true,
	},

	// Liberation and activism
	{
		Name:     "Black Lives Matter UK",
		URL:      "https://ukblm.org",
		FeedURL:  "https://ukblm.org/feed/",
		Category: "liberation",
		Priority: PriorityHigh,
		Tags:     []string{"black", "liberation", "uk", "activism"},
		Region:   "uk",
		Active:   true,
	},

	// Arts and culture
	{
		Name:     "Autostraddle",
		URL:      "https://www.autostraddle.com",
		FeedURL:  "https://www.autostraddle.com/feed/",
		Category: "culture",
		Priority: PriorityMedium,
		Tags:     []string{"lgbtq", "lesbian", "queer", "culture"},
		Region:   "global",
		Active:   true,
	},
}

// ActiveSources returns the feeds enabled for ingestion.
func ActiveSources() []FeedSource {
	var active []FeedSource
	for _, s := range Sources {
		if s.Active {
			active = append(active, s)
		}
	}
	return active
}

// HighPrioritySources returns active feeds marked high priority.
func HighPrioritySources() []FeedSource {
	var high []FeedSource
	for _, s := range Sources {
		if s.Active && s.Priority == PriorityHigh {
			high = append(high, s)
		}
	}
	return high
}
