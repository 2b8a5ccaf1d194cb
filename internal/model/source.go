package model

// Source ids.
const (
	SourceReddit       = "reddit"
	SourceTwitter      = "twitter"
	SourceYouTube      = "youtube"
	SourceNews         = "news"
	SourceGoogleTrends = "google_trends"
	SourceAmazon       = "amazon"
	SourceFlipkart     = "flipkart"

	// SourceDefault expands to every source in DefaultSources.
	SourceDefault = "default"
)

// DefaultSources returns the full fixed source set in fan-out order.
func DefaultSources() []string {
	return []string{
		SourceReddit,
		SourceTwitter,
		SourceYouTube,
		SourceNews,
		SourceGoogleTrends,
		SourceAmazon,
		SourceFlipkart,
	}
}

// IsKnownSource reports whether id names a supported source.
func IsKnownSource(id string) bool {
	for _, s := range DefaultSources() {
		if s == id {
			return true
		}
	}
	return false
}
