package reddit

import "time"

const (
	DefaultTokenURL   = "https://www.reddit.com/api/v1/access_token"
	DefaultAPIBaseURL = "https://oauth.reddit.com"
	DefaultUserAgent  = "trend-srv/1.0"
	DefaultPace       = time.Second

	// maxPerSubreddit is the API page size cap used per search.
	maxPerSubreddit = 25
	// tokenSafetyMargin is subtracted from expires_in so tokens are refreshed early.
	tokenSafetyMargin = 60 * time.Second
)

var defaultSubreddits = []string{"technology", "gadgets", "productreviews", "buyitforlife"}
