package reddit

import (
	"sync"
	"time"

	pkgHTTP "trend-srv/pkg/http"
	"trend-srv/pkg/log"

	"golang.org/x/time/rate"
)

// Config holds Reddit API credentials and endpoints.
type Config struct {
	ClientID     string
	ClientSecret string
	UserAgent    string
	TokenURL     string
	APIBaseURL   string
	Subreddits   []string
	// Pace is the minimum gap between subreddit searches.
	Pace time.Duration
}

type adapter struct {
	l     log.Logger
	http  pkgHTTP.IClient
	cfg   Config
	pacer *rate.Limiter
	now   func() time.Time

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type listing struct {
	Data struct {
		Children []struct {
			Data listingPost `json:"data"`
		} `json:"children"`
	} `json:"data"`
}

type listingPost struct {
	Title       string  `json:"title"`
	Selftext    string  `json:"selftext"`
	Ups         int     `json:"ups"`
	NumComments int     `json:"num_comments"`
	CreatedUTC  float64 `json:"created_utc"`
	Permalink   string  `json:"permalink"`
	Author      string  `json:"author"`
	Subreddit   string  `json:"subreddit"`
}
