package reddit

import (
	"time"

	"trend-srv/internal/source"
	pkgHTTP "trend-srv/pkg/http"
	"trend-srv/pkg/log"

	"golang.org/x/time/rate"
)

// New creates the Reddit adapter.
func New(l log.Logger, client pkgHTTP.IClient, cfg Config) source.Adapter {
	if cfg.TokenURL == "" {
		cfg.TokenURL = DefaultTokenURL
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = DefaultAPIBaseURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if len(cfg.Subreddits) == 0 {
		cfg.Subreddits = defaultSubreddits
	}
	if cfg.Pace <= 0 {
		cfg.Pace = DefaultPace
	}
	return &adapter{
		l:     l,
		http:  client,
		cfg:   cfg,
		pacer: rate.NewLimiter(rate.Every(cfg.Pace), 1),
		now:   time.Now,
	}
}
