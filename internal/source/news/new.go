package news

import (
	"trend-srv/internal/source"
	pkgHTTP "trend-srv/pkg/http"
	"trend-srv/pkg/log"
)

const (
	DefaultNewsAPIURL = "https://newsapi.org/v2/everything"
	DefaultRSSURL     = "https://news.google.com/rss/search"
	DefaultLanguage   = "en"
	DefaultCountry    = "US"
	maxPageSize       = 100
)

// Config selects the news backend. NewsAPI is used when APIKey is set, otherwise Google News RSS.
type Config struct {
	APIKey     string
	NewsAPIURL string
	RSSURL     string
	Language   string
	Country    string
}

type adapter struct {
	l    log.Logger
	http pkgHTTP.IClient
	cfg  Config
}

// New creates the news adapter.
func New(l log.Logger, client pkgHTTP.IClient, cfg Config) source.Adapter {
	if cfg.NewsAPIURL == "" {
		cfg.NewsAPIURL = DefaultNewsAPIURL
	}
	if cfg.RSSURL == "" {
		cfg.RSSURL = DefaultRSSURL
	}
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}
	if cfg.Country == "" {
		cfg.Country = DefaultCountry
	}
	return &adapter{l: l, http: client, cfg: cfg}
}
