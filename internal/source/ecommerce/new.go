package ecommerce

import (
	"trend-srv/internal/source"
	pkgHTTP "trend-srv/pkg/http"
	"trend-srv/pkg/log"
)

const (
	DefaultAmazonBaseURL   = "https://www.amazon.in"
	DefaultFlipkartBaseURL = "https://www.flipkart.com"
	// DefaultMaxListings bounds how many product pages are opened per search.
	DefaultMaxListings = 3
	// DefaultRetries is used by the builder for the scraping client.
	DefaultRetries = 4
)

// Config holds settings for one marketplace.
type Config struct {
	BaseURL     string
	MaxListings int
}

type adapter struct {
	l    log.Logger
	http pkgHTTP.IClient
	cfg  Config
	site site
}

// NewAmazon creates the Amazon review scraper.
func NewAmazon(l log.Logger, client pkgHTTP.IClient, cfg Config) source.Adapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultAmazonBaseURL
	}
	return newAdapter(l, client, cfg, amazonSite)
}

// NewFlipkart creates the Flipkart review scraper.
func NewFlipkart(l log.Logger, client pkgHTTP.IClient, cfg Config) source.Adapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultFlipkartBaseURL
	}
	return newAdapter(l, client, cfg, flipkartSite)
}

func newAdapter(l log.Logger, client pkgHTTP.IClient, cfg Config, s site) *adapter {
	if cfg.MaxListings <= 0 {
		cfg.MaxListings = DefaultMaxListings
	}
	return &adapter{l: l, http: client, cfg: cfg, site: s}
}

func (a *adapter) Source() string {
	return a.site.id
}
