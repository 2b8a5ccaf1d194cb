package googletrends

import (
	"trend-srv/internal/source"
	pkgHTTP "trend-srv/pkg/http"
	"trend-srv/pkg/log"
)

const (
	DefaultBaseURL   = "https://trends.google.com/trends/api"
	DefaultTimeframe = "now 7-d"
	DefaultLanguage  = "en-US"
	// DefaultTZ is the offset in minutes Google applies to bucket timestamps.
	DefaultTZ = "360"
)

// Config holds Google Trends endpoint settings. No credential is required.
type Config struct {
	BaseURL   string
	Timeframe string
	Language  string
	TZ        string
}

type adapter struct {
	l    log.Logger
	http pkgHTTP.IClient
	cfg  Config
}

// New creates the Google Trends adapter.
func New(l log.Logger, client pkgHTTP.IClient, cfg Config) source.Adapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeframe == "" {
		cfg.Timeframe = DefaultTimeframe
	}
	if cfg.Language == "" {
		cfg.Language = DefaultLanguage
	}
	if cfg.TZ == "" {
		cfg.TZ = DefaultTZ
	}
	return &adapter{l: l, http: client, cfg: cfg}
}
