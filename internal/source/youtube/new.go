package youtube

import (
	"trend-srv/internal/source"
	pkgHTTP "trend-srv/pkg/http"
	"trend-srv/pkg/log"
)

const (
	DefaultBaseURL   = "https://www.googleapis.com/youtube/v3"
	maxSearchResults = 50
	// descriptionLimit caps how much of a video description goes into Post.Text.
	descriptionLimit = 300
)

// Config holds YouTube Data API settings.
type Config struct {
	APIKey  string
	BaseURL string
}

type adapter struct {
	l    log.Logger
	http pkgHTTP.IClient
	cfg  Config
}

// New creates the YouTube adapter.
func New(l log.Logger, client pkgHTTP.IClient, cfg Config) source.Adapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	return &adapter{l: l, http: client, cfg: cfg}
}
