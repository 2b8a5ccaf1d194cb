package twitter

import (
	"net/http"
	"time"

	"trend-srv/internal/source"
	"trend-srv/pkg/log"

	gotwitter "github.com/g8rswimmer/go-twitter/v2"
)

const (
	DefaultHost    = "https://api.twitter.com"
	DefaultTimeout = 15 * time.Second
	DefaultRetries = 3
	// The recent search endpoint accepts 10..100 results per page.
	minResults = 10
	maxResults = 100
)

// Config holds Twitter API v2 settings.
type Config struct {
	BearerToken string
	Host        string
	Timeout     time.Duration
	// Retries is the number of extra attempts; nil means DefaultRetries.
	Retries   *int
	RetryWait time.Duration
}

// Retries returns n as a Config.Retries value.
func Retries(n int) *int {
	return &n
}

type bearerAuthorizer struct {
	token string
}

func (a bearerAuthorizer) Add(req *http.Request) {
	req.Header.Add("Authorization", "Bearer "+a.token)
}

type adapter struct {
	l       log.Logger
	cfg     Config
	retries int
	client  *gotwitter.Client
}

// New creates the Twitter adapter.
func New(l log.Logger, cfg Config) source.Adapter {
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	retries := DefaultRetries
	if cfg.Retries != nil && *cfg.Retries >= 0 {
		retries = *cfg.Retries
	}
	if cfg.RetryWait <= 0 {
		cfg.RetryWait = time.Second
	}
	return &adapter{
		l:       l,
		cfg:     cfg,
		retries: retries,
		client: &gotwitter.Client{
			Authorizer: bearerAuthorizer{token: cfg.BearerToken},
			Client:     &http.Client{Timeout: cfg.Timeout},
			Host:       cfg.Host,
		},
	}
}
