package http

import (
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"
)

// ClientConfig holds configuration for the HTTP client.
type ClientConfig struct {
	Timeout      time.Duration
	Retries      int
	RetryWait    time.Duration
	MaxRetryWait time.Duration
	// RateLimit is the allowed requests per second. Zero disables limiting.
	RateLimit float64
	Burst     int
	UserAgent string
}

// clientImpl implements IClient.
type clientImpl struct {
	client  *resty.Client
	limiter *rate.Limiter
	config  ClientConfig
}
