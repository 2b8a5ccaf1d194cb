package http

import "time"

const (
	// DefaultTimeout is the default per-attempt timeout.
	DefaultTimeout = 15 * time.Second
	// DefaultRetries is the number of retries after the first attempt.
	DefaultRetries = 3
	// DefaultRetryWait is the initial wait between retries; it grows on every attempt.
	DefaultRetryWait = 1 * time.Second
	// DefaultMaxRetryWait caps the backoff.
	DefaultMaxRetryWait = 8 * time.Second
	// DefaultUserAgent is sent when the config leaves UserAgent empty.
	DefaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
)

// DefaultConfig returns default ClientConfig.
func DefaultConfig() ClientConfig {
	return ClientConfig{
		Timeout:      DefaultTimeout,
		Retries:      DefaultRetries,
		RetryWait:    DefaultRetryWait,
		MaxRetryWait: DefaultMaxRetryWait,
		UserAgent:    DefaultUserAgent,
	}
}
