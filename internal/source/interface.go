package source

import "context"

// Adapter normalizes one external source into Posts.
//
// Fetch must return within a bounded time. Transient problems (timeouts,
// blocks, throttling, 4xx/5xx) are absorbed: the adapter returns partial data
// or its Fallback with a nil error. A non-nil error is reserved for
// configuration problems such as a missing credential (ErrMissingCredential).
//
//go:generate mockery --name Adapter
type Adapter interface {
	Source() string
	Fetch(ctx context.Context, product string, limit int) (Result, error)
	// Fallback returns deterministic, non-empty synthetic data mentioning product.
	Fallback(product string) Result
}
