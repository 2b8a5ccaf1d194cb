package source

import "errors"

var (
	// ErrMissingCredential is returned by Fetch when a required API credential is not configured.
	ErrMissingCredential = errors.New("source: missing credential")
	// ErrUnknownSource is returned when a source id has no adapter.
	ErrUnknownSource = errors.New("source: unknown source")
	// ErrAuthFailed is returned internally when a token exchange is rejected.
	ErrAuthFailed = errors.New("source: authentication failed")
)
