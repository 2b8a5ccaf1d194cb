package openrouter

import "errors"

var (
	ErrAPIKeyRequired  = errors.New("openrouter: API key is required")
	ErrEmptyResponse   = errors.New("openrouter: empty response")
	ErrNoJSON          = errors.New("openrouter: no JSON object in response")
	ErrInvalidResponse = errors.New("openrouter: response failed validation")
	ErrAllModelsFailed = errors.New("openrouter: all models failed")
)
