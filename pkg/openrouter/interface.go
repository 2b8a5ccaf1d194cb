package openrouter

import "context"

// IOpenRouter is a chat completion client with a primary and a fallback model.
// Implementations are safe for concurrent use.
type IOpenRouter interface {
	// Chat returns the first successful completion, trying each model once.
	Chat(ctx context.Context, system, user string) (string, error)
	// ChatJSON asks for a completion and decodes the JSON object it contains into out.
	// A transport or parse failure on the primary model is retried once on the fallback model.
	ChatJSON(ctx context.Context, system, user string, out interface{}) error
}

// Validator is implemented by ChatJSON targets that reject semantically invalid answers.
type Validator interface {
	Validate() error
}

// New creates a new OpenRouter client. Returns the interface.
func New(ctx context.Context, cfg Config) (IOpenRouter, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}
	return newOpenRouterImpl(ctx, cfg)
}
