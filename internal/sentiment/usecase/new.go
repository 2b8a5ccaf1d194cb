package usecase

import (
	"trend-srv/internal/sentiment"
	"trend-srv/pkg/log"
	"trend-srv/pkg/openrouter"
)

// Config tunes preprocessing and prompt size.
type Config struct {
	MaxPromptPosts int // posts serialized into the prompt (default 50)
	MaxTextLen     int // runes kept per post text in the prompt (default 500)
	MinTextLen     int // shorter posts are discarded as noise (default 10)
	KeepOnEmpty    int // originals kept when filtering removes everything (default 5)
}

// DefaultConfig returns the default estimator config.
func DefaultConfig() Config {
	return Config{
		MaxPromptPosts: 50,
		MaxTextLen:     500,
		MinTextLen:     10,
		KeepOnEmpty:    5,
	}
}

type implUseCase struct {
	l   log.Logger
	llm openrouter.IOpenRouter
	cfg Config
}

// New creates the sentiment estimator. llm may be nil, in which case only the
// lexicon path runs.
func New(l log.Logger, llm openrouter.IOpenRouter, cfg Config) sentiment.UseCase {
	def := DefaultConfig()
	if cfg.MaxPromptPosts <= 0 {
		cfg.MaxPromptPosts = def.MaxPromptPosts
	}
	if cfg.MaxTextLen <= 0 {
		cfg.MaxTextLen = def.MaxTextLen
	}
	if cfg.MinTextLen <= 0 {
		cfg.MinTextLen = def.MinTextLen
	}
	if cfg.KeepOnEmpty <= 0 {
		cfg.KeepOnEmpty = def.KeepOnEmpty
	}
	return &implUseCase{l: l, llm: llm, cfg: cfg}
}
