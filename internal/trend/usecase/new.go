package usecase

import (
	"trend-srv/internal/trend"
	"trend-srv/pkg/log"
	"trend-srv/pkg/openrouter"
)

type implUseCase struct {
	l   log.Logger
	llm openrouter.IOpenRouter
}

// New creates the trend predictor. llm may be nil, in which case Predict is Combine.
func New(l log.Logger, llm openrouter.IOpenRouter) trend.UseCase {
	return &implUseCase{l: l, llm: llm}
}
