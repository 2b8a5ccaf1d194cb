package sentiment

import (
	"context"

	"trend-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Estimate summarizes how posts feel about product. It never fails: when the LLM
	// path is unavailable the lexicon path answers.
	Estimate(ctx context.Context, posts []model.Post, product string) model.SentimentResult
}
