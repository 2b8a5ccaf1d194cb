package usecase

import (
	"context"

	"trend-srv/internal/metrics"
	"trend-srv/internal/model"
)

const component = "sentiment"

// Estimate - LLM path first, lexicon path on any failure
// Flow: filter noise → LLM estimate → engagement adjustment → (fallback) lexicon aggregate
func (uc *implUseCase) Estimate(ctx context.Context, posts []model.Post, product string) model.SentimentResult {
	// Step 1: Drop noise and off-topic posts
	filtered := uc.filterPosts(posts, product)

	// Step 2: LLM path
	if len(filtered) > 0 && uc.llm != nil {
		result, err := uc.llmEstimate(ctx, filtered)
		if err == nil {
			// Step 3: Blend LLM confidence with engagement polarity
			result.ConfidenceScore = adjustConfidence(result.ConfidenceScore, filtered)
			return result
		}
		uc.l.Warnf(ctx, "sentiment.usecase.Estimate: llm path failed, using lexicon: %v", err)
		metrics.IncLLMFallback(component)
	}

	// Step 4: Lexicon path
	return uc.lexiconEstimate(filtered)
}
