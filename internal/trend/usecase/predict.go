package usecase

import (
	"context"

	"trend-srv/internal/metrics"
	"trend-srv/internal/model"
	"trend-srv/internal/trend"
	"trend-srv/pkg/openrouter"
	"trend-srv/pkg/util"
)

const (
	component = "trend"

	defaultLLMConfidence = 0.7
	defaultLLMReasoning  = "Fallback reasoning"
)

// Predict - LLM trend call with the deterministic combiner as fallback
func (uc *implUseCase) Predict(ctx context.Context, s model.SentimentResult, f model.ForecastResult, signal model.HistoricalSignal) model.TrendPrediction {
	if uc.llm != nil {
		p, err := uc.llmPredict(ctx, s, f, signal)
		if err == nil {
			return p
		}
		uc.l.Warnf(ctx, "trend.usecase.Predict: llm path failed, using combiner: %v", err)
		metrics.IncLLMFallback(component)
	}

	return uc.Combine(s, f, signal.SearchInterest)
}

func (uc *implUseCase) llmPredict(ctx context.Context, s model.SentimentResult, f model.ForecastResult, signal model.HistoricalSignal) (model.TrendPrediction, error) {
	user, err := buildPrompt(s, f, signal)
	if err != nil {
		return model.TrendPrediction{}, err
	}

	var out trend.LLMResult
	if err := uc.llm.ChatJSON(ctx, openrouter.AnalystRole, user, &out); err != nil {
		return model.TrendPrediction{}, err
	}
	return normalizeLLMResult(out), nil
}

// normalizeLLMResult fills the optional fields the model left out.
func normalizeLLMResult(r trend.LLMResult) model.TrendPrediction {
	conf := defaultLLMConfidence
	if r.Confidence != nil && util.IsFinite(*r.Confidence) {
		conf = util.Clamp(*r.Confidence, 0, 1)
	}
	timeline := r.ExpectedTimeline
	if !model.IsValidTimeline(timeline) {
		timeline = model.TimelineShortTerm
	}
	reasoning := r.Reasoning
	if reasoning == "" {
		reasoning = defaultLLMReasoning
	}
	factors := r.Factors
	if factors == nil {
		factors = []string{}
	}

	return model.TrendPrediction{
		PredictedTrend:   r.PredictedTrend,
		Confidence:       conf,
		Reasoning:        reasoning,
		ExpectedTimeline: timeline,
		Factors:          factors,
	}
}
