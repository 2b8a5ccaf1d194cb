package usecase

import (
	"context"
	"math"
	"strings"

	"trend-srv/internal/model"
	"trend-srv/internal/sentiment"
	"trend-srv/pkg/openrouter"
	"trend-srv/pkg/util"
)

// maxConfidence caps every confidence the estimator reports.
const maxConfidence = 0.95

func (uc *implUseCase) llmEstimate(ctx context.Context, posts []model.Post) (model.SentimentResult, error) {
	prompt := uc.promptPosts(posts)
	user, err := buildPrompt(prompt)
	if err != nil {
		return model.SentimentResult{}, err
	}

	var out sentiment.LLMResult
	if err := uc.llm.ChatJSON(ctx, openrouter.AnalystRole, user, &out); err != nil {
		return model.SentimentResult{}, err
	}
	return normalizeLLMResult(out, len(prompt)), nil
}

// normalizeLLMResult fills defaults and clamps values the model may get wrong.
func normalizeLLMResult(r sentiment.LLMResult, analyzed int) model.SentimentResult {
	conf := 0.7
	if r.ConfidenceScore != nil && util.IsFinite(*r.ConfidenceScore) {
		conf = util.Clamp(*r.ConfidenceScore, 0, 1)
	}
	sample := analyzed
	if r.SampleSize != nil && *r.SampleSize >= 0 {
		sample = *r.SampleSize
	}
	return model.SentimentResult{
		OverallSentiment:   r.OverallSentiment,
		ConfidenceScore:    conf,
		KeyPositiveAspects: nonNil(r.KeyPositiveAspects),
		KeyNegativeAspects: nonNil(r.KeyNegativeAspects),
		SampleSize:         sample,
		SentimentBreakdown: normalizeBreakdown(r.SentimentBreakdown),
		CommonThemes:       nonNil(r.CommonThemes),
	}
}

// normalizeBreakdown lowercases keys, drops unknown labels and rounds counts.
func normalizeBreakdown(in map[string]any) map[string]int {
	out := model.NewBreakdown(0, 0, 0)
	for k, v := range in {
		label := strings.ToLower(strings.TrimSpace(k))
		if !model.IsValidSentiment(label) {
			continue
		}
		var n float64
		switch x := v.(type) {
		case float64:
			n = x
		case int:
			n = float64(x)
		default:
			continue
		}
		if !util.IsFinite(n) || n < 0 {
			continue
		}
		out[label] += int(math.Round(n))
	}
	return out
}

// adjustConfidence averages the LLM confidence with the share of polar engagement
// that is positive. Posts without polar engagement leave confidence unchanged.
func adjustConfidence(conf float64, posts []model.Post) float64 {
	var pos, neg float64
	for _, p := range posts {
		switch sentiment.Classify(p.Text) {
		case model.SentimentPositive:
			pos += p.EngagementScore
		case model.SentimentNegative:
			neg += p.EngagementScore
		}
	}
	if pos+neg <= 0 {
		return conf
	}
	adjusted := (conf + pos/(pos+neg)) / 2
	if adjusted > maxConfidence {
		return maxConfidence
	}
	return adjusted
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
