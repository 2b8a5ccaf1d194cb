package usecase

import (
	"encoding/json"
	"fmt"

	"trend-srv/internal/model"
	"trend-srv/internal/sentiment"
	"trend-srv/pkg/util"
)

const promptTemplate = `As a senior product analyst, analyze these customer reviews from various platforms.
Consider engagement metrics, source credibility, and contextual factors.

REVIEW CONTEXTS:
%s

Provide comprehensive sentiment analysis with this EXACT JSON structure:
{
    "overall_sentiment": "positive|negative|neutral",
    "confidence_score": 0.0-1.0,
    "key_positive_aspects": ["aspect1", "aspect2", "aspect3"],
    "key_negative_aspects": ["aspect1", "aspect2", "aspect3"],
    "sample_size": integer,
    "sentiment_breakdown": {"positive": number, "negative": number, "neutral": number},
    "common_themes": ["theme1", "theme2", "theme3"]
}

Weight high-engagement content more heavily and identify explicit/implicit sentiment.`

func (uc *implUseCase) promptPosts(posts []model.Post) []sentiment.PromptPost {
	n := len(posts)
	if n > uc.cfg.MaxPromptPosts {
		n = uc.cfg.MaxPromptPosts
	}
	out := make([]sentiment.PromptPost, 0, n)
	for _, p := range posts[:n] {
		out = append(out, sentiment.PromptPost{
			Text:       util.Truncate(p.Text, uc.cfg.MaxTextLen),
			Source:     p.Source,
			Engagement: p.EngagementScore,
			Rating:     p.Rating,
			Verified:   p.Verified,
		})
	}
	return out
}

func buildPrompt(posts []sentiment.PromptPost) (string, error) {
	b, err := json.Marshal(posts)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(promptTemplate, b), nil
}
