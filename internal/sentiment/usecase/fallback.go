package usecase

import (
	"sort"

	"trend-srv/internal/model"
	"trend-srv/internal/sentiment"
	"trend-srv/pkg/util"
)

const (
	// noEngagementConfidence is used when the posts carry no engagement at all.
	noEngagementConfidence = 0.7
	maxAspects             = 3
)

var (
	aspectVocabulary = []string{
		"battery", "camera", "performance", "price", "quality", "design", "display",
		"delivery", "sound", "build", "software", "speed", "durability", "comfort",
		"size", "value", "support", "screen", "packaging", "features",
	}
	positivePlaceholder = []string{"performance", "quality"}
	negativePlaceholder = []string{"price", "battery"}
	defaultThemes       = []string{"customer feedback", "product experience"}
)

// lexiconEstimate classifies every post and aggregates counts and engagement.
func (uc *implUseCase) lexiconEstimate(posts []model.Post) model.SentimentResult {
	var (
		pos, neg, neu          int
		posEng, negEng, allEng float64
		posHits                = map[string]int{}
		negHits                = map[string]int{}
		allHits                = map[string]int{}
	)

	for _, p := range posts {
		label := sentiment.Classify(p.Text)
		aspects := aspectsIn(p.Text)
		allEng += p.EngagementScore
		for _, a := range aspects {
			allHits[a]++
		}
		switch label {
		case model.SentimentPositive:
			pos++
			posEng += p.EngagementScore
			for _, a := range aspects {
				posHits[a]++
			}
		case model.SentimentNegative:
			neg++
			negEng += p.EngagementScore
			for _, a := range aspects {
				negHits[a]++
			}
		default:
			neu++
		}
	}

	overall := model.SentimentNeutral
	switch {
	case pos > neg:
		overall = model.SentimentPositive
	case neg > pos:
		overall = model.SentimentNegative
	}

	conf := noEngagementConfidence
	if allEng > 0 {
		conf = (posEng + negEng) / allEng
	}
	if conf > maxConfidence {
		conf = maxConfidence
	}

	positives := rankAspects(posHits)
	if pos > 0 && len(positives) == 0 {
		positives = append([]string{}, positivePlaceholder...)
	}
	negatives := rankAspects(negHits)
	if neg > 0 && len(negatives) == 0 {
		negatives = append([]string{}, negativePlaceholder...)
	}
	themes := rankAspects(allHits)
	if len(themes) == 0 {
		themes = append([]string{}, defaultThemes...)
	}

	return model.SentimentResult{
		OverallSentiment:   overall,
		ConfidenceScore:    conf,
		KeyPositiveAspects: positives,
		KeyNegativeAspects: negatives,
		SampleSize:         len(posts),
		SentimentBreakdown: model.NewBreakdown(pos, neg, neu),
		CommonThemes:       themes,
	}
}

// aspectsIn returns the vocabulary aspects that appear as whole words in text.
func aspectsIn(text string) []string {
	words := make(map[string]struct{})
	for _, w := range util.Words(text) {
		words[w] = struct{}{}
	}
	var out []string
	for _, a := range aspectVocabulary {
		if _, ok := words[a]; ok {
			out = append(out, a)
		}
	}
	return out
}

// rankAspects orders aspects by hit count, then by vocabulary order.
func rankAspects(hits map[string]int) []string {
	out := make([]string, 0, len(hits))
	for _, a := range aspectVocabulary {
		if hits[a] > 0 {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return hits[out[i]] > hits[out[j]] })
	if len(out) > maxAspects {
		out = out[:maxAspects]
	}
	return out
}
