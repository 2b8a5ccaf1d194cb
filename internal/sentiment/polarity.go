package sentiment

import (
	"strings"

	"trend-srv/internal/model"
)

var (
	positiveWords = []string{
		"good", "great", "excellent", "awesome", "love", "best",
		"amazing", "perfect", "recommend", "fantastic", "outstanding", "superb",
	}
	negativeWords = []string{
		"bad", "terrible", "awful", "hate", "worst", "disappointing",
		"poor", "broken", "waste", "rubbish", "garbage", "avoid",
	}
)

// Classify labels text by counting lexicon words it contains, one count per word.
// Matching is case-insensitive substring containment; ties are neutral.
func Classify(text string) string {
	t := strings.ToLower(text)
	pos, neg := 0, 0
	for _, w := range positiveWords {
		if strings.Contains(t, w) {
			pos++
		}
	}
	for _, w := range negativeWords {
		if strings.Contains(t, w) {
			neg++
		}
	}
	switch {
	case pos > neg:
		return model.SentimentPositive
	case neg > pos:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}
