package usecase

import (
	"math"
	"strconv"

	"trend-srv/internal/model"
	"trend-srv/pkg/util"
)

// sentimentScore maps a label to +confidence, -confidence or 0.
func sentimentScore(s model.SentimentResult) float64 {
	switch s.OverallSentiment {
	case model.SentimentPositive:
		return s.ConfidenceScore
	case model.SentimentNegative:
		return -s.ConfidenceScore
	}
	return 0
}

// chart picks the first available series: search interest, then the forecast,
// then a synthetic month shaped by the sentiment.
func (uc *implUseCase) chart(product string, sent model.SentimentResult, fc model.ForecastResult, interest *model.SearchInterest) []model.ChartPoint {
	score := sentimentScore(sent)

	if interest != nil && len(interest.Points) > 0 {
		out := make([]model.ChartPoint, len(interest.Points))
		for i, p := range interest.Points {
			out[i] = model.ChartPoint{Date: util.DateToStr(p.Date), SentimentScore: score, Value: p.Value}
		}
		return out
	}

	if len(fc.Series) > 0 {
		out := make([]model.ChartPoint, len(fc.Series))
		for i, p := range fc.Series {
			out[i] = model.ChartPoint{Date: util.DateToStr(p.Date), SentimentScore: score, Value: p.PredictedValue}
		}
		return out
	}

	return uc.syntheticChart(product, func(i int, r float64) (float64, float64) {
		value := 50 + score*20 + float64(i%7)*2 + r
		return util.Round(score+r/20, 2), math.Max(0, value)
	})
}

// syntheticChart lays out ChartDays days ending today. point returns the
// sentiment score and value of day i given its jitter r in [-10, 9].
func (uc *implUseCase) syntheticChart(product string, point func(i int, r float64) (float64, float64)) []model.ChartPoint {
	days := uc.cfg.ChartDays
	today := util.StartOfDay(uc.now())

	out := make([]model.ChartPoint, days)
	for i := 0; i < days; i++ {
		r := float64(util.HashMod(product+"_"+strconv.Itoa(i), 20) - 10)
		score, value := point(i, r)
		out[i] = model.ChartPoint{
			Date:           util.DateToStr(today.AddDate(0, 0, i-(days-1))),
			SentimentScore: score,
			Value:          value,
		}
	}
	return out
}
