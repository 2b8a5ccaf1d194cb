package usecase

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"trend-srv/internal/forecast"
	"trend-srv/internal/model"
)

const (
	changepointRange = 0.8
	maxChangepoints  = 25
	changepointPrior = 0.05
	seasonalityPrior = 10.0

	yearlyPeriod = 365.25
	yearlyOrder  = 10
	weeklyPeriod = 7.0
	weeklyOrder  = 3

	// z score of a two-sided 80% interval.
	intervalZ = 1.2816
)

// advancedStrategy fits an additive model: piecewise linear trend plus yearly
// and weekly Fourier seasonality, solved as a ridge-penalized least squares
// problem on the max-abs scaled series.
type advancedStrategy struct{}

func (advancedStrategy) Name() string { return model.ForecastModelAdvanced }

func (advancedStrategy) IsApplicable(series []model.SalesPoint) bool {
	return len(series) >= minStatisticalPoints
}

func (s advancedStrategy) Fit(series []model.SalesPoint, periods int) (model.ForecastResult, error) {
	n := len(series)
	if n < minStatisticalPoints {
		return model.ForecastResult{}, forecast.ErrInsufficientData
	}

	days := make([]float64, n)
	ys := values(series)
	scale := 0.0
	for i, p := range series {
		days[i] = dayNumber(p.Date)
		scale = math.Max(scale, math.Abs(ys[i]))
	}
	if scale == 0 {
		scale = 1
	}

	m := newAdditiveModel(days)
	width := m.width()

	// Data rows followed by one penalty row per coefficient.
	design := mat.NewDense(n+width, width, nil)
	target := mat.NewVecDense(n+width, nil)
	for i := range series {
		design.SetRow(i, m.row(days[i]))
		target.SetVec(i, ys[i]/scale)
	}
	for j, pen := range m.penalties() {
		design.Set(n+j, j, pen)
	}

	var beta mat.VecDense
	if err := beta.SolveVec(design, target); err != nil {
		return model.ForecastResult{}, fmt.Errorf("%w: %v", forecast.ErrSingular, err)
	}

	var sse float64
	for i := range series {
		r := ys[i] - m.predict(days[i], &beta)*scale
		sse += r * r
	}
	dof := math.Max(float64(n-2), 1)
	sigma := math.Sqrt(sse / dof)

	last := series[n-1].Date
	points := make([]model.ForecastPoint, periods)
	for h := 1; h <= periods; h++ {
		d := futureDate(last, h)
		yhat := m.predict(dayNumber(d), &beta) * scale
		half := intervalZ * sigma * math.Sqrt(1+float64(h)/float64(n))
		lo, hi := yhat-half, yhat+half
		points[h-1] = model.ForecastPoint{
			Date:           d,
			PredictedValue: yhat,
			LowerBound:     &lo,
			UpperBound:     &hi,
		}
	}

	return model.ForecastResult{
		ModelUsed:      s.Name(),
		ModelDetail:    m.detail(),
		Series:         points,
		Confidence:     intervalConfidence(points),
		DataPointsUsed: n,
	}, nil
}

type additiveModel struct {
	t0, span     float64
	changepoints []float64
	yearly       bool
	weekly       bool
}

// newAdditiveModel places changepoints evenly over the first 80% of history.
// Seasonal terms are only included once the history covers a full period.
func newAdditiveModel(days []float64) additiveModel {
	n := len(days)
	m := additiveModel{
		t0:   days[0],
		span: days[n-1] - days[0],
	}
	if m.span <= 0 {
		m.span = 1
	}

	histSize := int(math.Floor(float64(n) * changepointRange))
	k := maxChangepoints
	if histSize-1 < k {
		k = histSize - 1
	}
	for j := 1; j <= k; j++ {
		idx := int(math.Round(float64(j) * float64(histSize-1) / float64(k)))
		m.changepoints = append(m.changepoints, (days[idx]-m.t0)/m.span)
	}

	covered := days[n-1] - days[0] + 1
	m.yearly = covered >= 365
	m.weekly = covered >= 2*weeklyPeriod
	return m
}

func (m additiveModel) seasonalWidth() int {
	w := 0
	if m.yearly {
		w += 2 * yearlyOrder
	}
	if m.weekly {
		w += 2 * weeklyOrder
	}
	return w
}

func (m additiveModel) width() int {
	return 2 + len(m.changepoints) + m.seasonalWidth()
}

func (m additiveModel) row(day float64) []float64 {
	t := (day - m.t0) / m.span
	r := make([]float64, 0, m.width())
	r = append(r, 1, t)
	for _, c := range m.changepoints {
		r = append(r, math.Max(0, t-c))
	}
	if m.yearly {
		r = appendFourier(r, day, yearlyPeriod, yearlyOrder)
	}
	if m.weekly {
		r = appendFourier(r, day, weeklyPeriod, weeklyOrder)
	}
	return r
}

// penalties returns the square root of each coefficient's ridge weight.
// Intercept and base slope are unpenalized.
func (m additiveModel) penalties() []float64 {
	p := make([]float64, 0, m.width())
	p = append(p, 0, 0)
	for range m.changepoints {
		p = append(p, 1/changepointPrior)
	}
	for i := 0; i < m.seasonalWidth(); i++ {
		p = append(p, 1/seasonalityPrior)
	}
	return p
}

func (m additiveModel) predict(day float64, beta *mat.VecDense) float64 {
	return mat.Dot(mat.NewVecDense(m.width(), m.row(day)), beta)
}

func (m additiveModel) detail() string {
	return fmt.Sprintf("additive(changepoints=%d,yearly=%t,weekly=%t)", len(m.changepoints), m.yearly, m.weekly)
}

func appendFourier(r []float64, day, period float64, order int) []float64 {
	for k := 1; k <= order; k++ {
		x := 2 * math.Pi * float64(k) * day / period
		r = append(r, math.Sin(x), math.Cos(x))
	}
	return r
}
