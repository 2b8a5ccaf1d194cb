package usecase

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"trend-srv/internal/forecast"
	"trend-srv/internal/model"
	"trend-srv/pkg/util"
)

const (
	arimaWindow     = 90
	arimaConfidence = 0.7
	maxLongARLags   = 10
)

type arimaOrder struct {
	p, d, q int
}

func (o arimaOrder) String() string {
	return fmt.Sprintf("arima(%d,%d,%d)", o.p, o.d, o.q)
}

// Orders are tried in sequence; the first that fits wins.
var arimaOrders = []arimaOrder{
	{p: 5, d: 1, q: 0},
	{p: 2, d: 1, q: 1},
	{p: 1, d: 1, q: 1},
	{p: 3, d: 1, q: 0},
}

type arimaStrategy struct{}

func (arimaStrategy) Name() string { return model.ForecastModelIntermediate }

func (arimaStrategy) IsApplicable(series []model.SalesPoint) bool {
	return len(series) >= minStatisticalPoints
}

func (s arimaStrategy) Fit(series []model.SalesPoint, periods int) (model.ForecastResult, error) {
	window := tail(series, arimaWindow)
	ys := values(window)

	var errs []error
	for _, o := range arimaOrders {
		preds, err := fitARIMA(ys, o, periods)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", o, err))
			continue
		}

		last := window[len(window)-1].Date
		points := make([]model.ForecastPoint, periods)
		for h := range preds {
			points[h] = model.ForecastPoint{
				Date:           futureDate(last, h+1),
				PredictedValue: preds[h],
			}
		}
		return model.ForecastResult{
			ModelUsed:      s.Name(),
			ModelDetail:    o.String(),
			Series:         points,
			Confidence:     arimaConfidence,
			DataPointsUsed: len(window),
		}, nil
	}

	return model.ForecastResult{}, errors.Join(errs...)
}

// fitARIMA estimates an ARIMA(p,d,q) with the Hannan-Rissanen procedure and
// returns h out-of-sample predictions on the original scale.
//
// Stage 1 fits a long autoregression to approximate the innovations; stage 2
// regresses the differenced series on its own lags and the lagged innovations.
func fitARIMA(ys []float64, o arimaOrder, h int) ([]float64, error) {
	w, lasts := difference(ys, o.d)
	m := len(w)

	resid := make([]float64, m)
	longLags := 0
	if o.q > 0 {
		longLags = m / 4
		if longLags > maxLongARLags {
			longLags = maxLongARLags
		}
		if longLags < o.p+o.q {
			longLags = o.p + o.q
		}
		phi, err := regressLags(w, nil, longLags, 0, longLags)
		if err != nil {
			return nil, err
		}
		for t := longLags; t < m; t++ {
			resid[t] = w[t] - lagSum(w, phi, t)
		}
	}

	start := o.p
	if s := longLags + o.q; s > start {
		start = s
	}
	coef, err := regressLags(w, resid, o.p, o.q, start)
	if err != nil {
		return nil, err
	}
	phi, theta := coef[:o.p], coef[o.p:]
	if !inUnitCircle(phi) || !inUnitCircle(negate(theta)) {
		return nil, forecast.ErrExplosive
	}

	// In-sample innovations under the fitted model.
	e := make([]float64, m, m+h)
	for t := 0; t < m; t++ {
		e[t] = w[t] - lagSum(w, phi, t) - lagSum(e, theta, t)
	}

	out := make([]float64, h)
	for k := 0; k < h; k++ {
		t := len(w)
		next := lagSum(w, phi, t) + lagSum(e, theta, t)
		w = append(w, next)
		e = append(e, 0)
		out[k] = integrate(lasts, next)
		if !util.IsFinite(out[k]) {
			return nil, forecast.ErrNonFinite
		}
	}
	return out, nil
}

// regressLags solves w[t] = sum phi_i w[t-1-i] + sum theta_j e[t-1-j] for t >= start.
func regressLags(w, e []float64, p, q, start int) ([]float64, error) {
	cols := p + q
	if cols == 0 {
		return nil, nil
	}
	rows := len(w) - start
	if rows < cols+2 {
		return nil, forecast.ErrInsufficientData
	}

	x := mat.NewDense(rows, cols, nil)
	y := mat.NewVecDense(rows, nil)
	for r := 0; r < rows; r++ {
		t := start + r
		for i := 0; i < p; i++ {
			x.Set(r, i, w[t-1-i])
		}
		for j := 0; j < q; j++ {
			x.Set(r, p+j, e[t-1-j])
		}
		y.SetVec(r, w[t])
	}

	var coef mat.VecDense
	if err := coef.SolveVec(x, y); err != nil {
		return nil, fmt.Errorf("%w: %v", forecast.ErrSingular, err)
	}

	out := make([]float64, cols)
	for i := range out {
		out[i] = coef.AtVec(i)
		if !util.IsFinite(out[i]) {
			return nil, forecast.ErrNonFinite
		}
	}
	return out, nil
}

// lagSum returns sum coef[i] * xs[t-1-i] over the lags available before t.
func lagSum(xs, coef []float64, t int) float64 {
	var s float64
	for i, c := range coef {
		if t-1-i < 0 {
			break
		}
		s += c * xs[t-1-i]
	}
	return s
}

// difference applies d rounds of first differencing. lasts[k] is the final
// value of the k-times differenced series, needed to integrate forecasts back.
func difference(ys []float64, d int) ([]float64, []float64) {
	cur := append([]float64(nil), ys...)
	lasts := make([]float64, d)
	for k := 0; k < d; k++ {
		lasts[k] = cur[len(cur)-1]
		next := make([]float64, len(cur)-1)
		for i := range next {
			next[i] = cur[i+1] - cur[i]
		}
		cur = next
	}
	return cur, lasts
}

// integrate folds a forecast of the differenced series back through each
// differencing level, updating lasts in place. It returns the new level value.
func integrate(lasts []float64, v float64) float64 {
	for k := len(lasts) - 1; k >= 0; k-- {
		lasts[k] += v
		v = lasts[k]
	}
	return v
}

// inUnitCircle reports whether every root of the companion matrix of coef has
// modulus below one, i.e. the recursion it describes does not explode.
func inUnitCircle(coef []float64) bool {
	k := len(coef)
	if k == 0 {
		return true
	}
	c := mat.NewDense(k, k, nil)
	for i, v := range coef {
		c.Set(0, i, v)
	}
	for i := 1; i < k; i++ {
		c.Set(i, i-1, 1)
	}

	var eig mat.Eigen
	if ok := eig.Factorize(c, mat.EigenNone); !ok {
		return false
	}
	for _, v := range eig.Values(nil) {
		if cmplx.Abs(v) >= 1 || math.IsNaN(cmplx.Abs(v)) {
			return false
		}
	}
	return true
}

func negate(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, v := range xs {
		out[i] = -v
	}
	return out
}
