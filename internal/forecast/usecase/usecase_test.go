package usecase

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"
	"time"

	"trend-srv/internal/forecast"
	"trend-srv/internal/forecast/repository"
	"trend-srv/internal/model"
	"trend-srv/pkg/log"
)

var fixedNow = time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

func newTestUseCase(repo repository.SalesRepository) *implUseCase {
	uc := New(log.NewNop(), repo, DefaultConfig()).(*implUseCase)
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func linearSeries(n int, start, slope float64) []model.SalesPoint {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]model.SalesPoint, n)
	for i := range out {
		out[i] = model.SalesPoint{Date: day.AddDate(0, 0, i), Value: start + slope*float64(i)}
	}
	return out
}

// randomWalk returns a series whose differences follow an AR(1) process.
func randomWalk(n int, seed int64) []model.SalesPoint {
	rng := rand.New(rand.NewSource(seed))
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]model.SalesPoint, n)
	level, w := 200.0, 0.0
	for i := range out {
		w = 0.5*w + rng.NormFloat64()
		level += w
		out[i] = model.SalesPoint{Date: day.AddDate(0, 0, i), Value: level}
	}
	return out
}

type fakeRepo struct {
	points []model.SalesPoint
	err    error
	opts   repository.ListSalesOptions
}

func (f *fakeRepo) ListSales(_ context.Context, opts repository.ListSalesOptions) ([]model.SalesPoint, error) {
	f.opts = opts
	return f.points, f.err
}

func (f *fakeRepo) UpsertSales(context.Context, repository.UpsertSalesOptions) error { return nil }

type failingStrategy struct{}

func (failingStrategy) Name() string { return model.ForecastModelAdvanced }
func (failingStrategy) IsApplicable([]model.SalesPoint) bool { return true }
func (failingStrategy) Fit([]model.SalesPoint, int) (model.ForecastResult, error) {
	return model.ForecastResult{}, forecast.ErrSingular
}

func TestForecastEmptySeries(t *testing.T) {
	uc := newTestUseCase(nil)
	res := uc.Forecast(context.Background(), nil, 0)

	if res.ModelUsed != model.ForecastModelLinear {
		t.Fatalf("model mismatch: got %v, want %v", res.ModelUsed, model.ForecastModelLinear)
	}
	if len(res.Series) != model.DefaultForecastPeriods {
		t.Errorf("periods mismatch: got %d, want %d", len(res.Series), model.DefaultForecastPeriods)
	}
	if res.Confidence != 0.5 {
		t.Errorf("confidence mismatch: got %v, want 0.5", res.Confidence)
	}
	if !res.Success || res.FallbackReason == "" {
		t.Errorf("expected success with a fallback reason, got %+v", res)
	}

	noise := rand.New(rand.NewSource(43)).NormFloat64() * 2
	want := math.Max(10, 100+0.5+noise)
	if got := res.Series[0].PredictedValue; math.Abs(got-want) > 1e-9 {
		t.Errorf("first value mismatch: got %v, want %v", got, want)
	}
	wantDate := time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC)
	if !res.Series[0].Date.Equal(wantDate) {
		t.Errorf("first date mismatch: got %v, want %v", res.Series[0].Date, wantDate)
	}

	again := uc.Forecast(context.Background(), nil, 0)
	for i := range res.Series {
		if res.Series[i].PredictedValue != again.Series[i].PredictedValue {
			t.Fatalf("linear forecast not reproducible at %d", i)
		}
	}
}

func TestForecastSinglePoint(t *testing.T) {
	uc := newTestUseCase(nil)
	series := []model.SalesPoint{{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Value: 500}}
	res := uc.Forecast(context.Background(), series, 5)

	if res.ModelUsed != model.ForecastModelLinear {
		t.Fatalf("model mismatch: got %v", res.ModelUsed)
	}
	for i, p := range res.Series {
		if math.Abs(p.PredictedValue-500) > 10 {
			t.Errorf("point %d drifted with zero slope: %v", i, p.PredictedValue)
		}
		if p.PredictedValue < 10 {
			t.Errorf("point %d below floor: %v", i, p.PredictedValue)
		}
	}
}

func TestForecastNonFinite(t *testing.T) {
	uc := newTestUseCase(nil)
	series := linearSeries(20, 10, 1)
	series[5].Value = math.NaN()

	res := uc.Forecast(context.Background(), series, 30)
	if res.ModelUsed != model.ForecastModelMinimal {
		t.Fatalf("model mismatch: got %v, want %v", res.ModelUsed, model.ForecastModelMinimal)
	}
	if res.Success {
		t.Error("minimal fallback must not report success")
	}
	if res.Confidence != 0.3 {
		t.Errorf("confidence mismatch: got %v, want 0.3", res.Confidence)
	}
	if len(res.Series) != 0 || res.Trend != model.ForecastTrendStable {
		t.Errorf("expected empty stable series, got %d points trend %v", len(res.Series), res.Trend)
	}
}

func TestForecastAdvancedLinearSeries(t *testing.T) {
	uc := newTestUseCase(nil)
	series := linearSeries(60, 50, 2)

	res := uc.Forecast(context.Background(), series, 10)
	if res.ModelUsed != model.ForecastModelAdvanced {
		t.Fatalf("model mismatch: got %v (%s)", res.ModelUsed, res.FallbackReason)
	}
	for h, p := range res.Series {
		want := 50 + 2*float64(59+h+1)
		if math.Abs(p.PredictedValue-want) > 2 {
			t.Errorf("h=%d mismatch: got %v, want ~%v", h+1, p.PredictedValue, want)
		}
		if p.LowerBound == nil || p.UpperBound == nil {
			t.Fatalf("h=%d missing bounds", h+1)
		}
		if *p.LowerBound > p.PredictedValue || *p.UpperBound < p.PredictedValue {
			t.Errorf("h=%d prediction outside its interval", h+1)
		}
	}
	if res.Trend != model.ForecastTrendStable && res.Trend != model.ForecastTrendGrowing {
		t.Errorf("unexpected trend: %v", res.Trend)
	}
	if res.Confidence != 0.9 {
		t.Errorf("confidence mismatch: got %v, want 0.9", res.Confidence)
	}
}

func TestForecastSyntheticYear(t *testing.T) {
	uc := newTestUseCase(nil)
	series := uc.LoadSeries(context.Background(), "Pixel 8")

	res := uc.Forecast(context.Background(), series, 30)
	if res.ModelUsed != model.ForecastModelAdvanced {
		t.Fatalf("model mismatch: got %v (%s)", res.ModelUsed, res.FallbackReason)
	}
	if len(res.Series) != 30 {
		t.Errorf("periods mismatch: got %d, want 30", len(res.Series))
	}
	if res.Confidence < 0.3 || res.Confidence > 0.9 {
		t.Errorf("confidence out of range: %v", res.Confidence)
	}
	if res.DataPointsUsed != 365 {
		t.Errorf("data points mismatch: got %d, want 365", res.DataPointsUsed)
	}
}

func TestForecastChainFallsThrough(t *testing.T) {
	uc := newTestUseCase(nil)
	uc.strategies = []forecast.Strategy{failingStrategy{}, linearStrategy{now: uc.clock}}

	res := uc.Forecast(context.Background(), linearSeries(30, 100, 1), 7)
	if res.ModelUsed != model.ForecastModelLinear {
		t.Fatalf("model mismatch: got %v", res.ModelUsed)
	}
	if !strings.Contains(res.FallbackReason, "singular") {
		t.Errorf("fallback reason mismatch: got %q", res.FallbackReason)
	}
	if res.Trend != model.ForecastTrendStable && res.Trend != model.ForecastTrendGrowing {
		t.Errorf("unexpected trend: %v", res.Trend)
	}
}

func TestARIMAFit(t *testing.T) {
	series := randomWalk(120, 7)
	res, err := arimaStrategy{}.Fit(series, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.ModelDetail != "arima(5,1,0)" {
		t.Errorf("order mismatch: got %v, want arima(5,1,0)", res.ModelDetail)
	}
	if res.DataPointsUsed != arimaWindow {
		t.Errorf("window mismatch: got %d, want %d", res.DataPointsUsed, arimaWindow)
	}
	if res.Confidence != 0.7 {
		t.Errorf("confidence mismatch: got %v, want 0.7", res.Confidence)
	}
	if len(res.Series) != 10 {
		t.Fatalf("periods mismatch: got %d, want 10", len(res.Series))
	}
	last := series[len(series)-1].Value
	for i, p := range res.Series {
		if math.Abs(p.PredictedValue-last) > 100 {
			t.Errorf("h=%d forecast far from last level: %v vs %v", i+1, p.PredictedValue, last)
		}
	}
}

func TestInUnitCircle(t *testing.T) {
	tcs := []struct {
		name string
		coef []float64
		want bool
	}{
		{"empty", nil, true},
		{"ar1 stationary", []float64{0.5}, true},
		{"ar1 explosive", []float64{1.2}, false},
		{"ar2 stationary", []float64{0.5, 0.3}, true},
		{"ar2 unit root", []float64{0.9, 0.2}, false},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := inUnitCircle(tc.coef); got != tc.want {
				t.Errorf("inUnitCircle mismatch: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestDifferenceIntegrate(t *testing.T) {
	w, lasts := difference([]float64{1, 3, 6, 10}, 1)
	if len(w) != 3 || w[0] != 2 || w[2] != 4 {
		t.Fatalf("difference mismatch: got %v", w)
	}
	if got := integrate(lasts, 5); got != 15 {
		t.Errorf("integrate mismatch: got %v, want 15", got)
	}

	w2, lasts2 := difference([]float64{1, 3, 6, 10}, 2)
	if len(w2) != 2 || w2[0] != 1 || w2[1] != 1 {
		t.Fatalf("second difference mismatch: got %v", w2)
	}
	if got := integrate(lasts2, 1); got != 15 {
		t.Errorf("second integrate mismatch: got %v, want 15", got)
	}
}

func TestClassifyTrend(t *testing.T) {
	tcs := []struct {
		name string
		vals []float64
		want string
	}{
		{"too short", []float64{1}, model.ForecastTrendStable},
		{"growing", []float64{100, 100, 120, 120}, model.ForecastTrendGrowing},
		{"declining", []float64{100, 100, 80, 80}, model.ForecastTrendDeclining},
		{"within band", []float64{100, 100, 105, 105}, model.ForecastTrendStable},
		{"zero first half", []float64{0, 0, 50, 50}, model.ForecastTrendStable},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := classifyTrend(tc.vals); got != tc.want {
				t.Errorf("trend mismatch: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIntervalConfidence(t *testing.T) {
	f := func(v float64) *float64 { return &v }

	t.Run("no bounds", func(t *testing.T) {
		got := intervalConfidence([]model.ForecastPoint{{PredictedValue: 10}})
		if got != 0.6 {
			t.Errorf("confidence mismatch: got %v, want 0.6", got)
		}
	})
	t.Run("all zero", func(t *testing.T) {
		got := intervalConfidence([]model.ForecastPoint{{PredictedValue: 0, LowerBound: f(-1), UpperBound: f(1)}})
		if got != 0.5 {
			t.Errorf("confidence mismatch: got %v, want 0.5", got)
		}
	})
	t.Run("relative width", func(t *testing.T) {
		got := intervalConfidence([]model.ForecastPoint{{PredictedValue: 100, LowerBound: f(80), UpperBound: f(120)}})
		if got != 0.8 {
			t.Errorf("confidence mismatch: got %v, want 0.8", got)
		}
	})
	t.Run("clamped low", func(t *testing.T) {
		got := intervalConfidence([]model.ForecastPoint{{PredictedValue: 10, LowerBound: f(-100), UpperBound: f(100)}})
		if got != 0.3 {
			t.Errorf("confidence mismatch: got %v, want 0.3", got)
		}
	})
}

func TestLoadSeries(t *testing.T) {
	t.Run("stored history", func(t *testing.T) {
		repo := &fakeRepo{points: linearSeries(40, 10, 1)}
		uc := newTestUseCase(repo)
		got := uc.LoadSeries(context.Background(), "Pixel 8")
		if len(got) != 40 {
			t.Errorf("length mismatch: got %d, want 40", len(got))
		}
		if repo.opts.Product != "Pixel 8" {
			t.Errorf("product mismatch: got %q", repo.opts.Product)
		}
	})

	t.Run("repository error synthesizes", func(t *testing.T) {
		uc := newTestUseCase(&fakeRepo{err: errors.New("down")})
		got := uc.LoadSeries(context.Background(), "Pixel 8")
		if len(got) != 365 {
			t.Fatalf("length mismatch: got %d, want 365", len(got))
		}
		wantEnd := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
		if !got[364].Date.Equal(wantEnd) {
			t.Errorf("end date mismatch: got %v, want %v", got[364].Date, wantEnd)
		}
		for i, p := range got {
			if p.Value < 20 {
				t.Fatalf("point %d below floor: %v", i, p.Value)
			}
		}
	})

	t.Run("deterministic per product", func(t *testing.T) {
		uc := newTestUseCase(nil)
		a := uc.LoadSeries(context.Background(), "Pixel 8")
		b := uc.LoadSeries(context.Background(), "pixel 8")
		c := uc.LoadSeries(context.Background(), "Galaxy S24")
		if a[100].Value != b[100].Value {
			t.Error("same product produced different series")
		}
		same := true
		for i := range a {
			if a[i].Value != c[i].Value {
				same = false
				break
			}
		}
		if same {
			t.Error("different products produced identical series")
		}
	})
}
