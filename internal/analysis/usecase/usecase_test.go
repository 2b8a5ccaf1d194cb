package usecase

import (
	"context"
	"errors"
	"reflect"
	"sort"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"trend-srv/internal/analysis"
	"trend-srv/internal/analysis/repository"
	forecastUsecase "trend-srv/internal/forecast/usecase"
	"trend-srv/internal/model"
	sentimentUsecase "trend-srv/internal/sentiment/usecase"
	"trend-srv/internal/source"
	"trend-srv/internal/source/reddit"
	trendUsecase "trend-srv/internal/trend/usecase"
	"trend-srv/pkg/log"
)

type fakeAdapter struct {
	id       string
	posts    []model.Post
	interest *model.SearchInterest
	err      error
	panics   bool
	calls    atomic.Int32
}

func (f *fakeAdapter) Source() string { return f.id }

func (f *fakeAdapter) Fetch(ctx context.Context, product string, limit int) (source.Result, error) {
	f.calls.Add(1)
	if f.panics {
		panic("boom")
	}
	if f.err != nil {
		return source.Result{}, f.err
	}
	return source.Result{Source: f.id, Posts: f.posts, Interest: f.interest}, nil
}

func (f *fakeAdapter) Fallback(product string) source.Result {
	return source.Result{
		Source:    f.id,
		Posts:     []model.Post{{Text: "fallback review of " + product + " is fine", Source: f.id}},
		Synthetic: true,
	}
}

type panicSentiment struct{}

func (panicSentiment) Estimate(ctx context.Context, posts []model.Post, product string) model.SentimentResult {
	panic("estimator exploded")
}

type fakeRepo struct {
	mu    sync.Mutex
	items map[string]model.StoredAnalysis
	err   error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: map[string]model.StoredAnalysis{}}
}

func (r *fakeRepo) Put(ctx context.Context, opts repository.PutOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.items[opts.Analysis.UserID+"/"+opts.Analysis.AnalysisID] = opts.Analysis
	return nil
}

func (r *fakeRepo) Get(ctx context.Context, opts repository.GetOptions) (model.StoredAnalysis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.items[opts.UserID+"/"+opts.AnalysisID]
	if !ok {
		return model.StoredAnalysis{}, repository.ErrAnalysisNotFound
	}
	return a, nil
}

func (r *fakeRepo) List(ctx context.Context, opts repository.ListOptions) ([]model.StoredAnalysis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []model.StoredAnalysis
	for _, a := range r.items {
		if a.UserID == opts.UserID {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (r *fakeRepo) Delete(ctx context.Context, opts repository.DeleteOptions) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	k := opts.UserID + "/" + opts.AnalysisID
	if _, ok := r.items[k]; !ok {
		return repository.ErrAnalysisNotFound
	}
	delete(r.items, k)
	return nil
}

func (r *fakeRepo) LatestByProduct(ctx context.Context, opts repository.LatestByProductOptions) (model.StoredAnalysis, error) {
	list, _ := r.List(ctx, repository.ListOptions{UserID: opts.UserID})
	for _, a := range list {
		if a.Product == opts.Product {
			return a, nil
		}
	}
	return model.StoredAnalysis{}, repository.ErrAnalysisNotFound
}

type fakePublisher struct {
	events []analysis.CompletedEvent
	err    error
}

func (p *fakePublisher) PublishCompleted(ctx context.Context, evt analysis.CompletedEvent) error {
	p.events = append(p.events, evt)
	return p.err
}

func post(id, text string, engagement float64) model.Post {
	return model.Post{Text: text, Source: id, EngagementScore: engagement}
}

func newTestUseCase(deps Deps) *implUseCase {
	l := log.NewNop()
	if deps.Sentiment == nil {
		deps.Sentiment = sentimentUsecase.New(l, nil, sentimentUsecase.DefaultConfig())
	}
	if deps.Forecast == nil {
		deps.Forecast = forecastUsecase.New(l, nil, forecastUsecase.DefaultConfig())
	}
	if deps.Trend == nil {
		deps.Trend = trendUsecase.New(l, nil)
	}
	return New(l, deps, DefaultConfig()).(*implUseCase)
}

func TestNormalizeSources(t *testing.T) {
	uc := newTestUseCase(Deps{})
	all := model.DefaultSources()
	sort.Strings(all)

	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{name: "empty means all", in: nil, want: all},
		{name: "default keyword", in: []string{"default"}, want: all},
		{name: "unknown dropped", in: []string{"reddit", "myspace"}, want: []string{"reddit"}},
		{name: "only unknown means all", in: []string{"myspace"}, want: all},
		{name: "sorted and deduped", in: []string{"twitter", " Reddit ", "twitter"}, want: []string{"reddit", "twitter"}},
		{name: "default plus explicit", in: []string{"amazon", "default"}, want: all},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := uc.normalizeSources(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("normalizeSources mismatch: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCacheKey(t *testing.T) {
	got := cacheKey(" iPhone 14 ", []string{"reddit", "twitter"})
	want := "product:iPhone 14:reddit,twitter"
	if got != want {
		t.Errorf("cacheKey mismatch: got %q, want %q", got, want)
	}
}

func TestAnalyze(t *testing.T) {
	ctx := context.Background()

	t.Run("cache returns the same report", func(t *testing.T) {
		tw := &fakeAdapter{id: model.SourceTwitter, posts: []model.Post{post(model.SourceTwitter, "the pixel 8 camera is amazing", 10)}}
		uc := newTestUseCase(Deps{Registry: source.NewRegistry(tw)})

		first := uc.Analyze(ctx, "Pixel 8", []string{"twitter"})
		second := uc.Analyze(ctx, " Pixel 8", []string{"twitter", "twitter"})
		if first != second {
			t.Errorf("cache mismatch: got %p, want %p", second, first)
		}
		if got := tw.calls.Load(); got != 1 {
			t.Errorf("fetch calls mismatch: got %d, want 1", got)
		}
	})

	t.Run("cache keeps product casing apart", func(t *testing.T) {
		tw := &fakeAdapter{id: model.SourceTwitter, posts: []model.Post{post(model.SourceTwitter, "the pixel 8 camera is amazing", 10)}}
		uc := newTestUseCase(Deps{Registry: source.NewRegistry(tw)})

		upper := uc.Analyze(ctx, "PIXEL 8", []string{"twitter"})
		lower := uc.Analyze(ctx, "pixel 8", []string{"twitter"})
		if upper.Product != "PIXEL 8" {
			t.Errorf("product mismatch: got %q, want %q", upper.Product, "PIXEL 8")
		}
		if lower.Product != "pixel 8" {
			t.Errorf("product mismatch: got %q, want %q", lower.Product, "pixel 8")
		}
		if got := tw.calls.Load(); got != 2 {
			t.Errorf("fetch calls mismatch: got %d, want 2", got)
		}
	})

	t.Run("reddit without credentials still yields a report", func(t *testing.T) {
		rd := reddit.New(log.NewNop(), nil, reddit.Config{})
		uc := newTestUseCase(Deps{Registry: source.NewRegistry(rd)})

		report := uc.Analyze(ctx, "iPhone 14", []string{"reddit"})
		if report.Sentiment.SampleSize < 1 {
			t.Errorf("sample size mismatch: got %d, want >= 1", report.Sentiment.SampleSize)
		}
		if !model.IsValidPredictedTrend(report.TrendPrediction.PredictedTrend) {
			t.Errorf("invalid trend: %q", report.TrendPrediction.PredictedTrend)
		}
		if !reflect.DeepEqual(report.RawData.FailedSources, []string{model.SourceReddit}) {
			t.Errorf("failed sources mismatch: got %v", report.RawData.FailedSources)
		}
		if !report.Degraded {
			t.Error("expected degraded report")
		}
	})

	t.Run("panicking adapter becomes a failed task", func(t *testing.T) {
		bad := &fakeAdapter{id: model.SourceYouTube, panics: true}
		good := &fakeAdapter{id: model.SourceNews, posts: []model.Post{post(model.SourceNews, "galaxy s24 launch draws crowds", 3)}}
		uc := newTestUseCase(Deps{Registry: source.NewRegistry(bad, good)})

		report := uc.Analyze(ctx, "Galaxy S24", []string{"youtube", "news"})
		if report.RawData.SourcesAnalyzed != 2 {
			t.Errorf("sources analyzed mismatch: got %d, want 2", report.RawData.SourcesAnalyzed)
		}
		if !reflect.DeepEqual(report.RawData.FailedSources, []string{model.SourceYouTube}) {
			t.Errorf("failed sources mismatch: got %v", report.RawData.FailedSources)
		}
		if report.TrendPrediction.Reasoning == "Fallback analysis - insufficient data" {
			t.Error("adapter panic should not produce the synthetic report")
		}
	})

	t.Run("raw data assembly", func(t *testing.T) {
		var posts []model.Post
		for i := 0; i < 15; i++ {
			posts = append(posts, post(model.SourceAmazon, "great kindle reader battery", 2))
		}
		amz := &fakeAdapter{id: model.SourceAmazon, posts: posts}
		uc := newTestUseCase(Deps{Registry: source.NewRegistry(amz)})

		report := uc.Analyze(ctx, "Kindle", []string{"amazon"})
		raw := report.RawData
		if raw.SourcesAnalyzed != 15 {
			t.Errorf("sources analyzed mismatch: got %d, want 15", raw.SourcesAnalyzed)
		}
		if len(raw.SamplePosts) != 10 {
			t.Errorf("sample posts mismatch: got %d, want 10", len(raw.SamplePosts))
		}
		if len(raw.SalesData) != 30 {
			t.Errorf("sales data mismatch: got %d, want 30", len(raw.SalesData))
		}
		if !reflect.DeepEqual(raw.SourcesUsed, []string{model.SourceAmazon}) {
			t.Errorf("sources used mismatch: got %v", raw.SourcesUsed)
		}
		if raw.SalesForecast.Periods != 30 || len(report.TrendData) != 30 {
			t.Errorf("forecast mismatch: periods %d, chart %d", raw.SalesForecast.Periods, len(report.TrendData))
		}
		if report.Degraded {
			t.Error("unexpected degraded report")
		}
	})

	t.Run("search interest drives the chart", func(t *testing.T) {
		day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		gt := &fakeAdapter{id: model.SourceGoogleTrends, interest: &model.SearchInterest{Points: []model.InterestPoint{
			{Date: day, Value: 40},
			{Date: day.AddDate(0, 0, 7), Value: 55},
		}}}
		uc := newTestUseCase(Deps{Registry: source.NewRegistry(gt)})

		report := uc.Analyze(ctx, "Switch 2", []string{"google_trends"})
		if report.RawData.SearchInterest == nil {
			t.Fatal("search interest missing")
		}
		if len(report.TrendData) != 2 || report.TrendData[1].Value != 55 || report.TrendData[0].Date != "2024-03-01" {
			t.Errorf("chart mismatch: got %+v", report.TrendData)
		}
		if report.RawData.SourcesAnalyzed != 0 {
			t.Errorf("sources analyzed mismatch: got %d, want 0", report.RawData.SourcesAnalyzed)
		}
	})

	t.Run("pipeline panic yields an uncached synthetic report", func(t *testing.T) {
		tw := &fakeAdapter{id: model.SourceTwitter, posts: []model.Post{post(model.SourceTwitter, "steam deck rocks", 1)}}
		uc := newTestUseCase(Deps{Registry: source.NewRegistry(tw), Sentiment: panicSentiment{}})

		report := uc.Analyze(ctx, "Steam Deck", []string{"twitter"})
		assertSynthetic(t, report)

		again := uc.Analyze(ctx, "Steam Deck", []string{"twitter"})
		if again == report {
			t.Error("synthetic report was cached")
		}
		if got := tw.calls.Load(); got != 2 {
			t.Errorf("fetch calls mismatch: got %d, want 2", got)
		}
	})

	t.Run("cancelled context yields synthetic report", func(t *testing.T) {
		tw := &fakeAdapter{id: model.SourceTwitter, posts: []model.Post{post(model.SourceTwitter, "vision pro feels heavy", 1)}}
		uc := newTestUseCase(Deps{Registry: source.NewRegistry(tw)})

		cctx, cancel := context.WithCancel(ctx)
		cancel()
		report := uc.Analyze(cctx, "Vision Pro", []string{"twitter"})
		assertSynthetic(t, report)

		live := uc.Analyze(ctx, "Vision Pro", []string{"twitter"})
		if live.Degraded {
			t.Error("live report after cancellation should not be degraded")
		}
	})

	t.Run("concurrent callers", func(t *testing.T) {
		tw := &fakeAdapter{id: model.SourceTwitter, posts: []model.Post{post(model.SourceTwitter, "quest 3 is fun", 1)}}
		uc := newTestUseCase(Deps{Registry: source.NewRegistry(tw)})

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if r := uc.Analyze(ctx, "Quest 3", []string{"twitter"}); r == nil {
					t.Error("nil report")
				}
			}()
		}
		wg.Wait()
	})
}

func assertSynthetic(t *testing.T, report *model.AnalysisReport) {
	t.Helper()
	if report == nil {
		t.Fatal("nil report")
	}
	if !report.Degraded {
		t.Error("expected degraded report")
	}
	if report.TrendPrediction.Reasoning != "Fallback analysis - insufficient data" {
		t.Errorf("reasoning mismatch: got %q", report.TrendPrediction.Reasoning)
	}
	if report.Sentiment.SampleSize != 25 || report.Sentiment.OverallSentiment != model.SentimentNeutral {
		t.Errorf("sentiment mismatch: got %+v", report.Sentiment)
	}
	if len(report.TrendData) != 30 {
		t.Errorf("chart length mismatch: got %d, want 30", len(report.TrendData))
	}
}

func TestChart(t *testing.T) {
	uc := newTestUseCase(Deps{})
	uc.now = func() time.Time { return time.Date(2024, 6, 30, 15, 0, 0, 0, time.UTC) }

	t.Run("sentiment score", func(t *testing.T) {
		tests := []struct {
			label string
			want  float64
		}{
			{model.SentimentPositive, 0.8},
			{model.SentimentNegative, -0.8},
			{model.SentimentNeutral, 0},
		}
		for _, tt := range tests {
			got := sentimentScore(model.SentimentResult{OverallSentiment: tt.label, ConfidenceScore: 0.8})
			if got != tt.want {
				t.Errorf("sentimentScore(%s) mismatch: got %v, want %v", tt.label, got, tt.want)
			}
		}
	})

	t.Run("forecast series", func(t *testing.T) {
		fc := model.ForecastResult{Series: []model.ForecastPoint{{Date: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), PredictedValue: 12.5}}}
		got := uc.chart("x", model.SentimentResult{OverallSentiment: model.SentimentPositive, ConfidenceScore: 0.9}, fc, nil)
		want := []model.ChartPoint{{Date: "2024-07-01", SentimentScore: 0.9, Value: 12.5}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("chart mismatch: got %+v, want %+v", got, want)
		}
	})

	t.Run("synthetic month is deterministic", func(t *testing.T) {
		sent := model.SentimentResult{OverallSentiment: model.SentimentNegative, ConfidenceScore: 1}
		a := uc.chart("pixel", sent, model.ForecastResult{}, nil)
		b := uc.chart("pixel", sent, model.ForecastResult{}, nil)
		if !reflect.DeepEqual(a, b) {
			t.Error("synthetic chart is not deterministic")
		}
		if len(a) != 30 {
			t.Fatalf("length mismatch: got %d, want 30", len(a))
		}
		if a[0].Date != "2024-06-01" || a[29].Date != "2024-06-30" {
			t.Errorf("date range mismatch: got %s..%s", a[0].Date, a[29].Date)
		}
		for i, p := range a {
			if p.Value < 0 {
				t.Errorf("day %d value below zero: %v", i, p.Value)
			}
			if p.Value > 50-20+12+9 {
				t.Errorf("day %d value too high: %v", i, p.Value)
			}
		}
	})
}

func TestGenerate(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}
	newUC := func(repo *fakeRepo, pub *fakePublisher) *implUseCase {
		tw := &fakeAdapter{id: model.SourceTwitter, posts: []model.Post{post(model.SourceTwitter, "airpods pro sound great", 4)}}
		deps := Deps{Registry: source.NewRegistry(tw), Repo: repo}
		if pub != nil {
			deps.Publisher = pub
		}
		uc := newTestUseCase(deps)
		uc.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
		return uc
	}

	t.Run("stores and publishes", func(t *testing.T) {
		repo, pub := newFakeRepo(), &fakePublisher{}
		uc := newUC(repo, pub)

		out, err := uc.Generate(ctx, sc, analysis.GenerateInput{Product: " AirPods Pro ", Sources: []string{"twitter"}})
		if err != nil {
			t.Fatalf("Generate error: %v", err)
		}
		if out.AnalysisID != "AirPods Pro_20240102_030405" {
			t.Errorf("analysis id mismatch: got %q", out.AnalysisID)
		}
		if _, ok := repo.items["u1/"+out.AnalysisID]; !ok {
			t.Error("analysis not stored")
		}
		if len(pub.events) != 1 || pub.events[0].AnalysisID != out.AnalysisID {
			t.Errorf("events mismatch: got %+v", pub.events)
		}
	})

	t.Run("publish failure is not surfaced", func(t *testing.T) {
		uc := newUC(newFakeRepo(), &fakePublisher{err: errors.New("broker down")})
		if _, err := uc.Generate(ctx, sc, analysis.GenerateInput{Product: "x"}); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("validation", func(t *testing.T) {
		uc := newUC(newFakeRepo(), nil)
		if _, err := uc.Generate(ctx, sc, analysis.GenerateInput{Product: "  "}); !errors.Is(err, analysis.ErrProductRequired) {
			t.Errorf("error mismatch: got %v, want %v", err, analysis.ErrProductRequired)
		}
		if _, err := uc.Generate(ctx, model.Scope{}, analysis.GenerateInput{Product: "x"}); !errors.Is(err, analysis.ErrUnauthenticated) {
			t.Errorf("error mismatch: got %v, want %v", err, analysis.ErrUnauthenticated)
		}
	})

	t.Run("store failure", func(t *testing.T) {
		repo := newFakeRepo()
		repo.err = repository.ErrAnalysisPutFailed
		uc := newUC(repo, nil)
		if _, err := uc.Generate(ctx, sc, analysis.GenerateInput{Product: "x"}); !errors.Is(err, analysis.ErrAnalysisSaveFailed) {
			t.Errorf("error mismatch: got %v, want %v", err, analysis.ErrAnalysisSaveFailed)
		}
	})

	t.Run("no store configured", func(t *testing.T) {
		uc := newTestUseCase(Deps{})
		if _, err := uc.Generate(ctx, sc, analysis.GenerateInput{Product: "x"}); !errors.Is(err, analysis.ErrStoreDisabled) {
			t.Errorf("error mismatch: got %v, want %v", err, analysis.ErrStoreDisabled)
		}
	})
}

func TestStoredAnalyses(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{UserID: "u1"}
	repo := newFakeRepo()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	seed := func(product string, at time.Time) string {
		id := analysisID(product, at)
		repo.items["u1/"+id] = model.StoredAnalysis{
			UserID:     "u1",
			AnalysisID: id,
			Product:    product,
			CreatedAt:  at,
			Report: model.AnalysisReport{
				Product: product,
				RawData: model.RawData{SourcesAnalyzed: 7, SourcesUsed: []string{"reddit"}, SamplePosts: []model.Post{{Text: "t"}}},
			},
		}
		return id
	}
	oldPixel := seed("pixel", base)
	newPixel := seed("pixel", base.Add(time.Hour))
	seed("iphone", base.Add(2*time.Hour))
	repo.items["u2/other"] = model.StoredAnalysis{UserID: "u2", AnalysisID: "other", Product: "pixel"}

	uc := newTestUseCase(Deps{Repo: repo})

	t.Run("list is newest first and reduced", func(t *testing.T) {
		got, err := uc.List(ctx, sc, analysis.ListInput{})
		if err != nil {
			t.Fatalf("List error: %v", err)
		}
		if len(got) != 3 || got[0].Product != "iphone" || got[2].AnalysisID != oldPixel {
			t.Fatalf("order mismatch: got %+v", got)
		}
		raw := got[0].Report.RawData
		if raw.SourcesAnalyzed != 0 || raw.SamplePosts != nil || !reflect.DeepEqual(raw.SourcesUsed, []string{"reddit"}) {
			t.Errorf("raw data not reduced: got %+v", raw)
		}
	})

	t.Run("get", func(t *testing.T) {
		got, err := uc.Get(ctx, sc, analysis.GetInput{AnalysisID: newPixel})
		if err != nil {
			t.Fatalf("Get error: %v", err)
		}
		if got.Report.RawData.SourcesAnalyzed != 7 {
			t.Errorf("full report expected: got %+v", got.Report.RawData)
		}
		if _, err := uc.Get(ctx, model.Scope{UserID: "u2"}, analysis.GetInput{AnalysisID: newPixel}); !errors.Is(err, analysis.ErrAnalysisNotFound) {
			t.Errorf("error mismatch: got %v, want %v", err, analysis.ErrAnalysisNotFound)
		}
	})

	t.Run("compare picks latest and omits missing", func(t *testing.T) {
		out, err := uc.Compare(ctx, sc, analysis.CompareInput{Products: []string{"pixel, galaxy", "pixel"}})
		if err != nil {
			t.Fatalf("Compare error: %v", err)
		}
		if len(out.Analyses) != 1 {
			t.Fatalf("analyses mismatch: got %d, want 1", len(out.Analyses))
		}
		if out.Analyses["pixel"].AnalysisID != newPixel {
			t.Errorf("latest mismatch: got %q, want %q", out.Analyses["pixel"].AnalysisID, newPixel)
		}
		if _, err := uc.Compare(ctx, sc, analysis.CompareInput{Products: []string{" , "}}); !errors.Is(err, analysis.ErrProductsRequired) {
			t.Errorf("error mismatch: got %v, want %v", err, analysis.ErrProductsRequired)
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := uc.Delete(ctx, sc, analysis.DeleteInput{AnalysisID: oldPixel}); err != nil {
			t.Fatalf("Delete error: %v", err)
		}
		if err := uc.Delete(ctx, sc, analysis.DeleteInput{AnalysisID: oldPixel}); !errors.Is(err, analysis.ErrAnalysisNotFound) {
			t.Errorf("error mismatch: got %v, want %v", err, analysis.ErrAnalysisNotFound)
		}
	})
}
