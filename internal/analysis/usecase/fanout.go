package usecase

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"trend-srv/internal/analysis"
	"trend-srv/internal/metrics"
	"trend-srv/internal/model"
	"trend-srv/internal/source"
)

const (
	fetchLive     = "live"
	fetchFallback = "fallback"
	fetchFailed   = "failed"
)

// fetchTask is the outcome of one adapter call.
type fetchTask struct {
	source string
	result source.Result
	err    error
}

// gathered is the merge of every fetch task.
type gathered struct {
	posts    []model.Post
	interest *model.SearchInterest
	failed   []string
}

// fetchAll calls every adapter concurrently and waits for all of them.
// Tasks never return an error to the group, so one failure does not cancel the rest.
func (uc *implUseCase) fetchAll(ctx context.Context, product string, ids []string) []fetchTask {
	tasks := make([]fetchTask, len(ids))

	var g errgroup.Group
	for i, id := range ids {
		g.Go(func() error {
			tasks[i] = uc.fetchOne(ctx, product, id)
			return nil
		})
	}
	_ = g.Wait()

	return tasks
}

func (uc *implUseCase) fetchOne(ctx context.Context, product, id string) (t fetchTask) {
	t.source = id

	adapter, ok := uc.registry.Get(id)
	if !ok {
		t.err = fmt.Errorf("%w: %s", analysis.ErrAdapterMissing, id)
		return t
	}

	defer func() {
		if r := recover(); r != nil {
			t.result = source.Result{}
			t.err = fmt.Errorf("%w: %s: %v", analysis.ErrAdapterPanic, id, r)
		}
	}()

	t.result, t.err = adapter.Fetch(ctx, product, source.DefaultLimit(id))
	return t
}

// merge flattens posts in source order, swaps failed tasks for fallback data
// and pulls the search-interest signal out of google_trends.
func (uc *implUseCase) merge(ctx context.Context, product string, tasks []fetchTask) gathered {
	var g gathered

	for _, t := range tasks {
		res := t.result
		switch {
		case t.err != nil:
			uc.l.Warnf(ctx, "analysis.usecase.merge: source %s failed for %s: %v", t.source, product, t.err)
			metrics.IncSourceFetch(t.source, fetchFailed)
			g.failed = append(g.failed, t.source)
			res = uc.fallback(ctx, t.source, product)
		case res.Synthetic:
			metrics.IncSourceFetch(t.source, fetchFallback)
		default:
			metrics.IncSourceFetch(t.source, fetchLive)
		}

		if t.source == model.SourceGoogleTrends {
			if res.Interest != nil && len(res.Interest.Points) > 0 {
				g.interest = res.Interest
			}
			continue
		}
		g.posts = append(g.posts, res.Posts...)
	}

	return g
}

// fallback returns the adapter's synthetic data, or nothing when the adapter
// is missing or its fallback panics too.
func (uc *implUseCase) fallback(ctx context.Context, id, product string) (res source.Result) {
	adapter, ok := uc.registry.Get(id)
	if !ok {
		return source.Result{Source: id}
	}

	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "analysis.usecase.fallback: source %s fallback panicked: %v", id, r)
			res = source.Result{Source: id}
		}
	}()

	return adapter.Fallback(product)
}
