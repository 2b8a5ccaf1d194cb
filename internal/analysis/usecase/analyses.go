package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"trend-srv/internal/analysis"
	"trend-srv/internal/analysis/repository"
	"trend-srv/internal/model"
	"trend-srv/pkg/util"
)

// Generate runs an analysis and stores it for the caller.
func (uc *implUseCase) Generate(ctx context.Context, sc model.Scope, input analysis.GenerateInput) (analysis.GenerateOutput, error) {
	// Step 1: Validate
	if sc.UserID == "" {
		return analysis.GenerateOutput{}, analysis.ErrUnauthenticated
	}
	product := strings.TrimSpace(input.Product)
	if product == "" {
		return analysis.GenerateOutput{}, analysis.ErrProductRequired
	}
	if uc.repo == nil {
		return analysis.GenerateOutput{}, analysis.ErrStoreDisabled
	}

	// Step 2: Analyze
	report := uc.Analyze(ctx, product, input.Sources)

	// Step 3: Persist
	createdAt := uc.now().UTC()
	stored := model.StoredAnalysis{
		UserID:     sc.UserID,
		AnalysisID: analysisID(product, createdAt),
		Product:    product,
		Report:     *report,
		CreatedAt:  createdAt,
	}
	if err := uc.repo.Put(ctx, repository.PutOptions{Analysis: stored}); err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.Generate: Failed to store analysis %s: %v", stored.AnalysisID, err)
		return analysis.GenerateOutput{}, analysis.ErrAnalysisSaveFailed
	}

	// Step 4: Publish, best effort
	uc.publishCompleted(ctx, stored)

	return analysis.GenerateOutput{
		AnalysisID: stored.AnalysisID,
		Report:     report,
	}, nil
}

// Get returns one stored analysis of the caller.
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, input analysis.GetInput) (model.StoredAnalysis, error) {
	if sc.UserID == "" {
		return model.StoredAnalysis{}, analysis.ErrUnauthenticated
	}
	if uc.repo == nil {
		return model.StoredAnalysis{}, analysis.ErrStoreDisabled
	}

	a, err := uc.repo.Get(ctx, repository.GetOptions{UserID: sc.UserID, AnalysisID: input.AnalysisID})
	if err != nil {
		if errors.Is(err, repository.ErrAnalysisNotFound) {
			return model.StoredAnalysis{}, analysis.ErrAnalysisNotFound
		}
		uc.l.Errorf(ctx, "analysis.usecase.Get: Failed to get analysis %s: %v", input.AnalysisID, err)
		return model.StoredAnalysis{}, err
	}

	return a, nil
}

// List returns the caller's analyses newest first with raw_data reduced to the sources used.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input analysis.ListInput) ([]analysis.Summary, error) {
	if sc.UserID == "" {
		return nil, analysis.ErrUnauthenticated
	}
	if uc.repo == nil {
		return nil, analysis.ErrStoreDisabled
	}

	limit := input.Limit
	if limit <= 0 || limit > uc.cfg.ListLimit {
		limit = uc.cfg.ListLimit
	}

	items, err := uc.repo.List(ctx, repository.ListOptions{UserID: sc.UserID, Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "analysis.usecase.List: Failed to list analyses: %v", err)
		return nil, err
	}

	out := make([]analysis.Summary, 0, len(items))
	for _, a := range items {
		report := a.Report
		report.RawData = model.RawData{SourcesUsed: a.Report.RawData.SourcesUsed}
		out = append(out, analysis.Summary{
			AnalysisID: a.AnalysisID,
			Product:    a.Product,
			Report:     report,
			CreatedAt:  a.CreatedAt,
		})
	}

	return out, nil
}

// Delete removes one stored analysis of the caller.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, input analysis.DeleteInput) error {
	if sc.UserID == "" {
		return analysis.ErrUnauthenticated
	}
	if uc.repo == nil {
		return analysis.ErrStoreDisabled
	}

	if err := uc.repo.Delete(ctx, repository.DeleteOptions{UserID: sc.UserID, AnalysisID: input.AnalysisID}); err != nil {
		if errors.Is(err, repository.ErrAnalysisNotFound) {
			return analysis.ErrAnalysisNotFound
		}
		uc.l.Errorf(ctx, "analysis.usecase.Delete: Failed to delete analysis %s: %v", input.AnalysisID, err)
		return err
	}

	return nil
}

// Compare returns the latest analysis of every product that has one.
func (uc *implUseCase) Compare(ctx context.Context, sc model.Scope, input analysis.CompareInput) (analysis.CompareOutput, error) {
	if sc.UserID == "" {
		return analysis.CompareOutput{}, analysis.ErrUnauthenticated
	}
	if uc.repo == nil {
		return analysis.CompareOutput{}, analysis.ErrStoreDisabled
	}

	products := splitProducts(input.Products)
	if len(products) == 0 {
		return analysis.CompareOutput{}, analysis.ErrProductsRequired
	}

	out := analysis.CompareOutput{Analyses: make(map[string]model.StoredAnalysis, len(products))}
	for _, p := range products {
		a, err := uc.repo.LatestByProduct(ctx, repository.LatestByProductOptions{UserID: sc.UserID, Product: p})
		if errors.Is(err, repository.ErrAnalysisNotFound) {
			continue
		}
		if err != nil {
			uc.l.Errorf(ctx, "analysis.usecase.Compare: Failed to load %s: %v", p, err)
			return analysis.CompareOutput{}, err
		}
		out.Analyses[p] = a
	}

	return out, nil
}

func (uc *implUseCase) publishCompleted(ctx context.Context, a model.StoredAnalysis) {
	if uc.publisher == nil {
		return
	}

	evt := analysis.CompletedEvent{
		UserID:           a.UserID,
		AnalysisID:       a.AnalysisID,
		Product:          a.Product,
		OverallSentiment: a.Report.Sentiment.OverallSentiment,
		PredictedTrend:   a.Report.TrendPrediction.PredictedTrend,
		Confidence:       a.Report.TrendPrediction.Confidence,
		Degraded:         a.Report.Degraded,
		CompletedAt:      a.CreatedAt,
	}
	if err := uc.publisher.PublishCompleted(ctx, evt); err != nil {
		uc.l.Warnf(ctx, "analysis.usecase.publishCompleted: Failed to publish %s: %v", a.AnalysisID, err)
	}
}

// analysisID is {product}_{yyyymmdd_HHMMSS}.
func analysisID(product string, at time.Time) string {
	return product + "_" + at.Format(util.CompactDateTimeFormat)
}

// splitProducts accepts both repeated values and comma separated lists.
func splitProducts(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, raw := range in {
		for _, p := range strings.Split(raw, ",") {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			if _, ok := seen[p]; ok {
				continue
			}
			seen[p] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}
