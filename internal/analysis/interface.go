package analysis

import (
	"context"

	"trend-srv/internal/model"
)

// Analyzer runs the analysis pipeline for one product.
type Analyzer interface {
	// Analyze never fails and never panics. When the pipeline cannot finish it
	// returns a synthetic report with Degraded set. The returned report may be
	// shared through the cache and must not be mutated.
	Analyze(ctx context.Context, product string, sources []string) *model.AnalysisReport
}

//go:generate mockery --name UseCase
type UseCase interface {
	Analyzer
	Generate(ctx context.Context, sc model.Scope, input GenerateInput) (GenerateOutput, error)
	Get(ctx context.Context, sc model.Scope, input GetInput) (model.StoredAnalysis, error)
	List(ctx context.Context, sc model.Scope, input ListInput) ([]Summary, error)
	Delete(ctx context.Context, sc model.Scope, input DeleteInput) error
	Compare(ctx context.Context, sc model.Scope, input CompareInput) (CompareOutput, error)
}

// Publisher emits analysis lifecycle events.
//
//go:generate mockery --name Publisher
type Publisher interface {
	PublishCompleted(ctx context.Context, evt CompletedEvent) error
}
