package repository

import (
	"context"

	"trend-srv/internal/model"
)

// CacheRepository stores finished reports for a bounded time.
// Implementations must be safe for concurrent use.
//
//go:generate mockery --name CacheRepository
type CacheRepository interface {
	// Get returns the report stored under key if it has not expired.
	Get(ctx context.Context, key string) (*model.AnalysisReport, bool)
	Set(ctx context.Context, key string, report *model.AnalysisReport)
}

//go:generate mockery --name AnalysisRepository
type AnalysisRepository interface {
	// Put stores the analysis. A second Put with the same (user, id) overwrites the first.
	Put(ctx context.Context, opts PutOptions) error
	Get(ctx context.Context, opts GetOptions) (model.StoredAnalysis, error)
	List(ctx context.Context, opts ListOptions) ([]model.StoredAnalysis, error)
	Delete(ctx context.Context, opts DeleteOptions) error
	LatestByProduct(ctx context.Context, opts LatestByProductOptions) (model.StoredAnalysis, error)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	AnalysisRepository
}
