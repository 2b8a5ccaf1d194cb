package repository

import (
	"context"

	"trend-srv/internal/model"
)

//go:generate mockery --name SalesRepository
type SalesRepository interface {
	// ListSales returns the history of a product ordered by date ascending.
	ListSales(ctx context.Context, opts ListSalesOptions) ([]model.SalesPoint, error)
	UpsertSales(ctx context.Context, opts UpsertSalesOptions) error
}
