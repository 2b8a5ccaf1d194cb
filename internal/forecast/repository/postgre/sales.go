package postgre

import (
	"context"
	"time"

	"trend-srv/internal/forecast/repository"
	"trend-srv/internal/model"
	"trend-srv/internal/sqlboiler"
)

// salesRow is one row of the sales_history table.
type salesRow struct {
	DS time.Time `boil:"ds"`
	Y  float64   `boil:"y"`
}

// ListSales - List the stored history of a product, oldest first.
func (r *implRepository) ListSales(ctx context.Context, opts repository.ListSalesOptions) ([]model.SalesPoint, error) {
	var rows []salesRow
	if err := sqlboiler.NewQuery(r.buildListSalesQuery(opts)...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "forecast.repository.postgre.ListSales: Failed to query sales: %v", err)
		return nil, repository.ErrSalesQueryFailed
	}

	points := make([]model.SalesPoint, 0, len(rows))
	for _, row := range rows {
		points = append(points, model.SalesPoint{Date: row.DS.UTC(), Value: row.Y})
	}

	return points, nil
}

// UpsertSales - Insert or overwrite history points in one transaction.
func (r *implRepository) UpsertSales(ctx context.Context, opts repository.UpsertSalesOptions) error {
	if len(opts.Points) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		r.l.Errorf(ctx, "forecast.repository.postgre.UpsertSales: Failed to begin transaction: %v", err)
		return repository.ErrSalesUpsertFailed
	}
	defer func() { _ = tx.Rollback() }()

	for _, args := range r.buildUpsertSalesArgs(opts) {
		if _, err := sqlboiler.Raw(upsertSalesQuery, args...).ExecContext(ctx, tx); err != nil {
			r.l.Errorf(ctx, "forecast.repository.postgre.UpsertSales: Failed to upsert point: %v", err)
			return repository.ErrSalesUpsertFailed
		}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "forecast.repository.postgre.UpsertSales: Failed to commit: %v", err)
		return repository.ErrSalesUpsertFailed
	}

	return nil
}
