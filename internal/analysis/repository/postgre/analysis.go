package postgre

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"trend-srv/internal/analysis/repository"
	"trend-srv/internal/model"
	"trend-srv/internal/sqlboiler"
)

// analysisRow is one row of the analyses table.
type analysisRow struct {
	UserID     string    `boil:"user_id"`
	AnalysisID string    `boil:"analysis_id"`
	Product    string    `boil:"product"`
	Report     []byte    `boil:"report"`
	CreatedAt  time.Time `boil:"created_at"`
}

// Put - Upsert one analysis, last write wins.
func (r *implRepository) Put(ctx context.Context, opts repository.PutOptions) error {
	a := opts.Analysis
	report, err := json.Marshal(a.Report)
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.Put: Failed to encode report: %v", err)
		return repository.ErrAnalysisPutFailed
	}

	q := sqlboiler.Raw(putAnalysisQuery, a.UserID, a.AnalysisID, a.Product, report, a.CreatedAt)
	if _, err := q.ExecContext(ctx, r.db); err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.Put: Failed to upsert analysis: %v", err)
		return repository.ErrAnalysisPutFailed
	}

	return nil
}

// Get - Get one analysis of a user.
func (r *implRepository) Get(ctx context.Context, opts repository.GetOptions) (model.StoredAnalysis, error) {
	var row analysisRow
	err := sqlboiler.NewQuery(r.buildGetAnalysisQuery(opts)...).Bind(ctx, r.db, &row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.StoredAnalysis{}, repository.ErrAnalysisNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.Get: Failed to get analysis: %v", err)
		return model.StoredAnalysis{}, repository.ErrAnalysisQueryFailed
	}

	a, err := row.toModel()
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.Get: Failed to decode report: %v", err)
		return model.StoredAnalysis{}, repository.ErrAnalysisQueryFailed
	}
	return a, nil
}

// List - List a user's analyses, newest first.
func (r *implRepository) List(ctx context.Context, opts repository.ListOptions) ([]model.StoredAnalysis, error) {
	var rows []analysisRow
	if err := sqlboiler.NewQuery(r.buildListAnalysesQuery(opts)...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.List: Failed to list analyses: %v", err)
		return nil, repository.ErrAnalysisQueryFailed
	}

	result := make([]model.StoredAnalysis, 0, len(rows))
	for _, row := range rows {
		a, err := row.toModel()
		if err != nil {
			r.l.Errorf(ctx, "analysis.repository.postgre.List: Failed to decode report: %v", err)
			return nil, repository.ErrAnalysisQueryFailed
		}
		result = append(result, a)
	}

	return result, nil
}

// Delete - Delete one analysis of a user.
func (r *implRepository) Delete(ctx context.Context, opts repository.DeleteOptions) error {
	res, err := sqlboiler.NewDelete(r.buildDeleteAnalysisQuery(opts)...).ExecContext(ctx, r.db)
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.Delete: Failed to delete analysis: %v", err)
		return repository.ErrAnalysisQueryFailed
	}

	n, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.Delete: Failed to read affected rows: %v", err)
		return repository.ErrAnalysisQueryFailed
	}
	if n == 0 {
		return repository.ErrAnalysisNotFound
	}

	return nil
}

// LatestByProduct - Get a user's most recent analysis of a product.
func (r *implRepository) LatestByProduct(ctx context.Context, opts repository.LatestByProductOptions) (model.StoredAnalysis, error) {
	var row analysisRow
	err := sqlboiler.NewQuery(r.buildLatestByProductQuery(opts)...).Bind(ctx, r.db, &row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.StoredAnalysis{}, repository.ErrAnalysisNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.LatestByProduct: Failed to get analysis: %v", err)
		return model.StoredAnalysis{}, repository.ErrAnalysisQueryFailed
	}

	a, err := row.toModel()
	if err != nil {
		r.l.Errorf(ctx, "analysis.repository.postgre.LatestByProduct: Failed to decode report: %v", err)
		return model.StoredAnalysis{}, repository.ErrAnalysisQueryFailed
	}
	return a, nil
}

func (row analysisRow) toModel() (model.StoredAnalysis, error) {
	a := model.StoredAnalysis{
		UserID:     row.UserID,
		AnalysisID: row.AnalysisID,
		Product:    row.Product,
		CreatedAt:  row.CreatedAt.UTC(),
	}
	if err := json.Unmarshal(row.Report, &a.Report); err != nil {
		return model.StoredAnalysis{}, err
	}
	return a, nil
}
