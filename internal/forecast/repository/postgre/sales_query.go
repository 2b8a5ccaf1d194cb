package postgre

import (
	"github.com/aarondl/sqlboiler/v4/queries/qm"

	"trend-srv/internal/forecast/repository"
	"trend-srv/pkg/util"
)

const upsertSalesQuery = `INSERT INTO sales_history (product, ds, y) VALUES ($1, $2, $3)` +
	` ON CONFLICT (product, ds) DO UPDATE SET y = EXCLUDED.y`

// buildListSalesQuery - Build query for ListSales.
func (r *implRepository) buildListSalesQuery(opts repository.ListSalesOptions) []qm.QueryMod {
	mods := []qm.QueryMod{
		qm.Select("ds", "y"),
		qm.From("sales_history"),
		qm.Where("product = ?", util.NormalizeText(opts.Product)),
	}

	if !opts.Since.IsZero() {
		mods = append(mods, qm.Where("ds >= ?", opts.Since))
	}

	// Oldest first, the forecaster expects an ordered series
	mods = append(mods, qm.OrderBy("ds ASC"))

	if opts.Limit > 0 {
		mods = append(mods, qm.Limit(opts.Limit))
	}

	return mods
}

// buildUpsertSalesArgs - Build the argument rows for UpsertSales, one per point.
func (r *implRepository) buildUpsertSalesArgs(opts repository.UpsertSalesOptions) [][]interface{} {
	product := util.NormalizeText(opts.Product)
	rows := make([][]interface{}, 0, len(opts.Points))
	for _, p := range opts.Points {
		rows = append(rows, []interface{}{product, util.StartOfDay(p.Date), p.Value})
	}
	return rows
}
