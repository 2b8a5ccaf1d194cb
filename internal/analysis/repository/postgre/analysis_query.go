package postgre

import (
	"github.com/aarondl/sqlboiler/v4/queries/qm"

	"trend-srv/internal/analysis/repository"
	"trend-srv/pkg/util"
)

const analysesTable = "analyses"

var analysisColumns = []string{"user_id", "analysis_id", "product", "report", "created_at"}

// productKeyExpr folds case and whitespace runs the same way util.NormalizeText does.
const productKeyExpr = `lower(btrim(regexp_replace(product, '\s+', ' ', 'g')))`

const putAnalysisQuery = `INSERT INTO analyses (user_id, analysis_id, product, report, created_at) VALUES ($1, $2, $3, $4, $5)` +
	` ON CONFLICT (user_id, analysis_id) DO UPDATE SET product = EXCLUDED.product, report = EXCLUDED.report, created_at = EXCLUDED.created_at`

// buildGetAnalysisQuery - Build query for Get.
func (r *implRepository) buildGetAnalysisQuery(opts repository.GetOptions) []qm.QueryMod {
	return []qm.QueryMod{
		qm.Select(analysisColumns...),
		qm.From(analysesTable),
		qm.Where("user_id = ?", opts.UserID),
		qm.Where("analysis_id = ?", opts.AnalysisID),
		qm.Limit(1),
	}
}

// buildListAnalysesQuery - Build query for List.
func (r *implRepository) buildListAnalysesQuery(opts repository.ListOptions) []qm.QueryMod {
	mods := []qm.QueryMod{
		qm.Select(analysisColumns...),
		qm.From(analysesTable),
		qm.Where("user_id = ?", opts.UserID),
	}

	// Newest first
	mods = append(mods, qm.OrderBy("created_at DESC"))

	if opts.Limit > 0 {
		mods = append(mods, qm.Limit(opts.Limit))
	}

	return mods
}

// buildDeleteAnalysisQuery - Build query for Delete.
func (r *implRepository) buildDeleteAnalysisQuery(opts repository.DeleteOptions) []qm.QueryMod {
	return []qm.QueryMod{
		qm.From(analysesTable),
		qm.Where("user_id = ?", opts.UserID),
		qm.Where("analysis_id = ?", opts.AnalysisID),
	}
}

// buildLatestByProductQuery - Build query for LatestByProduct.
func (r *implRepository) buildLatestByProductQuery(opts repository.LatestByProductOptions) []qm.QueryMod {
	return []qm.QueryMod{
		qm.Select(analysisColumns...),
		qm.From(analysesTable),
		qm.Where("user_id = ?", opts.UserID),
		qm.Where(productKeyExpr+" = ?", util.NormalizeText(opts.Product)),
		qm.OrderBy("created_at DESC"),
		qm.Limit(1),
	}
}
