package http

import (
	"errors"

	"trend-srv/internal/analysis"
	pkgErrors "trend-srv/pkg/errors"
)

var (
	errInvalidBody        = pkgErrors.NewHTTPError(400, "Invalid request body")
	errProductRequired    = pkgErrors.NewHTTPError(400, "Product is required")
	errProductsRequired   = pkgErrors.NewHTTPError(400, "At least one product is required")
	errAnalysisNotFound   = pkgErrors.NewHTTPError(404, "Analysis not found")
	errUnauthenticated    = pkgErrors.NewHTTPError(401, "Unauthorized")
	errStoreDisabled      = pkgErrors.NewHTTPError(503, "Analysis storage is not available")
	errAnalysisSaveFailed = pkgErrors.NewHTTPError(500, "Failed to save analysis")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, analysis.ErrProductRequired):
		return errProductRequired
	case errors.Is(err, analysis.ErrProductsRequired):
		return errProductsRequired
	case errors.Is(err, analysis.ErrAnalysisNotFound):
		return errAnalysisNotFound
	case errors.Is(err, analysis.ErrUnauthenticated):
		return errUnauthenticated
	case errors.Is(err, analysis.ErrStoreDisabled):
		return errStoreDisabled
	case errors.Is(err, analysis.ErrAnalysisSaveFailed):
		return errAnalysisSaveFailed
	}
	return err
}
