package analysis

import "errors"

var (
	ErrProductRequired    = errors.New("analysis: product is required")
	ErrAnalysisNotFound   = errors.New("analysis: not found")
	ErrProductsRequired   = errors.New("analysis: at least one product is required")
	ErrAnalysisSaveFailed = errors.New("analysis: failed to save analysis")
	ErrUnauthenticated    = errors.New("analysis: user is required")
	ErrStoreDisabled      = errors.New("analysis: analysis store is not configured")
	ErrAdapterPanic       = errors.New("analysis: source adapter panicked")
	ErrAdapterMissing     = errors.New("analysis: no adapter registered")
)
