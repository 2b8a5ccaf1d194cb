package repository

import "errors"

var (
	ErrAnalysisNotFound    = errors.New("repository: analysis not found")
	ErrAnalysisPutFailed   = errors.New("repository: failed to store analysis")
	ErrAnalysisQueryFailed = errors.New("repository: failed to query analyses")
)
