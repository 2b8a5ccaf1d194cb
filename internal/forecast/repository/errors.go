package repository

import "errors"

var (
	ErrSalesQueryFailed  = errors.New("repository: failed to query sales history")
	ErrSalesUpsertFailed = errors.New("repository: failed to upsert sales history")
)
