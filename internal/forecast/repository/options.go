package repository

import (
	"time"

	"trend-srv/internal/model"
)

type ListSalesOptions struct {
	Product string
	Since   time.Time // zero means the whole history
	Limit   int
}

type UpsertSalesOptions struct {
	Product string
	Points  []model.SalesPoint
}
