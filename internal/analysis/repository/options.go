package repository

import "trend-srv/internal/model"

type PutOptions struct {
	Analysis model.StoredAnalysis
}

type GetOptions struct {
	UserID     string
	AnalysisID string
}

type ListOptions struct {
	UserID string
	Limit  int
}

type DeleteOptions struct {
	UserID     string
	AnalysisID string
}

type LatestByProductOptions struct {
	UserID  string
	Product string
}
