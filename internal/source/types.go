package source

import (
	"time"

	"trend-srv/internal/model"
	"trend-srv/pkg/util"
)

// Result is the output of one adapter. Interest is only set by search-trend sources.
type Result struct {
	Source   string
	Posts    []model.Post
	Interest *model.SearchInterest
	// Synthetic is true when the data came from Fallback.
	Synthetic bool
}

// Info describes a source for listing endpoints.
type Info struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DaysAgo returns midnight UTC n days before today.
func DaysAgo(n int) time.Time {
	return util.Today().AddDate(0, 0, -n)
}
