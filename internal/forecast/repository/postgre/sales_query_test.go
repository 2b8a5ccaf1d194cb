package postgre

import (
	"strings"
	"testing"
	"time"

	"github.com/aarondl/sqlboiler/v4/queries"

	"trend-srv/internal/forecast/repository"
	"trend-srv/internal/model"
	"trend-srv/internal/sqlboiler"
)

func TestBuildListSalesQuery(t *testing.T) {
	r := &implRepository{}

	t.Run("product only", func(t *testing.T) {
		q, args := queries.BuildQuery(sqlboiler.NewQuery(r.buildListSalesQuery(repository.ListSalesOptions{Product: " Pixel  8 "})...))
		for _, want := range []string{"sales_history", "product = $1", "ORDER BY ds ASC"} {
			if !strings.Contains(q, want) {
				t.Errorf("query %q missing %q", q, want)
			}
		}
		if strings.Contains(q, "LIMIT") {
			t.Errorf("unexpected LIMIT in %q", q)
		}
		if len(args) != 1 || args[0] != "pixel 8" {
			t.Errorf("args mismatch: got %v, want [pixel 8]", args)
		}
	})

	t.Run("since and limit", func(t *testing.T) {
		since := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		q, args := queries.BuildQuery(sqlboiler.NewQuery(r.buildListSalesQuery(repository.ListSalesOptions{Product: "x", Since: since, Limit: 90})...))
		for _, want := range []string{"ds >= $2", "LIMIT 90"} {
			if !strings.Contains(q, want) {
				t.Errorf("query %q missing %q", q, want)
			}
		}
		if len(args) != 2 {
			t.Errorf("args mismatch: got %v", args)
		}
	})
}

func TestBuildUpsertSalesArgs(t *testing.T) {
	r := &implRepository{}
	day := time.Date(2024, 1, 1, 13, 0, 0, 0, time.UTC)
	rows := r.buildUpsertSalesArgs(repository.UpsertSalesOptions{
		Product: "X",
		Points:  []model.SalesPoint{{Date: day, Value: 1}, {Date: day.AddDate(0, 0, 1), Value: 2}},
	})
	if len(rows) != 2 {
		t.Fatalf("rows mismatch: got %d, want 2", len(rows))
	}
	if rows[0][0] != "x" {
		t.Errorf("product mismatch: got %v, want x", rows[0][0])
	}
	if got := rows[0][1].(time.Time); got.Hour() != 0 {
		t.Errorf("date not truncated: got %v", got)
	}
	if !strings.Contains(upsertSalesQuery, "ON CONFLICT (product, ds) DO UPDATE") {
		t.Errorf("upsert query is not an upsert: %q", upsertSalesQuery)
	}
}
