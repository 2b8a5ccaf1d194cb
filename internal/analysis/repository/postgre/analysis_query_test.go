package postgre

import (
	"strings"
	"testing"

	"github.com/aarondl/sqlboiler/v4/queries"

	"trend-srv/internal/analysis/repository"
	"trend-srv/internal/sqlboiler"
)

func TestBuildListAnalysesQuery(t *testing.T) {
	r := &implRepository{}

	t.Run("with limit", func(t *testing.T) {
		q, args := queries.BuildQuery(sqlboiler.NewQuery(r.buildListAnalysesQuery(repository.ListOptions{UserID: "u1", Limit: 1000})...))
		for _, want := range []string{"analyses", "user_id = $1", "ORDER BY created_at DESC", "LIMIT 1000"} {
			if !strings.Contains(q, want) {
				t.Errorf("query %q missing %q", q, want)
			}
		}
		if len(args) != 1 || args[0] != "u1" {
			t.Errorf("args mismatch: got %v, want [u1]", args)
		}
	})

	t.Run("without limit", func(t *testing.T) {
		q, _ := queries.BuildQuery(sqlboiler.NewQuery(r.buildListAnalysesQuery(repository.ListOptions{UserID: "u1"})...))
		if strings.Contains(q, "LIMIT") {
			t.Errorf("unexpected LIMIT in %q", q)
		}
	})
}

func TestBuildGetAnalysisQuery(t *testing.T) {
	r := &implRepository{}
	q, args := queries.BuildQuery(sqlboiler.NewQuery(r.buildGetAnalysisQuery(repository.GetOptions{UserID: "u1", AnalysisID: "a1"})...))
	if !strings.Contains(q, "user_id = $1") || !strings.Contains(q, "analysis_id = $2") {
		t.Errorf("placeholders mismatch: got %q", q)
	}
	if len(args) != 2 || args[1] != "a1" {
		t.Errorf("args mismatch: got %v, want [u1 a1]", args)
	}
}

func TestBuildDeleteAnalysisQuery(t *testing.T) {
	r := &implRepository{}
	q, args := queries.BuildQuery(sqlboiler.NewDelete(r.buildDeleteAnalysisQuery(repository.DeleteOptions{UserID: "u1", AnalysisID: "a1"})...))
	if !strings.HasPrefix(q, "DELETE FROM") || !strings.Contains(q, "analyses") {
		t.Errorf("query mismatch: got %q", q)
	}
	if len(args) != 2 {
		t.Errorf("args mismatch: got %v", args)
	}
}

func TestBuildLatestByProductQuery(t *testing.T) {
	r := &implRepository{}
	q, args := queries.BuildQuery(sqlboiler.NewQuery(r.buildLatestByProductQuery(repository.LatestByProductOptions{UserID: "u1", Product: " iPhone  14 "})...))

	if !strings.Contains(q, productKeyExpr+" = $2") {
		t.Errorf("stored product is not normalized in %q", q)
	}
	if len(args) != 2 || args[1] != "iphone 14" {
		t.Errorf("args mismatch: got %v, want [u1 iphone 14]", args)
	}
	if !strings.Contains(q, "LIMIT 1") {
		t.Errorf("missing LIMIT 1 in %q", q)
	}
}

func TestPutAnalysisQueryIsUpsert(t *testing.T) {
	if !strings.Contains(putAnalysisQuery, "ON CONFLICT (user_id, analysis_id) DO UPDATE") {
		t.Errorf("put query is not an upsert: %q", putAnalysisQuery)
	}
}
