package postgre

import (
	"strings"
	"testing"

	"trend-srv/config"
)

func TestDSN(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		got := DSN(config.PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", DBName: "trend"})
		want := "host=db port=5432 user=u password=p dbname=trend sslmode=disable search_path=public"
		if got != want {
			t.Errorf("DSN mismatch: got %q, want %q", got, want)
		}
	})

	t.Run("schema and ssl", func(t *testing.T) {
		got := DSN(config.PostgresConfig{Host: "db", Port: 5432, DBName: "trend", SSLMode: "require", Schema: "trend"})
		if !strings.Contains(got, "sslmode=require") || !strings.HasSuffix(got, "search_path=trend") {
			t.Errorf("DSN mismatch: got %q", got)
		}
	})
}

func TestSchemaStatements(t *testing.T) {
	got := schemaStatements("trend")
	want := []string{`CREATE SCHEMA IF NOT EXISTS "trend"`, `SET LOCAL search_path TO "trend"`}
	if len(got) != len(want) {
		t.Fatalf("statements mismatch: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("statement %d mismatch: got %q, want %q", i, got[i], want[i])
		}
	}
}
