package youtube

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"trend-srv/internal/source"
	pkgHTTP "trend-srv/pkg/http"
	"trend-srv/pkg/log"
)

func TestEngagement(t *testing.T) {
	tcs := []struct {
		name                   string
		views, likes, comments int64
		want                   float64
	}{
		{"no views", 0, 10, 10, 0},
		{"normal", 25000, 650, 180, 40.4},
		{"clamped", 10, 100, 100, 100},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			if got := engagement(tc.views, tc.likes, tc.comments); got != tc.want {
				t.Errorf("engagement mismatch: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseCount(t *testing.T) {
	if got := parseCount("12,345"); got != 12345 {
		t.Errorf("parseCount mismatch: got %d, want 12345", got)
	}
	if got := parseCount(""); got != 0 {
		t.Errorf("parseCount mismatch: got %d, want 0", got)
	}
}

func TestFetch(t *testing.T) {
	client := pkgHTTP.NewClient(pkgHTTP.ClientConfig{Timeout: time.Second, RetryWait: time.Millisecond})

	t.Run("missing api key", func(t *testing.T) {
		a := New(log.NewNop(), client, Config{})
		_, err := a.Fetch(context.Background(), "pixel 8", 5)
		if !errors.Is(err, source.ErrMissingCredential) {
			t.Fatalf("error mismatch: got %v, want %v", err, source.ErrMissingCredential)
		}
	})

	t.Run("search then statistics", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/search":
				_, _ = w.Write([]byte(`{"items":[{"id":{"videoId":"v1"}},{"id":{"videoId":"v2"}}]}`))
			case "/videos":
				if r.URL.Query().Get("id") != "v1,v2" {
					w.WriteHeader(http.StatusBadRequest)
					return
				}
				_, _ = w.Write([]byte(`{"items":[
 {"id":"v1","snippet":{"title":"Pixel 8 review","description":"Great camera\nand battery","channelTitle":"c","publishedAt":"2024-01-02T03:04:05Z"},
  "statistics":{"viewCount":"1000","likeCount":"50","commentCount":"25"}},
 {"id":"v2","snippet":{"title":"short","description":""},"statistics":{}}
]}`))
			}
		}))
		defer srv.Close()

		a := New(log.NewNop(), client, Config{APIKey: "k", BaseURL: srv.URL})
		res, err := a.Fetch(context.Background(), "pixel 8", 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Synthetic {
			t.Fatal("expected live data, got fallback")
		}
		if len(res.Posts) != 1 {
			t.Fatalf("posts mismatch: got %d, want 1", len(res.Posts))
		}
		p := res.Posts[0]
		if p.Text != "Pixel 8 review Great camera and battery" {
			t.Errorf("text mismatch: got %q", p.Text)
		}
		if p.EngagementScore != 100 {
			t.Errorf("engagement mismatch: got %v, want 100", p.EngagementScore)
		}
		if !p.Verified {
			t.Error("verified mismatch: got false, want true")
		}
	})

	t.Run("quota error falls back", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer srv.Close()

		a := New(log.NewNop(), client, Config{APIKey: "k", BaseURL: srv.URL})
		res, _ := a.Fetch(context.Background(), "pixel 8", 5)
		if !res.Synthetic || len(res.Posts) != 4 {
			t.Fatalf("fallback mismatch: got %d posts, synthetic=%v", len(res.Posts), res.Synthetic)
		}
		for _, p := range res.Posts {
			if !strings.Contains(p.Text, "pixel 8") {
				t.Errorf("fallback post does not mention product: %q", p.Text)
			}
		}
	})
}
