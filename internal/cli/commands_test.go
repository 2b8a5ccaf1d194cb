package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"trend-srv/internal/analysis"
	"trend-srv/internal/model"
)

type fakeAnalyzer struct {
	product string
	sources []string
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, product string, sources []string) *model.AnalysisReport {
	f.product = product
	f.sources = sources
	return &model.AnalysisReport{Product: product}
}

func factoryFor(a analysis.Analyzer, err error) AnalyzerFactory {
	return func(ctx context.Context, debug bool) (analysis.Analyzer, error) {
		return a, err
	}
}

func TestAnalyzeCommand(t *testing.T) {
	t.Run("prints report", func(t *testing.T) {
		fa := &fakeAnalyzer{}
		var out bytes.Buffer
		cmd := NewRootCmd(&out, factoryFor(fa, nil))
		cmd.SetArgs([]string{"analyze", "--product", "iPhone 15", "--sources", "reddit,news"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if fa.product != "iPhone 15" {
			t.Errorf("product mismatch: got %q, want %q", fa.product, "iPhone 15")
		}
		if strings.Join(fa.sources, ",") != "reddit,news" {
			t.Errorf("sources mismatch: got %v, want [reddit news]", fa.sources)
		}

		var report model.AnalysisReport
		if err := json.Unmarshal(out.Bytes(), &report); err != nil {
			t.Fatalf("output is not JSON: %v", err)
		}
		if report.Product != "iPhone 15" {
			t.Errorf("report product mismatch: got %q, want %q", report.Product, "iPhone 15")
		}
	})

	t.Run("default sources", func(t *testing.T) {
		fa := &fakeAnalyzer{}
		cmd := NewRootCmd(&bytes.Buffer{}, factoryFor(fa, nil))
		cmd.SetArgs([]string{"analyze", "Pixel 8"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if len(fa.sources) != 1 || fa.sources[0] != model.SourceDefault {
			t.Errorf("sources mismatch: got %v, want [%s]", fa.sources, model.SourceDefault)
		}
	})

	t.Run("pretty output is indented", func(t *testing.T) {
		var out bytes.Buffer
		cmd := NewRootCmd(&out, factoryFor(&fakeAnalyzer{}, nil))
		cmd.SetArgs([]string{"analyze", "Pixel 8", "--pretty"})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if !strings.Contains(out.String(), "\n  \"product\"") {
			t.Errorf("expected indented JSON, got %q", out.String())
		}
	})

	t.Run("missing product", func(t *testing.T) {
		cmd := NewRootCmd(&bytes.Buffer{}, factoryFor(&fakeAnalyzer{}, nil))
		cmd.SetArgs([]string{"analyze"})
		cmd.SetErr(&bytes.Buffer{})

		err := cmd.Execute()
		if !errors.Is(err, analysis.ErrProductRequired) {
			t.Errorf("error mismatch: got %v, want %v", err, analysis.ErrProductRequired)
		}
	})

	t.Run("blank product", func(t *testing.T) {
		cmd := NewRootCmd(&bytes.Buffer{}, factoryFor(&fakeAnalyzer{}, nil))
		cmd.SetArgs([]string{"analyze", "   "})
		cmd.SetErr(&bytes.Buffer{})

		err := cmd.Execute()
		if !errors.Is(err, analysis.ErrProductRequired) {
			t.Errorf("error mismatch: got %v, want %v", err, analysis.ErrProductRequired)
		}
	})

	t.Run("factory error", func(t *testing.T) {
		boom := errors.New("boom")
		cmd := NewRootCmd(&bytes.Buffer{}, factoryFor(nil, boom))
		cmd.SetArgs([]string{"analyze", "Pixel 8"})
		cmd.SetErr(&bytes.Buffer{})

		if err := cmd.Execute(); !errors.Is(err, boom) {
			t.Errorf("error mismatch: got %v, want %v", err, boom)
		}
	})
}

func TestSourcesCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := NewRootCmd(&out, factoryFor(&fakeAnalyzer{}, nil))
	cmd.SetArgs([]string{"sources"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 7 {
		t.Fatalf("line count mismatch: got %d, want 7", len(lines))
	}
	if !strings.HasPrefix(lines[0], model.SourceReddit) {
		t.Errorf("first line mismatch: got %q, want prefix %q", lines[0], model.SourceReddit)
	}
}
