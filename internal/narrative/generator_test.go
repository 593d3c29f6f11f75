package narrative

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"finmon/internal/core"
)

// stubGenerator returns a canned response or error and records the prompt.
type stubGenerator struct {
	text   string
	err    error
	prompt string
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.prompt = prompt
	return s.text, s.err
}

// blockingGenerator waits for context cancellation.
type blockingGenerator struct{}

func (blockingGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	<-ctx.Done()
	return "", &BackendError{Err: ctx.Err()}
}

func totals(income, expense int64) core.Totals {
	return core.NewTotals(core.Money{Cents: income}, core.Money{Cents: expense})
}

func TestSummarizeBackendSuccess(t *testing.T) {
	stub := &stubGenerator{text: "  The company is doing great.\n"}
	g := NewGenerator(stub, 0)

	res := g.Summarize(context.Background(), totals(800000, 200000))
	if res.Source != SourceGenerated {
		t.Fatalf("expected generated source, got %q", res.Source)
	}
	if res.Text != "The company is doing great." {
		t.Fatalf("expected trimmed backend text, got %q", res.Text)
	}
	if !strings.Contains(stub.prompt, "Total Income: $8000.00") {
		t.Fatalf("prompt missing income figure: %q", stub.prompt)
	}
	if !strings.Contains(stub.prompt, "Net Profit: $6000.00") {
		t.Fatalf("prompt missing net profit figure: %q", stub.prompt)
	}
}

func TestSummarizeBackendFailure(t *testing.T) {
	stub := &stubGenerator{err: &BackendError{Err: errors.New("quota exceeded")}}
	g := NewGenerator(stub, 0)

	res := g.Summarize(context.Background(), totals(800000, 200000))
	if res.Source != SourceFallback {
		t.Fatalf("expected fallback source, got %q", res.Source)
	}
	if res.Text != "Excellent performance! (LLM error fallback)" {
		t.Fatalf("unexpected fallback text: %q", res.Text)
	}
}

func TestSummarizeEmptyResponseIsFailure(t *testing.T) {
	g := NewGenerator(&stubGenerator{text: "   \n"}, 0)

	res := g.Summarize(context.Background(), totals(100, 0))
	if res.Source != SourceFallback {
		t.Fatalf("expected fallback for empty backend response, got %q", res.Source)
	}
}

func TestSummarizeNoBackend(t *testing.T) {
	g := NewGenerator(nil, 0)

	tests := []struct {
		name   string
		totals core.Totals
		want   string
	}{
		{"excellent", totals(700000, 100000), "Excellent performance! The company shows strong profitability."},
		{"good", totals(200000, 100000), "Good performance. The company is profitable."},
		{"break even", totals(100000, 100000), "The company is currently breaking even."},
		{"loss", totals(100000, 110000), "Performance is low. The company is currently experiencing a net loss. Review expenses."},
		{"exactly at threshold", totals(500000, 0), "Good performance. The company is profitable."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := g.Summarize(context.Background(), tt.totals)
			if res.Source != SourceFallback {
				t.Fatalf("expected fallback source, got %q", res.Source)
			}
			if res.Text != tt.want {
				t.Fatalf("got %q, want %q", res.Text, tt.want)
			}
		})
	}
}

func TestDetailNoBackend(t *testing.T) {
	g := NewGenerator(nil, 0)

	res := g.Detail(context.Background(), totals(0, 5000))
	if res.Source != SourceFallback {
		t.Fatalf("expected fallback source, got %q", res.Source)
	}
	if !strings.HasPrefix(res.Text, "LLM analysis is not configured or available.") {
		t.Fatalf("missing no-backend header: %q", res.Text)
	}
	if !strings.Contains(res.Text, "- Urgent: Analyze all expense categories to find areas for reduction.") {
		t.Fatalf("missing loss suggestion: %q", res.Text)
	}
	if !strings.HasSuffix(res.Text, "(This is a basic fallback analysis, not from an LLM.)") {
		t.Fatalf("missing no-backend disclaimer: %q", res.Text)
	}
}

func TestDetailBackendFailure(t *testing.T) {
	stub := &stubGenerator{err: &BackendError{Err: errors.New("connection refused")}}
	g := NewGenerator(stub, 0)

	// Loss with zero income: the loss rule wins over the no-revenue rule.
	res := g.Detail(context.Background(), totals(0, 5000))
	if res.Source != SourceFallback {
		t.Fatalf("expected fallback source, got %q", res.Source)
	}
	if !strings.Contains(res.Text, "The company is currently running at a loss.") {
		t.Fatalf("loss rule did not win: %q", res.Text)
	}
	if !strings.HasSuffix(res.Text, "(Fallback analysis due to LLM error or configuration issue.)") {
		t.Fatalf("missing error disclaimer: %q", res.Text)
	}
}

func TestDetailBackendSuccess(t *testing.T) {
	stub := &stubGenerator{text: "In-depth report."}
	g := NewGenerator(stub, 0)

	res := g.Detail(context.Background(), totals(100000, 40000))
	if res.Source != SourceGenerated || res.Text != "In-depth report." {
		t.Fatalf("unexpected result: %+v", res)
	}
	if !strings.Contains(stub.prompt, "suggest actionable strategies") {
		t.Fatalf("detail prompt not used: %q", stub.prompt)
	}
}

func TestGeneratorTimeout(t *testing.T) {
	g := NewGenerator(blockingGenerator{}, 50*time.Millisecond)

	start := time.Now()
	res := g.Summarize(context.Background(), totals(100, 0))
	elapsed := time.Since(start)

	if res.Source != SourceFallback {
		t.Fatalf("expected fallback after timeout, got %q", res.Source)
	}
	if elapsed > 2*time.Second {
		t.Fatalf("timeout not enforced, call took %v", elapsed)
	}
}
