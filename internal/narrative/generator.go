// Package narrative turns aggregate totals into human-readable performance
// text. Each operation tries a configured text-generation backend first and
// falls back to deterministic rule-based messages when the backend is absent
// or fails. A caller always gets text back; backend trouble is never surfaced.
package narrative

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"finmon/internal/core"
)

const (
	SourceGenerated Source = "generated"
	SourceFallback  Source = "fallback"
)

type (
	// Source records which tier produced a result.
	Source string

	// Result is the transient outcome of one narrative operation.
	Result struct {
		Text   string
		Source Source
	}
)

// TextGenerator is the capability the primary path needs: produce text from
// a prompt. Implementations must return a BackendError on any transport,
// auth, or quota problem; the generator treats every failure identically.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// BackendError wraps any text-generation failure. The generator never
// distinguishes subtypes; the wrapped cause is kept for logging only.
type BackendError struct {
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("text backend: %v", e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

// DefaultTimeout bounds a single primary-path call.
const DefaultTimeout = 15 * time.Second

// Generator runs the two-tier narrative pipeline. A nil TextGenerator means
// no backend is configured and every call goes straight to the fallback rules.
type Generator struct {
	gen     TextGenerator
	timeout time.Duration
}

// NewGenerator creates a Generator. gen may be nil; timeout <= 0 falls back
// to DefaultTimeout.
func NewGenerator(gen TextGenerator, timeout time.Duration) *Generator {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Generator{gen: gen, timeout: timeout}
}

const summaryPrompt = `Based on the following financial data for a finance company:
Total Income: $%.2f
Total Expense: $%.2f
Net Profit: $%.2f
Provide a very brief summary (1-2 sentences) of the overall financial performance. Do not include numerical values in the summary.`

const detailPrompt = `Analyze the financial performance of a finance company based on the following aggregate data:
Total Income: $%.2f
Total Expense: $%.2f
Net Profit: $%.2f

Provide an in-depth analysis of the company's financial state.
Based on these figures, suggest actionable strategies or methods for improving the company's financial health and efficiency.
Consider both increasing income and decreasing expenses.
Format the response clearly, perhaps using bullet points for suggestions.`

// Summarize produces a one-to-two sentence performance summary.
func (g *Generator) Summarize(ctx context.Context, t core.Totals) Result {
	if g.gen == nil {
		return Result{Text: summaryFallback(t), Source: SourceFallback}
	}
	text, err := g.attempt(ctx, fmt.Sprintf(summaryPrompt, t.Income.Float(), t.Expense.Float(), t.NetProfit.Float()))
	if err != nil {
		slog.WarnContext(ctx, "Summary generation failed, using fallback", "error", err)
		return Result{Text: summaryErrorFallback(t), Source: SourceFallback}
	}
	return Result{Text: text, Source: SourceGenerated}
}

// Detail produces a multi-paragraph report with improvement suggestions.
func (g *Generator) Detail(ctx context.Context, t core.Totals) Result {
	if g.gen == nil {
		return Result{Text: detailFallback(t), Source: SourceFallback}
	}
	text, err := g.attempt(ctx, fmt.Sprintf(detailPrompt, t.Income.Float(), t.Expense.Float(), t.NetProfit.Float()))
	if err != nil {
		slog.WarnContext(ctx, "Detailed analysis generation failed, using fallback", "error", err)
		return Result{Text: detailErrorFallback(t), Source: SourceFallback}
	}
	return Result{Text: text, Source: SourceGenerated}
}

// attempt makes exactly one bounded backend call. No retries: a transient
// failure falls through to the rule tables for this call.
func (g *Generator) attempt(ctx context.Context, prompt string) (string, error) {
	cctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	text, err := g.gen.Generate(cctx, prompt)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", &BackendError{Err: fmt.Errorf("empty response")}
	}
	return text, nil
}
