package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"finmon/internal/core"
	"finmon/internal/narrative"
)

type fakeLister struct {
	txs   []core.Transaction
	err   error
	calls int
}

func (f *fakeLister) ListAll(_ context.Context) ([]core.Transaction, error) {
	f.calls++
	return f.txs, f.err
}

func TestPerformanceSummaryComputesTotals(t *testing.T) {
	lister := &fakeLister{txs: []core.Transaction{
		{Description: "invoice", Kind: core.Income, Amount: core.Money{Cents: 800000}, Date: core.NewDate(2023, 1, 1)},
		{Description: "rent", Kind: core.Expense, Amount: core.Money{Cents: 150000}, Date: core.NewDate(2023, 1, 2)},
	}}
	svc := NewAnalysisService(lister, narrative.NewGenerator(nil, 0))

	summary, err := svc.PerformanceSummary(context.Background())
	if err != nil {
		t.Fatalf("PerformanceSummary: %v", err)
	}
	if summary.Totals.Income.Cents != 800000 || summary.Totals.Expense.Cents != 150000 {
		t.Fatalf("unexpected totals: %+v", summary.Totals)
	}
	if summary.Totals.NetProfit.Cents != 650000 {
		t.Fatalf("net profit %d, want 650000", summary.Totals.NetProfit.Cents)
	}
	if summary.Narrative.Source != narrative.SourceFallback {
		t.Fatalf("expected fallback narrative, got %q", summary.Narrative.Source)
	}
	if !strings.Contains(summary.Narrative.Text, "Excellent performance!") {
		t.Fatalf("unexpected narrative: %q", summary.Narrative.Text)
	}
}

func TestPerformanceSummaryRecomputesEachCall(t *testing.T) {
	lister := &fakeLister{}
	svc := NewAnalysisService(lister, narrative.NewGenerator(nil, 0))

	if _, err := svc.PerformanceSummary(context.Background()); err != nil {
		t.Fatalf("first call: %v", err)
	}
	lister.txs = []core.Transaction{
		{Description: "sale", Kind: core.Income, Amount: core.Money{Cents: 5000}, Date: core.NewDate(2023, 2, 1)},
	}
	summary, err := svc.PerformanceSummary(context.Background())
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if summary.Totals.Income.Cents != 5000 {
		t.Fatalf("totals not recomputed: %+v", summary.Totals)
	}
	if lister.calls != 2 {
		t.Fatalf("expected 2 store reads, got %d", lister.calls)
	}
}

func TestPerformanceSummaryStoreFailure(t *testing.T) {
	lister := &fakeLister{err: errors.New("disk read failed")}
	svc := NewAnalysisService(lister, narrative.NewGenerator(nil, 0))

	_, err := svc.PerformanceSummary(context.Background())
	if err == nil {
		t.Fatal("expected store read error to propagate")
	}
}

func TestDetailedReportEmptyStore(t *testing.T) {
	svc := NewAnalysisService(&fakeLister{}, narrative.NewGenerator(nil, 0))

	res, err := svc.DetailedReport(context.Background())
	if err != nil {
		t.Fatalf("DetailedReport: %v", err)
	}
	// Zero income, zero expense: break-even suggestion bucket.
	if !strings.Contains(res.Text, "Analyze whether the current income streams are sustainable.") {
		t.Fatalf("unexpected report: %q", res.Text)
	}
}

func TestDetailedReportStoreFailure(t *testing.T) {
	svc := NewAnalysisService(&fakeLister{err: errors.New("disk read failed")}, narrative.NewGenerator(nil, 0))
	if _, err := svc.DetailedReport(context.Background()); err == nil {
		t.Fatal("expected store read error to propagate")
	}
}
