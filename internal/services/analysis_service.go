package services

import (
	"context"
	"fmt"

	"finmon/internal/core"
	"finmon/internal/narrative"
	"finmon/internal/store"
)

// Summary pairs the aggregate totals with their narrative text.
type Summary struct {
	Totals    core.Totals
	Narrative narrative.Result
}

// AnalysisService recomputes aggregate totals from the store on every call
// and hands them to the narrative generator. Totals are never cached, so the
// response always reflects store state at read time. A store read failure is
// the only error this service surfaces; narrative failures are absorbed by
// the generator's fallback rules.
type AnalysisService struct {
	lister    store.TransactionLister
	generator *narrative.Generator
}

func NewAnalysisService(lister store.TransactionLister, generator *narrative.Generator) *AnalysisService {
	return &AnalysisService{
		lister:    lister,
		generator: generator,
	}
}

// PerformanceSummary aggregates all transactions and produces the brief
// performance summary.
func (s *AnalysisService) PerformanceSummary(ctx context.Context) (Summary, error) {
	totals, err := s.aggregate(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Totals:    totals,
		Narrative: s.generator.Summarize(ctx, totals),
	}, nil
}

// DetailedReport aggregates all transactions and produces the detailed
// analysis with improvement suggestions.
func (s *AnalysisService) DetailedReport(ctx context.Context) (narrative.Result, error) {
	totals, err := s.aggregate(ctx)
	if err != nil {
		return narrative.Result{}, err
	}
	return s.generator.Detail(ctx, totals), nil
}

func (s *AnalysisService) aggregate(ctx context.Context) (core.Totals, error) {
	// A failed read must propagate: zero totals would be indistinguishable
	// from a genuinely empty store.
	txs, err := s.lister.ListAll(ctx)
	if err != nil {
		return core.Totals{}, fmt.Errorf("read transactions: %w", err)
	}
	return core.Aggregate(txs), nil
}
