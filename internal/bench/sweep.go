package bench

import (
	"cmp"
	"context"
	"fmt"
	"slices"

	"github.com/samber/lo"

	lipi "github.com/jamesainslie/go-lipi"
	"github.com/jamesainslie/go-lipi/tables"
)

// SweepResult holds aggregate metrics for one table.
type SweepResult struct {
	Table   string
	Lossy   bool
	Metrics Metrics
}

// Sweep evaluates every table over docs and returns results sorted by line
// fidelity, then token fidelity, best first. Duplicate ids are evaluated once.
func Sweep(ctx context.Context, docs []*Document, ids []tables.ID, opts ...lipi.Option) ([]SweepResult, error) {
	results := make([]SweepResult, 0, len(ids))

	for _, id := range lo.Uniq(ids) {
		tr, err := lipi.New(id, opts...)
		if err != nil {
			return nil, err
		}

		var agg Metrics
		for _, doc := range docs {
			m, err := EvaluateDocument(ctx, tr, doc)
			if err != nil {
				return nil, fmt.Errorf("evaluating %s with %s: %w", doc.ID, id, err)
			}
			agg.Add(m)
		}

		results = append(results, SweepResult{
			Table:   tr.Table().Name(),
			Lossy:   tr.Table().Lossy(),
			Metrics: agg,
		})
	}

	slices.SortStableFunc(results, func(a, b SweepResult) int {
		if c := cmp.Compare(b.Metrics.LineFidelity(), a.Metrics.LineFidelity()); c != 0 {
			return c
		}
		return cmp.Compare(b.Metrics.TokenFidelity(), a.Metrics.TokenFidelity())
	})

	return results, nil
}

// Totals sums the metrics of every result.
func Totals(results []SweepResult) Metrics {
	var total Metrics
	lo.ForEach(results, func(r SweepResult, _ int) { total.Add(r.Metrics) })
	return total
}
