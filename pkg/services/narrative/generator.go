// Package narrative generates the free-text layer of a report.
//
// Generators consume the frozen KPI and segment data as read-only context and
// return text only. Nothing produced here is ever parsed back into the
// numeric fields of a KPIResult.
package narrative

import (
	"context"
	"fmt"
	"sort"

	"github.com/vantagics/bizlens/pkg/models/domain"
)

// Request is the read-only context handed to a generator.
type Request struct {
	Detection   domain.DetectionResult
	KPIs        map[string]domain.KPIResult
	Dimensions  map[string]domain.SegmentBreakdown
	Description string
	RowCount    int
}

// Generator is the boundary to the AI collaborator. A single blocking call
// per run; retry policy, if any, belongs to the implementation.
type Generator interface {
	Generate(ctx context.Context, req Request) (domain.Narrative, error)
}

// Fallback produces deterministic placeholder text from the computed numbers.
// The orchestrator uses it when the AI call fails, so a run still returns its
// valid numeric results with a degraded narrative.
type Fallback struct{}

func (Fallback) Generate(_ context.Context, req Request) (domain.Narrative, error) {
	n := domain.Narrative{
		ExecutiveSummary: fmt.Sprintf(
			"Analyzed %d rows as %s data (confidence %.0f%%). %d KPIs were computed against industry benchmarks.",
			req.RowCount, req.Detection.DomainName, req.Detection.Confidence*100, len(req.KPIs)),
		Degraded: true,
	}

	for _, name := range sortedKPINames(req.KPIs) {
		r := req.KPIs[name]
		n.Insights = append(n.Insights, fmt.Sprintf(
			"%s: %.2f%s (benchmark %.2f%s, %s)",
			r.Name, r.Value, unitSuffix(r.Unit), r.Benchmark, unitSuffix(r.Unit), statusLabel(r.Status)))
	}
	for _, b := range sortedBreakdowns(req.Dimensions) {
		n.Recommendations = append(n.Recommendations, fmt.Sprintf(
			"By %s, %s performs best and %s worst on %s.",
			b.Dimension, b.BestSegment, b.WorstSegment, b.PrimaryMetric))
	}
	return n, nil
}

func sortedKPINames(kpis map[string]domain.KPIResult) []string {
	names := make([]string, 0, len(kpis))
	for name := range kpis {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func sortedBreakdowns(dims map[string]domain.SegmentBreakdown) []domain.SegmentBreakdown {
	keys := make([]string, 0, len(dims))
	for k := range dims {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]domain.SegmentBreakdown, 0, len(keys))
	for _, k := range keys {
		out = append(out, dims[k])
	}
	return out
}

func statusLabel(s domain.KPIStatus) string {
	switch s {
	case domain.StatusAboveTarget:
		return "above target"
	case domain.StatusBelowTarget:
		return "below target"
	case domain.StatusAtTarget:
		return "at target"
	default:
		return "no benchmark"
	}
}

func unitSuffix(unit string) string {
	if unit == "" {
		return ""
	}
	if unit == "%" || unit == "x" || unit == "/5" {
		return unit
	}
	return " " + unit
}
