// Package kpi computes real KPI values directly from dataset columns.
//
// Every value this package emits is a direct aggregate of a resolved column.
// Nothing here ever takes a number from generated text; the calculator's
// output map is the frozen source of truth for the rest of the pipeline.
package kpi

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/vantagics/bizlens/pkg/catalog"
	"github.com/vantagics/bizlens/pkg/models/domain"
)

// Tolerance is the benchmark comparison band: values within ±0.5% of the
// benchmark count as at-target so near-ties do not flap between statuses.
const Tolerance = 0.005

type Calculator struct {
	catalog *catalog.Catalog
}

func NewCalculator(c *catalog.Catalog) *Calculator {
	return &Calculator{catalog: c}
}

// CalculateRealKPIs computes every KPI of the detected domain whose column
// resolves. A KPI whose fragments match no column is skipped with a logged
// reason, never an error. The dataset is read-only throughout.
func (c *Calculator) CalculateRealKPIs(
	ctx context.Context,
	ds *domain.Dataset,
	detection domain.DetectionResult,
) (map[string]domain.KPIResult, error) {
	logger := zerolog.Ctx(ctx)

	defs, err := c.catalog.KPIDefinitions(detection.DomainID)
	if err != nil {
		return nil, fmt.Errorf("resolving KPI set for domain %q: %w", detection.DomainID, err)
	}

	results := make(map[string]domain.KPIResult, len(defs))
	for _, def := range defs {
		col := ResolveColumn(ds, def.ColumnFragments)
		if col == nil {
			logger.Debug().
				Str("kpi", def.Name).
				Strs("fragments", def.ColumnFragments).
				Msg("no column resolved, KPI skipped")
			continue
		}

		value, ok := Aggregate(col, def.Aggregation)
		if !ok {
			logger.Debug().
				Str("kpi", def.Name).
				Str("column", col.Name).
				Msg("column has no usable values, KPI skipped")
			continue
		}

		results[def.Name] = domain.KPIResult{
			Name:           def.Name,
			Value:          value,
			Benchmark:      def.Benchmark,
			Status:         AssignStatus(value, def.Benchmark, def.Direction),
			ResolvedColumn: col.Name,
			Unit:           def.Unit,
			Direction:      def.Direction,
		}
	}
	return results, nil
}

// ResolveColumn scans column names in dataset order against the ordered
// candidate fragments: the first column whose lower-cased name contains any
// fragment wins. Returns nil when nothing matches.
func ResolveColumn(ds *domain.Dataset, fragments []string) *domain.Column {
	for _, frag := range fragments {
		frag = strings.ToLower(frag)
		for i := range ds.Columns {
			if strings.Contains(strings.ToLower(ds.Columns[i].Name), frag) {
				return &ds.Columns[i]
			}
		}
	}
	return nil
}

// AssignStatus compares value to benchmark under the KPI's declared
// direction. Status tracks business desirability: for a lower-is-better KPI
// a value above the benchmark is below_target. Direction is table-driven per
// definition, never inferred from the KPI name. A zero benchmark means no
// reference value exists and yields StatusUnknown.
func AssignStatus(value, benchmark float64, direction domain.Direction) domain.KPIStatus {
	if benchmark == 0 {
		return domain.StatusUnknown
	}

	upper := benchmark * (1 + Tolerance)
	lower := benchmark * (1 - Tolerance)
	if benchmark < 0 {
		upper, lower = lower, upper
	}

	switch {
	case value > upper:
		if direction == domain.LowerIsBetter {
			return domain.StatusBelowTarget
		}
		return domain.StatusAboveTarget
	case value < lower:
		if direction == domain.LowerIsBetter {
			return domain.StatusAboveTarget
		}
		return domain.StatusBelowTarget
	default:
		return domain.StatusAtTarget
	}
}
