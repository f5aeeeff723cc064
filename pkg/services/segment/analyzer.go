// Package segment breaks KPIs down by categorical dimensions and derives
// actionable insights from segment-level comparisons.
package segment

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"github.com/vantagics/bizlens/pkg/catalog"
	"github.com/vantagics/bizlens/pkg/models/domain"
	"github.com/vantagics/bizlens/pkg/services/kpi"
)

const (
	// costOutlierFactor flags a segment whose cost-type secondary metric is
	// this many times the cross-segment average.
	costOutlierFactor = 2.0

	// dominanceFactor flags a best segment whose primary metric is this many
	// times the worst segment's.
	dominanceFactor = 3.0

	// longTailShare flags segments carrying less than this share of rows.
	longTailShare = 0.05

	maxSegments = 50
)

type Analyzer struct {
	catalog *catalog.Catalog
}

func NewAnalyzer(c *catalog.Catalog) *Analyzer {
	return &Analyzer{catalog: c}
}

// CalculateDimensionAnalysis computes a SegmentBreakdown for every domain
// dimension whose categorical column resolves. Deterministic: segments are
// ranked by primary metric descending with name as the tiebreak, so input row
// order never changes the result.
func (a *Analyzer) CalculateDimensionAnalysis(
	ctx context.Context,
	ds *domain.Dataset,
	detection domain.DetectionResult,
) (map[string]domain.SegmentBreakdown, error) {
	logger := zerolog.Ctx(ctx)

	profile, err := a.catalog.DomainProfile(detection.DomainID)
	if err != nil {
		return nil, fmt.Errorf("resolving dimension specs for domain %q: %w", detection.DomainID, err)
	}

	out := make(map[string]domain.SegmentBreakdown)
	for _, spec := range profile.Dimensions {
		col := kpi.ResolveColumn(ds, spec.ColumnFragments)
		if col == nil {
			logger.Debug().Str("dimension", spec.Name).Msg("no dimension column resolved, skipped")
			continue
		}
		breakdown, ok := a.analyzeDimension(ds, spec, col)
		if !ok {
			logger.Debug().
				Str("dimension", spec.Name).
				Str("column", col.Name).
				Msg("dimension not analyzable, skipped")
			continue
		}
		out[spec.Name] = breakdown
	}
	return out, nil
}

func (a *Analyzer) analyzeDimension(
	ds *domain.Dataset,
	spec domain.DimensionSpec,
	dimCol *domain.Column,
) (domain.SegmentBreakdown, bool) {
	primaryCol := kpi.ResolveColumn(ds, spec.PrimaryMetric.ColumnFragments)
	if primaryCol == nil {
		return domain.SegmentBreakdown{}, false
	}

	groups := groupRows(dimCol)
	if len(groups) < 2 || len(groups) > maxSegments {
		return domain.SegmentBreakdown{}, false
	}

	total := ds.RowCount()
	segments := make([]domain.SegmentMetrics, 0, len(groups))
	for name, rows := range groups {
		primary, ok := aggregateRows(primaryCol, rows, spec.PrimaryMetric.Aggregation)
		if !ok {
			primary = 0
		}
		seg := domain.SegmentMetrics{
			Name:     name,
			Rows:     len(rows),
			Primary:  primary,
			RowShare: float64(len(rows)) / float64(total),
			Metrics:  map[string]float64{spec.PrimaryMetric.Name: primary},
		}
		for _, m := range spec.SecondaryMetrics {
			mCol := kpi.ResolveColumn(ds, m.ColumnFragments)
			if mCol == nil {
				continue
			}
			if v, ok := aggregateRows(mCol, rows, m.Aggregation); ok {
				seg.Metrics[m.Name] = v
			}
		}
		segments = append(segments, seg)
	}

	sort.Slice(segments, func(i, j int) bool {
		if segments[i].Primary != segments[j].Primary {
			return segments[i].Primary > segments[j].Primary
		}
		return segments[i].Name < segments[j].Name
	})

	breakdown := domain.SegmentBreakdown{
		Dimension:      spec.Name,
		ResolvedColumn: dimCol.Name,
		PrimaryMetric:  spec.PrimaryMetric.Name,
		Segments:       segments,
		BestSegment:    segments[0].Name,
		WorstSegment:   segments[len(segments)-1].Name,
	}
	breakdown.Insights = deriveInsights(spec, breakdown)
	return breakdown, true
}

// groupRows maps each distinct non-missing dimension value to its row indices.
func groupRows(dimCol *domain.Column) map[string][]int {
	groups := make(map[string][]int)
	for i, v := range dimCol.Values {
		if v.Missing {
			continue
		}
		groups[v.Raw] = append(groups[v.Raw], i)
	}
	return groups
}

// aggregateRows applies an aggregation to the subset of a column selected by
// row indices, using the same non-missing and truthy rules as the KPI
// calculator.
func aggregateRows(col *domain.Column, rows []int, kind domain.Aggregation) (float64, bool) {
	sub := domain.Column{Name: col.Name, Kind: col.Kind}
	for _, i := range rows {
		if i < len(col.Values) {
			sub.Values = append(sub.Values, col.Values[i])
		}
	}
	return kpi.Aggregate(&sub, kind)
}

// deriveInsights applies the static threshold rules. Each insight pairs an
// observation with a recommended action; rule order fixes output order.
func deriveInsights(spec domain.DimensionSpec, b domain.SegmentBreakdown) []domain.Insight {
	var insights []domain.Insight

	best := b.Segments[0]
	worst := b.Segments[len(b.Segments)-1]
	if worst.Primary > 0 && best.Primary >= dominanceFactor*worst.Primary {
		insights = append(insights, domain.Insight{
			Message: fmt.Sprintf("%s leads %s with %.1fx the %s of %s",
				best.Name, b.Dimension, best.Primary/worst.Primary, b.PrimaryMetric, worst.Name),
			Action: fmt.Sprintf("Study what works in %s and replicate it in %s", best.Name, worst.Name),
		})
	}

	for _, m := range spec.SecondaryMetrics {
		if !isCostMetric(m.Name) {
			continue
		}
		avg, n := 0.0, 0
		for _, seg := range b.Segments {
			if v, ok := seg.Metrics[m.Name]; ok {
				avg += v
				n++
			}
		}
		if n < 2 {
			continue
		}
		avg /= float64(n)
		for _, seg := range b.Segments {
			v, ok := seg.Metrics[m.Name]
			if ok && avg > 0 && v >= costOutlierFactor*avg {
				insights = append(insights, domain.Insight{
					Message: fmt.Sprintf("%s has %.1fx the average %s across %s segments",
						seg.Name, v/avg, m.Name, b.Dimension),
					Action: fmt.Sprintf("Review %s spend allocation for %s", b.Dimension, seg.Name),
				})
			}
		}
	}

	for _, seg := range b.Segments {
		if seg.RowShare > 0 && seg.RowShare < longTailShare {
			insights = append(insights, domain.Insight{
				Message: fmt.Sprintf("%s covers only %.1f%% of rows", seg.Name, seg.RowShare*100),
				Action:  fmt.Sprintf("Consider consolidating %s or collecting more data for it", seg.Name),
			})
		}
	}

	return insights
}

func isCostMetric(name string) bool {
	lower := strings.ToLower(name)
	for _, frag := range []string{"cost", "cpa", "spend", "expense", "chi_phi"} {
		if strings.Contains(lower, frag) {
			return true
		}
	}
	return false
}
