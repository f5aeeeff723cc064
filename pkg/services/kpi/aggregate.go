package kpi

import (
	"sort"
	"strings"

	"github.com/vantagics/bizlens/pkg/models/domain"
)

// truthyTokens is the canonical truthy set for boolean-like columns. Matching
// is case-insensitive after trimming: "Yes", "yes" and "1" all count as true,
// "TRUE" counts via lower-casing, everything else (including "FALSE" and "0")
// counts as false. Rate computations must go through Truthy so that raw-string
// or case-sensitive comparisons cannot creep back in.
var truthyTokens = map[string]bool{
	"yes":  true,
	"true": true,
	"1":    true,
}

// Truthy reports whether a raw cell value is in the canonical truthy set.
func Truthy(raw string) bool {
	return truthyTokens[strings.ToLower(strings.TrimSpace(raw))]
}

// Aggregate applies an aggregation kind to a column using only non-missing
// entries. The second return is false when the column has no usable values
// for the requested aggregation.
func Aggregate(col *domain.Column, kind domain.Aggregation) (float64, bool) {
	switch kind {
	case domain.AggregationMean:
		nums := col.Numbers()
		if len(nums) == 0 {
			return 0, false
		}
		return sum(nums) / float64(len(nums)), true

	case domain.AggregationSum:
		nums := col.Numbers()
		if len(nums) == 0 {
			return 0, false
		}
		return sum(nums), true

	case domain.AggregationMedian:
		nums := col.Numbers()
		if len(nums) == 0 {
			return 0, false
		}
		sorted := append([]float64(nil), nums...)
		sort.Float64s(sorted)
		mid := len(sorted) / 2
		if len(sorted)%2 == 0 {
			return (sorted[mid-1] + sorted[mid]) / 2, true
		}
		return sorted[mid], true

	case domain.AggregationRate:
		total, truthy := 0, 0
		for _, v := range col.Values {
			if v.Missing {
				continue
			}
			total++
			if Truthy(v.Raw) {
				truthy++
			}
		}
		if total == 0 {
			return 0, false
		}
		return float64(truthy) / float64(total) * 100, true

	default:
		return 0, false
	}
}

func sum(nums []float64) float64 {
	var s float64
	for _, n := range nums {
		s += n
	}
	return s
}
