// Package cleaning fills missing values ahead of KPI calculation.
//
// Columns matching the protected fragment set are NEVER imputed: fabricating
// salaries, revenues or costs would corrupt the very numbers the rest of the
// pipeline exists to keep honest.
package cleaning

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github.com/vantagics/bizlens/pkg/models/domain"
)

// DefaultProtected is the built-in NEVER_IMPUTE fragment set, matched
// case-insensitively as substrings of column names.
var DefaultProtected = []string{
	"salary", "luong",
	"revenue", "doanh_thu",
	"cost", "chi_phi",
	"price", "amount",
	"profit", "loi_nhuan",
	"margin",
}

type Cleaner struct {
	protected []string
}

func NewCleaner(protected []string) *Cleaner {
	if protected == nil {
		protected = DefaultProtected
	}
	return &Cleaner{protected: protected}
}

// Clean returns a copy of the dataset with missing numeric cells filled with
// the column mean and missing categorical/boolean cells with the column mode.
// Protected columns are copied untouched, keeping their original missing
// counts. The column set of the output is identical to the input.
func (c *Cleaner) Clean(ctx context.Context, ds *domain.Dataset) *domain.Dataset {
	logger := zerolog.Ctx(ctx)
	out := ds.Clone()

	for i := range out.Columns {
		col := &out.Columns[i]
		if c.isProtected(col.Name) {
			continue
		}
		missing := col.MissingCount()
		if missing == 0 {
			continue
		}

		switch col.Kind {
		case domain.ColumnNumeric:
			imputeMean(col)
		case domain.ColumnCategorical, domain.ColumnBoolean:
			imputeMode(col)
		default:
			// datetime and free text stay missing
			continue
		}
		logger.Debug().
			Str("column", col.Name).
			Int("filled", missing).
			Msg("imputed missing values")
	}
	return out
}

func (c *Cleaner) isProtected(name string) bool {
	lower := strings.ToLower(name)
	for _, frag := range c.protected {
		if strings.Contains(lower, frag) {
			return true
		}
	}
	return false
}

func imputeMean(col *domain.Column) {
	nums := col.Numbers()
	if len(nums) == 0 {
		return
	}
	var sum float64
	for _, n := range nums {
		sum += n
	}
	mean := sum / float64(len(nums))
	for i := range col.Values {
		if col.Values[i].Missing {
			col.Values[i] = domain.Value{Number: mean, Numeric: true}
		}
	}
}

func imputeMode(col *domain.Column) {
	counts := make(map[string]int)
	for _, v := range col.Values {
		if !v.Missing {
			counts[v.Raw]++
		}
	}
	mode, best := "", 0
	for raw, n := range counts {
		if n > best || (n == best && raw < mode) {
			mode, best = raw, n
		}
	}
	if best == 0 {
		return
	}
	for i := range col.Values {
		if col.Values[i].Missing {
			col.Values[i] = domain.Value{Raw: mode}
		}
	}
}
