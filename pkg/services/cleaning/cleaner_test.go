package cleaning

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vantagics/bizlens/pkg/models/domain"
)

func numericColumn(name string, values ...domain.Value) domain.Column {
	return domain.Column{Name: name, Kind: domain.ColumnNumeric, Values: values}
}

func num(n float64) domain.Value {
	return domain.Value{Raw: "x", Number: n, Numeric: true}
}

func cat(raw string) domain.Value {
	return domain.Value{Raw: raw}
}

var missing = domain.Value{Missing: true}

func TestClean_NumericMeanImputation(t *testing.T) {
	ds := &domain.Dataset{Columns: []domain.Column{
		numericColumn("tenure", num(2), missing, num(4)),
	}}

	out := NewCleaner(nil).Clean(context.Background(), ds)

	col := out.Column("tenure")
	require.NotNil(t, col)
	assert.Equal(t, 0, col.MissingCount())
	assert.Equal(t, []float64{2, 3, 4}, col.Numbers())
}

func TestClean_CategoricalModeImputation(t *testing.T) {
	ds := &domain.Dataset{Columns: []domain.Column{
		{Name: "department", Kind: domain.ColumnCategorical, Values: []domain.Value{
			cat("Sales"), cat("Engineering"), cat("Sales"), missing,
		}},
	}}

	out := NewCleaner(nil).Clean(context.Background(), ds)

	col := out.Column("department")
	assert.Equal(t, 0, col.MissingCount())
	assert.Equal(t, "Sales", col.Values[3].Raw)
}

func TestClean_ProtectedColumnsKeepMissingValues(t *testing.T) {
	tests := []string{"salary", "monthly_luong", "revenue", "total_cost", "unit_price", "net_profit"}
	for _, name := range tests {
		t.Run(name, func(t *testing.T) {
			ds := &domain.Dataset{Columns: []domain.Column{
				numericColumn(name, num(100), missing, num(200)),
			}}

			out := NewCleaner(nil).Clean(context.Background(), ds)

			assert.Equal(t, 1, out.Column(name).MissingCount())
			assert.Equal(t, []float64{100, 200}, out.Column(name).Numbers())
		})
	}
}

func TestClean_DatetimeAndTextStayMissing(t *testing.T) {
	ds := &domain.Dataset{Columns: []domain.Column{
		{Name: "hire_date", Kind: domain.ColumnDatetime, Values: []domain.Value{cat("2024-01-01"), missing}},
		{Name: "notes", Kind: domain.ColumnText, Values: []domain.Value{cat("fine"), missing}},
	}}

	out := NewCleaner(nil).Clean(context.Background(), ds)

	assert.Equal(t, 1, out.Column("hire_date").MissingCount())
	assert.Equal(t, 1, out.Column("notes").MissingCount())
}

func TestClean_OriginalDatasetUntouched(t *testing.T) {
	ds := &domain.Dataset{Columns: []domain.Column{
		numericColumn("tenure", num(2), missing),
	}}

	out := NewCleaner(nil).Clean(context.Background(), ds)

	assert.Equal(t, 1, ds.Column("tenure").MissingCount())
	assert.Equal(t, 0, out.Column("tenure").MissingCount())
	assert.Equal(t, ds.ColumnNames(), out.ColumnNames())
}

func TestClean_AllMissingColumnLeftAlone(t *testing.T) {
	ds := &domain.Dataset{Columns: []domain.Column{
		numericColumn("tenure", missing, missing),
	}}

	out := NewCleaner(nil).Clean(context.Background(), ds)

	assert.Equal(t, 2, out.Column("tenure").MissingCount())
}

func TestClean_CustomProtectedSet(t *testing.T) {
	ds := &domain.Dataset{Columns: []domain.Column{
		numericColumn("headcount", num(5), missing),
		numericColumn("salary", num(100), missing),
	}}

	out := NewCleaner([]string{"headcount"}).Clean(context.Background(), ds)

	assert.Equal(t, 1, out.Column("headcount").MissingCount())
	// default protections no longer apply once a custom set is given
	assert.Equal(t, 0, out.Column("salary").MissingCount())
}
