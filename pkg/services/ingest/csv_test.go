package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vantagics/bizlens/pkg/models/domain"
)

func TestReadCSV_ParsesColumnsAndKinds(t *testing.T) {
	input := strings.Join([]string{
		"employee_id,salary,department,attrition,hire_date,notes",
		"1,50000,Engineering,Yes,2020-01-15,joined from partner team",
		"2,60000,Sales,No,2021-03-02,",
		"3,70000,Engineering,No,2022-07-19,strong quarter for renewals",
	}, "\n")

	ds, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, 3, ds.RowCount())
	assert.Equal(t,
		[]string{"employee_id", "salary", "department", "attrition", "hire_date", "notes"},
		ds.ColumnNames())

	assert.Equal(t, domain.ColumnNumeric, ds.Column("salary").Kind)
	assert.Equal(t, domain.ColumnCategorical, ds.Column("department").Kind)
	assert.Equal(t, domain.ColumnBoolean, ds.Column("attrition").Kind)
	assert.Equal(t, domain.ColumnDatetime, ds.Column("hire_date").Kind)

	salaries := ds.Column("salary").Numbers()
	assert.Equal(t, []float64{50000, 60000, 70000}, salaries)
}

func TestReadCSV_MissingValueTokens(t *testing.T) {
	input := "value\n10\nN/A\n\"\"\nnull\n20\n-\n"
	ds, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)

	col := ds.Column("value")
	assert.Equal(t, 4, col.MissingCount())
	assert.Equal(t, []float64{10, 20}, col.Numbers())
}

func TestReadCSV_ThousandSeparators(t *testing.T) {
	input := "amount\n\"1,500\"\n\"2,500.50\"\n"
	ds, err := ReadCSV(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []float64{1500, 2500.50}, ds.Column("amount").Numbers())
}

func TestReadCSV_StructuralErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"header only", "a,b,c\n"},
		{"duplicate columns", "a,b,a\n1,2,3\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tc.input))
			assert.ErrorIs(t, err, domain.ErrMalformedDataset)
		})
	}
}

func TestReadCSV_RaggedRowsRejected(t *testing.T) {
	reader := strings.NewReader("a,b\n1\n2,3\n")
	_, err := ReadCSV(reader)
	assert.ErrorIs(t, err, domain.ErrMalformedDataset)
}

func TestReadCSV_BlankHeaderGetsName(t *testing.T) {
	ds, err := ReadCSV(strings.NewReader(",value\n1,2\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"column_1", "value"}, ds.ColumnNames())
}

func TestSniffKind_ZeroOneFlagsAreBoolean(t *testing.T) {
	values := []domain.Value{
		{Raw: "1", Number: 1, Numeric: true},
		{Raw: "0", Numeric: true},
		{Raw: "1", Number: 1, Numeric: true},
	}
	assert.Equal(t, domain.ColumnBoolean, sniffKind(values))
}
