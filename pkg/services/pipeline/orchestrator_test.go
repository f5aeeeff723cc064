package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vantagics/bizlens/pkg/catalog"
	"github.com/vantagics/bizlens/pkg/models/domain"
	"github.com/vantagics/bizlens/pkg/services/cleaning"
	"github.com/vantagics/bizlens/pkg/services/detect"
	"github.com/vantagics/bizlens/pkg/services/kpi"
	"github.com/vantagics/bizlens/pkg/services/narrative"
	"github.com/vantagics/bizlens/pkg/services/segment"
)

type mockGenerator struct {
	mock.Mock
}

func (m *mockGenerator) Generate(ctx context.Context, req narrative.Request) (domain.Narrative, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.Narrative), args.Error(1)
}

func newOrchestrator(gen narrative.Generator) *Orchestrator {
	c := catalog.New()
	return NewOrchestrator(
		detect.NewDetector(c),
		cleaning.NewCleaner(nil),
		kpi.NewCalculator(c),
		segment.NewAnalyzer(c),
		gen,
	)
}

func hrDataset() *domain.Dataset {
	num := func(n float64) domain.Value { return domain.Value{Raw: "x", Number: n, Numeric: true} }
	cat := func(s string) domain.Value { return domain.Value{Raw: s} }
	return &domain.Dataset{Columns: []domain.Column{
		{Name: "employee_id", Kind: domain.ColumnNumeric, Values: []domain.Value{num(1), num(2), num(3), num(4)}},
		{Name: "monthly_salary", Kind: domain.ColumnNumeric, Values: []domain.Value{num(50000), num(60000), num(70000), num(80000)}},
		{Name: "department", Kind: domain.ColumnCategorical, Values: []domain.Value{cat("Sales"), cat("Sales"), cat("Engineering"), cat("Engineering")}},
		{Name: "attrition", Kind: domain.ColumnBoolean, Values: []domain.Value{cat("Yes"), cat("No"), cat("No"), cat("No")}},
		{Name: "tenure", Kind: domain.ColumnNumeric, Values: []domain.Value{num(2), num(4), num(5), num(1)}},
	}}
}

func TestRun_FullPipeline(t *testing.T) {
	gen := &mockGenerator{}
	gen.On("Generate", mock.Anything, mock.Anything).Return(domain.Narrative{
		ExecutiveSummary: "Workforce looks stable.",
		Insights:         []string{"Salaries above benchmark"},
		Recommendations:  []string{"Watch attrition in Sales"},
	}, nil)

	report, err := newOrchestrator(gen).Run(context.Background(), hrDataset(), "employee roster export")
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, 4, report.RowCount)
	assert.Equal(t, 5, report.ColumnCount)
	assert.Equal(t, "hr", report.DomainInfo.DomainID)

	salary, ok := report.KPIs["Average Salary"]
	require.True(t, ok)
	assert.Equal(t, 65000.0, salary.Value)
	assert.Equal(t, "monthly_salary", salary.ResolvedColumn)

	attrition, ok := report.KPIs["Attrition Rate"]
	require.True(t, ok)
	assert.Equal(t, 25.0, attrition.Value)

	require.Contains(t, report.DimensionAnalysis, "department")
	assert.Equal(t, "Engineering", report.DimensionAnalysis["department"].BestSegment)

	assert.Equal(t, "Workforce looks stable.", report.Narrative.ExecutiveSummary)
	assert.False(t, report.Narrative.Degraded)
	assert.Empty(t, report.Warnings)
	assert.NotZero(t, report.Elapsed)
	gen.AssertExpectations(t)
}

func TestRun_NarrativeFailureDegradesInsteadOfFailing(t *testing.T) {
	gen := &mockGenerator{}
	gen.On("Generate", mock.Anything, mock.Anything).
		Return(domain.Narrative{}, errors.New("api unreachable"))

	report, err := newOrchestrator(gen).Run(context.Background(), hrDataset(), "")
	require.NoError(t, err)

	assert.True(t, report.Narrative.Degraded)
	assert.NotEmpty(t, report.Narrative.ExecutiveSummary)
	assert.Contains(t, report.Warnings, domain.ErrNarrativeUnavailable.Error())

	// numbers survive the degraded path untouched
	assert.Equal(t, 65000.0, report.KPIs["Average Salary"].Value)
}

func TestRun_NarrativeTextNeverChangesKPIs(t *testing.T) {
	gen := &mockGenerator{}
	gen.On("Generate", mock.Anything, mock.Anything).Return(domain.Narrative{
		ExecutiveSummary: "Average salary is 99999 and attrition is 1%.",
		Insights:         []string{"Average Salary: 99999"},
	}, nil)

	report, err := newOrchestrator(gen).Run(context.Background(), hrDataset(), "")
	require.NoError(t, err)

	assert.Equal(t, 65000.0, report.KPIs["Average Salary"].Value)
	assert.Equal(t, 25.0, report.KPIs["Attrition Rate"].Value)
}

func TestRun_MalformedDatasets(t *testing.T) {
	num := domain.Value{Raw: "1", Number: 1, Numeric: true}
	tests := []struct {
		name string
		ds   *domain.Dataset
	}{
		{"nil dataset", nil},
		{"no columns", &domain.Dataset{}},
		{"no rows", &domain.Dataset{Columns: []domain.Column{{Name: "a", Kind: domain.ColumnNumeric}}}},
		{"duplicate columns", &domain.Dataset{Columns: []domain.Column{
			{Name: "a", Kind: domain.ColumnNumeric, Values: []domain.Value{num}},
			{Name: "a", Kind: domain.ColumnNumeric, Values: []domain.Value{num}},
		}}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gen := &mockGenerator{}
			_, err := newOrchestrator(gen).Run(context.Background(), tc.ds, "")
			assert.ErrorIs(t, err, domain.ErrMalformedDataset)
			gen.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
		})
	}
}

func TestRun_InputDatasetNotMutated(t *testing.T) {
	gen := &mockGenerator{}
	gen.On("Generate", mock.Anything, mock.Anything).Return(domain.Narrative{}, nil)

	ds := hrDataset()
	ds.Columns[4].Values[0] = domain.Value{Missing: true}

	_, err := newOrchestrator(gen).Run(context.Background(), ds, "")
	require.NoError(t, err)

	assert.Equal(t, 1, ds.Column("tenure").MissingCount())
}

func TestRun_DistinctRunIDs(t *testing.T) {
	gen := &mockGenerator{}
	gen.On("Generate", mock.Anything, mock.Anything).Return(domain.Narrative{}, nil)

	o := newOrchestrator(gen)
	first, err := o.Run(context.Background(), hrDataset(), "")
	require.NoError(t, err)
	second, err := o.Run(context.Background(), hrDataset(), "")
	require.NoError(t, err)

	assert.NotEqual(t, first.RunID, second.RunID)
	assert.Equal(t, first.KPIs, second.KPIs)
}

func TestVerifyFrozen(t *testing.T) {
	base := map[string]domain.KPIResult{
		"Average Salary": {Name: "Average Salary", Value: 65000},
	}

	t.Run("identical maps pass", func(t *testing.T) {
		assert.NoError(t, verifyFrozen(base, snapshotKPIs(base)))
	})

	t.Run("mutated value fails", func(t *testing.T) {
		changed := snapshotKPIs(base)
		changed["Average Salary"] = domain.KPIResult{Name: "Average Salary", Value: 99999}
		assert.Error(t, verifyFrozen(base, changed))
	})

	t.Run("dropped KPI fails", func(t *testing.T) {
		assert.Error(t, verifyFrozen(base, map[string]domain.KPIResult{}))
	})

	t.Run("added KPI fails", func(t *testing.T) {
		changed := snapshotKPIs(base)
		changed["Extra"] = domain.KPIResult{Name: "Extra"}
		assert.Error(t, verifyFrozen(base, changed))
	})
}
