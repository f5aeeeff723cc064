package segment

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vantagics/bizlens/pkg/catalog"
	"github.com/vantagics/bizlens/pkg/models/domain"
)

type row struct {
	channel string
	revenue float64
	cpa     float64
}

func marketingDataset(rows []row) *domain.Dataset {
	channel := domain.Column{Name: "channel", Kind: domain.ColumnCategorical}
	revenue := domain.Column{Name: "revenue", Kind: domain.ColumnNumeric}
	cpa := domain.Column{Name: "cpa", Kind: domain.ColumnNumeric}
	for _, r := range rows {
		channel.Values = append(channel.Values, domain.Value{Raw: r.channel})
		revenue.Values = append(revenue.Values, domain.Value{Raw: "x", Number: r.revenue, Numeric: true})
		cpa.Values = append(cpa.Values, domain.Value{Raw: "x", Number: r.cpa, Numeric: true})
	}
	return &domain.Dataset{Columns: []domain.Column{channel, revenue, cpa}}
}

func marketingDetection() domain.DetectionResult {
	return domain.DetectionResult{DomainID: catalog.DomainMarketing, Confidence: 0.8}
}

func TestCalculateDimensionAnalysis_RanksSegmentsByPrimaryMetric(t *testing.T) {
	ds := marketingDataset([]row{
		{"email", 100, 10},
		{"social", 300, 10},
		{"search", 200, 10},
	})

	a := NewAnalyzer(catalog.New())
	result, err := a.CalculateDimensionAnalysis(context.Background(), ds, marketingDetection())
	require.NoError(t, err)

	b, ok := result["channel"]
	require.True(t, ok, "channel dimension was not analyzed")

	assert.Equal(t, "channel", b.ResolvedColumn)
	assert.Equal(t, "revenue", b.PrimaryMetric)
	assert.Equal(t, "social", b.BestSegment)
	assert.Equal(t, "email", b.WorstSegment)

	require.Len(t, b.Segments, 3)
	assert.Equal(t, []string{"social", "search", "email"},
		[]string{b.Segments[0].Name, b.Segments[1].Name, b.Segments[2].Name})
	assert.Equal(t, 300.0, b.Segments[0].Primary)
	assert.Equal(t, 100.0, b.Segments[2].Primary)
}

func TestCalculateDimensionAnalysis_RowOrderDoesNotMatter(t *testing.T) {
	orderings := [][]row{
		{{"email", 100, 10}, {"social", 300, 10}, {"search", 200, 10}},
		{{"search", 200, 10}, {"email", 100, 10}, {"social", 300, 10}},
		{{"social", 300, 10}, {"search", 200, 10}, {"email", 100, 10}},
	}

	a := NewAnalyzer(catalog.New())
	var first map[string]domain.SegmentBreakdown
	for i, rows := range orderings {
		result, err := a.CalculateDimensionAnalysis(context.Background(), marketingDataset(rows), marketingDetection())
		require.NoError(t, err)
		if i == 0 {
			first = result
			continue
		}
		assert.Equal(t, first, result, "ordering %d changed the breakdown", i)
	}
}

func TestCalculateDimensionAnalysis_TieBreaksByName(t *testing.T) {
	ds := marketingDataset([]row{
		{"zeta", 200, 10},
		{"alpha", 200, 10},
	})

	a := NewAnalyzer(catalog.New())
	result, err := a.CalculateDimensionAnalysis(context.Background(), ds, marketingDetection())
	require.NoError(t, err)

	b := result["channel"]
	require.Len(t, b.Segments, 2)
	assert.Equal(t, "alpha", b.Segments[0].Name)
	assert.Equal(t, "alpha", b.BestSegment)
	assert.Equal(t, "zeta", b.WorstSegment)
}

func TestCalculateDimensionAnalysis_DominanceInsight(t *testing.T) {
	ds := marketingDataset([]row{
		{"email", 100, 10},
		{"social", 300, 10},
		{"search", 200, 10},
	})

	a := NewAnalyzer(catalog.New())
	result, err := a.CalculateDimensionAnalysis(context.Background(), ds, marketingDetection())
	require.NoError(t, err)

	b := result["channel"]
	require.NotEmpty(t, b.Insights)
	assert.Contains(t, b.Insights[0].Message, "social")
	assert.Contains(t, b.Insights[0].Message, "3.0x")
	assert.Contains(t, b.Insights[0].Action, "email")
}

func TestCalculateDimensionAnalysis_CostOutlierInsight(t *testing.T) {
	// cpa of 40 against a cross-segment average of 20
	ds := marketingDataset([]row{
		{"email", 200, 10},
		{"social", 210, 10},
		{"search", 220, 40},
	})

	a := NewAnalyzer(catalog.New())
	result, err := a.CalculateDimensionAnalysis(context.Background(), ds, marketingDetection())
	require.NoError(t, err)

	b := result["channel"]
	found := false
	for _, ins := range b.Insights {
		if strings.Contains(ins.Message, "search") && strings.Contains(ins.Message, "cpa") {
			found = true
		}
	}
	assert.True(t, found, "expected a cost outlier insight for search, got %+v", b.Insights)
}

func TestCalculateDimensionAnalysis_SkipsDegenerateDimensions(t *testing.T) {
	t.Run("single group", func(t *testing.T) {
		ds := marketingDataset([]row{
			{"email", 100, 10},
			{"email", 200, 10},
		})
		a := NewAnalyzer(catalog.New())
		result, err := a.CalculateDimensionAnalysis(context.Background(), ds, marketingDetection())
		require.NoError(t, err)
		assert.NotContains(t, result, "channel")
	})

	t.Run("dimension column absent", func(t *testing.T) {
		ds := &domain.Dataset{Columns: []domain.Column{
			{Name: "revenue", Kind: domain.ColumnNumeric, Values: []domain.Value{
				{Raw: "1", Number: 1, Numeric: true},
			}},
		}}
		a := NewAnalyzer(catalog.New())
		result, err := a.CalculateDimensionAnalysis(context.Background(), ds, marketingDetection())
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestCalculateDimensionAnalysis_UnknownDomain(t *testing.T) {
	a := NewAnalyzer(catalog.New())
	_, err := a.CalculateDimensionAnalysis(
		context.Background(),
		marketingDataset([]row{{"email", 1, 1}}),
		domain.DetectionResult{DomainID: "void"},
	)
	assert.ErrorIs(t, err, domain.ErrUnknownDomain)
}

func TestCalculateDimensionAnalysis_SecondaryMetricsAttached(t *testing.T) {
	ds := marketingDataset([]row{
		{"email", 100, 12},
		{"email", 100, 18},
		{"social", 300, 30},
	})

	a := NewAnalyzer(catalog.New())
	result, err := a.CalculateDimensionAnalysis(context.Background(), ds, marketingDetection())
	require.NoError(t, err)

	b := result["channel"]
	for _, seg := range b.Segments {
		if seg.Name == "email" {
			assert.Equal(t, 2, seg.Rows)
			assert.Equal(t, 200.0, seg.Metrics["revenue"])
			assert.Equal(t, 15.0, seg.Metrics["cpa"])
		}
	}
}
