package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vantagics/bizlens/pkg/catalog"
	"github.com/vantagics/bizlens/pkg/models/domain"
)

func datasetWithColumns(names ...string) *domain.Dataset {
	ds := &domain.Dataset{}
	for _, name := range names {
		ds.Columns = append(ds.Columns, domain.Column{
			Name:   name,
			Values: []domain.Value{{Raw: "x"}},
		})
	}
	return ds
}

func TestDetectDomain_HRSignals(t *testing.T) {
	detector := NewDetector(catalog.New())
	ds := datasetWithColumns("employee_id", "salary", "department", "tenure", "attrition")

	result := detector.DetectDomain(ds, "monthly HR headcount and turnover export")

	assert.Equal(t, catalog.DomainHR, result.DomainID)
	assert.Greater(t, result.Confidence, 0.15)
	assert.LessOrEqual(t, result.Confidence, 1.0)
	assert.Contains(t, result.MatchedKeywords, "salary")
	assert.NotEmpty(t, result.Reasoning)
	assert.Equal(t, "HR Analytics Director", result.ExpertRole)
}

func TestDetectDomain_MarketingSignals(t *testing.T) {
	detector := NewDetector(catalog.New())
	ds := datasetWithColumns("campaign", "channel", "impressions", "clicks", "spend", "cpa")

	result := detector.DetectDomain(ds, "ad performance by channel")
	assert.Equal(t, catalog.DomainMarketing, result.DomainID)
}

func TestDetectDomain_FallbackToGeneral(t *testing.T) {
	detector := NewDetector(catalog.New())
	ds := datasetWithColumns("aaa", "bbb", "ccc")

	result := detector.DetectDomain(ds, "")

	assert.Equal(t, catalog.DomainGeneral, result.DomainID)
	assert.Less(t, result.Confidence, DefaultThreshold)
	assert.GreaterOrEqual(t, result.Confidence, 0.0)
}

func TestDetectDomain_DescriptionAloneCanMatch(t *testing.T) {
	detector := NewDetector(catalog.New())
	ds := datasetWithColumns("col_a", "col_b")

	result := detector.DetectDomain(ds,
		"ticket resolution export from our support desk with agent SLA and CSAT, reopen and escalation tracking per contact")
	assert.Equal(t, catalog.DomainCustomerService, result.DomainID)
}

func TestDetectDomain_VietnameseAliases(t *testing.T) {
	detector := NewDetector(catalog.New())
	ds := datasetWithColumns("nhan_vien", "luong", "phong_ban")

	result := detector.DetectDomain(ds, "bang luong nhan su")
	assert.Equal(t, catalog.DomainHR, result.DomainID)
}

func TestDetectDomain_Deterministic(t *testing.T) {
	detector := NewDetector(catalog.New())
	ds := datasetWithColumns("order_id", "revenue", "customer", "product")

	first := detector.DetectDomain(ds, "shop orders")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, detector.DetectDomain(ds, "shop orders"))
	}
}

func TestDetectDomain_ConfidenceClamped(t *testing.T) {
	detector := NewDetector(catalog.New())
	// Every HR keyword plus every expected fragment present.
	ds := datasetWithColumns(
		"employee", "salary", "attrition", "tenure", "headcount", "department",
		"hire_date", "recruit", "turnover", "hr_flag", "nhan vien", "luong", "nhan su",
	)

	result := detector.DetectDomain(ds, "hr")
	require.Equal(t, catalog.DomainHR, result.DomainID)
	assert.LessOrEqual(t, result.Confidence, 1.0)
}
