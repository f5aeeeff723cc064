package adapters

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vantagics/bizlens/pkg/models/domain"
	"github.com/vantagics/bizlens/pkg/models/store"
)

func TestMapDomainReportToStoreRun(t *testing.T) {
	report := &domain.AnalysisReport{
		RunID:     "run-7",
		CreatedAt: time.Date(2026, 8, 30, 8, 0, 0, 0, time.UTC),
		RowCount:  42,
		DomainInfo: domain.DetectionResult{
			DomainID:   "ecommerce",
			Confidence: 0.81,
		},
		KPIs: map[string]domain.KPIResult{
			"Total Revenue": {Name: "Total Revenue", Value: 120000},
		},
		Narrative: domain.Narrative{Degraded: true},
	}

	rec, err := MapDomainReportToStoreRun(report)
	require.NoError(t, err)

	assert.Equal(t, "run-7", rec.ID)
	assert.Equal(t, report.CreatedAt, rec.CreatedAt)
	assert.Equal(t, "ecommerce", rec.DomainID)
	assert.Equal(t, 0.81, rec.Confidence)
	assert.Equal(t, 42, rec.RowCount)
	assert.True(t, rec.Degraded)

	restored, err := MapStoreRunToDomainReport(&rec)
	require.NoError(t, err)
	assert.Equal(t, report.RunID, restored.RunID)
	assert.Equal(t, 120000.0, restored.KPIs["Total Revenue"].Value)
}

func TestMapStoreRunToDomainReport_CorruptPayload(t *testing.T) {
	_, err := MapStoreRunToDomainReport(&store.RunRecord{ID: "bad", Payload: []byte("{not json")})
	assert.Error(t, err)
}
