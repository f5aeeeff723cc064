// Package adapters maps between the domain, store and API model layers.
package adapters

import (
	"encoding/json"
	"fmt"

	"github.com/vantagics/bizlens/pkg/models/domain"
	"github.com/vantagics/bizlens/pkg/models/store"
)

// MapDomainReportToStoreRun flattens a report into its persisted record form.
func MapDomainReportToStoreRun(report *domain.AnalysisReport) (store.RunRecord, error) {
	payload, err := json.Marshal(report)
	if err != nil {
		return store.RunRecord{}, fmt.Errorf("marshal report %s: %w", report.RunID, err)
	}
	return store.RunRecord{
		ID:         report.RunID,
		CreatedAt:  report.CreatedAt,
		DomainID:   report.DomainInfo.DomainID,
		Confidence: report.DomainInfo.Confidence,
		RowCount:   report.RowCount,
		Degraded:   report.Narrative.Degraded,
		Payload:    payload,
	}, nil
}

// MapStoreRunToDomainReport restores a report from its persisted payload.
func MapStoreRunToDomainReport(rec *store.RunRecord) (*domain.AnalysisReport, error) {
	var report domain.AnalysisReport
	if err := json.Unmarshal(rec.Payload, &report); err != nil {
		return nil, fmt.Errorf("unmarshal run %s: %w", rec.ID, err)
	}
	return &report, nil
}
