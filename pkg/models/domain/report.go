package domain

import "time"

// Narrative is the free-text output of the AI collaborator. It is attached to
// a report as-is and is never parsed back into numeric fields.
type Narrative struct {
	ExecutiveSummary string   `json:"executive_summary"`
	Insights         []string `json:"insights"`
	Recommendations  []string `json:"recommendations"`
	Degraded         bool     `json:"degraded"`
}

// AnalysisReport is the assembled result of one pipeline run. The KPIs map is
// the frozen output of the calculator; rendering layers read it unmodified.
type AnalysisReport struct {
	RunID             string                      `json:"run_id"`
	CreatedAt         time.Time                   `json:"created_at"`
	RowCount          int                         `json:"row_count"`
	ColumnCount       int                         `json:"column_count"`
	DomainInfo        DetectionResult             `json:"domain_info"`
	KPIs              map[string]KPIResult        `json:"kpis"`
	DimensionAnalysis map[string]SegmentBreakdown `json:"dimension_analysis"`
	Narrative         Narrative                   `json:"narrative"`
	Warnings          []string                    `json:"warnings,omitempty"`
	Elapsed           time.Duration               `json:"-"`
}
