package api

import (
	"time"

	"github.com/vantagics/bizlens/pkg/models/domain"
)

// AnalysisResponse is the HTTP shape of one completed run.
type AnalysisResponse struct {
	RunID             string                             `json:"run_id"`
	CreatedAt         time.Time                          `json:"created_at"`
	RowCount          int                                `json:"row_count"`
	ColumnCount       int                                `json:"column_count"`
	DomainInfo        domain.DetectionResult             `json:"domain_info"`
	KPIs              map[string]domain.KPIResult        `json:"kpis"`
	DimensionAnalysis map[string]domain.SegmentBreakdown `json:"dimension_analysis"`
	Narrative         domain.Narrative                   `json:"narrative"`
	Warnings          []string                           `json:"warnings,omitempty"`
}

// DomainSummary describes one catalog entry for the domains listing.
type DomainSummary struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	ExpertRole string   `json:"expert_role"`
	KPINames   []string `json:"kpi_names"`
}

// RunSummary is one row of the stored-runs listing.
type RunSummary struct {
	RunID      string    `json:"run_id"`
	CreatedAt  time.Time `json:"created_at"`
	DomainID   string    `json:"domain_id"`
	Confidence float64   `json:"confidence"`
	RowCount   int       `json:"row_count"`
	Degraded   bool      `json:"degraded"`
}

// Error is the uniform error body.
type Error struct {
	Error string `json:"error"`
}
