// Package pipeline sequences one analysis run end to end:
// detect -> clean -> calculate -> segment -> narrative -> assemble.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/vantagics/bizlens/pkg/models/domain"
	"github.com/vantagics/bizlens/pkg/services/cleaning"
	"github.com/vantagics/bizlens/pkg/services/detect"
	"github.com/vantagics/bizlens/pkg/services/kpi"
	"github.com/vantagics/bizlens/pkg/services/narrative"
	"github.com/vantagics/bizlens/pkg/services/segment"
)

const defaultNarrativeTimeout = 30 * time.Second

// Orchestrator owns no mutable state across runs; every Run works on its own
// dataset copy, so one instance serves concurrent requests.
type Orchestrator struct {
	detector         *detect.Detector
	cleaner          *cleaning.Cleaner
	calculator       *kpi.Calculator
	analyzer         *segment.Analyzer
	generator        narrative.Generator
	narrativeTimeout time.Duration
}

func NewOrchestrator(
	detector *detect.Detector,
	cleaner *cleaning.Cleaner,
	calculator *kpi.Calculator,
	analyzer *segment.Analyzer,
	generator narrative.Generator,
) *Orchestrator {
	return &Orchestrator{
		detector:         detector,
		cleaner:          cleaner,
		calculator:       calculator,
		analyzer:         analyzer,
		generator:        generator,
		narrativeTimeout: defaultNarrativeTimeout,
	}
}

// SetNarrativeTimeout overrides the boundary timeout on the AI call.
func (o *Orchestrator) SetNarrativeTimeout(d time.Duration) {
	o.narrativeTimeout = d
}

// Run executes the full pipeline for one dataset. Structural dataset problems
// abort immediately; a failed narrative call degrades the report instead of
// failing it. The returned KPI map is byte-for-byte the calculator's output:
// a final assertion re-checks it against a snapshot taken before the
// narrative stage, because generated text silently overwriting computed
// values is the historical failure mode this pipeline is built to prevent.
func (o *Orchestrator) Run(ctx context.Context, ds *domain.Dataset, description string) (*domain.AnalysisReport, error) {
	logger := zerolog.Ctx(ctx)
	start := time.Now()

	if err := validate(ds); err != nil {
		return nil, err
	}

	detection := o.detector.DetectDomain(ds, description)
	logger.Info().
		Str("domain", detection.DomainID).
		Float64("confidence", detection.Confidence).
		Msg("domain detected")

	cleaned := o.cleaner.Clean(ctx, ds)

	kpis, err := o.calculator.CalculateRealKPIs(ctx, cleaned, detection)
	if err != nil {
		return nil, fmt.Errorf("kpi calculation: %w", err)
	}

	// Frozen source of truth: every later stage reads from this snapshot,
	// none may write to it.
	frozen := snapshotKPIs(kpis)

	dimensions, err := o.analyzer.CalculateDimensionAnalysis(ctx, cleaned, detection)
	if err != nil {
		return nil, fmt.Errorf("dimension analysis: %w", err)
	}

	report := &domain.AnalysisReport{
		RunID:             uuid.NewString(),
		CreatedAt:         time.Now().UTC(),
		RowCount:          ds.RowCount(),
		ColumnCount:       len(ds.Columns),
		DomainInfo:        detection,
		KPIs:              kpis,
		DimensionAnalysis: dimensions,
	}

	report.Narrative = o.generateNarrative(ctx, report, description)
	if report.Narrative.Degraded {
		report.Warnings = append(report.Warnings, domain.ErrNarrativeUnavailable.Error())
	}

	if err := verifyFrozen(frozen, report.KPIs); err != nil {
		return nil, fmt.Errorf("frozen KPI check failed after assembly: %w", err)
	}

	report.Elapsed = time.Since(start)
	logger.Info().
		Str("run_id", report.RunID).
		Int("kpis", len(report.KPIs)).
		Int("dimensions", len(report.DimensionAnalysis)).
		Dur("elapsed", report.Elapsed).
		Msg("analysis run complete")
	return report, nil
}

func (o *Orchestrator) generateNarrative(ctx context.Context, report *domain.AnalysisReport, description string) domain.Narrative {
	logger := zerolog.Ctx(ctx)

	req := narrative.Request{
		Detection:   report.DomainInfo,
		KPIs:        report.KPIs,
		Dimensions:  report.DimensionAnalysis,
		Description: description,
		RowCount:    report.RowCount,
	}

	nCtx, cancel := context.WithTimeout(ctx, o.narrativeTimeout)
	defer cancel()

	n, err := o.generator.Generate(nCtx, req)
	if err != nil {
		logger.Warn().Err(err).Msg("narrative generation failed, using fallback text")
		n, _ = narrative.Fallback{}.Generate(ctx, req)
	}
	return n
}

func validate(ds *domain.Dataset) error {
	if ds == nil || len(ds.Columns) == 0 {
		return fmt.Errorf("%w: no columns", domain.ErrMalformedDataset)
	}
	if ds.RowCount() == 0 {
		return fmt.Errorf("%w: no rows", domain.ErrMalformedDataset)
	}
	seen := make(map[string]bool, len(ds.Columns))
	for _, c := range ds.Columns {
		if seen[c.Name] {
			return fmt.Errorf("%w: duplicate column name %q", domain.ErrMalformedDataset, c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}

func snapshotKPIs(kpis map[string]domain.KPIResult) map[string]domain.KPIResult {
	out := make(map[string]domain.KPIResult, len(kpis))
	for name, r := range kpis {
		out[name] = r
	}
	return out
}

// verifyFrozen asserts that no stage after the calculator rewrote a KPI.
func verifyFrozen(frozen, current map[string]domain.KPIResult) error {
	if len(frozen) != len(current) {
		return fmt.Errorf("kpi count changed: %d -> %d", len(frozen), len(current))
	}
	for name, want := range frozen {
		got, ok := current[name]
		if !ok {
			return fmt.Errorf("kpi %q disappeared", name)
		}
		if got != want {
			return fmt.Errorf("kpi %q mutated after calculation: %+v -> %+v", name, want, got)
		}
	}
	return nil
}
