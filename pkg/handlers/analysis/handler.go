package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/vantagics/bizlens/pkg/adapters"
	"github.com/vantagics/bizlens/pkg/catalog"
	"github.com/vantagics/bizlens/pkg/models/api"
	"github.com/vantagics/bizlens/pkg/models/domain"
	"github.com/vantagics/bizlens/pkg/models/store"
	"github.com/vantagics/bizlens/pkg/services/ingest"
)

const maxUploadBytes = 32 << 20 // 32 MiB

// Runner executes one analysis pipeline run.
type Runner interface {
	Run(ctx context.Context, ds *domain.Dataset, description string) (*domain.AnalysisReport, error)
}

// RunStore persists and retrieves completed runs.
type RunStore interface {
	SaveRun(ctx context.Context, rec store.RunRecord) error
	GetRun(ctx context.Context, id string) (*store.RunRecord, error)
	ListRuns(ctx context.Context, limit int) ([]store.RunRecord, error)
}

type Handler struct {
	runner  Runner
	catalog *catalog.Catalog
	runs    RunStore
}

func NewHandler(runner Runner, cat *catalog.Catalog, runs RunStore) *Handler {
	return &Handler{runner: runner, catalog: cat, runs: runs}
}

// Analyze accepts a multipart upload (file=CSV, description=optional text),
// runs the pipeline and returns the full report. Storage failures are logged
// but never fail a run that computed successfully.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "expected multipart form with a 'file' field")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing 'file' field")
		return
	}
	defer file.Close()
	description := r.FormValue("description")

	ds, err := ingest.ReadCSV(file)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedDataset) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error().Err(err).Str("filename", header.Filename).Msg("failed to read upload")
		writeError(w, http.StatusInternalServerError, "failed to read uploaded file")
		return
	}

	report, err := h.runner.Run(ctx, ds, description)
	if err != nil {
		if errors.Is(err, domain.ErrMalformedDataset) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error().Err(err).Str("filename", header.Filename).Msg("analysis run failed")
		writeError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	if h.runs != nil {
		if rec, err := adapters.MapDomainReportToStoreRun(report); err == nil {
			if err := h.runs.SaveRun(ctx, rec); err != nil {
				logger.Error().Err(err).Str("run_id", report.RunID).Msg("failed to persist run")
			}
		}
	}

	writeJSON(ctx, w, http.StatusOK, mapReport(report))
}

// ListDomains returns the supported domain profiles.
func (h *Handler) ListDomains(w http.ResponseWriter, r *http.Request) {
	out := make([]api.DomainSummary, 0)
	for _, p := range h.catalog.Profiles() {
		summary := api.DomainSummary{
			ID:         p.ID,
			Name:       p.Name,
			ExpertRole: p.ExpertRole,
		}
		for _, def := range p.KPIs {
			summary.KPINames = append(summary.KPINames, def.Name)
		}
		out = append(out, summary)
	}
	writeJSON(r.Context(), w, http.StatusOK, out)
}

// GetRun returns a previously stored run by id.
func (h *Handler) GetRun(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	rec, err := h.runs.GetRun(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrRunNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		zerolog.Ctx(ctx).Error().Err(err).Str("run_id", id).Msg("failed to load run")
		writeError(w, http.StatusInternalServerError, "failed to load run")
		return
	}

	report, err := adapters.MapStoreRunToDomainReport(rec)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("run_id", id).Msg("stored payload unreadable")
		writeError(w, http.StatusInternalServerError, "stored run unreadable")
		return
	}
	writeJSON(ctx, w, http.StatusOK, mapReport(report))
}

// ListRuns returns recent stored runs.
func (h *Handler) ListRuns(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	recs, err := h.runs.ListRuns(ctx, 20)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to list runs")
		writeError(w, http.StatusInternalServerError, "failed to list runs")
		return
	}
	out := make([]api.RunSummary, 0, len(recs))
	for _, rec := range recs {
		out = append(out, api.RunSummary{
			RunID:      rec.ID,
			CreatedAt:  rec.CreatedAt,
			DomainID:   rec.DomainID,
			Confidence: rec.Confidence,
			RowCount:   rec.RowCount,
			Degraded:   rec.Degraded,
		})
	}
	writeJSON(ctx, w, http.StatusOK, out)
}

func mapReport(report *domain.AnalysisReport) api.AnalysisResponse {
	return api.AnalysisResponse{
		RunID:             report.RunID,
		CreatedAt:         report.CreatedAt,
		RowCount:          report.RowCount,
		ColumnCount:       report.ColumnCount,
		DomainInfo:        report.DomainInfo,
		KPIs:              report.KPIs,
		DimensionAnalysis: report.DimensionAnalysis,
		Narrative:         report.Narrative,
		Warnings:          report.Warnings,
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Error: msg})
}
