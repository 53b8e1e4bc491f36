// Package server implements the racklabel HTTP surface: spreadsheet
// upload, generation progress and PDF download.
//
// The API is deliberately small:
//
//	POST /api/generate            multipart upload (file, variant) → job ID
//	GET  /api/jobs/{id}           job state, progress and diagnostics
//	GET  /api/jobs/{id}/download  the rendered PDF
//	GET  /healthz                 liveness probe
//
// Uploads are parsed in memory and handed straight to the pipeline; no
// uploaded data is ever persisted. Generation runs in a background
// goroutine per job, with progress relayed through the engine's callback
// into the in-memory job store.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/agilomatrix/racklabel/pkg/errors"
	"github.com/agilomatrix/racklabel/pkg/label"
	"github.com/agilomatrix/racklabel/pkg/pipeline"
	"github.com/agilomatrix/racklabel/pkg/tabular"
)

// MaxUploadBytes bounds the in-memory spreadsheet upload size.
const MaxUploadBytes = 32 << 20 // 32 MiB

// Server handles the HTTP API. Construct with New.
type Server struct {
	runner *pipeline.Runner
	jobs   *JobStore
	logger *log.Logger
}

// New creates a server around a pipeline runner.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		runner: runner,
		jobs:   NewJobStore(DefaultJobTTL),
		logger: logger,
	}
}

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/api", func(r chi.Router) {
		r.Post("/generate", s.handleGenerate)
		r.Get("/jobs/{id}", s.handleJobStatus)
		r.Get("/jobs/{id}/download", s.handleDownload)
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleGenerate accepts a multipart spreadsheet upload, starts a
// generation job and returns its ID with 202 Accepted.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, errors.New(errors.ErrCodeInvalidInput, "missing file upload"))
		return
	}
	defer file.Close()

	variant := label.Variant(r.FormValue("variant"))
	if variant == "" {
		variant = pipeline.DefaultVariant
	}
	if err := label.ValidateVariant(variant); err != nil {
		writeError(w, err)
		return
	}

	table, err := tabular.Load(file, header.Filename)
	if err != nil {
		writeError(w, err)
		return
	}

	id := s.jobs.Create(header.Filename, variant)
	s.logger.Info("generation started",
		"job", id, "file", header.Filename, "variant", variant, "rows", len(table.Rows))

	go s.run(id, table, variant)

	writeJSON(w, http.StatusAccepted, map[string]string{"job_id": id})
}

// run executes the pipeline for one job in the background.
func (s *Server) run(id string, table tabular.Table, variant label.Variant) {
	opts := pipeline.Options{
		Variant: variant,
		Formats: []string{pipeline.FormatPDF},
		Logger:  s.logger.With("job", id),
		Progress: func(index, total int, location string) {
			s.jobs.Progress(id, index, total, location)
		},
	}

	result, err := s.runner.Execute(context.Background(), table, opts)
	if err != nil {
		s.logger.Error("generation failed", "job", id, "err", err)
		s.jobs.Fail(id, errors.UserMessage(err))
		return
	}
	if result.Document == nil {
		s.jobs.Fail(id, "no labels were generated - check that the file has the expected columns")
		return
	}

	skipped := make([]string, len(result.Skipped))
	for i, g := range result.Skipped {
		skipped[i] = g.Location
	}
	s.jobs.Complete(id, result.Artifacts[pipeline.FormatPDF], result.Stats.Pages, skipped)
}

func (s *Server) handleJobStatus(w http.ResponseWriter, r *http.Request) {
	job, ok := s.jobs.Get(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, errors.New(errors.ErrCodeJobNotFound, "unknown job"))
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	job, ok := s.jobs.Get(id)
	if !ok {
		writeError(w, errors.New(errors.ErrCodeJobNotFound, "unknown job"))
		return
	}

	switch job.State {
	case JobStateRunning:
		writeJSON(w, http.StatusConflict, map[string]string{"error": "job still running"})
		return
	case JobStateFailed:
		writeJSON(w, http.StatusConflict, map[string]string{"error": job.Error})
		return
	}

	pdf, ok := s.jobs.PDF(id)
	if !ok {
		writeError(w, errors.New(errors.ErrCodeJobNotFound, "artifact expired"))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", downloadName(job.Variant)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// downloadName mirrors the artifact names users already know.
func downloadName(v label.Variant) string {
	if v == label.VariantSingle {
		return "singlepart_labels.pdf"
	}
	return "multiplepart_labels.pdf"
}

// writeJSON writes a JSON response body with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps an error code to an HTTP status and writes a JSON
// error body.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidVariant,
		errors.ErrCodeUnsupportedFile, errors.ErrCodeLoadFailed,
		errors.ErrCodeEmptyTable:
		status = http.StatusBadRequest
	case errors.ErrCodeJobNotFound, errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	}
	writeJSON(w, status, map[string]string{"error": errors.UserMessage(err)})
}
