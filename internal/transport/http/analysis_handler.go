package http

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "ricepulse/internal/errors"
	"ricepulse/internal/middleware"
	"ricepulse/internal/services"
)

// AnalysisRunner is the service surface the handler needs. Kept narrow so
// tests can stub it.
type AnalysisRunner interface {
	Analyze(ctx context.Context, r io.Reader) (*services.DashboardPayload, error)
}

// AnalysisHandler handles table upload and analysis requests.
type AnalysisHandler struct {
	service AnalysisRunner
	logger  *slog.Logger
}

// NewAnalysisHandler creates a new analysis handler.
func NewAnalysisHandler(service AnalysisRunner, logger *slog.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		service: service,
		logger:  logger.With(slog.String("component", "analysis_handler")),
	}
}

// Routes returns the analysis routes.
func (h *AnalysisHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Post("/analysis", h.CreateAnalysis)

	return r
}

// AnalysisResponse wraps a successful analysis.
type AnalysisResponse struct {
	Success bool                       `json:"success"`
	Data    *services.DashboardPayload `json:"data"`
}

// Render implements the render.Renderer interface
func (a *AnalysisResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, http.StatusOK)
	return nil
}

// CreateAnalysis handles POST /api/v1/analysis. The request is a multipart
// upload with the raw table in the "file" field; the response carries the
// full dashboard payload or one typed failure, never a partial result.
func (h *AnalysisHandler) CreateAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	reqID := middleware.GetReqID(ctx)

	file, header, err := r.FormFile("file")
	if err != nil {
		h.logger.WarnContext(ctx, "upload without file field",
			slog.String("request_id", reqID),
			slog.String("error", err.Error()))
		h.renderError(w, r, apierrors.ErrMissingFile)
		return
	}
	defer file.Close()

	h.logger.InfoContext(ctx, "analysis requested",
		slog.String("request_id", reqID),
		slog.String("filename", header.Filename),
		slog.Int64("size_bytes", header.Size))

	payload, err := h.service.Analyze(ctx, file)
	if err != nil {
		h.logger.WarnContext(ctx, "analysis failed",
			slog.String("request_id", reqID),
			slog.String("filename", header.Filename),
			slog.String("error", err.Error()))
		h.renderError(w, r, apierrors.FromError(err))
		return
	}

	if err := render.Render(w, r, &AnalysisResponse{Success: true, Data: payload}); err != nil {
		h.logger.ErrorContext(ctx, "failed to render analysis response",
			slog.String("request_id", reqID),
			slog.String("error", err.Error()))
	}
}

func (h *AnalysisHandler) renderError(w http.ResponseWriter, r *http.Request, apiErr *apierrors.APIError) {
	if err := render.Render(w, r, apierrors.NewErrorResponse(apiErr)); err != nil {
		http.Error(w, apiErr.Message, apiErr.StatusCode)
	}
}
