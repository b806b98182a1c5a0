package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"ricepulse/internal/dataprocessing"
	apperrors "ricepulse/internal/errors"
	"ricepulse/internal/infrastructure"
	"ricepulse/pkg/contracts/domain"
)

// DashboardPayload is everything the dashboard frontend needs from one
// uploaded table: the long-form observations plus the derived statistics
// the panels render.
type DashboardPayload struct {
	Observations     domain.LongTable         `json:"observations"`
	Provinces        []string                 `json:"provinces"`
	Dates            []string                 `json:"dates"`
	Statistics       []domain.ProvinceStats   `json:"statistics"`
	ProvinceAverages []domain.ProvinceAverage `json:"province_averages"`
	Metrics          domain.PriceMetrics      `json:"metrics"`
	GeneratedAt      time.Time                `json:"generated_at"`
}

// dateLabelLayout is the day/month/year form the frontend's date picker
// expects, matching the source table headers.
const dateLabelLayout = "02/01/2006"

// AnalysisService runs the loading pipeline and derives the dashboard
// payload. It is stateless: every Analyze call works on its own tables.
type AnalysisService struct {
	loader  *dataprocessing.Loader
	logger  *slog.Logger
	metrics *infrastructure.Metrics
}

// NewAnalysisService creates the analysis service. metrics may be nil when
// no instrumentation is wanted (CLI usage).
func NewAnalysisService(loader *dataprocessing.Loader, logger *slog.Logger, metrics *infrastructure.Metrics) *AnalysisService {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalysisService{
		loader:  loader,
		logger:  logger.With(slog.String("component", "analysis_service")),
		metrics: metrics,
	}
}

// Analyze ingests one raw table and computes the full dashboard payload.
// Fatal pipeline failures are returned as-is; there is no partial payload.
func (s *AnalysisService) Analyze(ctx context.Context, r io.Reader) (*DashboardPayload, error) {
	started := time.Now()

	dataset, err := s.loader.Load(ctx, r)
	if err != nil {
		if s.metrics != nil {
			s.metrics.RecordLoadFailure(string(apperrors.TypeOf(err)))
		}
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.RecordLoadSuccess(len(dataset.Observations))
	}

	dates := dataset.Observations.Dates()
	labels := make([]string, len(dates))
	for i, d := range dates {
		labels[i] = d.Format(dateLabelLayout)
	}

	payload := &DashboardPayload{
		Observations:     dataset.Observations,
		Provinces:        dataset.Observations.Provinces(),
		Dates:            labels,
		Statistics:       dataprocessing.Describe(dataset.Summary),
		ProvinceAverages: dataprocessing.ProvinceAverages(dataset.Observations),
		Metrics:          dataprocessing.ComputePriceMetrics(dataset.Observations),
		GeneratedAt:      time.Now().UTC(),
	}

	s.logger.InfoContext(ctx, "analysis complete",
		slog.Int("observations", len(payload.Observations)),
		slog.Int("provinces", len(payload.Provinces)),
		slog.Duration("elapsed", time.Since(started)))

	return payload, nil
}
