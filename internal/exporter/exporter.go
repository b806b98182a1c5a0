// Package exporter writes the derived tables to disk for offline use:
// the long table as CSV and the descriptive statistics as JSON.
package exporter

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/google/uuid"

	apperrors "ricepulse/internal/errors"
	"ricepulse/internal/services"
	"ricepulse/pkg/contracts/domain"
)

// dateLayout is the day/month/year form used in the exported files,
// matching the source table headers.
const dateLayout = "02/01/2006"

// Writer exports analysis results into a target directory.
type Writer struct {
	logger *slog.Logger
	outDir string
}

// NewWriter creates an exporter writing into outDir.
func NewWriter(logger *slog.Logger, outDir string) *Writer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Writer{logger: logger, outDir: outDir}
}

// WriteObservationsCSV writes the long table as CSV.
func (w *Writer) WriteObservationsCSV(name string, observations domain.LongTable) error {
	records := make([][]string, 0, len(observations))
	for _, obs := range observations {
		records = append(records, []string{
			obs.Province,
			obs.Date.Format(dateLayout),
			strconv.FormatInt(obs.Price, 10),
		})
	}

	return w.writeCSV(name, []string{"Provinsi", "Tanggal", "Harga"}, records)
}

// WriteAveragesCSV writes the per-province averages as CSV.
func (w *Writer) WriteAveragesCSV(name string, averages []domain.ProvinceAverage) error {
	records := make([][]string, 0, len(averages))
	for _, avg := range averages {
		records = append(records, []string{
			avg.Province,
			strconv.FormatFloat(avg.AveragePrice, 'f', 0, 64),
		})
	}

	return w.writeCSV(name, []string{"Provinsi", "HargaRataRata"}, records)
}

// WriteStatsJSON writes the descriptive statistics with report metadata.
func (w *Writer) WriteStatsJSON(name string, payload *services.DashboardPayload) error {
	path := filepath.Join(w.outDir, name)

	w.logger.Info("writing statistics JSON",
		slog.String("path", path),
		slog.Int("province_count", len(payload.Statistics)))

	if err := os.MkdirAll(w.outDir, 0755); err != nil {
		return apperrors.NewStorageError("failed to create output directory", err)
	}

	doc := map[string]interface{}{
		"report_id":         uuid.New().String(),
		"generated_at":      time.Now().UTC().Format(time.RFC3339),
		"provinces":         payload.Provinces,
		"dates":             payload.Dates,
		"statistics":        payload.Statistics,
		"province_averages": payload.ProvinceAverages,
		"metrics":           payload.Metrics,
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError("failed to create JSON file", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return apperrors.NewStorageError("failed to encode statistics JSON", err)
	}

	return nil
}

func (w *Writer) writeCSV(name string, header []string, records [][]string) error {
	path := filepath.Join(w.outDir, name)

	w.logger.Info("writing CSV file",
		slog.String("path", path),
		slog.Int("record_count", len(records)))

	if err := os.MkdirAll(w.outDir, 0755); err != nil {
		return apperrors.NewStorageError("failed to create output directory", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return apperrors.NewStorageError(fmt.Sprintf("failed to create %s", name), err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write(header); err != nil {
		return apperrors.NewStorageError("failed to write CSV header row", err)
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return apperrors.NewStorageError("failed to write CSV data row", err)
		}
	}

	return nil
}
