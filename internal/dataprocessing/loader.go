package dataprocessing

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	apperrors "ricepulse/internal/errors"
	"ricepulse/pkg/contracts/domain"
)

// LoaderConfig holds the table-loading policy knobs.
type LoaderConfig struct {
	IdentifierLabel   string // required identifier column in the raw table
	CanonicalLabel    string // what the identifier column is renamed to
	SequenceLabel     string // optional sequence column, dropped when present
	PrimaryDateLayout string // day/month/year layout of the date headers
}

// DefaultLoaderConfig returns the policy matching the published
// "Tabel Harga Berdasarkan Komoditas" layout.
func DefaultLoaderConfig() LoaderConfig {
	return LoaderConfig{
		IdentifierLabel:   "Komoditas (Rp)",
		CanonicalLabel:    "Provinsi",
		SequenceLabel:     "No",
		PrimaryDateLayout: "02/01/2006",
	}
}

// Loader runs the ingestion pipeline: Parse → Validate/Rename → Row filter →
// Normalize → Reshape → Date parse → Finalize. It is stateless between
// loads; concurrent loads share nothing.
type Loader struct {
	logger *slog.Logger
	cfg    LoaderConfig
}

// NewLoader creates a loader with the given policy.
func NewLoader(logger *slog.Logger, cfg LoaderConfig) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.IdentifierLabel == "" {
		cfg.IdentifierLabel = DefaultLoaderConfig().IdentifierLabel
	}
	if cfg.CanonicalLabel == "" {
		cfg.CanonicalLabel = DefaultLoaderConfig().CanonicalLabel
	}
	if cfg.PrimaryDateLayout == "" {
		cfg.PrimaryDateLayout = DefaultLoaderConfig().PrimaryDateLayout
	}
	return &Loader{logger: logger, cfg: cfg}
}

// Load ingests one raw table and produces the long-form observations plus
// the transposed wide summary. Any fatal step returns a typed error and no
// partial dataset.
func (l *Loader) Load(ctx context.Context, r io.Reader) (*domain.Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, apperrors.NewParseError("failed to read input", err)
	}

	rows, format, err := readTable(data)
	if err != nil {
		return nil, err
	}

	l.logger.InfoContext(ctx, "parsed raw table",
		slog.String("format", format),
		slog.Int("row_count", len(rows)))

	wide, err := l.buildWideTable(rows)
	if err != nil {
		return nil, err
	}

	observations, err := l.reshape(ctx, wide)
	if err != nil {
		return nil, err
	}

	l.logger.InfoContext(ctx, "load complete",
		slog.Int("provinces", len(wide.Rows)),
		slog.Int("date_columns", len(wide.DateLabels)),
		slog.Int("observations", len(observations)))

	return &domain.Dataset{
		Observations: observations,
		Summary:      wide.Transpose(),
	}, nil
}

// buildWideTable validates the header, renames the identifier column, drops
// the optional sequence column and normalizes every cell.
func (l *Loader) buildWideTable(rows [][]string) (domain.WideTable, error) {
	header := rows[0]

	idCol := -1
	seqCol := -1
	for i, label := range header {
		switch strings.TrimSpace(label) {
		case l.cfg.IdentifierLabel:
			idCol = i
		case l.cfg.SequenceLabel:
			if l.cfg.SequenceLabel != "" {
				seqCol = i
			}
		}
	}
	if idCol < 0 {
		return domain.WideTable{}, apperrors.NewSchemaError(
			fmt.Sprintf("table has no %q column", l.cfg.IdentifierLabel),
		).WithContext("expected_column", l.cfg.IdentifierLabel)
	}

	// Every column that is neither the identifier nor the sequence column
	// is a date column. Labels keep their column order.
	var dateCols []int
	var dateLabels []string
	for i, label := range header {
		if i == idCol || i == seqCol {
			continue
		}
		dateCols = append(dateCols, i)
		dateLabels = append(dateLabels, strings.TrimSpace(label))
	}

	var tableRows []domain.WideRow
	for _, row := range rows[1:] {
		if idCol >= len(row) {
			continue
		}
		province := strings.TrimSpace(row[idCol])
		if province == "" {
			continue // total rows and padding have no region value
		}

		prices := make([]domain.Price, len(dateCols))
		allMissing := true
		for j, col := range dateCols {
			cell := ""
			if col < len(row) {
				cell = row[col]
			}
			prices[j] = NormalizePrice(cell)
			if !prices[j].IsMissing() {
				allMissing = false
			}
		}
		if allMissing {
			continue
		}

		tableRows = append(tableRows, domain.WideRow{Province: province, Prices: prices})
	}

	return domain.WideTable{DateLabels: dateLabels, Rows: tableRows}, nil
}

// reshape unpivots the cleaned wide table into long form, parses the date
// headers, drops missing prices and sorts ascending by date.
func (l *Loader) reshape(ctx context.Context, wide domain.WideTable) (domain.LongTable, error) {
	// Header labels sometimes carry embedded spaces ("01/ 01/2024").
	labels := make([]string, len(wide.DateLabels))
	for i, label := range wide.DateLabels {
		labels[i] = strings.ReplaceAll(label, " ", "")
	}

	dates, err := parseDateLabels(labels, l.cfg.PrimaryDateLayout)
	if err != nil {
		l.logger.WarnContext(ctx, "date header parsing failed",
			slog.String("primary_layout", l.cfg.PrimaryDateLayout),
			slog.String("error", err.Error()))
		return nil, err
	}

	var observations domain.LongTable
	for _, row := range wide.Rows {
		for i, price := range row.Prices {
			value, ok := price.Int64()
			if !ok {
				continue // missing prices carry no statistical information
			}
			observations = append(observations, domain.Observation{
				Province: row.Province,
				Date:     dates[i],
				Price:    value,
			})
		}
	}

	sort.SliceStable(observations, func(i, j int) bool {
		return observations[i].Date.Before(observations[j].Date)
	})

	return observations, nil
}
