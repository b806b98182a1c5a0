package dataprocessing

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "ricepulse/internal/errors"
)

// tableReader is one parsing strategy: raw bytes in, a row grid out. Each
// strategy gets its own view of the input, so a failed attempt never leaves
// the stream half-consumed for the next one.
type tableReader interface {
	Name() string
	Read(data []byte) ([][]string, error)
}

// readerStrategies is the ordered fallback chain: spreadsheet first, then
// delimited text.
var readerStrategies = []tableReader{
	excelReader{},
	csvReader{},
}

type excelReader struct{}

func (excelReader) Name() string { return "excel" }

func (excelReader) Read(data []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

type csvReader struct{}

func (csvReader) Name() string { return "csv" }

func (csvReader) Read(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1 // source tables have ragged rows

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	return rows, nil
}

// readTable tries each strategy in order and returns the first grid that
// parses and contains data. When every strategy fails the result is a
// ParseError carrying the per-strategy diagnostics.
func readTable(data []byte) ([][]string, string, error) {
	var attempts []string
	for _, strategy := range readerStrategies {
		rows, err := strategy.Read(data)
		if err != nil {
			attempts = append(attempts, fmt.Sprintf("%s: %v", strategy.Name(), err))
			continue
		}
		if len(rows) == 0 {
			attempts = append(attempts, fmt.Sprintf("%s: table is empty", strategy.Name()))
			continue
		}
		return rows, strategy.Name(), nil
	}

	return nil, "", apperrors.NewParseError(
		"input is neither a readable spreadsheet nor delimited text",
		fmt.Errorf("%s", strings.Join(attempts, "; ")),
	)
}
