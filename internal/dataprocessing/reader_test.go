package dataprocessing

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	apperrors "ricepulse/internal/errors"
)

func workbookBytes(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestReadTable_Excel(t *testing.T) {
	data := workbookBytes(t, [][]interface{}{
		{"Komoditas (Rp)", "01/01/2024"},
		{"Aceh", "12,500"},
	})

	rows, format, err := readTable(data)
	require.NoError(t, err)

	assert.Equal(t, "excel", format)
	assert.Len(t, rows, 2)
	assert.Equal(t, "Aceh", rows[1][0])
}

func TestReadTable_CSVFallback(t *testing.T) {
	data := []byte("Komoditas (Rp),01/01/2024\nAceh,\"12,500\"\n")

	rows, format, err := readTable(data)
	require.NoError(t, err)

	assert.Equal(t, "csv", format)
	assert.Len(t, rows, 2)
	assert.Equal(t, "12,500", rows[1][1])
}

func TestReadTable_UnrecognizedFormat(t *testing.T) {
	// A stray quote breaks the CSV reader; the byte blob is no zip either.
	data := []byte("\x00\x01\x02 \"unterminated\n\"oops")

	_, _, err := readTable(data)

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParse))
}

func TestReadTable_EmptyInput(t *testing.T) {
	_, _, err := readTable(nil)

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeParse))
}
