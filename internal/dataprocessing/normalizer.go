package dataprocessing

import (
	"strconv"
	"strings"

	"ricepulse/pkg/contracts/domain"
)

// missingToken marks empty cells in the published tables.
const missingToken = "-"

// NormalizePrice converts one raw cell value into a price. Thousands
// separators and surrounding whitespace are stripped first; the missing
// token, empty cells and anything non-numeric (footnote markers and the
// like) become the missing marker. Never returns an error: cell-level
// failures are recoverable by convention.
func NormalizePrice(cell string) domain.Price {
	cleaned := strings.TrimSpace(strings.ReplaceAll(cell, ",", ""))
	if cleaned == "" || cleaned == missingToken {
		return domain.MissingPrice()
	}

	value, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return domain.MissingPrice()
	}
	return domain.NewPrice(value)
}
