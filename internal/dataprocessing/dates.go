package dataprocessing

import (
	"fmt"
	"time"

	apperrors "ricepulse/internal/errors"
)

// fallbackDateLayouts are tried, in order, when the primary layout fails on
// any header. Covers the ISO variants that exported workbooks tend to carry.
var fallbackDateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2/1/2006",
	"02-01-2006",
	"2006-01-02T15:04:05",
	"2 January 2006",
	"Jan 2, 2006",
}

// parseDateLabels parses every header label as a date. The primary layout
// must fit the whole set; if any label fails, the entire set is retried
// against each fallback layout. Dates are the join key for everything
// downstream, so a partially parsed header row is not acceptable.
func parseDateLabels(labels []string, primaryLayout string) ([]time.Time, error) {
	layouts := append([]string{primaryLayout}, fallbackDateLayouts...)

	var firstFailure error
	for _, layout := range layouts {
		dates, err := parseAll(labels, layout)
		if err == nil {
			return dates, nil
		}
		if firstFailure == nil {
			firstFailure = err
		}
	}

	return nil, apperrors.NewDateFormatError(
		fmt.Sprintf("column headers are not %s dates and no fallback layout fits", primaryLayout),
		firstFailure,
	)
}

// parseAll parses the whole label set with one layout, failing on the first
// label that does not fit.
func parseAll(labels []string, layout string) ([]time.Time, error) {
	dates := make([]time.Time, len(labels))
	for i, label := range labels {
		date, err := time.Parse(layout, label)
		if err != nil {
			return nil, fmt.Errorf("header %q does not match layout %s", label, layout)
		}
		dates[i] = date
	}
	return dates, nil
}
