package domain

// WideTable is the cleaned wide view of a price table: one row per province,
// one column per date label. Labels are trimmed of surrounding whitespace
// and every cell is either a valid price or the missing marker.
type WideTable struct {
	DateLabels []string  `json:"date_labels"`
	Rows       []WideRow `json:"rows"`
}

// WideRow holds one province's prices, positionally aligned with the table's
// date labels.
type WideRow struct {
	Province string  `json:"province"`
	Prices   []Price `json:"prices"`
}

// Transpose swaps rows and columns: each date label becomes a row and each
// province a column. The result feeds per-province descriptive statistics.
func (t WideTable) Transpose() SummaryTable {
	provinces := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		provinces[i] = row.Province
	}

	rows := make([]SummaryRow, len(t.DateLabels))
	for i, label := range t.DateLabels {
		prices := make([]Price, len(t.Rows))
		for j, row := range t.Rows {
			if i < len(row.Prices) {
				prices[j] = row.Prices[i]
			}
		}
		rows[i] = SummaryRow{DateLabel: label, Prices: prices}
	}

	return SummaryTable{Provinces: provinces, Rows: rows}
}

// SummaryTable is the transposed wide view: one row per date, one column per
// province.
type SummaryTable struct {
	Provinces []string     `json:"provinces"`
	Rows      []SummaryRow `json:"rows"`
}

// SummaryRow holds the prices of every province for one date label,
// positionally aligned with the table's province list.
type SummaryRow struct {
	DateLabel string  `json:"date_label"`
	Prices    []Price `json:"prices"`
}

// Series returns the valid prices of one province across all dates, in row
// order. Missing cells are skipped.
func (t SummaryTable) Series(province string) []int64 {
	col := -1
	for i, name := range t.Provinces {
		if name == province {
			col = i
			break
		}
	}
	if col < 0 {
		return nil
	}

	var series []int64
	for _, row := range t.Rows {
		if col < len(row.Prices) {
			if v, ok := row.Prices[col].Int64(); ok {
				series = append(series, v)
			}
		}
	}
	return series
}
