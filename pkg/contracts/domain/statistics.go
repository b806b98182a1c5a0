package domain

// ProvinceStats is the five-number descriptive summary of one province's
// price series over the loaded period.
type ProvinceStats struct {
	Province string  `json:"province"`
	Count    int     `json:"count"`
	Mean     float64 `json:"mean"`
	Std      float64 `json:"std"`
	Min      int64   `json:"min"`
	Q1       float64 `json:"q1"`
	Median   float64 `json:"median"`
	Q3       float64 `json:"q3"`
	Max      int64   `json:"max"`
}

// PriceMetrics aggregates a selection of observations for the headline
// metric panel.
type PriceMetrics struct {
	Count int     `json:"count"`
	Mean  float64 `json:"mean"`
	Max   int64   `json:"max"`
	Min   int64   `json:"min"`
}

// ProvinceAverage is the mean price of one province over a selection.
type ProvinceAverage struct {
	Province     string  `json:"province"`
	AveragePrice float64 `json:"average_price"`
}
