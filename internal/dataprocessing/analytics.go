package dataprocessing

import (
	"math"
	"sort"

	"ricepulse/pkg/contracts/domain"
)

// Describe computes the five-number descriptive summary of every province's
// price series in the transposed summary table. Std is the sample standard
// deviation and quartiles use linear interpolation, so the numbers line up
// with the statistics the previous tooling reported. Results are rounded to
// two decimals and ordered by province name.
func Describe(summary domain.SummaryTable) []domain.ProvinceStats {
	stats := make([]domain.ProvinceStats, 0, len(summary.Provinces))

	for _, province := range summary.Provinces {
		series := summary.Series(province)
		if len(series) == 0 {
			continue
		}

		values := make([]float64, len(series))
		for i, v := range series {
			values[i] = float64(v)
		}
		sort.Float64s(values)

		stats = append(stats, domain.ProvinceStats{
			Province: province,
			Count:    len(values),
			Mean:     round2(mean(values)),
			Std:      round2(sampleStd(values)),
			Min:      int64(values[0]),
			Q1:       round2(quantile(values, 0.25)),
			Median:   round2(quantile(values, 0.5)),
			Q3:       round2(quantile(values, 0.75)),
			Max:      int64(values[len(values)-1]),
		})
	}

	sort.Slice(stats, func(i, j int) bool { return stats[i].Province < stats[j].Province })
	return stats
}

// ComputePriceMetrics aggregates a selection of observations for the
// headline metric panel.
func ComputePriceMetrics(obs domain.LongTable) domain.PriceMetrics {
	if len(obs) == 0 {
		return domain.PriceMetrics{}
	}

	m := domain.PriceMetrics{
		Count: len(obs),
		Max:   obs[0].Price,
		Min:   obs[0].Price,
	}
	var sum int64
	for _, o := range obs {
		sum += o.Price
		if o.Price > m.Max {
			m.Max = o.Price
		}
		if o.Price < m.Min {
			m.Min = o.Price
		}
	}
	m.Mean = round2(float64(sum) / float64(len(obs)))
	return m
}

// ProvinceAverages computes the mean price per province over a selection,
// rounded to whole rupiah, ordered by average descending.
func ProvinceAverages(obs domain.LongTable) []domain.ProvinceAverage {
	sums := make(map[string]int64)
	counts := make(map[string]int)
	for _, o := range obs {
		sums[o.Province] += o.Price
		counts[o.Province]++
	}

	averages := make([]domain.ProvinceAverage, 0, len(sums))
	for province, sum := range sums {
		averages = append(averages, domain.ProvinceAverage{
			Province:     province,
			AveragePrice: math.Round(float64(sum) / float64(counts[province])),
		})
	}

	sort.Slice(averages, func(i, j int) bool {
		if averages[i].AveragePrice != averages[j].AveragePrice {
			return averages[i].AveragePrice > averages[j].AveragePrice
		}
		return averages[i].Province < averages[j].Province
	})
	return averages
}

func mean(values []float64) float64 {
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// sampleStd is the n-1 standard deviation; zero for a single value.
func sampleStd(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	m := mean(values)
	var ss float64
	for _, v := range values {
		d := v - m
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(values)-1))
}

// quantile interpolates linearly between order statistics; values must be
// sorted.
func quantile(values []float64, q float64) float64 {
	if len(values) == 1 {
		return values[0]
	}
	pos := q * float64(len(values)-1)
	lower := int(math.Floor(pos))
	frac := pos - float64(lower)
	if lower+1 >= len(values) {
		return values[len(values)-1]
	}
	return values[lower] + frac*(values[lower+1]-values[lower])
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
