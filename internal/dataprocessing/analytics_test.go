package dataprocessing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ricepulse/pkg/contracts/domain"
)

func summaryFor(rows []domain.WideRow, labels []string) domain.SummaryTable {
	return domain.WideTable{DateLabels: labels, Rows: rows}.Transpose()
}

func TestDescribe(t *testing.T) {
	summary := summaryFor([]domain.WideRow{
		{Province: "Aceh", Prices: []domain.Price{
			domain.NewPrice(10), domain.NewPrice(20), domain.NewPrice(30), domain.NewPrice(40),
		}},
		{Province: "Bali", Prices: []domain.Price{
			domain.NewPrice(100), domain.MissingPrice(), domain.NewPrice(200), domain.MissingPrice(),
		}},
	}, []string{"01/01/2024", "02/01/2024", "03/01/2024", "04/01/2024"})

	stats := Describe(summary)
	require.Len(t, stats, 2)

	aceh := stats[0]
	assert.Equal(t, "Aceh", aceh.Province)
	assert.Equal(t, 4, aceh.Count)
	assert.Equal(t, 25.0, aceh.Mean)
	// Sample std of 10,20,30,40.
	assert.InDelta(t, 12.91, aceh.Std, 0.001)
	assert.Equal(t, int64(10), aceh.Min)
	assert.Equal(t, 17.5, aceh.Q1)
	assert.Equal(t, 25.0, aceh.Median)
	assert.Equal(t, 32.5, aceh.Q3)
	assert.Equal(t, int64(40), aceh.Max)

	bali := stats[1]
	assert.Equal(t, 2, bali.Count, "missing cells are excluded from statistics")
	assert.Equal(t, 150.0, bali.Mean)
	assert.Equal(t, 150.0, bali.Median)
}

func TestDescribe_SingleValue(t *testing.T) {
	summary := summaryFor([]domain.WideRow{
		{Province: "Aceh", Prices: []domain.Price{domain.NewPrice(12500)}},
	}, []string{"01/01/2024"})

	stats := Describe(summary)
	require.Len(t, stats, 1)

	assert.Equal(t, 0.0, stats[0].Std)
	assert.Equal(t, 12500.0, stats[0].Median)
	assert.Equal(t, int64(12500), stats[0].Min)
	assert.Equal(t, int64(12500), stats[0].Max)
}

func TestComputePriceMetrics(t *testing.T) {
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	obs := domain.LongTable{
		{Province: "Aceh", Date: day, Price: 12000},
		{Province: "Bali", Date: day, Price: 14000},
		{Province: "Jakarta", Date: day, Price: 13000},
	}

	m := ComputePriceMetrics(obs)

	assert.Equal(t, 3, m.Count)
	assert.Equal(t, 13000.0, m.Mean)
	assert.Equal(t, int64(14000), m.Max)
	assert.Equal(t, int64(12000), m.Min)

	assert.Equal(t, domain.PriceMetrics{}, ComputePriceMetrics(nil))
}

func TestProvinceAverages(t *testing.T) {
	day1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	obs := domain.LongTable{
		{Province: "Aceh", Date: day1, Price: 12000},
		{Province: "Aceh", Date: day2, Price: 12001},
		{Province: "Bali", Date: day1, Price: 14000},
	}

	averages := ProvinceAverages(obs)
	require.Len(t, averages, 2)

	// Ordered by average descending.
	assert.Equal(t, "Bali", averages[0].Province)
	assert.Equal(t, 14000.0, averages[0].AveragePrice)
	assert.Equal(t, "Aceh", averages[1].Province)
	assert.Equal(t, 12001.0, averages[1].AveragePrice, "averages are rounded to whole rupiah")
}
