package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrice(t *testing.T) {
	p := NewPrice(12500)
	v, ok := p.Int64()
	assert.True(t, ok)
	assert.Equal(t, int64(12500), v)
	assert.False(t, p.IsMissing())

	m := MissingPrice()
	_, ok = m.Int64()
	assert.False(t, ok)
	assert.True(t, m.IsMissing())

	// Zero price is a value, not a gap.
	z := NewPrice(0)
	assert.False(t, z.IsMissing())
}

func TestWideTable_Transpose(t *testing.T) {
	wide := WideTable{
		DateLabels: []string{"01/01/2024", "02/01/2024"},
		Rows: []WideRow{
			{Province: "Aceh", Prices: []Price{NewPrice(12500), MissingPrice()}},
			{Province: "Bali", Prices: []Price{NewPrice(14000), NewPrice(14100)}},
		},
	}

	summary := wide.Transpose()

	assert.Equal(t, []string{"Aceh", "Bali"}, summary.Provinces)
	assert.Len(t, summary.Rows, 2)
	assert.Equal(t, "01/01/2024", summary.Rows[0].DateLabel)
	assert.Equal(t, NewPrice(12500), summary.Rows[0].Prices[0])
	assert.Equal(t, NewPrice(14000), summary.Rows[0].Prices[1])
	assert.True(t, summary.Rows[1].Prices[0].IsMissing())
	assert.Equal(t, NewPrice(14100), summary.Rows[1].Prices[1])
}

func TestSummaryTable_Series(t *testing.T) {
	summary := WideTable{
		DateLabels: []string{"01/01/2024", "02/01/2024", "03/01/2024"},
		Rows: []WideRow{
			{Province: "Aceh", Prices: []Price{NewPrice(12500), MissingPrice(), NewPrice(12700)}},
		},
	}.Transpose()

	assert.Equal(t, []int64{12500, 12700}, summary.Series("Aceh"))
	assert.Nil(t, summary.Series("Papua"))
}
