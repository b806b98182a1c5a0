package dataprocessing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "ricepulse/internal/errors"
)

func TestParseDateLabels_Primary(t *testing.T) {
	dates, err := parseDateLabels([]string{"01/01/2024", "02/01/2024"}, "02/01/2006")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), dates[0])
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), dates[1])
}

func TestParseDateLabels_ISOFallback(t *testing.T) {
	dates, err := parseDateLabels([]string{"2024-01-01", "2024-01-02"}, "02/01/2006")
	require.NoError(t, err)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), dates[0])
	assert.Equal(t, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), dates[1])
}

func TestParseDateLabels_PartialFailureRetriesWholeSet(t *testing.T) {
	// One ISO label among day/month/year labels: the primary pass fails and
	// the fallback passes must fail too since no single layout fits all.
	_, err := parseDateLabels([]string{"01/01/2024", "2024-01-02"}, "02/01/2006")

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeDateFormat))
}

func TestParseDateLabels_Unparseable(t *testing.T) {
	_, err := parseDateLabels([]string{"week one", "week two"}, "02/01/2006")

	require.Error(t, err)
	assert.True(t, apperrors.IsType(err, apperrors.ErrTypeDateFormat))
}
