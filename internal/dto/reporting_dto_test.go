package dto_test

import (
	"testing"
	"time"

	"github.com/adiwira-dev/stockledger/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDateRange_Empty(t *testing.T) {
	rng, err := dto.ReportRangeParams{}.ToDateRange()
	require.NoError(t, err)
	assert.Nil(t, rng.From)
	assert.Nil(t, rng.To)
}

func TestToDateRange_BareDates(t *testing.T) {
	rng, err := dto.ReportRangeParams{From: "2024-01-01", To: "2024-01-31"}.ToDateRange()
	require.NoError(t, err)
	require.NotNil(t, rng.From)
	require.NotNil(t, rng.To)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *rng.From)
	// A bare end date must cover the whole day.
	assert.Equal(t, time.Date(2024, 1, 31, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC), *rng.To)
}

func TestToDateRange_RFC3339KeptExact(t *testing.T) {
	rng, err := dto.ReportRangeParams{To: "2024-01-31T12:30:00Z"}.ToDateRange()
	require.NoError(t, err)
	require.NotNil(t, rng.To)
	assert.Equal(t, time.Date(2024, 1, 31, 12, 30, 0, 0, time.UTC), *rng.To)
}

func TestToDateRange_Invalid(t *testing.T) {
	_, err := dto.ReportRangeParams{From: "31/01/2024"}.ToDateRange()
	assert.Error(t, err)

	_, err = dto.ReportRangeParams{To: "soon"}.ToDateRange()
	assert.Error(t, err)
}
