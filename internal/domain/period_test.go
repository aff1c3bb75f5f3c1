package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewPeriod_RejectsInvertedBounds(t *testing.T) {
	_, err := NewPeriod(date(2025, 2, 1), date(2025, 1, 1))
	assert.ErrorIs(t, err, ErrInvalidPeriod)
}

func TestPeriod_ContainsIsBoundsInclusive(t *testing.T) {
	p, err := NewPeriod(date(2025, 1, 1), date(2025, 1, 31))
	require.NoError(t, err)

	assert.True(t, p.Contains(date(2025, 1, 1)), "start bound is inclusive")
	assert.True(t, p.Contains(date(2025, 1, 31)), "end bound is inclusive")
	assert.True(t, p.Contains(date(2025, 1, 15)))
	assert.False(t, p.Contains(date(2024, 12, 31)))
	assert.False(t, p.Contains(date(2025, 2, 1)))
}

func TestPeriod_SingleDayIsValid(t *testing.T) {
	p, err := NewPeriod(date(2025, 3, 10), date(2025, 3, 10))
	require.NoError(t, err)
	assert.True(t, p.Contains(date(2025, 3, 10)))
}

func TestPeriod_Key(t *testing.T) {
	p, err := NewPeriod(date(2025, 1, 1), date(2025, 1, 31))
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01_2025-01-31", p.Key())
}
