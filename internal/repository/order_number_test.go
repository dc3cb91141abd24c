package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatOrderNumber(t *testing.T) {
	day := time.Date(2026, time.February, 15, 10, 30, 0, 0, time.UTC)

	assert.Equal(t, "PH-20260215-001", FormatOrderNumber(day, 1))
	assert.Equal(t, "PH-20260215-042", FormatOrderNumber(day, 42))
	assert.Equal(t, "PH-20260215-999", FormatOrderNumber(day, 999))
}

func TestFormatOrderNumberSequentialDistinct(t *testing.T) {
	day := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)

	a := FormatOrderNumber(day, 7)
	b := FormatOrderNumber(day, 8)
	assert.NotEqual(t, a, b)
	assert.Less(t, a, b, "same-date numbers must sort in creation order")
}

func TestFormatOrderNumberWideSequence(t *testing.T) {
	// The pad is three digits but the counter may outgrow it on a busy day;
	// the number stays unique, just wider.
	day := time.Date(2026, time.August, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "PH-20260830-1000", FormatOrderNumber(day, 1000))
}
