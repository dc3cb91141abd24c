package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/primehood/supplies-api/internal/repository"
)

func TestBucketByWeekdayOrder(t *testing.T) {
	series := bucketByWeekday(nil, time.Now())

	require.Len(t, series, 7)
	days := make([]string, 0, 7)
	for _, s := range series {
		days = append(days, s.Day)
		assert.Zero(t, s.Amount)
	}
	assert.Equal(t, []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}, days)
}

func TestBucketByWeekdaySumsSameDay(t *testing.T) {
	// 2026-08-26 is a Wednesday.
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	wed := time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)

	series := bucketByWeekday([]repository.OrderTotal{
		{CreatedAt: wed, Total: 1000},
		{CreatedAt: wed.Add(3 * time.Hour), Total: 500},
	}, now)

	assert.Equal(t, 1500, series[time.Wednesday].Amount)
}

func TestBucketByWeekdayExcludesOlderWeeks(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	thisWed := time.Date(2026, 8, 26, 9, 0, 0, 0, time.UTC)
	lastWed := thisWed.AddDate(0, 0, -7)

	series := bucketByWeekday([]repository.OrderTotal{
		{CreatedAt: thisWed, Total: 1000},
		// Same weekday one week earlier must not merge into the bucket.
		{CreatedAt: lastWed, Total: 9000},
	}, now)

	assert.Equal(t, 1000, series[time.Wednesday].Amount)
}

func TestBucketByWeekdayDayAlignedWindow(t *testing.T) {
	// 2026-08-28 is a Friday. An order late on the previous Friday sits
	// within 168 hours of now but outside the seven-calendar-day window,
	// so the two Fridays must not merge.
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	thisFri := time.Date(2026, 8, 28, 9, 0, 0, 0, time.UTC)
	lastFri := time.Date(2026, 8, 21, 18, 0, 0, 0, time.UTC)

	series := bucketByWeekday([]repository.OrderTotal{
		{CreatedAt: thisFri, Total: 1000},
		{CreatedAt: lastFri, Total: 9000},
	}, now)

	assert.Equal(t, 1000, series[time.Friday].Amount)

	// Midnight at the start of the window is still inside it.
	windowStart := time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC)
	series = bucketByWeekday([]repository.OrderTotal{
		{CreatedAt: windowStart, Total: 300},
	}, now)
	assert.Equal(t, 300, series[time.Saturday].Amount)
}

func TestWeekWindowStart(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 30, 45, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC), weekWindowStart(now))
}

func TestBucketByWeekdayExcludesFuture(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	series := bucketByWeekday([]repository.OrderTotal{
		{CreatedAt: now.Add(time.Hour), Total: 700},
	}, now)

	for _, s := range series {
		assert.Zero(t, s.Amount)
	}
}
