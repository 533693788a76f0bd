package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecoquest/internal/domain"
)

var jakarta = time.FixedZone("WIB", 7*3600)

func at(y int, m time.Month, d, hh, mm int) *time.Time {
	t := time.Date(y, m, d, hh, mm, 0, 0, jakarta)
	return &t
}

func TestBucketLastSevenDays_AlwaysSevenOrderedDays(t *testing.T) {
	todays := []time.Time{
		time.Date(2025, 3, 1, 0, 0, 0, 0, jakarta),
		time.Date(2025, 12, 31, 23, 59, 59, 0, jakarta),
		time.Date(2024, 2, 29, 12, 0, 0, 0, jakarta),
		time.Date(2025, 6, 15, 20, 0, 0, 0, time.UTC), // already 16 June in WIB
	}

	for _, today := range todays {
		buckets := domain.BucketLastSevenDays(today, jakarta, nil, nil)
		require.Len(t, buckets, domain.WindowDays)

		want := domain.StartOfDay(today, jakarta)
		assert.Equal(t, want, buckets[6].Date, "last bucket is today")
		for i := 0; i < domain.WindowDays; i++ {
			assert.Equal(t, want.AddDate(0, 0, i-6), buckets[i].Date)
			assert.Equal(t, domain.WeekdayLabel(buckets[i].Date), buckets[i].Label)
		}
	}
}

func TestBucketLastSevenDays_SumsByDay(t *testing.T) {
	today := time.Date(2025, 5, 10, 15, 0, 0, 0, jakarta)

	events := []domain.PointEvent{
		{Points: 20, CreatedAt: at(2025, 5, 10, 8, 0)},
		{Points: 5, CreatedAt: at(2025, 5, 10, 23, 59)},
		{Points: 7, CreatedAt: at(2025, 5, 8, 0, 0)},
		{Points: 100, CreatedAt: nil},
		{Points: 40, CreatedAt: at(2025, 5, 11, 0, 0)}, // tomorrow
	}
	signups := []*time.Time{at(2025, 5, 8, 9, 30), at(2025, 5, 8, 10, 0), nil, at(2025, 5, 4, 12, 0)}

	buckets := domain.BucketLastSevenDays(today, jakarta, events, signups)

	assert.Equal(t, int64(25), buckets[6].EarnedPoints)
	assert.Equal(t, int64(7), buckets[4].EarnedPoints)
	assert.Equal(t, int64(2), buckets[4].NewUsers)
	assert.Equal(t, int64(1), buckets[0].NewUsers)
	assert.False(t, buckets.Empty())

	var total int64
	for _, b := range buckets {
		total += b.EarnedPoints
	}
	assert.Equal(t, int64(32), total)
}

func TestBucketLastSevenDays_WindowBoundary(t *testing.T) {
	today := time.Date(2025, 5, 10, 9, 0, 0, 0, jakarta)

	oldest := domain.WindowStart(today, jakarta)
	justBefore := oldest.Add(-time.Second)

	buckets := domain.BucketLastSevenDays(today, jakarta, []domain.PointEvent{
		{Points: 3, CreatedAt: &oldest},
		{Points: 11, CreatedAt: &justBefore},
	}, nil)

	assert.Equal(t, time.Date(2025, 5, 4, 0, 0, 0, 0, jakarta), oldest)
	assert.Equal(t, int64(3), buckets[0].EarnedPoints)
	for _, b := range buckets[1:] {
		assert.Zero(t, b.EarnedPoints)
	}
}

func TestBucketLastSevenDays_UsesReportingTimezone(t *testing.T) {
	today := time.Date(2025, 5, 10, 12, 0, 0, 0, jakarta)
	// 18:30 UTC on the 9th is 01:30 WIB on the 10th.
	late := time.Date(2025, 5, 9, 18, 30, 0, 0, time.UTC)

	buckets := domain.BucketLastSevenDays(today, jakarta, []domain.PointEvent{{Points: 9, CreatedAt: &late}}, nil)

	assert.Equal(t, int64(9), buckets[6].EarnedPoints)
	assert.Zero(t, buckets[5].EarnedPoints)
}

func TestBucketLastSevenDays_NoActivityIsEmpty(t *testing.T) {
	today := time.Date(2025, 5, 10, 12, 0, 0, 0, jakarta)

	buckets := domain.BucketLastSevenDays(today, jakarta, []domain.PointEvent{
		{Points: 50, CreatedAt: at(2025, 4, 1, 10, 0)},
	}, []*time.Time{at(2024, 1, 1, 0, 0)})

	require.Len(t, buckets, 7)
	assert.True(t, buckets.Empty())
}
