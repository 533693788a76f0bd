package domain

import "time"

// WindowDays is the number of day buckets produced for the activity chart.
const WindowDays = 7

// PointEvent is the slice of an earn event the aggregator needs.
type PointEvent struct {
	Points    int64
	CreatedAt *time.Time
}

// DayBucket aggregates one calendar day of activity.
type DayBucket struct {
	Date         time.Time `json:"date"`
	Label        string    `json:"label"`
	EarnedPoints int64     `json:"earned_points"`
	NewUsers     int64     `json:"new_users"`
}

// DayBuckets is always ordered oldest to newest.
type DayBuckets []DayBucket

// Empty reports whether no bucket has any activity.
func (b DayBuckets) Empty() bool {
	for _, d := range b {
		if d.EarnedPoints != 0 || d.NewUsers != 0 {
			return false
		}
	}
	return true
}

// BucketLastSevenDays spreads earn events and account sign-ups over the seven
// calendar days ending with today (inclusive), truncated to midnight in loc.
// Entries outside the window or without a timestamp are ignored.
func BucketLastSevenDays(today time.Time, loc *time.Location, events []PointEvent, signups []*time.Time) DayBuckets {
	first := StartOfDay(today, loc).AddDate(0, 0, -(WindowDays - 1))

	buckets := make(DayBuckets, WindowDays)
	index := make(map[string]int, WindowDays)
	for i := range buckets {
		day := first.AddDate(0, 0, i)
		buckets[i] = DayBucket{Date: day, Label: WeekdayLabel(day)}
		index[dayKey(day)] = i
	}

	for _, e := range events {
		if e.CreatedAt == nil {
			continue
		}
		if i, ok := index[dayKey(StartOfDay(*e.CreatedAt, loc))]; ok {
			buckets[i].EarnedPoints += e.Points
		}
	}

	for _, created := range signups {
		if created == nil {
			continue
		}
		if i, ok := index[dayKey(StartOfDay(*created, loc))]; ok {
			buckets[i].NewUsers++
		}
	}

	return buckets
}

// WindowStart is the first instant covered by BucketLastSevenDays for today.
func WindowStart(today time.Time, loc *time.Location) time.Time {
	return StartOfDay(today, loc).AddDate(0, 0, -(WindowDays - 1))
}
