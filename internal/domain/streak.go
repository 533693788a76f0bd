package domain

import "time"

// EffectiveStreak re-derives the streak to display now. A streak is alive only
// if the last qualifying day is yesterday or today; the stored counter is never
// changed here.
func EffectiveStreak(now time.Time, loc *time.Location, lastStreak *time.Time, count int) int {
	if lastStreak == nil || count <= 0 {
		return 0
	}
	yesterday := StartOfDay(now, loc).AddDate(0, 0, -1)
	if !StartOfDay(*lastStreak, loc).Before(yesterday) {
		return count
	}
	return 0
}
