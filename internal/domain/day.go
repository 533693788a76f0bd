package domain

import "time"

const dateLayout = "2006-01-02"

// Short weekday labels shown under the activity chart (id-ID locale).
var weekdayLabels = [...]string{"Min", "Sen", "Sel", "Rab", "Kam", "Jum", "Sab"}

// StartOfDay truncates t to midnight of its calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// WeekdayLabel returns the short id-ID weekday name for t.
func WeekdayLabel(t time.Time) string {
	return weekdayLabels[t.Weekday()]
}

func dayKey(t time.Time) string {
	return t.Format(dateLayout)
}
