package utils

import (
	"time"
)

// DefaultReportTimezone is the calendar used for day boundaries (WIB, +07:00).
const DefaultReportTimezone = "Asia/Jakarta"

// ReportLocation loads the reporting timezone. When the tz database is not
// available the WIB fixed offset is used so day boundaries stay stable.
func ReportLocation(name string) *time.Location {
	if name == "" {
		name = DefaultReportTimezone
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	return time.FixedZone("WIB", 7*3600)
}

// Clock returns the current time. Services take one so tests can pin "now".
type Clock func() time.Time
