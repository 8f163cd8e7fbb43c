package domain

import "time"

// AvailabilityOverride explicit admin flag for a calendar date.
// Absence of a row means the date is available.
type AvailabilityOverride struct {
	Date        time.Time
	Unavailable bool
	Reason      *string
	UpdatedAt   time.Time
}

// DefaultAvailability returns the implicit state of a date without an override row.
func DefaultAvailability(date time.Time) *AvailabilityOverride {
	return &AvailabilityOverride{Date: DateOnly(date)}
}

// DateOnly drops the clock part and pins the date to UTC.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MonthRange returns the first and the last calendar day of the month.
// time.Date normalises day 0 of the next month, which accounts for leap years.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
	return first, last
}
