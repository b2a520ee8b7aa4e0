package types

import (
	"time"
)

// AgeAt computes a person's age in whole years at the given reference time.
//
// The rule is deliberately a day-of-year comparison: the birthday is counted
// as reached once now's day-of-year is at or past the birth date's
// day-of-year. This differs from a month/day comparison around leap years
// (Feb 29 shifts the day-of-year of every later date in a leap year) and is
// kept exactly as documented rather than corrected.
func AgeAt(birthDate, now time.Time) int {
	years := now.Year() - birthDate.Year()
	if now.YearDay() < birthDate.YearDay() {
		years--
	}
	return years
}

// DateOnly truncates a time to midnight UTC. Birth dates are stored this way
// so age never depends on the time-of-day component.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
