package domain

import "time"

// BirthYearBounds translates an inclusive age range into an inclusive birth-year
// range relative to now. Age is counted as the difference between calendar
// years, so a person born in 1995 is 30 throughout 2025. A nil bound on either
// side stays unbounded.
//
// Example:
//
//	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
//	lo, hi := BirthYearBounds(ptr(28), ptr(35), now) // lo=1990, hi=1997
func BirthYearBounds(minAge, maxAge *int, now time.Time) (earliest, latest *int) {
	year := now.UTC().Year()
	if maxAge != nil {
		y := year - *maxAge
		earliest = &y
	}
	if minAge != nil {
		y := year - *minAge
		latest = &y
	}
	return earliest, latest
}

// AgeInYear returns the calendar-year age of someone born in birthYear.
func AgeInYear(birthYear int, now time.Time) int {
	return now.UTC().Year() - birthYear
}
