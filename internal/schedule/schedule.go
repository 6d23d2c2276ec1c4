// Package schedule holds the availability policy: which calendar dates
// are open for booking at all.
package schedule

import "time"

const (
	DefaultHorizonDays = 14
	DefaultLeadDays    = 2
)

// IsBookableWeekday reports whether bookings are accepted on the date's
// weekday. The working week runs Sunday through Thursday.
func IsBookableWeekday(t time.Time) bool {
	switch t.Weekday() {
	case time.Friday, time.Saturday:
		return false
	default:
		return true
	}
}

// OfferableDates returns every date within horizonDays of today that is at
// least leadDays ahead and falls on a bookable weekday. The result is
// ascending and duplicate-free and is recomputed on every call.
func OfferableDates(today time.Time, horizonDays, leadDays int) []time.Time {
	start := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	minAllowed := start.AddDate(0, 0, leadDays)

	var dates []time.Time
	for i := 0; i < horizonDays; i++ {
		d := start.AddDate(0, 0, i)
		if d.Before(minAllowed) || !IsBookableWeekday(d) {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}
