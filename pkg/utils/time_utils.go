package utils

import "time"

// TripDateLayout is the calendar-date format used by the trip form.
const TripDateLayout = "2006-01-02"

func ParseTripDate(s string) (time.Time, error) {
	return time.Parse(TripDateLayout, s)
}

// TripLengthDays returns the inclusive number of days between start and end,
// so a same-day trip counts as 1.
func TripLengthDays(start, end time.Time) int {
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours()/24) + 1
}
