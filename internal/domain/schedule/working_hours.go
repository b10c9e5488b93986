package schedule

import "time"

// WithinWorkingHours reports whether a requested wall-clock time falls
// inside a doctor's working window. The start of the window is
// bookable, the end is not. The requested time is only range-checked;
// it is not snapped to the slot grid.
func WithinWorkingHours(workStart, workEnd, requested string) (bool, error) {
	startMin, err := MinutesOfDay(workStart)
	if err != nil {
		return false, err
	}
	endMin, err := MinutesOfDay(workEnd)
	if err != nil {
		return false, err
	}
	reqMin, err := MinutesOfDay(requested)
	if err != nil {
		return false, err
	}

	return reqMin >= startMin && reqMin < endMin, nil
}

// IsWeekend reports whether the date lands on Saturday or Sunday.
// Appointments are weekday-only.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// IsPastDate compares calendar days only: a date is in the past when it
// is strictly before today in the server's local day. Time of day is
// ignored.
func IsPastDate(date, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, now.Location())
	return day.Before(today)
}
