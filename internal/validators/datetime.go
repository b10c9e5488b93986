package validators

import "regexp"

var (
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)
)

// IsValidDate accepts YYYY-MM-DD.
func IsValidDate(s string) bool {
	return dateRe.MatchString(s)
}

// IsValidTime accepts HH:MM, 24-hour.
func IsValidTime(s string) bool {
	return timeRe.MatchString(s)
}
