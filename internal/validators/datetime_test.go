package validators

import "testing"

func TestIsValidDate(t *testing.T) {
	valid := []string{"2026-03-04", "1999-12-31", "2026-13-40"} // shape only, not calendar
	for _, s := range valid {
		if !IsValidDate(s) {
			t.Errorf("IsValidDate(%q) = false", s)
		}
	}

	invalid := []string{"2026-3-4", "04-03-2026", "2026/03/04", "20260304", "", "2026-03-04T10:00"}
	for _, s := range invalid {
		if IsValidDate(s) {
			t.Errorf("IsValidDate(%q) = true", s)
		}
	}
}

func TestIsValidTime(t *testing.T) {
	valid := []string{"00:00", "09:30", "19:45", "23:59"}
	for _, s := range valid {
		if !IsValidTime(s) {
			t.Errorf("IsValidTime(%q) = false", s)
		}
	}

	invalid := []string{"24:00", "9:30", "09:60", "09-30", "0930", "", "09:30:00"}
	for _, s := range invalid {
		if IsValidTime(s) {
			t.Errorf("IsValidTime(%q) = true", s)
		}
	}
}
