package schedule

import (
	"fmt"
	"strconv"
	"strings"
)

// SlotIntervalMinutes is the fixed booking granularity.
const SlotIntervalMinutes = 30

// MinutesOfDay converts a wall-clock "HH:MM" value to minutes since
// midnight.
func MinutesOfDay(hm string) (int, error) {
	parts := strings.SplitN(hm, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", hm)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid time %q", hm)
	}

	min, err := strconv.Atoi(parts[1])
	if err != nil || min < 0 || min > 59 {
		return 0, fmt.Errorf("invalid time %q", hm)
	}

	return hour*60 + min, nil
}

func formatMinutes(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// Slots generates the bookable times for a working window: every
// SlotIntervalMinutes from start (inclusive) up to strictly before end.
// A window shorter than one interval yields no slots. Malformed input
// yields no slots.
func Slots(start, end string) []string {
	workStart, err := MinutesOfDay(start)
	if err != nil {
		return nil
	}
	workEnd, err := MinutesOfDay(end)
	if err != nil {
		return nil
	}

	var slots []string
	for cur := workStart; cur+SlotIntervalMinutes <= workEnd; cur += SlotIntervalMinutes {
		slots = append(slots, formatMinutes(cur))
	}
	return slots
}
