package helper

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	firstSlotMinute = 9 * 60
	lastSlotMinute  = 20*60 + 30
	slotStep        = 30
	// MinGapMinutes is the smallest distance allowed between two bookings of
	// the same coach on the same day.
	MinGapMinutes = 60
)

// TimeGrid lists every bookable half hour from 9:00 to 20:30.
func TimeGrid() []string {
	grid := make([]string, 0, (lastSlotMinute-firstSlotMinute)/slotStep+1)
	for m := firstSlotMinute; m <= lastSlotMinute; m += slotStep {
		grid = append(grid, FormatClock(m))
	}
	return grid
}

// ParseClock converts "H:MM" (or "HH:MM") into minutes after midnight.
func ParseClock(s string) (int, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return ClockFromParts(parts[0], parts[1])
}

func ClockFromParts(hour, minute string) (int, error) {
	h, err := strconv.Atoi(strings.TrimSpace(hour))
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour %q", hour)
	}
	m, err := strconv.Atoi(strings.TrimSpace(minute))
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid minute %q", minute)
	}
	return h*60 + m, nil
}

// FormatClock renders minutes after midnight the way the grid spells them: "9:00", "14:30".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%d:%02d", minutes/60, minutes%60)
}

func IsGridMinute(minutes int) bool {
	return minutes >= firstSlotMinute && minutes <= lastSlotMinute && (minutes-firstSlotMinute)%slotStep == 0
}

// HasConflict reports whether candidate lies strictly less than an hour away
// from any existing booking. Exactly sixty minutes apart is allowed.
func HasConflict(candidate int, existing []int) bool {
	for _, e := range existing {
		diff := candidate - e
		if diff < 0 {
			diff = -diff
		}
		if diff < MinGapMinutes {
			return true
		}
	}
	return false
}

// FilterAvailable keeps the grid entries that do not conflict with booked, in grid order.
func FilterAvailable(grid []string, booked []int) []string {
	available := make([]string, 0, len(grid))
	for _, slot := range grid {
		m, err := ParseClock(slot)
		if err != nil {
			continue
		}
		if !HasConflict(m, booked) {
			available = append(available, slot)
		}
	}
	return available
}
