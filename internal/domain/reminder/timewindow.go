package reminder

import (
	"strconv"
	"strings"
)

// DefaultWindowMinutes is the symmetric tolerance used by the medication job.
const DefaultWindowMinutes = 15

// Matches reports whether current lies within windowMinutes of scheduled.
// Both values are "HH:MM" times of day compared as minutes since midnight,
// so a window never wraps around midnight: "23:55" does not match "00:05".
// A value that cannot be parsed never matches.
func Matches(scheduled, current string, windowMinutes int) bool {
	s, ok := minutesOfDay(scheduled)
	if !ok {
		return false
	}
	c, ok := minutesOfDay(current)
	if !ok {
		return false
	}

	diff := s - c
	if diff < 0 {
		diff = -diff
	}
	return diff <= windowMinutes
}

// minutesOfDay splits on ":" and converts both halves as plain integers.
// Ranges are not checked, so "25:99" is 1599 and "00:-5" is -5; slots are
// validated as HH:MM before they are stored, so only those reach here.
func minutesOfDay(hm string) (int, bool) {
	h, m, found := strings.Cut(strings.TrimSpace(hm), ":")
	if !found {
		return 0, false
	}
	hour, err := strconv.Atoi(h)
	if err != nil {
		return 0, false
	}
	minute, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return hour*60 + minute, true
}

// FirstMatch returns the first slot of schedule that matches current.
func FirstMatch(schedule []string, current string, windowMinutes int) (string, bool) {
	for _, slot := range schedule {
		if Matches(slot, current, windowMinutes) {
			return slot, true
		}
	}
	return "", false
}
