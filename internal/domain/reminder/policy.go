package reminder

import (
	"fmt"
	"strings"
	"time"
)

// MedicationCooldown is the minimum gap between two reminders for the same
// medication, whichever of its slots triggered them.
const MedicationCooldown = time.Hour

// MarkPolicy decides whether dispatch markers are written after a send.
type MarkPolicy int

const (
	// MarkOnAttempt records the marker whatever the sink returned.
	// A sink outage therefore drops the reminder.
	MarkOnAttempt MarkPolicy = iota
	// MarkOnSuccess records the marker only when the sink accepted the
	// message, leaving failed reminders eligible for the next tick.
	MarkOnSuccess
)

func (p MarkPolicy) ShouldRecord(sent bool) bool {
	return sent || p == MarkOnAttempt
}

func (p MarkPolicy) String() string {
	if p == MarkOnSuccess {
		return "success"
	}
	return "attempt"
}

func ParseMarkPolicy(s string) (MarkPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "attempt", "mark-on-attempt":
		return MarkOnAttempt, nil
	case "success", "mark-on-success":
		return MarkOnSuccess, nil
	}
	return MarkOnAttempt, fmt.Errorf("unknown mark policy %q", s)
}
