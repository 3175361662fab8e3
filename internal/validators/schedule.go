package validators

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/baymax-health/internal/timezone"
)

var ErrInvalidSlot = errors.New("schedule times must be HH:MM")

// NormalizeSlots checks every "HH:MM" slot and returns them zero padded,
// in the given order.
func NormalizeSlots(slots []string) ([]string, error) {
	out := make([]string, 0, len(slots))
	for _, slot := range slots {
		hour, minute, err := timezone.ParseClock(strings.TrimSpace(slot))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidSlot, slot)
		}
		out = append(out, fmt.Sprintf("%02d:%02d", hour, minute))
	}
	return out, nil
}
