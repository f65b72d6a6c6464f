package scheduler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/staffdesk/shift-scheduler/internal/domain"
)

// ShiftDuration converts a pair of "HH:MM" clock strings into a duration
// in fractional hours. The result may be zero or negative when the end
// time does not come after the start time; overnight wraparound is
// deliberately not inferred.
func ShiftDuration(startTime, endTime string) (float64, error) {
	startH, startM, err := parseClock(startTime)
	if err != nil {
		return 0, fmt.Errorf("invalid start time %q: %w", startTime, err)
	}
	endH, endM, err := parseClock(endTime)
	if err != nil {
		return 0, fmt.Errorf("invalid end time %q: %w", endTime, err)
	}
	return (float64(endH) + float64(endM)/60) - (float64(startH) + float64(startM)/60), nil
}

func parseClock(s string) (int, int, error) {
	hh, mm, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("expected HH:MM")
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("hour out of range")
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("minute out of range")
	}
	return hour, minute, nil
}

// NextEmployeeID allocates the next identifier from the existing
// collection: max numeric suffix plus one, zero-padded to three digits.
// An empty collection yields "E001". Identifiers that do not parse are
// ignored rather than failing the allocation.
func NextEmployeeID(employees []domain.Employee) string {
	maxID := 0
	for _, e := range employees {
		suffix, ok := strings.CutPrefix(e.EmployeeID, "E")
		if !ok {
			continue
		}
		n, err := strconv.Atoi(suffix)
		if err != nil {
			continue
		}
		if n > maxID {
			maxID = n
		}
	}
	return fmt.Sprintf("E%03d", maxID+1)
}

func findShift(shifts []domain.Shift, shiftID string) (domain.Shift, bool) {
	for _, s := range shifts {
		if s.ShiftID == shiftID {
			return s, true
		}
	}
	return domain.Shift{}, false
}
