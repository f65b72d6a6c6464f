package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/staffdesk/shift-scheduler/internal/domain"
)

// ValidateShift checks the field formats of an imported shift record. An
// end time at or before the start time is not an error here: overnight
// shifts are an unresolved case and importers only warn about them.
func ValidateShift(s domain.Shift) error {
	if s.ShiftID == "" {
		return errors.New("shift id must not be empty")
	}
	if _, err := time.Parse("2006-01-02", s.Date); err != nil {
		return fmt.Errorf("shift %s has an invalid date %q", s.ShiftID, s.Date)
	}
	if _, err := time.Parse("15:04", s.StartTime); err != nil {
		return fmt.Errorf("shift %s has an invalid start time %q", s.ShiftID, s.StartTime)
	}
	if _, err := time.Parse("15:04", s.EndTime); err != nil {
		return fmt.Errorf("shift %s has an invalid end time %q", s.ShiftID, s.EndTime)
	}
	return nil
}

// SuspectOvernight reports whether the shift's end time is at or before
// its start time, which yields a zero or negative duration.
func SuspectOvernight(s domain.Shift) bool {
	start, err1 := time.Parse("15:04", s.StartTime)
	end, err2 := time.Parse("15:04", s.EndTime)
	if err1 != nil || err2 != nil {
		return false
	}
	return !end.After(start)
}
