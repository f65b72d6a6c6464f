package domain

import "fmt"

type AssignmentStatus string

const (
	AssignmentAccepted         AssignmentStatus = "accepted"
	AssignmentEmployeeNotFound AssignmentStatus = "employee_not_found"
	AssignmentShiftNotFound    AssignmentStatus = "shift_not_found"
	AssignmentDuplicate        AssignmentStatus = "already_assigned"
	AssignmentOverDailyCap     AssignmentStatus = "daily_cap_exceeded"
)

// AssignmentResult is the outcome of an assignment attempt. Rejections are
// first-class results, not errors; callers branch on Status rather than
// matching message text.
type AssignmentResult struct {
	Status     AssignmentStatus `json:"status"`
	EmployeeID string           `json:"employeeId"`
	ShiftID    string           `json:"shiftId"`
	// TotalHours and MaxHours are populated only for daily-cap rejections.
	TotalHours float64 `json:"totalHours,omitempty"`
	MaxHours   float64 `json:"maxHours,omitempty"`
}

func (r AssignmentResult) Accepted() bool {
	return r.Status == AssignmentAccepted
}

// Message renders the status as a human-readable line for terminal output.
func (r AssignmentResult) Message() string {
	switch r.Status {
	case AssignmentAccepted:
		return "Shift assigned successfully"
	case AssignmentEmployeeNotFound:
		return "Employee does not exist"
	case AssignmentShiftNotFound:
		return "Shift does not exist"
	case AssignmentDuplicate:
		return "Employee already assigned"
	case AssignmentOverDailyCap:
		return fmt.Sprintf("Cannot assign: exceeds max daily hours (%.2f > %.2f)", r.TotalHours, r.MaxHours)
	default:
		return string(r.Status)
	}
}
