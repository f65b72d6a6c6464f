package domain

// Assignment binds one employee to one shift. The (EmployeeID, ShiftID)
// pair is unique across the assignment collection.
type Assignment struct {
	EmployeeID string `json:"employeeId"`
	ShiftID    string `json:"shiftId"`
}
