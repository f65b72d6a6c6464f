package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type ShiftAssignedMailData struct {
	EmployeeName string `json:"employeeName"`
	EmployeeID   string `json:"employeeId"`
	ShiftID      string `json:"shiftId"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
}
