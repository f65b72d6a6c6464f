package domain

type Employee struct {
	EmployeeID string `json:"employeeId"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
}
