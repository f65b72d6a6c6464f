package domain

type Shift struct {
	ShiftID   string `json:"shiftId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}
