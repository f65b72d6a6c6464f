package scheduler_test

import (
	"testing"

	"github.com/staffdesk/shift-scheduler/internal/domain"
	"github.com/staffdesk/shift-scheduler/internal/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShiftDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		startTime string
		endTime   string
		want      float64
	}{
		{"regular shift", "09:00", "17:30", 8.5},
		{"zero length", "10:00", "10:00", 0},
		{"half hour", "08:15", "08:45", 0.5},
		{"overnight stays negative", "22:00", "02:00", -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := scheduler.ShiftDuration(tt.startTime, tt.endTime)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestShiftDuration_Invalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		startTime string
		endTime   string
	}{
		{"missing colon", "0900", "17:00"},
		{"hour out of range", "24:00", "17:00"},
		{"minute out of range", "09:61", "17:00"},
		{"bad end time", "09:00", "banana"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := scheduler.ShiftDuration(tt.startTime, tt.endTime)
			assert.Error(t, err)
		})
	}
}

func TestNextEmployeeID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		employees []domain.Employee
		want      string
	}{
		{"empty collection", nil, "E001"},
		{
			"max based, not count based",
			[]domain.Employee{
				{EmployeeID: "E001"},
				{EmployeeID: "E002"},
				{EmployeeID: "E005"},
			},
			"E006",
		},
		{
			"malformed ids are ignored",
			[]domain.Employee{
				{EmployeeID: "E003"},
				{EmployeeID: "X999"},
				{EmployeeID: "Eabc"},
			},
			"E004",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, scheduler.NextEmployeeID(tt.employees))
		})
	}
}
