package utils_test

import (
	"testing"

	"github.com/staffdesk/shift-scheduler/internal/domain"
	"github.com/staffdesk/shift-scheduler/internal/utils"
	"github.com/stretchr/testify/assert"
)

func TestValidateShift(t *testing.T) {
	t.Parallel()

	valid := domain.Shift{ShiftID: "S1", Date: "2024-01-01", StartTime: "09:00", EndTime: "17:00"}

	tests := []struct {
		name    string
		mutate  func(s *domain.Shift)
		wantErr bool
	}{
		{"valid shift", func(s *domain.Shift) {}, false},
		{"empty id", func(s *domain.Shift) { s.ShiftID = "" }, true},
		{"bad date", func(s *domain.Shift) { s.Date = "01/01/2024" }, true},
		{"bad start time", func(s *domain.Shift) { s.StartTime = "9am" }, true},
		{"bad end time", func(s *domain.Shift) { s.EndTime = "25:00" }, true},
		{"overnight passes validation", func(s *domain.Shift) { s.StartTime = "22:00"; s.EndTime = "02:00" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := valid
			tt.mutate(&s)
			err := utils.ValidateShift(s)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSuspectOvernight(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		startTime string
		endTime   string
		want      bool
	}{
		{"day shift", "09:00", "17:00", false},
		{"wraps midnight", "22:00", "02:00", true},
		{"zero length", "10:00", "10:00", true},
		{"unparseable times", "late", "later", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := domain.Shift{ShiftID: "S1", Date: "2024-01-01", StartTime: tt.startTime, EndTime: tt.endTime}
			assert.Equal(t, tt.want, utils.SuspectOvernight(s))
		})
	}
}
