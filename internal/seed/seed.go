// Package seed fills a store with a small demo roster for local
// development and manual testing of the assignment rules.
package seed

import (
	"context"
	"log/slog"

	"github.com/staffdesk/shift-scheduler/internal/domain"
	"github.com/staffdesk/shift-scheduler/internal/scheduler"
	"github.com/staffdesk/shift-scheduler/internal/store"
)

var demoShifts = []domain.Shift{
	{ShiftID: "S001", Date: "2026-09-01", StartTime: "08:00", EndTime: "14:00"},
	{ShiftID: "S002", Date: "2026-09-01", StartTime: "14:00", EndTime: "20:00"},
	{ShiftID: "S003", Date: "2026-09-02", StartTime: "09:00", EndTime: "17:30"},
	{ShiftID: "S004", Date: "2026-09-02", StartTime: "18:00", EndTime: "22:00"},
	{ShiftID: "S005", Date: "2026-09-03", StartTime: "07:00", EndTime: "13:00"},
}

var demoEmployees = []struct {
	name  string
	phone string
}{
	{"Alice Chen", "555-0100"},
	{"Ben Dawson", "555-0101"},
	{"Carla Rossi", "555-0102"},
}

// SeedDemoData writes the demo shifts and cap directly to the store, then
// creates employees and a few assignments through the engine so the usual
// validation rules apply.
func SeedDemoData(ctx context.Context, st store.Admin, engine *scheduler.Engine, maxDailyHours float64) error {
	if err := st.SaveShifts(ctx, demoShifts); err != nil {
		return err
	}
	if err := st.SetMaxDailyHours(ctx, maxDailyHours); err != nil {
		return err
	}

	for _, d := range demoEmployees {
		employee, err := engine.AddEmployee(ctx, d.name, d.phone)
		if err != nil {
			return err
		}
		slog.Info("seeded employee", "employeeId", employee.EmployeeID, "name", employee.Name)
	}

	assignments := []domain.Assignment{
		{EmployeeID: "E001", ShiftID: "S001"},
		{EmployeeID: "E002", ShiftID: "S002"},
		{EmployeeID: "E001", ShiftID: "S003"},
	}
	for _, a := range assignments {
		result, err := engine.AssignShift(ctx, a.EmployeeID, a.ShiftID)
		if err != nil {
			return err
		}
		slog.Info("seeded assignment",
			"employeeId", a.EmployeeID, "shiftId", a.ShiftID, "status", string(result.Status))
	}

	return nil
}
