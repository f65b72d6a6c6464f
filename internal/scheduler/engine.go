// Package scheduler implements the assignment validation engine: identifier
// allocation, duplicate and existence checks, daily-hours-cap enforcement
// and per-employee schedule projection. Every operation reads a fresh
// snapshot from the store; nothing is cached across calls.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/staffdesk/shift-scheduler/internal/domain"
	"github.com/staffdesk/shift-scheduler/internal/metrics"
	"github.com/staffdesk/shift-scheduler/internal/store"
)

type Engine struct {
	store   store.Store
	logger  *slog.Logger
	metrics *metrics.Metrics
}

func NewEngine(st store.Store, logger *slog.Logger, m *metrics.Metrics) *Engine {
	return &Engine{
		store:   st,
		logger:  logger,
		metrics: m,
	}
}

func (e *Engine) observeStoreOp(op string, start time.Time) {
	e.metrics.StoreOpDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
}

// Employees returns the current employee collection.
func (e *Engine) Employees(ctx context.Context) ([]domain.Employee, error) {
	defer e.observeStoreOp("load_employees", time.Now())
	return e.store.LoadEmployees(ctx)
}

// AddEmployee allocates the next identifier, appends the record and
// persists the full collection. Input validation of name and phone is the
// caller's concern.
func (e *Engine) AddEmployee(ctx context.Context, name, phone string) (domain.Employee, error) {
	start := time.Now()
	employees, err := e.store.LoadEmployees(ctx)
	if err != nil {
		return domain.Employee{}, err
	}
	e.observeStoreOp("load_employees", start)

	employee := domain.Employee{
		EmployeeID: NextEmployeeID(employees),
		Name:       name,
		Phone:      phone,
	}
	employees = append(employees, employee)

	start = time.Now()
	if err := e.store.SaveEmployees(ctx, employees); err != nil {
		return domain.Employee{}, err
	}
	e.observeStoreOp("save_employees", start)

	e.logger.Info("employee added", "employeeId", employee.EmployeeID, "name", employee.Name)
	return employee, nil
}

// AssignShift runs the ordered guard sequence and commits the assignment
// only if every guard passes. The first failing guard determines the
// result; rejections are results, not errors. An error return means the
// store failed, not that validation rejected the assignment.
func (e *Engine) AssignShift(ctx context.Context, employeeID, shiftID string) (domain.AssignmentResult, error) {
	result := domain.AssignmentResult{
		EmployeeID: employeeID,
		ShiftID:    shiftID,
	}

	ok, err := e.employeeExists(ctx, employeeID)
	if err != nil {
		return result, err
	}
	if !ok {
		return e.reject(result, domain.AssignmentEmployeeNotFound), nil
	}

	shift, ok, err := e.resolveShift(ctx, shiftID)
	if err != nil {
		return result, err
	}
	if !ok {
		return e.reject(result, domain.AssignmentShiftNotFound), nil
	}

	assigned, err := e.alreadyAssigned(ctx, employeeID, shiftID)
	if err != nil {
		return result, err
	}
	if assigned {
		return e.reject(result, domain.AssignmentDuplicate), nil
	}

	exceeds, total, maxHours, err := e.exceedsDailyHours(ctx, employeeID, shift)
	if err != nil {
		return result, err
	}
	if exceeds {
		result.TotalHours = total
		result.MaxHours = maxHours
		return e.reject(result, domain.AssignmentOverDailyCap), nil
	}

	start := time.Now()
	if err := e.store.SaveAssignment(ctx, domain.Assignment{EmployeeID: employeeID, ShiftID: shiftID}); err != nil {
		return result, err
	}
	e.observeStoreOp("save_assignment", start)

	result.Status = domain.AssignmentAccepted
	e.metrics.AssignmentOutcomes.WithLabelValues(string(result.Status)).Inc()
	e.logger.Info("shift assigned", "employeeId", employeeID, "shiftId", shiftID)
	return result, nil
}

func (e *Engine) reject(result domain.AssignmentResult, status domain.AssignmentStatus) domain.AssignmentResult {
	result.Status = status
	e.metrics.AssignmentOutcomes.WithLabelValues(string(status)).Inc()
	e.logger.Info("assignment rejected",
		"employeeId", result.EmployeeID, "shiftId", result.ShiftID, "status", string(status))
	return result
}

// EmployeeSchedule projects the shifts assigned to an employee, in stored
// assignment order. An unknown employee yields an empty schedule; the
// engine does not distinguish that case here.
func (e *Engine) EmployeeSchedule(ctx context.Context, employeeID string) ([]domain.Shift, error) {
	start := time.Now()
	assignments, err := e.store.LoadAssignments(ctx)
	if err != nil {
		return nil, err
	}
	e.observeStoreOp("load_assignments", start)

	start = time.Now()
	shifts, err := e.store.LoadShifts(ctx)
	if err != nil {
		return nil, err
	}
	e.observeStoreOp("load_shifts", start)

	schedule := make([]domain.Shift, 0)
	for _, a := range assignments {
		if a.EmployeeID != employeeID {
			continue
		}
		shift, ok := findShift(shifts, a.ShiftID)
		if !ok {
			e.reportDangling(a)
			continue
		}
		schedule = append(schedule, shift)
	}

	return schedule, nil
}

func (e *Engine) employeeExists(ctx context.Context, employeeID string) (bool, error) {
	defer e.observeStoreOp("load_employees", time.Now())
	employees, err := e.store.LoadEmployees(ctx)
	if err != nil {
		return false, err
	}
	for _, emp := range employees {
		if emp.EmployeeID == employeeID {
			return true, nil
		}
	}
	return false, nil
}

func (e *Engine) resolveShift(ctx context.Context, shiftID string) (domain.Shift, bool, error) {
	defer e.observeStoreOp("load_shifts", time.Now())
	shifts, err := e.store.LoadShifts(ctx)
	if err != nil {
		return domain.Shift{}, false, err
	}
	shift, ok := findShift(shifts, shiftID)
	return shift, ok, nil
}

func (e *Engine) alreadyAssigned(ctx context.Context, employeeID, shiftID string) (bool, error) {
	defer e.observeStoreOp("load_assignments", time.Now())
	assignments, err := e.store.LoadAssignments(ctx)
	if err != nil {
		return false, err
	}
	for _, a := range assignments {
		if a.EmployeeID == employeeID && a.ShiftID == shiftID {
			return true, nil
		}
	}
	return false, nil
}

// exceedsDailyHours checks whether the candidate shift pushes the
// employee's total hours on that date over the cap. Equality with the cap
// is allowed. A dangling assignment contributes nothing to the total but
// is logged and counted, since it signals upstream corruption.
func (e *Engine) exceedsDailyHours(ctx context.Context, employeeID string, candidate domain.Shift) (bool, float64, float64, error) {
	total, err := ShiftDuration(candidate.StartTime, candidate.EndTime)
	if err != nil {
		return false, 0, 0, fmt.Errorf("shift %s: %w", candidate.ShiftID, err)
	}

	start := time.Now()
	assignments, err := e.store.LoadAssignments(ctx)
	if err != nil {
		return false, 0, 0, err
	}
	e.observeStoreOp("load_assignments", start)

	start = time.Now()
	shifts, err := e.store.LoadShifts(ctx)
	if err != nil {
		return false, 0, 0, err
	}
	e.observeStoreOp("load_shifts", start)

	start = time.Now()
	maxHours, err := e.store.MaxDailyHours(ctx)
	if err != nil {
		return false, 0, 0, err
	}
	e.observeStoreOp("load_config", start)

	for _, a := range assignments {
		if a.EmployeeID != employeeID {
			continue
		}
		shift, ok := findShift(shifts, a.ShiftID)
		if !ok {
			e.reportDangling(a)
			continue
		}
		if shift.Date != candidate.Date {
			continue
		}
		hours, err := ShiftDuration(shift.StartTime, shift.EndTime)
		if err != nil {
			e.logger.Warn("stored shift has malformed times, skipping",
				"shiftId", shift.ShiftID, "error", err)
			continue
		}
		total += hours
	}

	return total > maxHours, total, maxHours, nil
}

func (e *Engine) reportDangling(a domain.Assignment) {
	e.metrics.DanglingAssignments.Inc()
	e.logger.Warn("assignment references missing shift",
		"employeeId", a.EmployeeID, "shiftId", a.ShiftID)
}
