package scheduler_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/staffdesk/shift-scheduler/internal/domain"
	"github.com/staffdesk/shift-scheduler/internal/metrics"
	"github.com/staffdesk/shift-scheduler/internal/scheduler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStore is an in-memory Store double for engine tests.
type memStore struct {
	employees   []domain.Employee
	shifts      []domain.Shift
	assignments []domain.Assignment
	maxHours    float64
}

func (s *memStore) LoadEmployees(_ context.Context) ([]domain.Employee, error) {
	return s.employees, nil
}

func (s *memStore) SaveEmployees(_ context.Context, employees []domain.Employee) error {
	s.employees = employees
	return nil
}

func (s *memStore) LoadShifts(_ context.Context) ([]domain.Shift, error) {
	return s.shifts, nil
}

func (s *memStore) LoadAssignments(_ context.Context) ([]domain.Assignment, error) {
	return s.assignments, nil
}

func (s *memStore) SaveAssignment(_ context.Context, assignment domain.Assignment) error {
	s.assignments = append(s.assignments, assignment)
	return nil
}

func (s *memStore) MaxDailyHours(_ context.Context) (float64, error) {
	return s.maxHours, nil
}

func newTestEngine(st *memStore) *scheduler.Engine {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return scheduler.NewEngine(st, logger, metrics.NewMetrics(prometheus.NewRegistry()))
}

func TestAddEmployee_AllocatesSequentialIDs(t *testing.T) {
	t.Parallel()

	st := &memStore{maxHours: 8}
	engine := newTestEngine(st)

	first, err := engine.AddEmployee(context.Background(), "Alice", "555-0100")
	require.NoError(t, err)
	assert.Equal(t, "E001", first.EmployeeID)

	second, err := engine.AddEmployee(context.Background(), "Ben", "555-0101")
	require.NoError(t, err)
	assert.Equal(t, "E002", second.EmployeeID)

	require.Len(t, st.employees, 2)
	assert.Equal(t, "Alice", st.employees[0].Name)
}

func TestAssignShift_GuardOrdering(t *testing.T) {
	t.Parallel()

	// neither employee nor shift exists: the employee guard must win
	st := &memStore{maxHours: 8}
	engine := newTestEngine(st)

	result, err := engine.AssignShift(context.Background(), "E999", "S999")
	require.NoError(t, err)
	assert.Equal(t, domain.AssignmentEmployeeNotFound, result.Status)
	assert.False(t, result.Accepted())
}

func TestAssignShift_ShiftNotFound(t *testing.T) {
	t.Parallel()

	st := &memStore{
		employees: []domain.Employee{{EmployeeID: "E001", Name: "Alice"}},
		maxHours:  8,
	}
	engine := newTestEngine(st)

	result, err := engine.AssignShift(context.Background(), "E001", "S999")
	require.NoError(t, err)
	assert.Equal(t, domain.AssignmentShiftNotFound, result.Status)
}

func TestAssignShift_DuplicateRejected(t *testing.T) {
	t.Parallel()

	st := &memStore{
		employees: []domain.Employee{{EmployeeID: "E001", Name: "Alice"}},
		shifts: []domain.Shift{
			{ShiftID: "S1", Date: "2024-01-01", StartTime: "09:00", EndTime: "12:00"},
		},
		maxHours: 8,
	}
	engine := newTestEngine(st)

	first, err := engine.AssignShift(context.Background(), "E001", "S1")
	require.NoError(t, err)
	require.Equal(t, domain.AssignmentAccepted, first.Status)
	require.Len(t, st.assignments, 1)

	second, err := engine.AssignShift(context.Background(), "E001", "S1")
	require.NoError(t, err)
	assert.Equal(t, domain.AssignmentDuplicate, second.Status)
	assert.Len(t, st.assignments, 1, "assignment collection must not grow on rejection")
}

func TestAssignShift_DailyCap(t *testing.T) {
	t.Parallel()

	baseStore := func() *memStore {
		return &memStore{
			employees: []domain.Employee{{EmployeeID: "E001", Name: "Alice"}},
			shifts: []domain.Shift{
				{ShiftID: "S1", Date: "2024-01-01", StartTime: "08:00", EndTime: "14:00"}, // 6h
				{ShiftID: "S2", Date: "2024-01-01", StartTime: "13:00", EndTime: "16:00"}, // 3h
				{ShiftID: "S3", Date: "2024-01-01", StartTime: "14:00", EndTime: "16:00"}, // 2h
				{ShiftID: "S4", Date: "2024-01-02", StartTime: "08:00", EndTime: "16:00"}, // other day
			},
			assignments: []domain.Assignment{{EmployeeID: "E001", ShiftID: "S1"}},
			maxHours:    8,
		}
	}

	t.Run("over the cap is rejected", func(t *testing.T) {
		t.Parallel()

		engine := newTestEngine(baseStore())
		result, err := engine.AssignShift(context.Background(), "E001", "S2")
		require.NoError(t, err)
		assert.Equal(t, domain.AssignmentOverDailyCap, result.Status)
		assert.InDelta(t, 9.0, result.TotalHours, 1e-9)
		assert.InDelta(t, 8.0, result.MaxHours, 1e-9)
	})

	t.Run("exactly the cap is allowed", func(t *testing.T) {
		t.Parallel()

		engine := newTestEngine(baseStore())
		result, err := engine.AssignShift(context.Background(), "E001", "S3")
		require.NoError(t, err)
		assert.Equal(t, domain.AssignmentAccepted, result.Status)
	})

	t.Run("other dates do not count", func(t *testing.T) {
		t.Parallel()

		engine := newTestEngine(baseStore())
		result, err := engine.AssignShift(context.Background(), "E001", "S4")
		require.NoError(t, err)
		assert.Equal(t, domain.AssignmentAccepted, result.Status)
	})
}

func TestAssignShift_DanglingAssignmentSkipped(t *testing.T) {
	t.Parallel()

	st := &memStore{
		employees: []domain.Employee{{EmployeeID: "E001", Name: "Alice"}},
		shifts: []domain.Shift{
			{ShiftID: "S1", Date: "2024-01-01", StartTime: "09:00", EndTime: "12:00"},
		},
		// references a shift that no longer exists; must not fail the guard
		assignments: []domain.Assignment{{EmployeeID: "E001", ShiftID: "GONE"}},
		maxHours:    8,
	}
	engine := newTestEngine(st)

	result, err := engine.AssignShift(context.Background(), "E001", "S1")
	require.NoError(t, err)
	assert.Equal(t, domain.AssignmentAccepted, result.Status)
}

func TestEmployeeSchedule(t *testing.T) {
	t.Parallel()

	st := &memStore{
		employees: []domain.Employee{{EmployeeID: "E001", Name: "Alice"}},
		shifts: []domain.Shift{
			{ShiftID: "S2", Date: "2024-01-02", StartTime: "09:00", EndTime: "12:00"},
			{ShiftID: "S1", Date: "2024-01-01", StartTime: "09:00", EndTime: "12:00"},
		},
		assignments: []domain.Assignment{
			{EmployeeID: "E001", ShiftID: "S1"},
			{EmployeeID: "E002", ShiftID: "S2"},
			{EmployeeID: "E001", ShiftID: "S2"},
		},
		maxHours: 8,
	}
	engine := newTestEngine(st)

	schedule, err := engine.EmployeeSchedule(context.Background(), "E001")
	require.NoError(t, err)
	require.Len(t, schedule, 2)
	// assignment order, not date order
	assert.Equal(t, "S1", schedule[0].ShiftID)
	assert.Equal(t, "S2", schedule[1].ShiftID)
}

func TestEmployeeSchedule_UnknownEmployeeIsEmpty(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(&memStore{maxHours: 8})

	schedule, err := engine.EmployeeSchedule(context.Background(), "E404")
	require.NoError(t, err)
	assert.Empty(t, schedule)
}
