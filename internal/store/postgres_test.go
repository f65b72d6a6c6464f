package store_test

import (
	"context"
	"regexp"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/staffdesk/shift-scheduler/internal/domain"
	"github.com/staffdesk/shift-scheduler/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	loadEmployeesQuery   = `SELECT employee_id, name, phone FROM employees ORDER BY employee_id`
	saveAssignmentQuery  = `INSERT INTO assignments (employee_id, shift_id) VALUES ($1, $2)`
	maxDailyHoursQuery   = `SELECT max_daily_hours FROM scheduling_config WHERE id = 1`
	deleteEmployeesQuery = `DELETE FROM employees`
	insertEmployeeQuery  = `INSERT INTO employees (employee_id, name, phone) VALUES ($1, $2, $3)`
)

func TestPostgresStore_LoadEmployees(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	rows := pgxmock.NewRows([]string{"employee_id", "name", "phone"}).
		AddRow("E001", "Alice Chen", "555-0100").
		AddRow("E002", "Ben Dawson", "555-0101")

	mock.ExpectQuery(regexp.QuoteMeta(loadEmployeesQuery)).WillReturnRows(rows)

	st := store.NewPostgresStore(mock)
	employees, err := st.LoadEmployees(context.Background())
	require.NoError(t, err)

	require.Len(t, employees, 2)
	assert.Equal(t, "E001", employees[0].EmployeeID)
	assert.Equal(t, "Ben Dawson", employees[1].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_LoadEmployees_QueryError(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(loadEmployeesQuery)).WillReturnError(assert.AnError)

	st := store.NewPostgresStore(mock)
	_, err = st.LoadEmployees(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load employees")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_SaveEmployees_OverwritesInTransaction(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(deleteEmployeesQuery)).
		WillReturnResult(pgxmock.NewResult("DELETE", 2))
	mock.ExpectExec(regexp.QuoteMeta(insertEmployeeQuery)).
		WithArgs("E001", "Alice Chen", "555-0100").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	st := store.NewPostgresStore(mock)
	err = st.SaveEmployees(context.Background(), []domain.Employee{
		{EmployeeID: "E001", Name: "Alice Chen", Phone: "555-0100"},
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_SaveAssignment(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(regexp.QuoteMeta(saveAssignmentQuery)).
		WithArgs("E001", "S1").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	st := store.NewPostgresStore(mock)
	err = st.SaveAssignment(context.Background(), domain.Assignment{EmployeeID: "E001", ShiftID: "S1"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_MaxDailyHours(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectQuery(regexp.QuoteMeta(maxDailyHoursQuery)).
		WillReturnRows(pgxmock.NewRows([]string{"max_daily_hours"}).AddRow(8.0))

	st := store.NewPostgresStore(mock)
	hours, err := st.MaxDailyHours(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 8.0, hours, 1e-9)
	require.NoError(t, mock.ExpectationsWereMet())
}
