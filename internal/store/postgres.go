package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/staffdesk/shift-scheduler/internal/domain"
)

// Database is the subset of the pgx pool the store needs. Keeping it narrow
// lets tests substitute a pgxmock pool.
type Database interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// NewDatabase creates a PostgreSQL connection pool and verifies the
// connection with a ping.
func NewDatabase(ctx context.Context, dsn string, connectTimeout time.Duration) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	dbpool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection to PostgreSQL: %w", err)
	}

	if err := dbpool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping PostgreSQL: %w", err)
	}

	return dbpool, nil
}

// PostgresStore maps the snapshot contract onto relational tables. Full
// overwrites become truncate-and-insert inside a transaction so the
// overwrite discipline survives the driver change.
type PostgresStore struct {
	db Database
}

func NewPostgresStore(db Database) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) LoadEmployees(ctx context.Context) ([]domain.Employee, error) {
	query := `SELECT employee_id, name, phone FROM employees ORDER BY employee_id`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}
	defer rows.Close()

	employees := make([]domain.Employee, 0)
	for rows.Next() {
		e := domain.Employee{}
		if err := rows.Scan(&e.EmployeeID, &e.Name, &e.Phone); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load employees: %w", err)
	}

	return employees, nil
}

func (s *PostgresStore) SaveEmployees(ctx context.Context, employees []domain.Employee) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec(ctx, `DELETE FROM employees`); err != nil {
		return fmt.Errorf("failed to clear employees: %w", err)
	}
	for _, e := range employees {
		query := `INSERT INTO employees (employee_id, name, phone) VALUES ($1, $2, $3)`
		if _, err := tx.Exec(ctx, query, e.EmployeeID, e.Name, e.Phone); err != nil {
			return fmt.Errorf("failed to insert employee %s: %w", e.EmployeeID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit employees: %w", err)
	}
	return nil
}

func (s *PostgresStore) LoadShifts(ctx context.Context) ([]domain.Shift, error) {
	query := `SELECT shift_id, shift_date, start_time, end_time FROM shifts ORDER BY shift_id`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load shifts: %w", err)
	}
	defer rows.Close()

	shifts := make([]domain.Shift, 0)
	for rows.Next() {
		sh := domain.Shift{}
		if err := rows.Scan(&sh.ShiftID, &sh.Date, &sh.StartTime, &sh.EndTime); err != nil {
			return nil, fmt.Errorf("failed to scan shift: %w", err)
		}
		shifts = append(shifts, sh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load shifts: %w", err)
	}

	return shifts, nil
}

func (s *PostgresStore) SaveShifts(ctx context.Context, shifts []domain.Shift) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // rollback after commit is a no-op

	if _, err := tx.Exec(ctx, `DELETE FROM shifts`); err != nil {
		return fmt.Errorf("failed to clear shifts: %w", err)
	}
	for _, sh := range shifts {
		query := `INSERT INTO shifts (shift_id, shift_date, start_time, end_time) VALUES ($1, $2, $3, $4)`
		if _, err := tx.Exec(ctx, query, sh.ShiftID, sh.Date, sh.StartTime, sh.EndTime); err != nil {
			return fmt.Errorf("failed to insert shift %s: %w", sh.ShiftID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit shifts: %w", err)
	}
	return nil
}

func (s *PostgresStore) LoadAssignments(ctx context.Context) ([]domain.Assignment, error) {
	query := `SELECT employee_id, shift_id FROM assignments ORDER BY id`

	rows, err := s.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignments: %w", err)
	}
	defer rows.Close()

	assignments := make([]domain.Assignment, 0)
	for rows.Next() {
		a := domain.Assignment{}
		if err := rows.Scan(&a.EmployeeID, &a.ShiftID); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to load assignments: %w", err)
	}

	return assignments, nil
}

func (s *PostgresStore) SaveAssignment(ctx context.Context, assignment domain.Assignment) error {
	query := `INSERT INTO assignments (employee_id, shift_id) VALUES ($1, $2)`

	if _, err := s.db.Exec(ctx, query, assignment.EmployeeID, assignment.ShiftID); err != nil {
		return fmt.Errorf("failed to save assignment: %w", err)
	}
	return nil
}

func (s *PostgresStore) MaxDailyHours(ctx context.Context) (float64, error) {
	query := `SELECT max_daily_hours FROM scheduling_config WHERE id = 1`

	var hours float64
	if err := s.db.QueryRow(ctx, query).Scan(&hours); err != nil {
		return 0, fmt.Errorf("failed to load max daily hours: %w", err)
	}
	return hours, nil
}

func (s *PostgresStore) SetMaxDailyHours(ctx context.Context, hours float64) error {
	query := `
		INSERT INTO scheduling_config (id, max_daily_hours) VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET max_daily_hours = EXCLUDED.max_daily_hours
	`

	if _, err := s.db.Exec(ctx, query, hours); err != nil {
		return fmt.Errorf("failed to set max daily hours: %w", err)
	}
	return nil
}
