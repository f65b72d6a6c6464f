// Package store provides persistence for the scheduling collections:
// employees, shifts, assignments and the scheduling configuration. Every
// collection is read and written as a whole snapshot; the system has a
// single writer, so no driver takes locks.
package store

import (
	"context"

	"github.com/staffdesk/shift-scheduler/internal/domain"
)

// Store is the persistence contract the scheduling engine depends on.
// Shifts are read-only from the engine's perspective.
type Store interface {
	LoadEmployees(ctx context.Context) ([]domain.Employee, error)
	// SaveEmployees overwrites the whole employee collection.
	SaveEmployees(ctx context.Context, employees []domain.Employee) error
	LoadShifts(ctx context.Context) ([]domain.Shift, error)
	LoadAssignments(ctx context.Context) ([]domain.Assignment, error)
	// SaveAssignment appends one assignment: load, append, overwrite.
	SaveAssignment(ctx context.Context, assignment domain.Assignment) error
	MaxDailyHours(ctx context.Context) (float64, error)
}

// Admin extends Store with operations reserved for seeding tools. The
// engine never creates shifts or changes the daily-hours cap, so these
// stay off the Store interface.
type Admin interface {
	Store
	SaveShifts(ctx context.Context, shifts []domain.Shift) error
	SetMaxDailyHours(ctx context.Context, hours float64) error
}
