package store_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/staffdesk/shift-scheduler/internal/domain"
	"github.com/staffdesk/shift-scheduler/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFileStore(t *testing.T) *store.FileStore {
	t.Helper()

	fs, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return fs
}

func TestFileStore_EmptyDirectoryReadsEmptyCollections(t *testing.T) {
	t.Parallel()

	fs := newFileStore(t)
	ctx := context.Background()

	employees, err := fs.LoadEmployees(ctx)
	require.NoError(t, err)
	assert.Empty(t, employees)

	shifts, err := fs.LoadShifts(ctx)
	require.NoError(t, err)
	assert.Empty(t, shifts)

	assignments, err := fs.LoadAssignments(ctx)
	require.NoError(t, err)
	assert.Empty(t, assignments)
}

func TestFileStore_MissingConfigIsAnError(t *testing.T) {
	t.Parallel()

	fs := newFileStore(t)

	_, err := fs.MaxDailyHours(context.Background())
	assert.Error(t, err)
}

func TestFileStore_EmployeeRoundTrip(t *testing.T) {
	t.Parallel()

	fs := newFileStore(t)
	ctx := context.Background()

	want := []domain.Employee{
		{EmployeeID: "E001", Name: "Alice Chen", Phone: "555-0100"},
		{EmployeeID: "E002", Name: "Ben Dawson", Phone: "555-0101"},
	}
	require.NoError(t, fs.SaveEmployees(ctx, want))

	got, err := fs.LoadEmployees(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileStore_SaveAssignmentAppends(t *testing.T) {
	t.Parallel()

	fs := newFileStore(t)
	ctx := context.Background()

	require.NoError(t, fs.SaveAssignment(ctx, domain.Assignment{EmployeeID: "E001", ShiftID: "S1"}))
	require.NoError(t, fs.SaveAssignment(ctx, domain.Assignment{EmployeeID: "E001", ShiftID: "S2"}))

	assignments, err := fs.LoadAssignments(ctx)
	require.NoError(t, err)
	require.Len(t, assignments, 2)
	assert.Equal(t, "S1", assignments[0].ShiftID)
	assert.Equal(t, "S2", assignments[1].ShiftID)
}

func TestFileStore_MaxDailyHoursRoundTrip(t *testing.T) {
	t.Parallel()

	fs := newFileStore(t)
	ctx := context.Background()

	require.NoError(t, fs.SetMaxDailyHours(ctx, 8.5))

	hours, err := fs.MaxDailyHours(ctx)
	require.NoError(t, err)
	assert.InDelta(t, 8.5, hours, 1e-9)
}

func TestFileStore_CorruptFileFailsLoad(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fs, err := store.NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "employees.json"), []byte("{not json"), 0o644))

	_, err = fs.LoadEmployees(context.Background())
	assert.Error(t, err)
}
