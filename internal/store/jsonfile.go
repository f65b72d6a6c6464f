package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/staffdesk/shift-scheduler/internal/domain"
)

const (
	employeesFile   = "employees.json"
	shiftsFile      = "shifts.json"
	assignmentsFile = "assignments.json"
	configFile      = "config.json"
)

type schedulingConfig struct {
	MaxDailyHours float64 `json:"maxDailyHours"`
}

// FileStore keeps each collection in its own JSON file under a data
// directory. Reads always hit the disk, writes replace the whole file.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// readCollection decodes a JSON array file into dst. A missing file counts
// as an empty collection so a fresh data directory works out of the box.
func (s *FileStore) readCollection(name string, dst any) error {
	data, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

func (s *FileStore) writeFile(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func (s *FileStore) LoadEmployees(_ context.Context) ([]domain.Employee, error) {
	employees := make([]domain.Employee, 0)
	if err := s.readCollection(employeesFile, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (s *FileStore) SaveEmployees(_ context.Context, employees []domain.Employee) error {
	return s.writeFile(employeesFile, employees)
}

func (s *FileStore) LoadShifts(_ context.Context) ([]domain.Shift, error) {
	shifts := make([]domain.Shift, 0)
	if err := s.readCollection(shiftsFile, &shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

func (s *FileStore) SaveShifts(_ context.Context, shifts []domain.Shift) error {
	return s.writeFile(shiftsFile, shifts)
}

func (s *FileStore) LoadAssignments(_ context.Context) ([]domain.Assignment, error) {
	assignments := make([]domain.Assignment, 0)
	if err := s.readCollection(assignmentsFile, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (s *FileStore) SaveAssignment(ctx context.Context, assignment domain.Assignment) error {
	assignments, err := s.LoadAssignments(ctx)
	if err != nil {
		return err
	}
	assignments = append(assignments, assignment)
	return s.writeFile(assignmentsFile, assignments)
}

// MaxDailyHours reads the cap from config.json. Unlike the collections, a
// missing config file is an error: there is no safe default for the cap.
func (s *FileStore) MaxDailyHours(_ context.Context) (float64, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, configFile))
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", configFile, err)
	}
	cfg := schedulingConfig{}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", configFile, err)
	}
	return cfg.MaxDailyHours, nil
}

func (s *FileStore) SetMaxDailyHours(_ context.Context, hours float64) error {
	return s.writeFile(configFile, schedulingConfig{MaxDailyHours: hours})
}
