package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/staffdesk/shift-scheduler/internal/domain"
)

const (
	keyEmployees   = "shiftscheduler:employees"
	keyShifts      = "shiftscheduler:shifts"
	keyAssignments = "shiftscheduler:assignments"
	keyConfig      = "shiftscheduler:config"
)

// RedisStore keeps each collection as one JSON blob per key, which is the
// snapshot contract taken literally. Suited to small rosters; every load
// fetches and decodes the whole collection.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) loadKey(ctx context.Context, key string, dst any) error {
	data, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("failed to parse %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) saveKey(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.rdb.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) LoadEmployees(ctx context.Context) ([]domain.Employee, error) {
	employees := make([]domain.Employee, 0)
	if err := s.loadKey(ctx, keyEmployees, &employees); err != nil {
		return nil, err
	}
	return employees, nil
}

func (s *RedisStore) SaveEmployees(ctx context.Context, employees []domain.Employee) error {
	return s.saveKey(ctx, keyEmployees, employees)
}

func (s *RedisStore) LoadShifts(ctx context.Context) ([]domain.Shift, error) {
	shifts := make([]domain.Shift, 0)
	if err := s.loadKey(ctx, keyShifts, &shifts); err != nil {
		return nil, err
	}
	return shifts, nil
}

func (s *RedisStore) SaveShifts(ctx context.Context, shifts []domain.Shift) error {
	return s.saveKey(ctx, keyShifts, shifts)
}

func (s *RedisStore) LoadAssignments(ctx context.Context) ([]domain.Assignment, error) {
	assignments := make([]domain.Assignment, 0)
	if err := s.loadKey(ctx, keyAssignments, &assignments); err != nil {
		return nil, err
	}
	return assignments, nil
}

func (s *RedisStore) SaveAssignment(ctx context.Context, assignment domain.Assignment) error {
	assignments, err := s.LoadAssignments(ctx)
	if err != nil {
		return err
	}
	assignments = append(assignments, assignment)
	return s.saveKey(ctx, keyAssignments, assignments)
}

func (s *RedisStore) MaxDailyHours(ctx context.Context) (float64, error) {
	data, err := s.rdb.Get(ctx, keyConfig).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, fmt.Errorf("scheduling config missing at %s", keyConfig)
		}
		return 0, fmt.Errorf("failed to read %s: %w", keyConfig, err)
	}
	cfg := schedulingConfig{}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", keyConfig, err)
	}
	return cfg.MaxDailyHours, nil
}

func (s *RedisStore) SetMaxDailyHours(ctx context.Context, hours float64) error {
	return s.saveKey(ctx, keyConfig, schedulingConfig{MaxDailyHours: hours})
}
