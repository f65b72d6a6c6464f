package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/staffdesk/shift-scheduler/internal/config"
)

// Open builds the store driver selected by the configuration and returns
// it with a cleanup function for whatever connections it opened. All
// drivers satisfy Admin; engine callers use the narrower Store view.
func Open(ctx context.Context, cfg *config.Config) (Admin, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverFile:
		fs, err := NewFileStore(cfg.Store.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return fs, func() {}, nil

	case config.DriverPostgres:
		pool, err := NewDatabase(ctx, cfg.Database.DSN, time.Duration(cfg.Database.ConnectTimeout)*time.Second)
		if err != nil {
			return nil, nil, err
		}
		return NewPostgresStore(pool), pool.Close, nil

	case config.DriverRedis:
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
			Password: cfg.Redis.Password,
			DB:       0,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return nil, nil, fmt.Errorf("failed to ping redis: %w", err)
		}
		return NewRedisStore(rdb), func() { _ = rdb.Close() }, nil

	default:
		return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
