package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Server      struct {
		Port            string `env:"PORT" envDefault:"3000"`
		ReadTimeout     int    `env:"READ_TIMEOUT" envDefault:"10"`
		WriteTimeout    int    `env:"WRITE_TIMEOUT" envDefault:"15"`
		IdleTimeout     int    `env:"IDLE_TIMEOUT" envDefault:"60"`
		ShutdownTimeout int    `env:"SHUTDOWN_TIMEOUT" envDefault:"10"`
	} `envPrefix:"SERVER_"`
	Store struct {
		Driver  string `env:"DRIVER" envDefault:"file"`
		DataDir string `env:"DATA_DIR" envDefault:"./data"`
	} `envPrefix:"STORE_"`
	Database struct {
		DSN            string `env:"DSN"`
		ConnectTimeout int    `env:"CONNECT_TIMEOUT" envDefault:"10"`
	} `envPrefix:"DATABASE_"`
	Redis struct {
		Host     string `env:"HOST" envDefault:"localhost"`
		Port     int    `env:"PORT" envDefault:"6379"`
		Password string `env:"PASSWORD"`
	} `envPrefix:"REDIS_"`
	RabbitMQ struct {
		DSN            string `env:"DSN"`
		PublishTimeout int    `env:"PUBLISH_TIMEOUT" envDefault:"10"`
	} `envPrefix:"RABBITMQ_"`
	Email struct {
		RosterAddress string `env:"ROSTER_ADDRESS"`
		SMTP          struct {
			Username    string `env:"USERNAME"`
			Password    string `env:"PASSWORD"`
			Host        string `env:"HOST"`
			Port        int    `env:"PORT" envDefault:"465"`
			DialTimeout int    `env:"DIAL_TIMEOUT" envDefault:"10"`
		} `envPrefix:"SMTP_"`
	} `envPrefix:"EMAIL_"`
	Scheduling struct {
		DefaultMaxDailyHours float64 `env:"DEFAULT_MAX_DAILY_HOURS" envDefault:"8"`
	} `envPrefix:"SCHEDULING_"`
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// only the first error keeps the log readable
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	if err := cfg.validateDriver(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateDriver checks that the selected store driver is known and that
// its connection settings are present. DSNs are only required for the
// driver actually in use.
func (cfg *Config) validateDriver() error {
	switch cfg.Store.Driver {
	case DriverFile:
		if cfg.Store.DataDir == "" {
			return errors.New("STORE_DATA_DIR is required for the file driver")
		}
	case DriverPostgres:
		if cfg.Database.DSN == "" {
			return errors.New("DATABASE_DSN is required for the postgres driver")
		}
	case DriverRedis:
		if cfg.Redis.Host == "" {
			return errors.New("REDIS_HOST is required for the redis driver")
		}
	default:
		return fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
	return nil
}

// NotificationsEnabled reports whether assignment notifications should be
// published; leaving the RabbitMQ DSN unset disables them.
func (cfg *Config) NotificationsEnabled() bool {
	return cfg.RabbitMQ.DSN != ""
}
