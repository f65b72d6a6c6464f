package main

import (
	"context"
	"log"
	"time"

	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose"
	"github.com/staffdesk/shift-scheduler/internal/config"
	"github.com/staffdesk/shift-scheduler/internal/store"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	if cfg.Database.DSN == "" {
		log.Fatal("DATABASE_DSN is required to run migrations")
	}

	pool, err := store.NewDatabase(
		context.Background(),
		cfg.Database.DSN,
		time.Duration(cfg.Database.ConnectTimeout)*time.Second,
	)
	if err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}
	defer pool.Close()

	db := stdlib.OpenDBFromPool(pool)
	if err := goose.Up(db, "migrations"); err != nil {
		log.Fatal(err)
	}

	log.Println("migrations applied successfully")
}
