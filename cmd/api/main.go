package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/staffdesk/shift-scheduler/internal/config"
	"github.com/staffdesk/shift-scheduler/internal/handler"
	"github.com/staffdesk/shift-scheduler/internal/metrics"
	"github.com/staffdesk/shift-scheduler/internal/scheduler"
	"github.com/staffdesk/shift-scheduler/internal/store"
)

func main() {
	/**********************************************
	 * logger
	 **********************************************/
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	/**********************************************
	 * configuration
	 **********************************************/
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		return
	}

	/**********************************************
	 * store driver
	 **********************************************/
	st, cleanup, err := store.Open(context.Background(), cfg)
	if err != nil {
		logger.Error("failed to open store", "driver", cfg.Store.Driver, "error", err)
		return
	}
	defer cleanup()
	logger.Info("store ready", "driver", cfg.Store.Driver)

	/**********************************************
	 * metrics and engine
	 **********************************************/
	registry := prometheus.NewRegistry()
	engine := scheduler.NewEngine(st, logger, metrics.NewMetrics(registry))

	/**********************************************
	 * rabbitmq (optional, assignment notifications)
	 **********************************************/
	var mailChannel *amqp.Channel
	if cfg.NotificationsEnabled() {
		conn, err := amqp.Dial(cfg.RabbitMQ.DSN)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			return
		}
		defer conn.Close()

		ch, err := conn.Channel()
		if err != nil {
			logger.Error("failed to open rabbitmq channel", "error", err)
			return
		}
		defer ch.Close()

		if _, err := ch.QueueDeclare(
			"notification_queue",
			true,
			false,
			false,
			false,
			nil,
		); err != nil {
			logger.Error("failed to declare queue", "error", err)
			return
		}
		mailChannel = ch
	} else {
		logger.Info("assignment notifications disabled: no rabbitmq dsn configured")
	}

	/**********************************************
	 * handler
	 **********************************************/
	h, err := handler.NewHandler(cfg, engine, mailChannel)
	if err != nil {
		logger.Error("failed to create handler", "error", err)
		return
	}
	h.RegisterRoutes()
	h.Mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	/**********************************************
	 * HTTP server
	 **********************************************/
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      h.Mux,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Info("starting server...", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("failed to start server", slog.String("error", err.Error()))
			return
		}
	}()

	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("failed to shut down server", slog.String("error", err.Error()))
	}
	logger.Info("server stopped")
}
