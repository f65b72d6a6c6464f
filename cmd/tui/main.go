package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/staffdesk/shift-scheduler/internal/config"
	"github.com/staffdesk/shift-scheduler/internal/metrics"
	"github.com/staffdesk/shift-scheduler/internal/scheduler"
	"github.com/staffdesk/shift-scheduler/internal/store"
	"github.com/staffdesk/shift-scheduler/internal/tui"
)

func main() {
	// the terminal owns stdout, keep engine logs out of the way
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	st, cleanup, err := store.Open(context.Background(), cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open store: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	engine := scheduler.NewEngine(st, logger, metrics.NewMetrics(prometheus.NewRegistry()))

	app := tui.NewApp(engine)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "terminal error: %v\n", err)
		os.Exit(1)
	}
}
