package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/staffdesk/shift-scheduler/internal/config"
	"github.com/staffdesk/shift-scheduler/internal/domain"
	"github.com/staffdesk/shift-scheduler/internal/metrics"
	"github.com/staffdesk/shift-scheduler/internal/scheduler"
	"github.com/staffdesk/shift-scheduler/internal/seed"
	"github.com/staffdesk/shift-scheduler/internal/store"
	"github.com/staffdesk/shift-scheduler/internal/utils"
	"gopkg.in/yaml.v3"
)

type shiftSpec struct {
	ShiftID   string `yaml:"shiftId"`
	Date      string `yaml:"date"`
	StartTime string `yaml:"startTime"`
	EndTime   string `yaml:"endTime"`
}

type shiftsFile struct {
	Shifts []shiftSpec `yaml:"shifts"`
}

func main() {
	var op int
	var n int
	var file string
	var hours float64

	flag.IntVar(&op, "op", 0, "operation (1: import shifts from YAML, 2: insert random employees, 3: set max daily hours, 4: seed demo data, 5: insert random shifts)")
	flag.IntVar(&n, "n", 5, "number of records to insert")
	flag.StringVar(&file, "file", "shifts.yaml", "YAML file with shift definitions")
	flag.Float64Var(&hours, "hours", 0, "max daily hours (0 uses the configured default)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	st, cleanup, err := store.Open(ctx, cfg)
	if err != nil {
		logger.Error("failed to open store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	engine := scheduler.NewEngine(st, logger, metrics.NewMetrics(prometheus.NewRegistry()))

	if hours == 0 {
		hours = cfg.Scheduling.DefaultMaxDailyHours
	}

	switch op {
	case 0:
		slog.Error("no operation specified")
	case 1:
		importShifts(ctx, st, file)
	case 2:
		if n <= 0 {
			slog.Error("employee count must be positive")
			return
		}
		cnt := 0
		for i := 0; i < n; i++ {
			employee, err := engine.AddEmployee(ctx, utils.GenerateRandomEmployeeName(), utils.GenerateRandomPhone())
			if err != nil {
				slog.Error("failed to insert employee", slog.String("error", err.Error()))
				continue
			}
			slog.Info("inserted employee", slog.String("employeeId", employee.EmployeeID))
			cnt++
		}
		slog.Info("employees inserted", slog.Int("count", cnt))
	case 3:
		if err := st.SetMaxDailyHours(ctx, hours); err != nil {
			slog.Error("failed to set max daily hours", slog.String("error", err.Error()))
			return
		}
		slog.Info("max daily hours configured", slog.Float64("hours", hours))
	case 4:
		if err := seed.SeedDemoData(ctx, st, engine, hours); err != nil {
			slog.Error("failed to seed demo data", slog.String("error", err.Error()))
			return
		}
		slog.Info("demo data seeded")
	case 5:
		if n <= 0 {
			slog.Error("shift count must be positive")
			return
		}
		insertRandomShifts(ctx, st, n)
	default:
		slog.Error("unknown operation")
	}
}

// insertRandomShifts overwrites the shift collection with n generated
// daytime shifts spread over the coming days, continuing the existing id
// sequence.
func insertRandomShifts(ctx context.Context, st store.Admin, n int) {
	existing, err := st.LoadShifts(ctx)
	if err != nil {
		slog.Error("failed to load shifts", slog.String("error", err.Error()))
		return
	}

	shifts := existing
	for i := 0; i < n; i++ {
		shiftID := fmt.Sprintf("S%03d", len(existing)+i+1)
		date := time.Now().AddDate(0, 0, i/3+1).Format("2006-01-02")
		shifts = append(shifts, utils.GenerateRandomShift(shiftID, date))
	}

	if err := st.SaveShifts(ctx, shifts); err != nil {
		slog.Error("failed to save shifts", slog.String("error", err.Error()))
		return
	}
	slog.Info("random shifts inserted", slog.Int("count", n))
}

// importShifts loads shift definitions from a YAML file, validates them
// and overwrites the shift collection.
func importShifts(ctx context.Context, st store.Admin, file string) {
	data, err := os.ReadFile(file)
	if err != nil {
		slog.Error("failed to read shifts file", slog.String("error", err.Error()))
		return
	}

	parsed := shiftsFile{}
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		slog.Error("failed to parse shifts file", slog.String("error", err.Error()))
		return
	}

	shifts := make([]domain.Shift, 0, len(parsed.Shifts))
	for _, spec := range parsed.Shifts {
		shifts = append(shifts, domain.Shift{
			ShiftID:   spec.ShiftID,
			Date:      spec.Date,
			StartTime: spec.StartTime,
			EndTime:   spec.EndTime,
		})
	}

	for _, s := range shifts {
		if err := utils.ValidateShift(s); err != nil {
			slog.Error("invalid shift, aborting import", slog.String("error", err.Error()))
			return
		}
		if utils.SuspectOvernight(s) {
			// kept as-is: the engine treats such shifts as zero or
			// negative hours rather than wrapping to the next day
			slog.Warn("shift end time is not after its start time",
				slog.String("shiftId", s.ShiftID),
				slog.String("startTime", s.StartTime),
				slog.String("endTime", s.EndTime))
		}
	}

	if err := st.SaveShifts(ctx, shifts); err != nil {
		slog.Error("failed to save shifts", slog.String("error", err.Error()))
		return
	}
	slog.Info("shifts imported", slog.Int("count", len(shifts)))
}
