package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"time"

	"elevsim/src/config"
	"elevsim/src/driver"
	"elevsim/src/logging"
	"elevsim/src/scenario"
	"elevsim/src/scheduler"
	"elevsim/src/stats"

	"github.com/google/uuid"
)

type options struct {
	scenarioPath string
	configPath   string
	envPath      string
	ticks        int
	logLevel     string
	logFile      string
	interval     time.Duration
	probe        string
	trace        bool
}

func main() {
	var opts options
	flag.StringVar(&opts.scenarioPath, "scenario", "", "Path to the scenario file (.txt or .yaml)")
	flag.StringVar(&opts.configPath, "config", "", "Optional YAML config file")
	flag.StringVar(&opts.envPath, "env", "", "Optional dotenv file with ELEVSIM_* overrides")
	flag.IntVar(&opts.ticks, "ticks", 0, "Number of ticks to simulate (default: from config or scenario)")
	flag.StringVar(&opts.logLevel, "log", "", "Log level: debug, info, warn, error")
	flag.StringVar(&opts.logFile, "logfile", "", "Also write logs to this file")
	flag.DurationVar(&opts.interval, "interval", -1, "Wall-clock time per tick")
	flag.StringVar(&opts.probe, "probe", "", "Estimate ticks for a passenger src:dest appearing at tick 0")
	flag.BoolVar(&opts.trace, "trace", false, "Print the car state after every tick")
	flag.Parse()

	if err := run(opts, os.Stdout); err != nil {
		slog.Error("Simulation failed", "err", err)
		os.Exit(1)
	}
}

// loadSettings merges the run settings, lowest precedence first: defaults,
// the scenario header, the config file, the env file, then flags.
func loadSettings(opts options) (config.Config, *scenario.Scenario, error) {
	if opts.scenarioPath == "" {
		return config.Config{}, nil, errors.New("-scenario is required")
	}
	sc, err := scenario.Load(opts.scenarioPath)
	if err != nil {
		return config.Config{}, nil, err
	}

	cfg := config.Default()
	cfg.NumFloors = sc.NumFloors
	cfg.TotalTicks = sc.TotalTicks
	if opts.configPath != "" {
		if err := config.Load(&cfg, opts.configPath); err != nil {
			return config.Config{}, nil, err
		}
	}
	if opts.envPath != "" {
		if err := config.LoadEnv(&cfg, opts.envPath); err != nil {
			return config.Config{}, nil, err
		}
	}
	if opts.ticks > 0 {
		cfg.TotalTicks = opts.ticks
	}
	if opts.logLevel != "" {
		cfg.LogLevel = opts.logLevel
	}
	if opts.logFile != "" {
		cfg.LogFile = opts.logFile
	}
	if opts.interval >= 0 {
		cfg.TickInterval = opts.interval
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, err
	}
	if err := sc.CheckFloors(cfg.NumFloors); err != nil {
		return config.Config{}, nil, err
	}
	return cfg, sc, nil
}

func run(opts options, out io.Writer) error {
	cfg, sc, err := loadSettings(opts)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	closer, err := logging.Init(level, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closer.Close()

	runID := uuid.New()
	logger := slog.Default().With("run", runID.String())
	logger.Info("Scenario loaded",
		"path", opts.scenarioPath,
		"floors", cfg.NumFloors,
		"passengers", sc.Passengers(),
		"ticks", cfg.TotalTicks)

	sched := scheduler.New(cfg.NumFloors, cfg.StartFloor, sc.Requests,
		scheduler.WithDwellTicks(cfg.DwellTicks),
		scheduler.WithMaintenance(),
		scheduler.WithLogger(logger))

	if opts.probe != "" {
		src, dest, err := probeTrip(opts.probe, cfg.NumFloors)
		if err != nil {
			return err
		}
		if est, ok := sched.EstimateArrival(src, dest, 0, cfg.TotalTicks); ok {
			fmt.Fprintf(out, "probe %d->%d: %d ticks\n", src, dest, est)
		} else {
			fmt.Fprintf(out, "probe %d->%d: not delivered within %d ticks\n", src, dest, cfg.TotalTicks)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	driverOpts := driver.Options{Ticks: cfg.TotalTicks, Interval: cfg.TickInterval, Logger: logger}
	done := make(chan struct{})
	if opts.trace {
		snapCh := make(chan driver.Snapshot)
		driverOpts.Snapshots = snapCh
		go func() {
			defer close(done)
			for snap := range snapCh {
				fmt.Fprintf(out, "t=%-4d floor=%-3d dir=%-7s %-8s delivered=%d/%d\n",
					snap.Tick, snap.Floor, snap.Dir, snap.Behaviour, snap.Delivered, snap.Total)
			}
		}()
	} else {
		close(done)
	}

	err = driver.Run(ctx, sched, driverOpts)
	if driverOpts.Snapshots != nil {
		close(driverOpts.Snapshots)
	}
	<-done
	if err != nil {
		return err
	}

	report := stats.Compute(runID, sched.Requests())
	fmt.Fprintln(out, report)
	return nil
}

// probeTrip parses "src:dest" and checks it is a passenger trip that fits in
// numFloors floors.
func probeTrip(s string, numFloors int) (int, int, error) {
	src, dest, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("probe %q: expected src:dest", s)
	}
	a, err := strconv.Atoi(src)
	if err != nil {
		return 0, 0, fmt.Errorf("probe %q: %w", s, err)
	}
	b, err := strconv.Atoi(dest)
	if err != nil {
		return 0, 0, fmt.Errorf("probe %q: %w", s, err)
	}
	if err := scenario.ValidateRequest(numFloors, a, b); err != nil {
		return 0, 0, fmt.Errorf("probe %q: %w", s, err)
	}
	return a, b, nil
}
