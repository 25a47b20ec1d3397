// Package driver steps a scheduler through a run and reports each tick.
package driver

import (
	"context"
	"log/slog"
	"time"

	"elevsim/src/scheduler"
	"elevsim/src/types"
	"elevsim/src/utils"
)

type Options struct {
	Ticks int
	// Interval paces the ticks. Zero runs as fast as possible.
	Interval time.Duration
	// Snapshots receives one Snapshot per tick when non-nil. The driver
	// blocks on it, so the reader sets the pace if it is slower than Interval.
	Snapshots chan<- Snapshot
	Logger    *slog.Logger
}

// Snapshot is the observable state after a tick.
type Snapshot struct {
	Tick        int
	Floor       int
	Dir         types.MotorDirection
	Behaviour   types.ElevBehaviour
	Maintenance bool
	Delivered   int
	Total       int
	Requests    []types.Request
}

// Run drives ticks [0, opts.Ticks) and returns ctx.Err() if cancelled first.
// Maintenance windows are honoured when sched was built with
// scheduler.WithMaintenance.
func Run(ctx context.Context, sched *scheduler.Scheduler, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	var ticker *time.Ticker
	if opts.Interval > 0 {
		ticker = time.NewTicker(opts.Interval)
		defer ticker.Stop()
	}

	logger.Info("Simulation started", "ticks", opts.Ticks, "floor", sched.Floor())

	for tick := 0; tick < opts.Ticks; tick++ {
		if err := ctx.Err(); err != nil {
			logger.Warn("Simulation cancelled", "tick", tick)
			return err
		}

		sched.Step(tick)

		if opts.Snapshots != nil {
			snap := snapshot(sched, tick)
			select {
			case opts.Snapshots <- snap:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if ticker != nil {
			select {
			case <-ticker.C:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}

	logger.Info("Simulation finished", "ticks", opts.Ticks, "floor", sched.Floor())
	return nil
}

func snapshot(sched *scheduler.Scheduler, tick int) Snapshot {
	maintenance := sched.InMaintenance()
	requests := sched.Requests()
	total, delivered := utils.CountPassengers(requests)
	snap := Snapshot{
		Tick:        tick,
		Floor:       sched.Floor(),
		Dir:         sched.Dir(),
		Behaviour:   sched.Behaviour(),
		Maintenance: maintenance,
		Delivered:   delivered,
		Total:       total,
		Requests:    requests,
	}
	if maintenance {
		snap.Dir = types.MD_Stop
		snap.Behaviour = types.Idle
	}
	return snap
}
