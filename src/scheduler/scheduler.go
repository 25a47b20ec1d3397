// Package scheduler runs a single elevator car over discrete ticks. Each tick
// is a servicing phase (pickups and dropoffs at the current floor) followed by
// a movement phase (at most one floor of travel towards a chosen target).
package scheduler

import (
	"log/slog"

	"elevsim/src/config"
	"elevsim/src/types"

	"github.com/tiendc/go-deepcopy"
)

// Scheduler owns the car state and the request collection for a whole run.
// It is not safe for concurrent use; one goroutine drives the ticks.
type Scheduler struct {
	numFloors  int
	floor      int
	dir        types.MotorDirection
	moving     bool
	dwell      int
	dwellTicks int
	requests   []types.Request
	policy     Policy
	logger     *slog.Logger

	// nil unless WithMaintenance is set
	maintenance *maintenance
}

type Option func(*Scheduler)

// WithPolicy replaces the scan policy used to pick targets.
func WithPolicy(policy Policy) Option {
	return func(s *Scheduler) { s.policy = policy }
}

// WithDwellTicks sets how many ticks the car pauses after servicing mid-leg.
func WithDwellTicks(ticks int) Option {
	return func(s *Scheduler) { s.dwellTicks = ticks }
}

// WithMaintenance makes Step honour the maintenance sentinels in the request
// collection: from an eligible start until an eligible end the car is not
// stepped and holds its floor.
func WithMaintenance() Option {
	return func(s *Scheduler) { s.maintenance = newMaintenance(s.requests) }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Scheduler) { s.logger = logger }
}

// New takes ownership of requests, which must be sorted by Time. The order of
// the slice is the tie-break order for target selection.
func New(numFloors, startFloor int, requests []types.Request, opts ...Option) *Scheduler {
	s := &Scheduler{
		numFloors:  numFloors,
		floor:      startFloor,
		dir:        types.MD_Stop,
		dwellTicks: config.DwellTicks,
		requests:   requests,
		policy:     Scan,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger.Debug("Scheduler initialized",
		"numFloors", numFloors,
		"startFloor", startFloor,
		"requests", len(requests))
	return s
}

func (s *Scheduler) NumFloors() int { return s.numFloors }
func (s *Scheduler) Floor() int { return s.floor }
func (s *Scheduler) Dir() types.MotorDirection { return s.dir }
func (s *Scheduler) Moving() bool { return s.moving }
func (s *Scheduler) Dwell() int { return s.dwell }

// InMaintenance reports whether the last Step fell inside a maintenance window.
func (s *Scheduler) InMaintenance() bool {
	return s.maintenance != nil && s.maintenance.active
}

func (s *Scheduler) Behaviour() types.ElevBehaviour {
	switch {
	case s.dwell > 0:
		return types.DoorOpen
	case s.moving:
		return types.Moving
	default:
		return types.Idle
	}
}

// Requests returns a deep copy of the request collection.
func (s *Scheduler) Requests() []types.Request {
	return copyRequests(s.requests)
}

// Clone returns an independent scheduler with the same car state and a deep
// copy of the requests.
func (s *Scheduler) Clone() *Scheduler {
	clone := *s
	clone.requests = copyRequests(s.requests)
	if s.maintenance != nil {
		m := *s.maintenance
		clone.maintenance = &m
	}
	return &clone
}

func copyRequests(src []types.Request) []types.Request {
	dst := make([]types.Request, 0, len(src))
	if err := deepcopy.Copy(&dst, src); err != nil {
		panic(err)
	}
	return dst
}
