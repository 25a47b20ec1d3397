package scheduler

import (
	"elevsim/src/types"
	"elevsim/src/utils"
)

// Simulate runs ticks [0, totalTicks). Requests may remain unserviced.
func (s *Scheduler) Simulate(totalTicks int) {
	for tick := 0; tick < totalTicks; tick++ {
		s.Step(tick)
	}
}

// Step advances the car by one tick: servicing first, then movement. Inside a
// maintenance window nothing happens.
func (s *Scheduler) Step(tick int) {
	if s.maintenance != nil && s.maintenance.update(tick) {
		s.logger.Debug("In maintenance, holding car", "tick", tick, "floor", s.floor)
		return
	}
	s.ProcessFloorRequests(tick)
	s.MoveElevator(tick)
}

// ProcessFloorRequests picks up and drops off every eligible passenger at the
// current floor. If the car was travelling, it pauses for the dwell time once,
// however many passengers were handled.
func (s *Scheduler) ProcessFloorRequests(tick int) {
	processed := false

	utils.ForEachPending(s.requests, tick, func(req *types.Request) {
		if !req.PickedUp && req.FloorSrc == s.floor {
			req.MarkPickedUp()
			processed = true
			s.logger.Debug("Picked up passenger", "tick", tick, "id", req.ID, "floor", s.floor, "dest", req.FloorDest)
		}
		if req.PickedUp && !req.Serviced && req.FloorDest == s.floor {
			req.MarkServiced(tick)
			processed = true
			s.logger.Debug("Dropped off passenger", "tick", tick, "id", req.ID, "floor", s.floor)
		}
	})

	if processed && s.moving {
		s.dwell = s.dwellTicks
		s.moving = false
		s.logger.Debug("Dwelling at floor", "tick", tick, "floor", s.floor, "dwell", s.dwell)
	}
}

// MoveElevator moves the car at most one floor. The direction is only chosen
// at the start of a leg; while moving the car keeps going until servicing
// interrupts it.
func (s *Scheduler) MoveElevator(tick int) {
	if s.dwell > 0 {
		s.dwell--
		return
	}

	next := s.SelectTarget(tick)
	if next == types.NoFloor {
		if s.dir != types.MD_Stop {
			s.logger.Debug("No target, stopping", "tick", tick, "floor", s.floor)
		}
		s.dir = types.MD_Stop
		s.moving = false
		return
	}
	if next == s.floor {
		return
	}

	if !s.moving {
		s.dir = types.DirectionTo(s.floor, next)
		s.moving = true
		s.logger.Debug("Starting leg", "tick", tick, "floor", s.floor, "target", next, "direction", s.dir)
	}
	s.floor += int(s.dir)
}

// SelectTarget returns the floor chosen by the scheduler's policy, or
// types.NoFloor when nothing is pending.
func (s *Scheduler) SelectTarget(tick int) int {
	return s.policy(s, tick)
}
