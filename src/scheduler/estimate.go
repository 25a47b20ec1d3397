package scheduler

import (
	"io"
	"log/slog"

	"elevsim/src/types"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// EstimateArrival answers how many ticks a passenger appearing at tick on
// floorSrc would need to reach floorDest, given the current car state and the
// requests already known. It simulates a copy; s itself is left untouched.
// The second return value is false if the passenger is not delivered within
// limit ticks, or if the trip is not a valid one in this building.
// Maintenance windows apply to the copy as they would to the real run.
func (s *Scheduler) EstimateArrival(floorSrc, floorDest, tick, limit int) (int, bool) {
	if floorSrc == floorDest || !s.validFloor(floorSrc) || !s.validFloor(floorDest) {
		return 0, false
	}
	sim := s.Clone()
	sim.logger = discard

	probe := len(sim.requests)
	sim.requests = append(sim.requests, types.NewRequest(probe, tick, floorSrc, floorDest))

	for t := tick; t < tick+limit; t++ {
		sim.Step(t)
		if req := &sim.requests[probe]; req.Serviced {
			s.logger.Debug("Estimated arrival",
				"src", floorSrc,
				"dest", floorDest,
				"tick", tick,
				"ticks", req.TripTime())
			return req.TripTime(), true
		}
	}
	return 0, false
}

func (s *Scheduler) validFloor(floor int) bool {
	return floor >= 0 && floor < s.numFloors
}
