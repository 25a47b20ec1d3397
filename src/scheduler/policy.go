package scheduler

import (
	"elevsim/src/types"
	"elevsim/src/utils"
)

// Policy picks the next target floor for s at tick, or types.NoFloor.
type Policy func(s *Scheduler, tick int) int

// Scan is the look-ahead elevator policy.
//  1. Keep the current direction: the nearest requested floor at or beyond the
//     car in the travel direction. Ties go to the first request in the collection.
//  2. Otherwise the nearest requested floor anywhere, preferring the higher
//     floor when two are equally close.
func Scan(s *Scheduler, tick int) int {
	if next := nearestAhead(s, tick); next != types.NoFloor {
		return next
	}
	return nearestAny(s, tick)
}

func nearestAhead(s *Scheduler, tick int) int {
	next := types.NoFloor
	if s.dir == types.MD_Stop {
		return next
	}
	minDistance := 0
	utils.ForEachPending(s.requests, tick, func(req *types.Request) {
		target := req.RequestedFloor()
		if target == types.NoFloor {
			return
		}
		ahead := (s.dir == types.MD_Up && target >= s.floor) ||
			(s.dir == types.MD_Down && target <= s.floor)
		if !ahead {
			return
		}
		distance := utils.Abs(target - s.floor)
		if next == types.NoFloor || distance < minDistance {
			next = target
			minDistance = distance
		}
	})
	return next
}

func nearestAny(s *Scheduler, tick int) int {
	next := types.NoFloor
	minDistance := 0
	utils.ForEachPending(s.requests, tick, func(req *types.Request) {
		target := req.RequestedFloor()
		if target == types.NoFloor {
			return
		}
		distance := utils.Abs(target - s.floor)
		if next == types.NoFloor || distance < minDistance ||
			(distance == minDistance && target > next) {
			next = target
			minDistance = distance
		}
	})
	return next
}
