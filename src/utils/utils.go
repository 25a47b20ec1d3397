package utils

import "elevsim/src/types"

// ForEachPending is a helper function that visits, in collection order, every
// passenger request that is eligible at tick and not yet serviced.
func ForEachPending(requests []types.Request, tick int, action func(req *types.Request)) {
	for i := range requests {
		req := &requests[i]
		if req.IsMaintenance() || !req.IsEligible(tick) || req.Serviced {
			continue
		}
		action(req)
	}
}

// CountPassengers returns the number of non-sentinel requests and how many of
// them have been delivered.
func CountPassengers(requests []types.Request) (total, delivered int) {
	for i := range requests {
		if requests[i].IsMaintenance() {
			continue
		}
		total++
		if requests[i].Serviced {
			delivered++
		}
	}
	return total, delivered
}

func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
