package scheduler

import "elevsim/src/types"

type maintenanceEvent struct {
	time  int
	start bool
}

// maintenance tracks the open/closed state from the sentinel requests, which
// are applied in collection order once they become eligible.
type maintenance struct {
	events []maintenanceEvent
	next   int
	active bool
}

func newMaintenance(requests []types.Request) *maintenance {
	m := &maintenance{}
	for i := range requests {
		switch {
		case requests[i].IsMaintenanceStart():
			m.events = append(m.events, maintenanceEvent{time: requests[i].Time, start: true})
		case requests[i].IsMaintenanceEnd():
			m.events = append(m.events, maintenanceEvent{time: requests[i].Time, start: false})
		}
	}
	return m
}

// update applies every event due at tick and reports whether maintenance is on.
func (m *maintenance) update(tick int) bool {
	for m.next < len(m.events) && m.events[m.next].time <= tick {
		m.active = m.events[m.next].start
		m.next++
	}
	return m.active
}
