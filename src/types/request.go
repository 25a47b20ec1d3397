package types

// Request is a single passenger journey. Time, FloorSrc and FloorDest are fixed
// at load time; the remaining fields only move forward through the lifecycle
// waiting -> picked up -> serviced.
//
// Two sentinel records steer maintenance and are never passenger journeys:
// FloorSrc=FloorDest=-1 starts maintenance, FloorSrc=FloorDest=0 ends it.
type Request struct {
	ID         int
	Time       int
	FloorSrc   int
	FloorDest  int
	PickedUp   bool
	Serviced   bool
	ArriveTime int
}

func NewRequest(id, time, floorSrc, floorDest int) Request {
	return Request{
		ID:         id,
		Time:       time,
		FloorSrc:   floorSrc,
		FloorDest:  floorDest,
		ArriveTime: -1,
	}
}

func (r *Request) GoingUp() bool { return r.FloorDest >= r.FloorSrc }

func (r *Request) IsEligible(tick int) bool { return r.Time <= tick }

func (r *Request) IsMaintenanceStart() bool { return r.FloorSrc == -1 && r.FloorDest == -1 }
func (r *Request) IsMaintenanceEnd() bool { return r.FloorSrc == 0 && r.FloorDest == 0 }
func (r *Request) IsMaintenance() bool { return r.IsMaintenanceStart() || r.IsMaintenanceEnd() }

// RequestedFloor is the floor the request wants the car at next: the source
// floor while waiting, the destination while riding, NoFloor once serviced.
func (r *Request) RequestedFloor() int {
	switch {
	case r.IsMaintenance(), r.Serviced:
		return NoFloor
	case r.PickedUp:
		return r.FloorDest
	default:
		return r.FloorSrc
	}
}

func (r *Request) MarkPickedUp() {
	r.PickedUp = true
}

// MarkServiced records the arrival tick. It does nothing unless the passenger
// has been picked up and not yet delivered.
func (r *Request) MarkServiced(tick int) {
	if !r.PickedUp || r.Serviced {
		return
	}
	r.Serviced = true
	r.ArriveTime = tick
}

// TripTime is the number of ticks from the request until arrival, or -1.
func (r *Request) TripTime() int {
	if !r.Serviced {
		return -1
	}
	return r.ArriveTime - r.Time
}
