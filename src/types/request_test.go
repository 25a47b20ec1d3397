package types

import "testing"

func TestRequestLifecycle(t *testing.T) {
	req := NewRequest(0, 2, 1, 4)

	if req.ArriveTime != -1 {
		t.Errorf("Expected ArriveTime -1, got %d", req.ArriveTime)
	}
	if req.RequestedFloor() != 1 {
		t.Errorf("Expected requested floor 1 while waiting, got %d", req.RequestedFloor())
	}

	req.MarkPickedUp()
	if req.RequestedFloor() != 4 {
		t.Errorf("Expected requested floor 4 while riding, got %d", req.RequestedFloor())
	}

	req.MarkServiced(9)
	if !req.Serviced || req.ArriveTime != 9 {
		t.Errorf("Expected serviced at 9, got serviced=%v arrive=%d", req.Serviced, req.ArriveTime)
	}
	if req.RequestedFloor() != NoFloor {
		t.Errorf("Expected NoFloor once serviced, got %d", req.RequestedFloor())
	}
	if req.TripTime() != 7 {
		t.Errorf("Expected trip time 7, got %d", req.TripTime())
	}

	// Idempotent: a second call must not move the arrival time.
	req.MarkServiced(12)
	req.MarkPickedUp()
	if req.ArriveTime != 9 || !req.PickedUp {
		t.Errorf("Expected state unchanged, got %+v", req)
	}
}

func TestMarkServicedBeforePickupIsNoop(t *testing.T) {
	req := NewRequest(0, 0, 2, 0)
	req.MarkServiced(3)

	if req.Serviced || req.ArriveTime != -1 {
		t.Errorf("Expected untouched request, got %+v", req)
	}
	if req.TripTime() != -1 {
		t.Errorf("Expected trip time -1, got %d", req.TripTime())
	}
}

func TestRequestEligibility(t *testing.T) {
	req := NewRequest(0, 5, 0, 1)
	for tick, want := range map[int]bool{0: false, 4: false, 5: true, 6: true} {
		if got := req.IsEligible(tick); got != want {
			t.Errorf("IsEligible(%d): expected %v, got %v", tick, want, got)
		}
	}
}

func TestRequestDirectionAndSentinels(t *testing.T) {
	tests := []struct {
		name           string
		src, dest      int
		up, start, end bool
		requested      int
	}{
		{"up", 1, 3, true, false, false, 1},
		{"down", 3, 1, false, false, false, 3},
		{"maintenance start", -1, -1, true, true, false, NoFloor},
		{"maintenance end", 0, 0, true, false, true, NoFloor},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := NewRequest(0, 0, tt.src, tt.dest)
			if req.GoingUp() != tt.up {
				t.Errorf("GoingUp: expected %v, got %v", tt.up, req.GoingUp())
			}
			if req.IsMaintenanceStart() != tt.start || req.IsMaintenanceEnd() != tt.end {
				t.Errorf("Expected start=%v end=%v, got start=%v end=%v",
					tt.start, tt.end, req.IsMaintenanceStart(), req.IsMaintenanceEnd())
			}
			if req.RequestedFloor() != tt.requested {
				t.Errorf("RequestedFloor: expected %d, got %d", tt.requested, req.RequestedFloor())
			}
		})
	}
}

func TestDirectionTo(t *testing.T) {
	if DirectionTo(1, 3) != MD_Up || DirectionTo(3, 1) != MD_Down || DirectionTo(2, 2) != MD_Stop {
		t.Errorf("DirectionTo returned wrong directions")
	}
	if MD_Down.String() != "down" || Idle.String() != "idle" {
		t.Errorf("Unexpected String output: %s %s", MD_Down, Idle)
	}
}

func TestStringUnknownValues(t *testing.T) {
	if got := ElevBehaviour(7).String(); got != "unknown" {
		t.Errorf("Expected unknown, got %s", got)
	}
	if got := MotorDirection(3).String(); got != "unknown" {
		t.Errorf("Expected unknown, got %s", got)
	}
	if DoorOpen.String() != "doorOpen" || Moving.String() != "moving" {
		t.Errorf("Unexpected String output: %s %s", DoorOpen, Moving)
	}
}
