package types

// NoFloor is returned wherever a floor is asked for but none exists.
const NoFloor = -1

type MotorDirection int

const (
	MD_Up   MotorDirection = 1
	MD_Down MotorDirection = -1
	MD_Stop MotorDirection = 0
)

func (d MotorDirection) String() string {
	switch d {
	case MD_Up:
		return "up"
	case MD_Down:
		return "down"
	case MD_Stop:
		return "stopped"
	}
	return "unknown"
}

// DirectionTo returns the direction a car at from has to travel to reach to.
func DirectionTo(from, to int) MotorDirection {
	if from < to {
		return MD_Up
	}
	if from > to {
		return MD_Down
	}
	return MD_Stop
}

type ElevBehaviour int

const (
	Idle ElevBehaviour = iota
	Moving
	DoorOpen
)

func (b ElevBehaviour) String() string {
	switch b {
	case Idle:
		return "idle"
	case Moving:
		return "moving"
	case DoorOpen:
		return "doorOpen"
	}
	return "unknown"
}
