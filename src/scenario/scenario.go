// Package scenario reads simulation input files and turns them into a
// time-ordered request collection.
//
// The text format has optional '#' comment lines, a header line
// "<numFloors> <totalTicks>" and one "<time> <src> <dest>" line per passenger.
// Files ending in .yaml or .yml are read as YAML instead.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"elevsim/src/types"
)

var (
	ErrHeader       = errors.New("missing or malformed header")
	ErrRecord       = errors.New("malformed request record")
	ErrSameFloor    = errors.New("source and destination floor are equal")
	ErrFloorRange   = errors.New("floor out of range")
	ErrNegativeTime = errors.New("negative request time")
)

type Scenario struct {
	NumFloors  int
	TotalTicks int
	Requests   []types.Request
}

type record struct {
	Time int `yaml:"time"`
	Src  int `yaml:"src"`
	Dest int `yaml:"dest"`
	line int
}

func Load(path string) (*Scenario, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scenario: %w", err)
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(file)
	default:
		return Parse(file)
	}
}

// build validates the records and assigns IDs in time order. Records with
// equal times keep their file order.
func build(numFloors, totalTicks int, records []record) (*Scenario, error) {
	if numFloors < 1 || totalTicks < 0 {
		return nil, fmt.Errorf("%w: floors=%d ticks=%d", ErrHeader, numFloors, totalTicks)
	}
	for _, rec := range records {
		if err := validate(numFloors, rec); err != nil {
			return nil, err
		}
	}
	slices.SortStableFunc(records, func(a, b record) int { return a.Time - b.Time })

	nextID := 0
	requests := make([]types.Request, 0, len(records))
	for _, rec := range records {
		requests = append(requests, types.NewRequest(nextID, rec.Time, rec.Src, rec.Dest))
		nextID++
	}
	return &Scenario{NumFloors: numFloors, TotalTicks: totalTicks, Requests: requests}, nil
}

func validate(numFloors int, rec record) error {
	req := types.Request{Time: rec.Time, FloorSrc: rec.Src, FloorDest: rec.Dest}
	switch {
	case rec.Time < 0:
		return fmt.Errorf("line %d: %w: %d", rec.line, ErrNegativeTime, rec.Time)
	case req.IsMaintenance():
		return nil
	}
	if err := ValidateRequest(numFloors, rec.Src, rec.Dest); err != nil {
		return fmt.Errorf("line %d: %w", rec.line, err)
	}
	return nil
}

// ValidateRequest checks an ordinary passenger trip against a building of
// numFloors floors. Maintenance sentinels are not passengers and are rejected.
func ValidateRequest(numFloors, src, dest int) error {
	switch {
	case src == dest:
		return fmt.Errorf("%w: %d", ErrSameFloor, src)
	case src < 0 || src >= numFloors:
		return fmt.Errorf("%w: source %d not in [0,%d)", ErrFloorRange, src, numFloors)
	case dest < 0 || dest >= numFloors:
		return fmt.Errorf("%w: destination %d not in [0,%d)", ErrFloorRange, dest, numFloors)
	}
	return nil
}

// CheckFloors reports the first passenger that does not fit in numFloors
// floors, for when the floor count is overridden after loading.
func (sc *Scenario) CheckFloors(numFloors int) error {
	for i := range sc.Requests {
		req := &sc.Requests[i]
		if req.IsMaintenance() {
			continue
		}
		if err := ValidateRequest(numFloors, req.FloorSrc, req.FloorDest); err != nil {
			return fmt.Errorf("request %d: %w", req.ID, err)
		}
	}
	return nil
}

// Passengers returns the number of non-sentinel requests.
func (sc *Scenario) Passengers() int {
	n := 0
	for i := range sc.Requests {
		if !sc.Requests[i].IsMaintenance() {
			n++
		}
	}
	return n
}

