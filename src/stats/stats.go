package stats

import (
	"fmt"

	"elevsim/src/types"

	"github.com/google/uuid"
)

// Report summarises a run from the final request flags.
type Report struct {
	RunID     uuid.UUID
	Total     int
	Delivered int
	Riding    int
	Waiting   int
	MeanTrip  float64
	MaxTrip   int
}

// Compute derives a report from requests. Maintenance sentinels are ignored.
func Compute(runID uuid.UUID, requests []types.Request) Report {
	report := Report{RunID: runID}
	sum := 0
	for i := range requests {
		req := &requests[i]
		if req.IsMaintenance() {
			continue
		}
		report.Total++
		switch {
		case req.Serviced:
			report.Delivered++
			trip := req.TripTime()
			sum += trip
			report.MaxTrip = max(report.MaxTrip, trip)
		case req.PickedUp:
			report.Riding++
		default:
			report.Waiting++
		}
	}
	if report.Delivered > 0 {
		report.MeanTrip = float64(sum) / float64(report.Delivered)
	}
	return report
}

func (r Report) Complete() bool { return r.Delivered == r.Total }

func (r Report) String() string {
	return fmt.Sprintf("run %s: delivered %d/%d (riding %d, waiting %d), trip mean %.2f max %d",
		r.RunID, r.Delivered, r.Total, r.Riding, r.Waiting, r.MeanTrip, r.MaxTrip)
}
