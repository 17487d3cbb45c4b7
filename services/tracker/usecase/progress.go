package usecase

import (
	"math"
	"sort"

	"github.com/fleetops/dispatchtrack/internal/pkg/models"
)

// UpcomingStopsPreview caps how many upcoming stops the console shows
const UpcomingStopsPreview = 3

// BuildTripProgress derives the progress view from a trip's stop list.
// Pure derivation; recomputed on every snapshot refresh.
func BuildTripProgress(tripID string, stops []models.Stop) models.TripProgress {
	progress := models.TripProgress{
		TripID:         tripID,
		UpcomingStops:  []models.Stop{},
		CompletedStops: []models.Stop{},
		TotalStops:     len(stops),
	}

	if len(stops) == 0 {
		return progress
	}

	ordered := make([]models.Stop, len(stops))
	copy(ordered, stops)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SequenceNo < ordered[j].SequenceNo
	})

	for i := range ordered {
		stop := ordered[i]
		switch stop.Status {
		case models.StopStatusInTransit, models.StopStatusAtStore:
			if progress.CurrentStop == nil {
				current := stop
				progress.CurrentStop = &current
			}
		case models.StopStatusDelivered:
			progress.CompletedStops = append(progress.CompletedStops, stop)
		}
	}

	for _, stop := range ordered {
		if len(progress.UpcomingStops) == UpcomingStopsPreview {
			break
		}
		if stop.Status != models.StopStatusDispatched && stop.Status != models.StopStatusInTransit {
			continue
		}
		if progress.CurrentStop != nil && stop.OrderID == progress.CurrentStop.OrderID {
			continue
		}
		progress.UpcomingStops = append(progress.UpcomingStops, stop)
	}

	progress.PercentComplete = int(math.Round(100 * float64(len(progress.CompletedStops)) / float64(len(ordered))))

	return progress
}

// CurrentStop returns the stop the mover is heading to, or nil
func CurrentStop(stops []models.Stop) *models.Stop {
	progress := BuildTripProgress("", stops)
	return progress.CurrentStop
}
