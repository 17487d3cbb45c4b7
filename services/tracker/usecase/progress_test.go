package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/dispatchtrack/internal/pkg/models"
)

func fourStopRun() []models.Stop {
	return []models.Stop{
		{OrderID: "ord-1", SequenceNo: 1, Status: models.StopStatusDelivered, StoreName: "Magic Mart"},
		{OrderID: "ord-2", SequenceNo: 2, Status: models.StopStatusDelivered, StoreName: "CSI Warehouse"},
		{OrderID: "ord-3", SequenceNo: 3, Status: models.StopStatusInTransit, StoreName: "Seaside Grocers"},
		{OrderID: "ord-4", SequenceNo: 4, Status: models.StopStatusDispatched, StoreName: "Poblacion Sari-Sari"},
	}
}

func TestBuildTripProgress_MidTrip(t *testing.T) {
	progress := BuildTripProgress("trip-1", fourStopRun())

	assert.Equal(t, "trip-1", progress.TripID)
	assert.Equal(t, 4, progress.TotalStops)
	assert.Equal(t, 50, progress.PercentComplete)

	require.NotNil(t, progress.CurrentStop)
	assert.Equal(t, "ord-3", progress.CurrentStop.OrderID)

	require.Len(t, progress.UpcomingStops, 1)
	assert.Equal(t, "ord-4", progress.UpcomingStops[0].OrderID)

	require.Len(t, progress.CompletedStops, 2)
	assert.Equal(t, "ord-1", progress.CompletedStops[0].OrderID)
	assert.Equal(t, "ord-2", progress.CompletedStops[1].OrderID)
}

func TestBuildTripProgress_EmptyStopList(t *testing.T) {
	progress := BuildTripProgress("trip-1", nil)

	assert.Equal(t, 0, progress.TotalStops)
	assert.Equal(t, 0, progress.PercentComplete)
	assert.Nil(t, progress.CurrentStop)
	assert.Empty(t, progress.UpcomingStops)
	assert.Empty(t, progress.CompletedStops)
}

func TestBuildTripProgress_UnorderedInput(t *testing.T) {
	stops := fourStopRun()
	// Snapshots carry no ordering guarantee
	stops[0], stops[3] = stops[3], stops[0]
	stops[1], stops[2] = stops[2], stops[1]

	progress := BuildTripProgress("trip-1", stops)

	require.NotNil(t, progress.CurrentStop)
	assert.Equal(t, "ord-3", progress.CurrentStop.OrderID)
	require.Len(t, progress.CompletedStops, 2)
	assert.Equal(t, "ord-1", progress.CompletedStops[0].OrderID)
}

func TestBuildTripProgress_UpcomingPreviewIsCapped(t *testing.T) {
	stops := []models.Stop{
		{OrderID: "ord-1", SequenceNo: 1, Status: models.StopStatusInTransit},
		{OrderID: "ord-2", SequenceNo: 2, Status: models.StopStatusDispatched},
		{OrderID: "ord-3", SequenceNo: 3, Status: models.StopStatusDispatched},
		{OrderID: "ord-4", SequenceNo: 4, Status: models.StopStatusDispatched},
		{OrderID: "ord-5", SequenceNo: 5, Status: models.StopStatusDispatched},
	}

	progress := BuildTripProgress("trip-1", stops)

	require.Len(t, progress.UpcomingStops, UpcomingStopsPreview)
	assert.Equal(t, "ord-2", progress.UpcomingStops[0].OrderID)
	assert.Equal(t, "ord-4", progress.UpcomingStops[2].OrderID)
}

func TestBuildTripProgress_AtStoreStopIsCurrent(t *testing.T) {
	stops := []models.Stop{
		{OrderID: "ord-1", SequenceNo: 1, Status: models.StopStatusDelivered},
		{OrderID: "ord-2", SequenceNo: 2, Status: models.StopStatusAtStore},
	}

	progress := BuildTripProgress("trip-1", stops)

	require.NotNil(t, progress.CurrentStop)
	assert.Equal(t, "ord-2", progress.CurrentStop.OrderID)
	assert.Empty(t, progress.UpcomingStops)
}

func TestBuildTripProgress_AllDelivered(t *testing.T) {
	stops := []models.Stop{
		{OrderID: "ord-1", SequenceNo: 1, Status: models.StopStatusDelivered},
		{OrderID: "ord-2", SequenceNo: 2, Status: models.StopStatusDelivered},
	}

	progress := BuildTripProgress("trip-1", stops)

	assert.Equal(t, 100, progress.PercentComplete)
	assert.Nil(t, progress.CurrentStop)
	assert.Empty(t, progress.UpcomingStops)
}

func TestBuildTripProgress_PercentIsMonotonic(t *testing.T) {
	stops := fourStopRun()

	previous := -1
	for range stops {
		progress := BuildTripProgress("trip-1", stops)
		assert.GreaterOrEqual(t, progress.PercentComplete, previous)
		previous = progress.PercentComplete

		// Deliver the next stop and re-derive
		for j := range stops {
			if stops[j].Status != models.StopStatusDelivered {
				stops[j].Status = models.StopStatusDelivered
				break
			}
		}
	}

	final := BuildTripProgress("trip-1", stops)
	assert.Equal(t, 100, final.PercentComplete)
}

func TestCurrentStop_NoneInTransit(t *testing.T) {
	stops := []models.Stop{
		{OrderID: "ord-1", SequenceNo: 1, Status: models.StopStatusDispatched},
	}

	assert.Nil(t, CurrentStop(stops))
}
