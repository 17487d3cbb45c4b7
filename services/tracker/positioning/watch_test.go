package positioning

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fleetops/dispatchtrack/internal/pkg/models"
)

func sampleAt(lat, lng float64) models.PositionSample {
	return models.PositionSample{
		Latitude:  lat,
		Longitude: lng,
		Timestamp: time.Now().UTC(),
	}
}

func TestWatch_DeliversSamples(t *testing.T) {
	src := NewScriptedSource(
		ScriptStep{Sample: sampleAt(16.1565, 119.9806)},
	)

	var mu sync.Mutex
	var samples []models.PositionSample

	handle := Watch(src, 5*time.Millisecond,
		func(s models.PositionSample) {
			mu.Lock()
			samples = append(samples, s)
			mu.Unlock()
		},
		func(err error) {
			t.Errorf("unexpected watch error: %v", err)
		})
	defer handle.Cancel()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(samples) >= 3
	}, time.Second, time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 16.1565, samples[0].Latitude)
}

func TestWatch_FailedTickKeepsLoopAlive(t *testing.T) {
	src := NewScriptedSource(
		ScriptStep{Err: ErrUnavailable},
		ScriptStep{Sample: sampleAt(16.1565, 119.9806)},
	)

	var mu sync.Mutex
	var gotErr error
	var gotSample bool

	handle := Watch(src, 5*time.Millisecond,
		func(s models.PositionSample) {
			mu.Lock()
			gotSample = true
			mu.Unlock()
		},
		func(err error) {
			mu.Lock()
			gotErr = err
			mu.Unlock()
		})
	defer handle.Cancel()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return gotErr != nil && gotSample
	}, time.Second, time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.ErrorIs(t, gotErr, ErrUnavailable)
}

func TestWatch_NoCallbacksAfterCancel(t *testing.T) {
	src := NewScriptedSource(
		ScriptStep{Sample: sampleAt(16.1565, 119.9806)},
	)

	var mu sync.Mutex
	count := 0

	handle := Watch(src, 5*time.Millisecond,
		func(s models.PositionSample) {
			mu.Lock()
			count++
			mu.Unlock()
		},
		func(err error) {})

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return count >= 1
	}, time.Second, time.Millisecond)

	handle.Cancel()

	mu.Lock()
	after := count
	mu.Unlock()

	// Let a few intervals pass; the count must not move
	time.Sleep(50 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, after, count)
}

func TestWatchHandle_CancelIsIdempotent(t *testing.T) {
	src := NewScriptedSource(
		ScriptStep{Sample: sampleAt(16.1565, 119.9806)},
	)

	handle := Watch(src, time.Millisecond, func(models.PositionSample) {}, func(error) {})

	assert.NotPanics(t, func() {
		handle.Cancel()
		handle.Cancel()
		handle.Cancel()
	})
}

func TestScriptedSource_ExhaustedScriptRepeatsLastStep(t *testing.T) {
	src := NewScriptedSource(
		ScriptStep{Err: ErrPermissionDenied},
	)

	for i := 0; i < 3; i++ {
		_, err := src.CurrentPosition(context.Background())
		assert.ErrorIs(t, err, ErrPermissionDenied)
	}
}
