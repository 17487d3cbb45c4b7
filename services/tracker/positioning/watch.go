package positioning

import (
	"context"
	"sync"
	"time"
)

// WatchHandle cancels a running watch loop. The zero value is not
// usable; handles are produced by Watch.
type WatchHandle struct {
	cancel context.CancelFunc
	done   chan struct{}
	once   sync.Once
}

// Cancel stops the watch loop and blocks until it has fully exited.
// After Cancel returns no further callbacks fire. Cancel is idempotent.
// It must not be called from inside a watch callback.
func (h *WatchHandle) Cancel() {
	h.once.Do(func() {
		h.cancel()
		<-h.done
	})
}

// Watch starts a repeating sampling loop against the source at the given
// cadence. onSample fires once per successful read, onError on each
// failure; a failed tick does not terminate the loop.
func Watch(src Source, interval time.Duration, onSample SampleFunc, onError ErrorFunc) *WatchHandle {
	ctx, cancel := context.WithCancel(context.Background())
	handle := &WatchHandle{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(handle.done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}

			// Bound each read so a slow device cannot outlive its tick
			tickCtx, tickCancel := context.WithTimeout(ctx, interval)
			sample, err := src.CurrentPosition(tickCtx)
			tickCancel()

			// Cancellation may race a completed read; never deliver
			// callbacks once the loop has been told to stop.
			if ctx.Err() != nil {
				return
			}

			if err != nil {
				onError(err)
				continue
			}
			onSample(sample)
		}
	}()

	return handle
}
