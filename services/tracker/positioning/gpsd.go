package positioning

import (
	"context"
	"math"
	"net"
	"strconv"
	"sync"
	"time"

	"github.com/stratoberry/go-gpsd"

	"github.com/fleetops/dispatchtrack/internal/pkg/logger"
	"github.com/fleetops/dispatchtrack/internal/pkg/models"
)

// gpsdReconnectDelay is the pause between reconnect attempts when the
// gpsd stream drops
const gpsdReconnectDelay = 5 * time.Second

// GPSDSource reads position fixes from a local gpsd daemon. It keeps
// one watch stream open for the lifetime of the source and hands each
// CurrentPosition caller the next usable TPV fix.
type GPSDSource struct {
	addr    string
	timeout time.Duration

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	started bool
	waiters []chan models.PositionSample
}

// NewGPSDSource creates a gpsd-backed position source
func NewGPSDSource(cfg models.GPSDConfig, timeout time.Duration) *GPSDSource {
	if timeout <= 0 {
		timeout = DefaultPositionTimeout
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &GPSDSource{
		addr:    net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port)),
		timeout: timeout,
		ctx:     ctx,
		cancel:  cancel,
	}
}

// CurrentPosition waits for the next usable fix from the gpsd stream
func (s *GPSDSource) CurrentPosition(ctx context.Context) (models.PositionSample, error) {
	var zero models.PositionSample

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	s.ensureWatching()

	waiter := make(chan models.PositionSample, 1)
	s.mu.Lock()
	s.waiters = append(s.waiters, waiter)
	s.mu.Unlock()

	select {
	case sample := <-waiter:
		return sample, nil
	case <-ctx.Done():
		s.dropWaiter(waiter)
		if ctx.Err() == context.DeadlineExceeded {
			return zero, ErrTimeout
		}
		return zero, ctx.Err()
	}
}

// Close stops the background watch loop. Pending CurrentPosition calls
// run into their own timeouts.
func (s *GPSDSource) Close() {
	s.cancel()
}

// ensureWatching starts the background stream on first use
func (s *GPSDSource) ensureWatching() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true
	go s.watchStream()
}

// watchStream keeps a gpsd watch open, reconnecting when it drops
func (s *GPSDSource) watchStream() {
	for {
		select {
		case <-s.ctx.Done():
			return
		default:
		}

		session, err := gpsd.Dial(s.addr)
		if err != nil {
			logger.Warn("Failed to connect to gpsd",
				logger.String("addr", s.addr),
				logger.Err(err))

			select {
			case <-s.ctx.Done():
				return
			case <-time.After(gpsdReconnectDelay):
				continue
			}
		}

		session.AddFilter("TPV", func(r interface{}) {
			tpv, ok := r.(*gpsd.TPVReport)
			if !ok {
				return
			}
			// Need at least a 2D fix
			if tpv.Mode < gpsd.Mode2D {
				return
			}
			s.deliver(sampleFromTPV(tpv))
		})

		// Watch returns a channel that closes when the stream ends
		done := session.Watch()

		select {
		case <-s.ctx.Done():
			// go-gpsd has no Close; the connection is torn down when
			// the process exits
			return
		case <-done:
			logger.Warn("gpsd stream ended, reconnecting",
				logger.String("addr", s.addr))
		}

		select {
		case <-s.ctx.Done():
			return
		case <-time.After(gpsdReconnectDelay):
		}
	}
}

// deliver hands a fix to every pending CurrentPosition caller
func (s *GPSDSource) deliver(sample models.PositionSample) {
	s.mu.Lock()
	waiters := s.waiters
	s.waiters = nil
	s.mu.Unlock()

	for _, w := range waiters {
		w <- sample
	}
}

// dropWaiter removes a timed-out waiter so deliver skips it
func (s *GPSDSource) dropWaiter(waiter chan models.PositionSample) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, w := range s.waiters {
		if w == waiter {
			s.waiters = append(s.waiters[:i], s.waiters[i+1:]...)
			return
		}
	}
}

// sampleFromTPV converts a gpsd TPV report into a position sample
func sampleFromTPV(tpv *gpsd.TPVReport) models.PositionSample {
	sample := models.PositionSample{
		Latitude:  tpv.Lat,
		Longitude: tpv.Lon,
		Timestamp: tpv.Time,
	}
	if sample.Timestamp.IsZero() {
		sample.Timestamp = time.Now().UTC()
	}

	if tpv.Speed > 0 {
		speed := tpv.Speed
		sample.SpeedMps = &speed
	}
	if acc := horizontalAccuracy(tpv); acc > 0 {
		sample.AccuracyM = &acc
	}

	return sample
}

// horizontalAccuracy derives a horizontal error estimate from the
// per-axis estimates gpsd reports
func horizontalAccuracy(tpv *gpsd.TPVReport) float64 {
	if tpv.Epx > 0 && tpv.Epy > 0 {
		return math.Hypot(tpv.Epx, tpv.Epy)
	}
	if tpv.Epx > 0 {
		return tpv.Epx
	}
	return tpv.Epy
}
