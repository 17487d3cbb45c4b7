package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/fleetops/dispatchtrack/internal/pkg/constants"
	"github.com/fleetops/dispatchtrack/internal/pkg/database"
	"github.com/fleetops/dispatchtrack/internal/pkg/models"
	"github.com/fleetops/dispatchtrack/internal/utils"
)

// DefaultHistoryLimit caps the breadcrumb history kept per trip
const DefaultHistoryLimit = 100

// CacheRepository implements the tracker.CacheRepo interface on Redis
type CacheRepository struct {
	redis        *database.RedisClient
	historyLimit int
	ttl          time.Duration
}

// NewCacheRepository creates a new cache repository. Keys expire after
// ttl so a crashed agent leaves no permanently stale mirror behind.
func NewCacheRepository(redis *database.RedisClient, historyLimit int, ttl time.Duration) *CacheRepository {
	if historyLimit <= 0 {
		historyLimit = DefaultHistoryLimit
	}
	return &CacheRepository{
		redis:        redis,
		historyLimit: historyLimit,
		ttl:          ttl,
	}
}

// SaveLastPosition stores the most recent sample for a trip as a hash,
// geohash included so map consumers can bucket without recomputing
func (r *CacheRepository) SaveLastPosition(ctx context.Context, tripID string, sample models.PositionSample) error {
	key := fmt.Sprintf(constants.KeyTripLastPosition, tripID)

	fields := map[string]interface{}{
		constants.FieldLatitude:  sample.Latitude,
		constants.FieldLongitude: sample.Longitude,
		constants.FieldTimestamp: models.FormatTime(sample.Timestamp),
		constants.FieldGeohash:   utils.EncodeGeohash(sample.Point()),
	}
	if sample.SpeedMps != nil {
		fields[constants.FieldSpeed] = *sample.SpeedMps
	}
	if sample.AccuracyM != nil {
		fields[constants.FieldAccuracy] = *sample.AccuracyM
	}

	if err := r.redis.HSet(ctx, key, fields); err != nil {
		return fmt.Errorf("failed to save last position: %w", err)
	}
	return r.redis.Expire(ctx, key, r.ttl)
}

// GetLastPosition returns the most recent sample for a trip, or nil if
// none is cached
func (r *CacheRepository) GetLastPosition(ctx context.Context, tripID string) (*models.PositionSample, error) {
	key := fmt.Sprintf(constants.KeyTripLastPosition, tripID)

	fields, err := r.redis.HGetAll(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get last position: %w", err)
	}
	if len(fields) == 0 {
		return nil, nil
	}

	sample := &models.PositionSample{}
	if sample.Latitude, err = strconv.ParseFloat(fields[constants.FieldLatitude], 64); err != nil {
		return nil, fmt.Errorf("corrupt latitude in cache: %w", err)
	}
	if sample.Longitude, err = strconv.ParseFloat(fields[constants.FieldLongitude], 64); err != nil {
		return nil, fmt.Errorf("corrupt longitude in cache: %w", err)
	}
	if sample.Timestamp, err = models.ParseTime(fields[constants.FieldTimestamp]); err != nil {
		return nil, fmt.Errorf("corrupt timestamp in cache: %w", err)
	}
	if raw, ok := fields[constants.FieldSpeed]; ok {
		speed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt speed in cache: %w", err)
		}
		sample.SpeedMps = &speed
	}
	if raw, ok := fields[constants.FieldAccuracy]; ok {
		accuracy, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt accuracy in cache: %w", err)
		}
		sample.AccuracyM = &accuracy
	}

	return sample, nil
}

// AppendHistory prepends a sample to the trip's breadcrumb list and
// trims it to the configured limit
func (r *CacheRepository) AppendHistory(ctx context.Context, tripID string, sample models.PositionSample) error {
	key := fmt.Sprintf(constants.KeyTripHistory, tripID)

	payload, err := json.Marshal(sample)
	if err != nil {
		return fmt.Errorf("failed to marshal sample: %w", err)
	}

	if err := r.redis.LPush(ctx, key, payload); err != nil {
		return fmt.Errorf("failed to append history: %w", err)
	}
	if err := r.redis.LTrim(ctx, key, 0, int64(r.historyLimit-1)); err != nil {
		return fmt.Errorf("failed to trim history: %w", err)
	}
	return r.redis.Expire(ctx, key, r.ttl)
}

// GetHistory returns up to limit recent samples, newest first
func (r *CacheRepository) GetHistory(ctx context.Context, tripID string, limit int) ([]models.PositionSample, error) {
	if limit <= 0 || limit > r.historyLimit {
		limit = r.historyLimit
	}
	key := fmt.Sprintf(constants.KeyTripHistory, tripID)

	entries, err := r.redis.LRange(ctx, key, 0, int64(limit-1))
	if err != nil {
		return nil, fmt.Errorf("failed to get history: %w", err)
	}

	samples := make([]models.PositionSample, 0, len(entries))
	for _, entry := range entries {
		var sample models.PositionSample
		if err := json.Unmarshal([]byte(entry), &sample); err != nil {
			return nil, fmt.Errorf("corrupt history entry: %w", err)
		}
		samples = append(samples, sample)
	}
	return samples, nil
}

// SaveSessionStatus mirrors the session status for console polling
func (r *CacheRepository) SaveSessionStatus(ctx context.Context, status models.SessionStatus) error {
	key := fmt.Sprintf(constants.KeyTripSession, status.TripID)

	payload, err := json.Marshal(status)
	if err != nil {
		return fmt.Errorf("failed to marshal session status: %w", err)
	}
	if err := r.redis.Set(ctx, key, payload, r.ttl); err != nil {
		return fmt.Errorf("failed to mirror session status: %w", err)
	}
	return nil
}

// GetSessionStatus returns the mirrored session status for a trip
func (r *CacheRepository) GetSessionStatus(ctx context.Context, tripID string) (*models.SessionStatus, error) {
	key := fmt.Sprintf(constants.KeyTripSession, tripID)

	payload, err := r.redis.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("no mirrored session status: %w", err)
	}

	var status models.SessionStatus
	if err := json.Unmarshal([]byte(payload), &status); err != nil {
		return nil, fmt.Errorf("corrupt session status in cache: %w", err)
	}
	return &status, nil
}
