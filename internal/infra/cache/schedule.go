package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Ayush2004sharma/MedSync-Backend/internal/domain/schedule"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/models"
)

const scheduleKeyPrefix = "schedule:doctor:"

func scheduleKey(doctorID uuid.UUID) string {
	return scheduleKeyPrefix + doctorID.String()
}

// ScheduleCache is a cache-aside layer over a schedule.Store. Redis failures
// are logged and the backing store answers instead.
type ScheduleCache struct {
	next schedule.Store
	rdb  *redis.Client
	ttl  time.Duration
	log  *zap.Logger
}

func NewScheduleCache(next schedule.Store, rdb *redis.Client, ttl time.Duration, log *zap.Logger) *ScheduleCache {
	if log == nil {
		log = zap.NewNop()
	}
	return &ScheduleCache{next: next, rdb: rdb, ttl: ttl, log: log}
}

func (c *ScheduleCache) GetWeeklySchedule(ctx context.Context, doctorID uuid.UUID) (*models.WeeklySchedule, error) {
	key := scheduleKey(doctorID)

	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var ws models.WeeklySchedule
		if jerr := json.Unmarshal(raw, &ws); jerr == nil {
			return &ws, nil
		}
		c.log.Warn("schedule cache entry unreadable", zap.String("key", key))
	case !errors.Is(err, redis.Nil):
		c.log.Warn("schedule cache read failed", zap.String("key", key), zap.Error(err))
	}

	ws, err := c.next.GetWeeklySchedule(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	if b, jerr := json.Marshal(ws); jerr == nil {
		if serr := c.rdb.Set(ctx, key, b, c.ttl).Err(); serr != nil {
			c.log.Warn("schedule cache write failed", zap.String("key", key), zap.Error(serr))
		}
	}
	return ws, nil
}

// UpsertWeeklySchedule writes through and drops the cached copy.
func (c *ScheduleCache) UpsertWeeklySchedule(ctx context.Context, ws *models.WeeklySchedule) error {
	if err := c.next.UpsertWeeklySchedule(ctx, ws); err != nil {
		return err
	}

	key := scheduleKey(ws.DoctorID)
	if err := c.rdb.Del(ctx, key).Err(); err != nil {
		c.log.Warn("schedule cache invalidate failed", zap.String("key", key), zap.Error(err))
	}
	return nil
}

var _ schedule.Store = (*ScheduleCache)(nil)
