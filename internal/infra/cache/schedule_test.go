package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/Ayush2004sharma/MedSync-Backend/internal/domain/schedule"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/infra/memory"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/models"
)

// unreachable points at a port nothing listens on, so every command fails
// fast with a dial error.
func unreachable(t *testing.T) *redis.Client {
	t.Helper()
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

func TestScheduleCache_FallsBackWhenRedisDown(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	c := NewScheduleCache(store, unreachable(t), time.Minute, nil)

	doc := uuid.New()
	ws := &models.WeeklySchedule{
		DoctorID: doc,
		Schedule: datatypes.NewJSONType(models.WeekTemplate{
			Mon: models.DaySchedule{Active: true, Slots: []models.Slot{{StartTime: "09:00", EndTime: "10:00"}}},
		}),
	}
	if err := c.UpsertWeeklySchedule(ctx, ws); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, err := c.GetWeeklySchedule(ctx, doc)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if slots := got.Schedule.Data().Mon.Slots; len(slots) != 1 || slots[0].StartTime != "09:00" {
		t.Errorf("mon slots = %+v", slots)
	}
}

func TestScheduleCache_MissingScheduleIsNotFound(t *testing.T) {
	c := NewScheduleCache(memory.NewStore(), unreachable(t), time.Minute, nil)

	_, err := c.GetWeeklySchedule(context.Background(), uuid.New())
	if !errors.Is(err, schedule.ErrNotFound) {
		t.Fatalf("err = %v, want schedule.ErrNotFound", err)
	}
}

func TestWindowLimiter_ReportsRedisError(t *testing.T) {
	l := NewWindowLimiter(unreachable(t), 1, time.Minute)
	if _, err := l.Allow(context.Background(), "1.2.3.4"); err == nil {
		t.Fatal("expected an error from an unreachable redis")
	}
}
