package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/Ayush2004sharma/MedSync-Backend/internal/infra/memory"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/models"
)

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

// countingStore counts reads that reach the backing store.
type countingStore struct {
	*memory.Store

	mu    sync.Mutex
	reads int
}

func (s *countingStore) GetWeeklySchedule(ctx context.Context, doctorID uuid.UUID) (*models.WeeklySchedule, error) {
	s.mu.Lock()
	s.reads++
	s.mu.Unlock()
	return s.Store.GetWeeklySchedule(ctx, doctorID)
}

func (s *countingStore) readCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads
}

func TestScheduleCache_HitAndInvalidate(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newMiniRedis(t)
	store := &countingStore{Store: memory.NewStore()}
	c := NewScheduleCache(store, rdb, 10*time.Minute, nil)

	doc := uuid.New()
	key := scheduleKey(doc)
	monday := models.WeekTemplate{
		Mon: models.DaySchedule{Active: true, Slots: []models.Slot{{StartTime: "09:00", EndTime: "09:30"}}},
	}
	if err := c.UpsertWeeklySchedule(ctx, &models.WeeklySchedule{DoctorID: doc, Schedule: datatypes.NewJSONType(monday)}); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	first, err := c.GetWeeklySchedule(ctx, doc)
	if err != nil {
		t.Fatalf("first get: %v", err)
	}
	if store.readCount() != 1 {
		t.Fatalf("store reads = %d, want 1", store.readCount())
	}
	if !mr.Exists(key) {
		t.Fatalf("%s not cached after a miss", key)
	}
	if ttl := mr.TTL(key); ttl != 10*time.Minute {
		t.Errorf("ttl = %v, want 10m", ttl)
	}

	second, err := c.GetWeeklySchedule(ctx, doc)
	if err != nil {
		t.Fatalf("second get: %v", err)
	}
	if store.readCount() != 1 {
		t.Fatalf("store reads = %d, want the second read served from redis", store.readCount())
	}
	if second.ID != first.ID || second.DoctorID != doc {
		t.Errorf("cached row = %+v, want id %s", second, first.ID)
	}
	slots := second.Schedule.Data().Mon.Slots
	if !second.Schedule.Data().Mon.Active || len(slots) != 1 || slots[0].StartTime != "09:00" {
		t.Errorf("cached monday = %+v", second.Schedule.Data().Mon)
	}

	tuesday := models.WeekTemplate{
		Tue: models.DaySchedule{Active: true, Slots: []models.Slot{{StartTime: "14:00", EndTime: "15:00"}}},
	}
	if err := c.UpsertWeeklySchedule(ctx, &models.WeeklySchedule{DoctorID: doc, Schedule: datatypes.NewJSONType(tuesday)}); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if mr.Exists(key) {
		t.Fatal("upsert left a stale cache entry")
	}

	third, err := c.GetWeeklySchedule(ctx, doc)
	if err != nil {
		t.Fatalf("third get: %v", err)
	}
	if store.readCount() != 2 {
		t.Errorf("store reads = %d, want 2", store.readCount())
	}
	if third.Schedule.Data().Mon.Active || !third.Schedule.Data().Tue.Active {
		t.Errorf("third read = %+v, want the updated template", third.Schedule.Data())
	}
}

func TestScheduleCache_UnreadableEntryFallsBack(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newMiniRedis(t)
	store := &countingStore{Store: memory.NewStore()}
	c := NewScheduleCache(store, rdb, time.Minute, nil)

	doc := uuid.New()
	_ = store.UpsertWeeklySchedule(ctx, &models.WeeklySchedule{DoctorID: doc})
	if err := mr.Set(scheduleKey(doc), "{not json"); err != nil {
		t.Fatal(err)
	}

	got, err := c.GetWeeklySchedule(ctx, doc)
	if err != nil || got.DoctorID != doc {
		t.Fatalf("get = %+v, %v", got, err)
	}
	if store.readCount() != 1 {
		t.Errorf("store reads = %d, want 1", store.readCount())
	}
}

func TestWindowLimiter_FixedWindow(t *testing.T) {
	ctx := context.Background()
	mr, rdb := newMiniRedis(t)
	l := NewWindowLimiter(rdb, 2, time.Minute)

	for i := 0; i < 2; i++ {
		ok, err := l.Allow(ctx, "10.0.0.1")
		if err != nil || !ok {
			t.Fatalf("request %d: ok=%v err=%v", i, ok, err)
		}
	}
	if ok, _ := l.Allow(ctx, "10.0.0.1"); ok {
		t.Fatal("third request in the window was allowed")
	}
	if ok, _ := l.Allow(ctx, "10.0.0.2"); !ok {
		t.Fatal("another client shares the window")
	}

	if ttl := mr.TTL(rateLimitPrefix + "10.0.0.1"); ttl <= 0 || ttl > time.Minute {
		t.Errorf("ttl = %v, want an expiry within the window", ttl)
	}

	mr.FastForward(time.Minute)
	if ok, err := l.Allow(ctx, "10.0.0.1"); err != nil || !ok {
		t.Fatalf("after window: ok=%v err=%v", ok, err)
	}
}
