package schedule

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/Ayush2004sharma/MedSync-Backend/internal/httperr"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/infra/memory"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/models"
)

func TestUpdateThenGet(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	doc := uuid.New()

	get := NewGetWeeklySchedule(store)
	if _, err := get.Execute(ctx, doc); httperr.KindOf(err) != httperr.KindNotFound {
		t.Fatalf("before update: err = %v", err)
	}

	update := NewUpdateWeeklySchedule(store, nil, time.UTC)
	_, err := update.Execute(ctx, UpdateInput{
		DoctorID: doc,
		Days: map[string]models.DaySchedule{
			"mon": {Active: true, Slots: []models.Slot{{StartTime: "09:00", EndTime: "09:30"}}},
			"sat": {Active: false},
		},
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	ws, err := get.Execute(ctx, doc)
	if err != nil {
		t.Fatal(err)
	}
	tpl := ws.Schedule.Data()
	if !tpl.Mon.Active || len(tpl.Mon.Slots) != 1 || tpl.Tue.Active {
		t.Errorf("template = %+v", tpl)
	}
}

func TestUpdate_Rejects(t *testing.T) {
	update := NewUpdateWeeklySchedule(memory.NewStore(), nil, time.UTC)

	cases := map[string]map[string]models.DaySchedule{
		"unknown_day":        {"monday": {Active: true}},
		"invalid_slot_time":  {"mon": {Active: true, Slots: []models.Slot{{StartTime: "9:00", EndTime: "10:00"}}}},
		"invalid_slot_range": {"fri": {Active: true, Slots: []models.Slot{{StartTime: "11:00", EndTime: "10:00"}}}},
	}
	for code, days := range cases {
		_, err := update.Execute(context.Background(), UpdateInput{DoctorID: uuid.New(), Days: days})
		if !httperr.IsBusiness(err, code) {
			t.Errorf("%s: err = %v", code, err)
		}
	}
}

func TestUpdate_EmptyDaysSerializeSlotsAsArray(t *testing.T) {
	update := NewUpdateWeeklySchedule(memory.NewStore(), nil, time.UTC)

	ws, err := update.Execute(context.Background(), UpdateInput{
		DoctorID: uuid.New(),
		Days: map[string]models.DaySchedule{
			"mon": {Active: true, Slots: []models.Slot{{StartTime: "09:00", EndTime: "09:30"}}},
			"sun": {Active: false},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	b, err := json.Marshal(ws)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(b), "null") {
		t.Errorf("schedule json has a null: %s", b)
	}
	if !strings.Contains(string(b), `"sat":{"active":false,"slots":[]}`) {
		t.Errorf("sat not an empty array: %s", b)
	}
}

func TestUpdate_RepeatedUpdateKeepsID(t *testing.T) {
	ctx := context.Background()
	update := NewUpdateWeeklySchedule(memory.NewStore(), nil, time.UTC)
	doc := uuid.New()

	first, err := update.Execute(ctx, UpdateInput{DoctorID: doc, Days: map[string]models.DaySchedule{"mon": {Active: false}}})
	if err != nil {
		t.Fatal(err)
	}
	second, err := update.Execute(ctx, UpdateInput{DoctorID: doc, Days: map[string]models.DaySchedule{"tue": {Active: false}}})
	if err != nil {
		t.Fatal(err)
	}
	if second.ID != first.ID || !second.CreatedAt.Equal(first.CreatedAt) {
		t.Errorf("second update = %s/%v, want %s/%v", second.ID, second.CreatedAt, first.ID, first.CreatedAt)
	}
}
