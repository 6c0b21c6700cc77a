package models

import (
	"encoding/json"
	"testing"
)

func TestDaySchedule_NilSlotsMarshalAsArray(t *testing.T) {
	b, err := json.Marshal(WeekTemplate{Mon: DaySchedule{Active: true, Slots: []Slot{{StartTime: "09:00", EndTime: "09:30"}}}})
	if err != nil {
		t.Fatal(err)
	}

	want := `{"sun":{"active":false,"slots":[]},` +
		`"mon":{"active":true,"slots":[{"startTime":"09:00","endTime":"09:30"}]},` +
		`"tue":{"active":false,"slots":[]},"wed":{"active":false,"slots":[]},` +
		`"thu":{"active":false,"slots":[]},"fri":{"active":false,"slots":[]},` +
		`"sat":{"active":false,"slots":[]}}`
	if string(b) != want {
		t.Errorf("json = %s", b)
	}

	var back WeekTemplate
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if len(back.Mon.Slots) != 1 || back.Tue.Slots == nil {
		t.Errorf("round trip = %+v", back)
	}
}
