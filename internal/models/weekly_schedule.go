package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Slot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type DaySchedule struct {
	Active bool   `json:"active"`
	Slots  []Slot `json:"slots"`
}

// MarshalJSON always writes slots as an array, also for rows stored before
// days were normalized.
func (d DaySchedule) MarshalJSON() ([]byte, error) {
	type plain DaySchedule
	if d.Slots == nil {
		d.Slots = []Slot{}
	}
	return json.Marshal(plain(d))
}

// WeekTemplate is a doctor's recurring week, keyed like the civil calendar
// (sun = 0 .. sat = 6).
type WeekTemplate struct {
	Sun DaySchedule `json:"sun"`
	Mon DaySchedule `json:"mon"`
	Tue DaySchedule `json:"tue"`
	Wed DaySchedule `json:"wed"`
	Thu DaySchedule `json:"thu"`
	Fri DaySchedule `json:"fri"`
	Sat DaySchedule `json:"sat"`
}

func (w WeekTemplate) Day(wd time.Weekday) DaySchedule {
	switch wd {
	case time.Sunday:
		return w.Sun
	case time.Monday:
		return w.Mon
	case time.Tuesday:
		return w.Tue
	case time.Wednesday:
		return w.Wed
	case time.Thursday:
		return w.Thu
	case time.Friday:
		return w.Fri
	default:
		return w.Sat
	}
}

type WeeklySchedule struct {
	ID       uuid.UUID                        `gorm:"type:uuid;primaryKey" json:"id"`
	DoctorID uuid.UUID                        `gorm:"type:uuid;uniqueIndex;not null" json:"doctor"`
	Schedule datatypes.JSONType[WeekTemplate] `gorm:"type:jsonb;not null" json:"schedule"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
