package schedule

import (
	"fmt"
	"time"

	"github.com/Ayush2004sharma/MedSync-Backend/internal/httperr"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/models"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/validators"
)

// DayKeys follows time.Weekday: index 0 is Sunday.
var DayKeys = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

func DayKey(wd time.Weekday) string {
	return DayKeys[wd]
}

// Validate checks every slot is HH:MM with start before end. Overlapping
// slots are accepted.
func Validate(w models.WeekTemplate) error {
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		day := w.Day(wd)
		for i, sl := range day.Slots {
			if !validators.IsClock(sl.StartTime) || !validators.IsClock(sl.EndTime) {
				return httperr.InvalidArgument(
					"invalid_slot_time",
					fmt.Sprintf("%s slot %d: times must be HH:MM", DayKey(wd), i),
				)
			}
			if !validators.ClockBefore(sl.StartTime, sl.EndTime) {
				return httperr.InvalidArgument(
					"invalid_slot_range",
					fmt.Sprintf("%s slot %d: startTime must be before endTime", DayKey(wd), i),
				)
			}
		}
	}
	return nil
}

// FormatSlot renders a slot as "HH:MM - HH:MM".
func FormatSlot(sl models.Slot) string {
	return sl.StartTime + " - " + sl.EndTime
}
