package appointment

import (
	"context"
	"errors"
	"time"

	domain "github.com/Ayush2004sharma/MedSync-Backend/internal/domain/appointment"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/domain/schedule"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/httperr"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/models"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/timezone"
)

type GetAvailability struct {
	repo      domain.Repository
	schedules schedule.Store
	loc       *time.Location
}

func NewGetAvailability(
	repo domain.Repository,
	schedules schedule.Store,
	loc *time.Location,
) *GetAvailability {
	return &GetAvailability{
		repo:      repo,
		schedules: schedules,
		loc:       loc,
	}
}

// Execute returns the template slots of the requested day whose start time is
// not taken by a booked appointment. Pending requests do not hide a slot.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.Availability, error) {

	date, err := timezone.ParseDate(in.Date, uc.loc)
	if err != nil {
		return nil, httperr.InvalidArgument(CodeInvalidDate, "Invalid date format, expected YYYY-MM-DD")
	}

	ws, err := uc.schedules.GetWeeklySchedule(ctx, in.DoctorID)
	if err != nil {
		if errors.Is(err, schedule.ErrNotFound) {
			return nil, httperr.NotFoundErr(CodeScheduleNotFound, "Doctor schedule not found")
		}
		return nil, err
	}

	day := ws.Schedule.Data().Day(date.Weekday())
	out := &domain.Availability{
		Date:           date,
		Active:         day.Active,
		AvailableSlots: []models.Slot{},
	}
	if !day.Active || len(day.Slots) == 0 {
		return out, nil
	}

	start, end := timezone.DayBounds(date, uc.loc)
	booked, err := uc.repo.ListBookedForDay(ctx, in.DoctorID, start, end)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]struct{}, len(booked))
	for _, ap := range booked {
		taken[timezone.Clock(ap.ScheduledFor, uc.loc)] = struct{}{}
	}

	for _, sl := range day.Slots {
		if _, ok := taken[sl.StartTime]; ok {
			continue
		}
		out.AvailableSlots = append(out.AvailableSlots, sl)
	}

	return out, nil
}
