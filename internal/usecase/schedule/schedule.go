package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/Ayush2004sharma/MedSync-Backend/internal/audit"
	domain "github.com/Ayush2004sharma/MedSync-Backend/internal/domain/schedule"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/httperr"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/models"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/timezone"
)

const (
	CodeScheduleNotFound = "schedule_not_found"
	CodeUnknownDay       = "unknown_day"
)

type GetWeeklySchedule struct {
	store domain.Store
}

func NewGetWeeklySchedule(store domain.Store) *GetWeeklySchedule {
	return &GetWeeklySchedule{store: store}
}

func (uc *GetWeeklySchedule) Execute(
	ctx context.Context,
	doctorID uuid.UUID,
) (*models.WeeklySchedule, error) {

	ws, err := uc.store.GetWeeklySchedule(ctx, doctorID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.NotFoundErr(CodeScheduleNotFound, "Doctor schedule not found")
		}
		return nil, err
	}
	return ws, nil
}

// UpdateWeeklySchedule replaces the whole template. Days left out of Days are
// stored as inactive.
type UpdateWeeklySchedule struct {
	store domain.Store
	audit *audit.Dispatcher
	loc   *time.Location
}

type UpdateInput struct {
	DoctorID uuid.UUID
	Days     map[string]models.DaySchedule
}

func NewUpdateWeeklySchedule(
	store domain.Store,
	audit *audit.Dispatcher,
	loc *time.Location,
) *UpdateWeeklySchedule {
	return &UpdateWeeklySchedule{
		store: store,
		audit: audit,
		loc:   loc,
	}
}

func (uc *UpdateWeeklySchedule) Execute(
	ctx context.Context,
	in UpdateInput,
) (*models.WeeklySchedule, error) {

	tpl, err := templateFromDays(in.Days)
	if err != nil {
		return nil, err
	}
	if err := domain.Validate(tpl); err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.loc)
	ws := &models.WeeklySchedule{
		DoctorID:  in.DoctorID,
		Schedule:  datatypes.NewJSONType(tpl),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.store.UpsertWeeklySchedule(ctx, ws); err != nil {
		return nil, err
	}

	active := make(map[string][]string, len(domain.DayKeys))
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		day := tpl.Day(wd)
		if !day.Active {
			continue
		}
		slots := make([]string, 0, len(day.Slots))
		for _, sl := range day.Slots {
			slots = append(slots, domain.FormatSlot(sl))
		}
		active[domain.DayKey(wd)] = slots
	}
	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.DoctorID,
		Action:   "schedule_updated",
		Entity:   "weekly_schedule",
		EntityID: &ws.ID,
		Metadata: map[string]any{"activeDays": active},
	})

	return ws, nil
}

func templateFromDays(days map[string]models.DaySchedule) (models.WeekTemplate, error) {
	var tpl models.WeekTemplate
	for key, day := range days {
		switch key {
		case "sun":
			tpl.Sun = day
		case "mon":
			tpl.Mon = day
		case "tue":
			tpl.Tue = day
		case "wed":
			tpl.Wed = day
		case "thu":
			tpl.Thu = day
		case "fri":
			tpl.Fri = day
		case "sat":
			tpl.Sat = day
		default:
			return tpl, httperr.InvalidArgument(CodeUnknownDay, fmt.Sprintf("unknown day %q, expected sun..sat", key))
		}
	}

	for _, day := range []*models.DaySchedule{&tpl.Sun, &tpl.Mon, &tpl.Tue, &tpl.Wed, &tpl.Thu, &tpl.Fri, &tpl.Sat} {
		if day.Slots == nil {
			day.Slots = []models.Slot{}
		}
	}
	return tpl, nil
}
