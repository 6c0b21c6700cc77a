package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Ayush2004sharma/MedSync-Backend/internal/audit"
	domain "github.com/Ayush2004sharma/MedSync-Backend/internal/domain/appointment"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/models"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/timezone"
)

// CompleteAppointment closes a booked appointment. It has no HTTP route.
type CompleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	appointmentID uuid.UUID,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, mapLedgerError(err, "")
	}

	from := domain.Status(ap.Status)
	if err := domain.Complete(ap, timezone.NowIn(uc.loc)); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointmentStatus(ctx, ap, from); err != nil {
		return nil, mapLedgerError(err, "")
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
