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

type CancelInput struct {
	AppointmentID uuid.UUID
	// ActorID must be the patient or the doctor of the appointment unless
	// Admin is set.
	ActorID uuid.UUID
	Admin   bool
}

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	in CancelInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, mapLedgerError(err, "")
	}
	if !in.Admin && ap.UserID != in.ActorID && ap.DoctorID != in.ActorID {
		return nil, errAppointmentNotFound()
	}

	from := domain.Status(ap.Status)
	if err := domain.Cancel(ap, timezone.NowIn(uc.loc)); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointmentStatus(ctx, ap, from); err != nil {
		return nil, mapLedgerError(err, "")
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.ActorID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{"from": string(from)},
	})

	return ap, nil
}
