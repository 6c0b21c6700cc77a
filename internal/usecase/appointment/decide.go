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

type DecideInput struct {
	AppointmentID uuid.UUID
	DoctorID      uuid.UUID
	Approve       bool
	// Admin lifts the addressed-doctor restriction.
	Admin bool
}

type DecideAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	loc   *time.Location
}

func NewDecideAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	loc *time.Location,
) *DecideAppointment {
	return &DecideAppointment{
		repo:  repo,
		audit: audit,
		loc:   loc,
	}
}

// Execute approves or rejects a pending appointment. An approval that loses
// the slot to another booking fails with a conflict and leaves the
// appointment pending.
func (uc *DecideAppointment) Execute(
	ctx context.Context,
	in DecideInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, mapLedgerError(err, "")
	}
	if !in.Admin && ap.DoctorID != in.DoctorID {
		return nil, errAppointmentNotFound()
	}

	from := domain.Status(ap.Status)
	if err := domain.Decide(ap, in.Approve, timezone.NowIn(uc.loc)); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointmentStatus(ctx, ap, from); err != nil {
		return nil, mapLedgerError(err, AlternativeReject)
	}

	action := "appointment_rejected"
	if in.Approve {
		action = "appointment_approved"
	}
	uc.audit.Dispatch(audit.Event{
		ActorID:  &in.DoctorID,
		Action:   action,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
