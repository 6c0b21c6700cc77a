package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/Ayush2004sharma/MedSync-Backend/internal/audit"
	domain "github.com/Ayush2004sharma/MedSync-Backend/internal/domain/appointment"
)

// DeleteAppointment removes the row outright. Deleting a missing id succeeds.
type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	actorID uuid.UUID,
	appointmentID uuid.UUID,
) error {

	if err := uc.repo.DeleteAppointment(ctx, appointmentID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &actorID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &appointmentID,
	})
	return nil
}
