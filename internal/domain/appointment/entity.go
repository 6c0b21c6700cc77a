package appointment

import (
	"time"

	"github.com/Ayush2004sharma/MedSync-Backend/internal/models"
)

// The actions below mutate ap in memory only. Callers persist the result
// with Repository.UpdateAppointmentStatus, passing the status read before
// the change.

func Decide(ap *models.Appointment, approve bool, now time.Time) error {
	if err := CanDecide(Status(ap.Status)); err != nil {
		return err
	}

	if approve {
		ap.Status = string(StatusBooked)
	} else {
		ap.Status = string(StatusRejected)
	}
	ap.DecidedAt = &now
	ap.UpdatedAt = now
	return nil
}

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	ap.UpdatedAt = now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	ap.UpdatedAt = now
	return nil
}
