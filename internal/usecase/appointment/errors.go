package appointment

import (
	"errors"

	domain "github.com/Ayush2004sharma/MedSync-Backend/internal/domain/appointment"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/httperr"
)

const (
	CodeAppointmentNotFound = "appointment_not_found"
	CodeScheduleNotFound    = "schedule_not_found"
	CodeSlotAlreadyBooked   = "slot_already_booked"
	CodeStatusChanged       = "status_changed"
	CodeInvalidDate         = "invalid_date"
)

// AlternativeReject is offered when an approval loses the slot to another
// booking.
const AlternativeReject = "reject"

func errAppointmentNotFound() error {
	return httperr.NotFoundErr(CodeAppointmentNotFound, "Appointment not found")
}

func errSlotBooked(alternative string) error {
	return httperr.Conflict(CodeSlotAlreadyBooked, "Slot already booked", alternative)
}

// mapLedgerError turns ledger sentinels into business errors. Anything else
// is returned unchanged and ends up as an internal error.
func mapLedgerError(err error, alternative string) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return errAppointmentNotFound()
	case errors.Is(err, domain.ErrSlotTaken):
		return errSlotBooked(alternative)
	case errors.Is(err, domain.ErrStatusChanged):
		return httperr.InvalidState(CodeStatusChanged, "Appointment was modified concurrently, reload and retry")
	}
	return err
}
