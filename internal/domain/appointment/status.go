package appointment

import "github.com/Ayush2004sharma/MedSync-Backend/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusBooked    Status = "booked"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
	StatusRejected  Status = "rejected"
)

// DoctorQueue is what a doctor sees in their active list.
var DoctorQueue = []Status{StatusPending, StatusBooked}

// ===============================
// Guards
// ===============================

func InitialStatus() Status {
	return StatusPending
}

// CanDecide allows approve/reject only from pending.
func CanDecide(current Status) error {
	if current != StatusPending {
		return httperr.InvalidState("not_pending", "Only pending appointments can be approved or rejected")
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusPending && current != StatusBooked {
		return httperr.InvalidState("not_cancellable", "Only pending or booked appointments can be cancelled")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusBooked {
		return httperr.InvalidState("not_booked", "Only booked appointments can be completed")
	}
	return nil
}
