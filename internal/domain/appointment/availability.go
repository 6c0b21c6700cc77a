package appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/Ayush2004sharma/MedSync-Backend/internal/models"
)

type AvailabilityInput struct {
	DoctorID uuid.UUID
	Date     string
}

// Availability is a best-effort snapshot. Active tells "not working" apart
// from "fully booked", which both yield no slots.
type Availability struct {
	Date           time.Time     `json:"-"`
	Active         bool          `json:"active"`
	AvailableSlots []models.Slot `json:"availableSlots"`
}
