package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/Ayush2004sharma/MedSync-Backend/internal/models"
)

var (
	ErrNotFound = errors.New("appointment not found")
	// ErrSlotTaken means the write would create a second booked appointment
	// for the same doctor and instant.
	ErrSlotTaken = errors.New("slot already booked")
	// ErrStatusChanged means the row no longer had the expected status when
	// the update ran.
	ErrStatusChanged = errors.New("appointment status changed")
)

// Repository is the booking ledger. Implementations must guarantee that at
// most one appointment per (doctor, scheduledFor) is in status booked, and
// report a violation as ErrSlotTaken.
type Repository interface {
	// -------- Create / conflict --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// FindBookedAppointment returns nil, nil when the slot is free.
	FindBookedAppointment(
		ctx context.Context,
		doctorID uuid.UUID,
		scheduledFor time.Time,
	) (*models.Appointment, error)

	// -------- State change --------
	GetAppointment(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Appointment, error)

	// UpdateAppointmentStatus writes the status and lifecycle stamps of ap
	// only if the stored status still equals from.
	UpdateAppointmentStatus(
		ctx context.Context,
		ap *models.Appointment,
		from Status,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uuid.UUID,
	) error

	// -------- Availability --------
	ListBookedForDay(
		ctx context.Context,
		doctorID uuid.UUID,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Listings --------
	ListAppointmentsForPatient(
		ctx context.Context,
		userID uuid.UUID,
	) ([]models.Appointment, error)

	ListAppointmentsForDoctor(
		ctx context.Context,
		doctorID uuid.UUID,
		statuses []Status,
	) ([]models.Appointment, error)
}
