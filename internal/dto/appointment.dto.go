package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/Ayush2004sharma/MedSync-Backend/internal/models"
)

// Listings embed the counterpart in place of its id.

type DoctorRef struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name,omitempty"`
	Specialty string    `json:"specialty,omitempty"`
}

type PatientRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name,omitempty"`
	Email string    `json:"email,omitempty"`
}

type PatientAppointmentDTO struct {
	ID           uuid.UUID `json:"id"`
	User         uuid.UUID `json:"user"`
	Doctor       DoctorRef `json:"doctor"`
	ScheduledFor time.Time `json:"scheduledFor"`
	Status       string    `json:"status"`
	Notes        string    `json:"notes"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type DoctorAppointmentDTO struct {
	ID           uuid.UUID  `json:"id"`
	User         PatientRef `json:"user"`
	Doctor       uuid.UUID  `json:"doctor"`
	ScheduledFor time.Time  `json:"scheduledFor"`
	Status       string     `json:"status"`
	Notes        string     `json:"notes"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

func ForPatient(apps []models.Appointment) []PatientAppointmentDTO {
	out := make([]PatientAppointmentDTO, 0, len(apps))
	for _, ap := range apps {
		ref := DoctorRef{ID: ap.DoctorID}
		if ap.Doctor != nil {
			ref.Name = ap.Doctor.Name
			ref.Specialty = ap.Doctor.Specialty
		}
		out = append(out, PatientAppointmentDTO{
			ID:           ap.ID,
			User:         ap.UserID,
			Doctor:       ref,
			ScheduledFor: ap.ScheduledFor,
			Status:       ap.Status,
			Notes:        ap.Notes,
			CreatedAt:    ap.CreatedAt,
			UpdatedAt:    ap.UpdatedAt,
		})
	}
	return out
}

func ForDoctor(apps []models.Appointment) []DoctorAppointmentDTO {
	out := make([]DoctorAppointmentDTO, 0, len(apps))
	for _, ap := range apps {
		ref := PatientRef{ID: ap.UserID}
		if ap.Patient != nil {
			ref.Name = ap.Patient.Name
			ref.Email = ap.Patient.Email
		}
		out = append(out, DoctorAppointmentDTO{
			ID:           ap.ID,
			User:         ref,
			Doctor:       ap.DoctorID,
			ScheduledFor: ap.ScheduledFor,
			Status:       ap.Status,
			Notes:        ap.Notes,
			CreatedAt:    ap.CreatedAt,
			UpdatedAt:    ap.UpdatedAt,
		})
	}
	return out
}
