package appointment

import (
	"context"

	"github.com/google/uuid"

	domain "github.com/Ayush2004sharma/MedSync-Backend/internal/domain/appointment"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/models"
)

type ListPatientAppointments struct {
	repo domain.Repository
}

func NewListPatientAppointments(repo domain.Repository) *ListPatientAppointments {
	return &ListPatientAppointments{repo: repo}
}

// Execute returns every appointment of the patient, any status, with the
// doctor attached.
func (uc *ListPatientAppointments) Execute(
	ctx context.Context,
	userID uuid.UUID,
) ([]models.Appointment, error) {
	return uc.repo.ListAppointmentsForPatient(ctx, userID)
}

type ListDoctorAppointments struct {
	repo domain.Repository
}

func NewListDoctorAppointments(repo domain.Repository) *ListDoctorAppointments {
	return &ListDoctorAppointments{repo: repo}
}

// Execute returns the doctor's pending and booked appointments with the
// patient attached.
func (uc *ListDoctorAppointments) Execute(
	ctx context.Context,
	doctorID uuid.UUID,
) ([]models.Appointment, error) {
	return uc.repo.ListAppointmentsForDoctor(ctx, doctorID, domain.DoctorQueue)
}
