package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/Ayush2004sharma/MedSync-Backend/internal/domain/appointment"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/httperr"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// CreateAppointment relies on uq_appointments_booked_slot, the partial unique
// index over (doctor_id, scheduled_for) where status = 'booked'.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if ap.ID == uuid.Nil {
		ap.ID = uuid.New()
	}

	if err := r.db.WithContext(ctx).Omit("Patient", "Doctor").Create(ap).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return domain.ErrSlotTaken
		}
		return err
	}
	return nil
}

func (r *AppointmentGormRepository) FindBookedAppointment(
	ctx context.Context,
	doctorID uuid.UUID,
	scheduledFor time.Time,
) (*models.Appointment, error) {

	var ap models.Appointment
	err := r.db.WithContext(ctx).
		Where(
			"doctor_id = ? AND scheduled_for = ? AND status = ?",
			doctorID, scheduledFor, string(domain.StatusBooked),
		).
		First(&ap).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ap, nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &ap, nil
}

// UpdateAppointmentStatus is a compare-and-set on the status column. A move
// into booked that collides with an existing booked row is rejected by the
// partial unique index and leaves the row untouched.
func (r *AppointmentGormRepository) UpdateAppointmentStatus(
	ctx context.Context,
	ap *models.Appointment,
	from domain.Status,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND status = ?", ap.ID, string(from)).
		Updates(map[string]any{
			"status":       ap.Status,
			"decided_at":   ap.DecidedAt,
			"cancelled_at": ap.CancelledAt,
			"completed_at": ap.CompletedAt,
			"updated_at":   ap.UpdatedAt,
		})

	if res.Error != nil {
		if httperr.IsUniqueViolation(res.Error) {
			return domain.ErrSlotTaken
		}
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrStatusChanged
	}
	return nil
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uuid.UUID,
) error {
	return r.db.WithContext(ctx).Delete(&models.Appointment{}, "id = ?", id).Error
}

// --------------------------------------------------
// Availability
// --------------------------------------------------

func (r *AppointmentGormRepository) ListBookedForDay(
	ctx context.Context,
	doctorID uuid.UUID,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Select("id", "scheduled_for").
		Where(
			"doctor_id = ? AND status = ? AND scheduled_for >= ? AND scheduled_for <= ?",
			doctorID, string(domain.StatusBooked), start, end,
		).
		Order("scheduled_for ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// --------------------------------------------------
// Listings
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForPatient(
	ctx context.Context,
	userID uuid.UUID,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Doctor").
		Where("user_id = ?", userID).
		Order("scheduled_for ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForDoctor(
	ctx context.Context,
	doctorID uuid.UUID,
	statuses []domain.Status,
) ([]models.Appointment, error) {

	raw := make([]string, 0, len(statuses))
	for _, s := range statuses {
		raw = append(raw, string(s))
	}

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Where("doctor_id = ? AND status IN ?", doctorID, raw).
		Order("scheduled_for ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
