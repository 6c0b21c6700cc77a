package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Ayush2004sharma/MedSync-Backend/internal/domain/schedule"
	"github.com/Ayush2004sharma/MedSync-Backend/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db}
}

func (r *ScheduleGormRepository) GetWeeklySchedule(
	ctx context.Context,
	doctorID uuid.UUID,
) (*models.WeeklySchedule, error) {

	var ws models.WeeklySchedule
	if err := r.db.WithContext(ctx).
		Where("doctor_id = ?", doctorID).
		First(&ws).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, schedule.ErrNotFound
		}
		return nil, err
	}

	return &ws, nil
}

// UpsertWeeklySchedule replaces the doctor's template. On conflict the stored
// row keeps its id and created_at, so ws is refreshed from the row afterwards.
func (r *ScheduleGormRepository) UpsertWeeklySchedule(
	ctx context.Context,
	ws *models.WeeklySchedule,
) error {

	if ws.ID == uuid.Nil {
		ws.ID = uuid.New()
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "doctor_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"schedule", "updated_at"}),
			}).
			Create(ws).Error; err != nil {
			return err
		}

		var stored models.WeeklySchedule
		if err := tx.Where("doctor_id = ?", ws.DoctorID).First(&stored).Error; err != nil {
			return err
		}
		*ws = stored
		return nil
	})
}

var _ schedule.Store = (*ScheduleGormRepository)(nil)
