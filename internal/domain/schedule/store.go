package schedule

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Ayush2004sharma/MedSync-Backend/internal/models"
)

var ErrNotFound = errors.New("schedule not found")

// Store holds one weekly template per doctor. It is read on every
// availability query and written only when a doctor edits their week.
type Store interface {
	GetWeeklySchedule(ctx context.Context, doctorID uuid.UUID) (*models.WeeklySchedule, error)
	UpsertWeeklySchedule(ctx context.Context, ws *models.WeeklySchedule) error
}
