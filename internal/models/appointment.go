package models

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	UserID  uuid.UUID `gorm:"column:user_id;type:uuid;not null;index" json:"user"`
	Patient *User     `gorm:"foreignKey:UserID;references:ID" json:"patientProfile,omitempty"`

	DoctorID uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor"`
	Doctor   *Doctor   `gorm:"foreignKey:DoctorID;references:ID" json:"doctorProfile,omitempty"`

	ScheduledFor time.Time `gorm:"not null" json:"scheduledFor"`

	Status string `gorm:"size:20;not null;default:'pending'" json:"status"`
	Notes  string `gorm:"type:text" json:"notes"`

	DecidedAt   *time.Time `json:"decidedAt,omitempty"`
	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
