package models

import (
	"time"

	"github.com/google/uuid"
)

// Doctor is the read-only projection of a doctor profile.
type Doctor struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Specialty string    `gorm:"size:100;not null" json:"specialty"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
