package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a patient as known to the identity service. Rows are written there;
// this service only reads them to decorate appointment listings.
type User struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name  string    `gorm:"size:100;not null" json:"name"`
	Email string    `gorm:"size:100;uniqueIndex;not null" json:"email"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}
