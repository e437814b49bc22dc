package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a message submitted by an anonymous visitor. It is never
// edited after creation except for the IsRead flag.
type Contact struct {
	ID        uuid.UUID `json:"-" db:"id" gorm:"type:uuid;primaryKey;not null"`
	PublicID  uint      `json:"id" db:"public_id" gorm:"uniqueIndex;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null"`
	Subject   string    `json:"subject" db:"subject" gorm:"type:text;not null"`
	Message   string    `json:"message" db:"message" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
	IsRead    bool      `json:"isRead" db:"is_read" gorm:"not null;default:false"`
}
