package models

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost represents a complete blog post with metadata.
// UpdatedAt is refreshed on every successful update, even an empty one.
type BlogPost struct {
	ID        uuid.UUID `json:"-" db:"id" gorm:"type:uuid;primaryKey;not null"`
	PublicID  uint      `json:"id" db:"public_id" gorm:"uniqueIndex;not null"`
	Title     string    `json:"title" db:"title" gorm:"type:text;not null"`
	Content   string    `json:"content" db:"content" gorm:"type:text;not null"`
	Excerpt   string    `json:"excerpt" db:"excerpt" gorm:"type:text;not null"`
	ImageURL  *string   `json:"imageUrl,omitempty" db:"image_url" gorm:"type:text"`
	Category  string    `json:"category" db:"category" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"not null"`
}
