package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a portfolio project shown on the public site.
type Project struct {
	ID           uuid.UUID `json:"-" db:"id" gorm:"type:uuid;primaryKey;not null"`
	PublicID     uint      `json:"id" db:"public_id" gorm:"uniqueIndex;not null"`
	Title        string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description  string    `json:"description" db:"description" gorm:"type:text;not null"`
	ImageURL     *string   `json:"imageUrl,omitempty" db:"image_url" gorm:"type:text"`
	ProjectURL   *string   `json:"projectUrl,omitempty" db:"project_url" gorm:"type:text"`
	Technologies []string  `json:"technologies" db:"technologies" gorm:"serializer:json"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
}
