package models

import "github.com/google/uuid"

// Skill categories shown on the public site.
const (
	SkillCategoryFrontend   = "frontend"
	SkillCategoryBackend    = "backend"
	SkillCategoryAdditional = "additional"
)

// Skill is a named proficiency with a 0-100 percentage. Names are not unique.
type Skill struct {
	ID         uuid.UUID `json:"-" db:"id" gorm:"type:uuid;primaryKey;not null"`
	PublicID   uint      `json:"id" db:"public_id" gorm:"uniqueIndex;not null"`
	Name       string    `json:"name" db:"name" gorm:"type:text;not null"`
	Percentage int       `json:"percentage" db:"percentage" gorm:"not null"`
	Category   string    `json:"category" db:"category" gorm:"type:text;not null"`
}
