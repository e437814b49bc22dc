package models

import (
	"time"

	"github.com/google/uuid"
)

// YoutubeVideo is an embedded video on the public site. ThumbnailUrl is
// optional; the frontend derives one from VideoURL when absent.
type YoutubeVideo struct {
	ID           uuid.UUID `json:"-" db:"id" gorm:"type:uuid;primaryKey;not null"`
	PublicID     uint      `json:"id" db:"public_id" gorm:"uniqueIndex;not null"`
	Title        string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description  string    `json:"description" db:"description" gorm:"type:text;not null"`
	VideoURL     string    `json:"videoUrl" db:"video_url" gorm:"type:text;not null"`
	ThumbnailURL *string   `json:"thumbnailUrl,omitempty" db:"thumbnail_url" gorm:"type:text"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at" gorm:"not null"`
}
