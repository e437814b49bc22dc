package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-backend/models"
)

type gormVideoRepo struct {
	db    *gorm.DB
	alloc *publicIDAllocator
}

// FindAll returns all videos, newest first.
func (r *gormVideoRepo) FindAll() ([]*models.YoutubeVideo, error) {
	var videos []*models.YoutubeVideo
	err := r.db.Order("created_at DESC").Find(&videos).Error
	return videos, err
}

func (r *gormVideoRepo) FindByPublicID(id uint) (*models.YoutubeVideo, error) {
	var video models.YoutubeVideo
	err := r.db.Where("public_id = ?", id).First(&video).Error
	return notFoundAsNil(&video, err)
}

func (r *gormVideoRepo) Add(video *models.YoutubeVideo) error {
	if video.ID == uuid.Nil {
		video.ID = uuid.New()
	}
	publicID, err := r.alloc.allocate(r.db, "youtube_videos", video.ID)
	if err != nil {
		return err
	}
	video.PublicID = publicID
	if video.CreatedAt.IsZero() {
		video.CreatedAt = time.Now().UTC()
	}
	return r.db.Create(video).Error
}

func (r *gormVideoRepo) Update(video *models.YoutubeVideo) error {
	return r.db.Save(video).Error
}

func (r *gormVideoRepo) Delete(id uint) (bool, error) {
	res := r.db.Where("public_id = ?", id).Delete(&models.YoutubeVideo{})
	return res.RowsAffected > 0, res.Error
}
