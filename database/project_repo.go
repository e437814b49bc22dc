package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-backend/models"
)

type gormProjectRepo struct {
	db    *gorm.DB
	alloc *publicIDAllocator
}

// FindAll returns all projects, newest first.
func (r *gormProjectRepo) FindAll() ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.Order("created_at DESC").Find(&projects).Error
	return projects, err
}

func (r *gormProjectRepo) FindByPublicID(id uint) (*models.Project, error) {
	var project models.Project
	err := r.db.Where("public_id = ?", id).First(&project).Error
	return notFoundAsNil(&project, err)
}

func (r *gormProjectRepo) Add(project *models.Project) error {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	publicID, err := r.alloc.allocate(r.db, "projects", project.ID)
	if err != nil {
		return err
	}
	project.PublicID = publicID
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}
	return r.db.Create(project).Error
}

func (r *gormProjectRepo) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

func (r *gormProjectRepo) Delete(id uint) (bool, error) {
	res := r.db.Where("public_id = ?", id).Delete(&models.Project{})
	return res.RowsAffected > 0, res.Error
}
