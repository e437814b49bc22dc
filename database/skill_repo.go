package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-backend/models"
)

type gormSkillRepo struct {
	db    *gorm.DB
	alloc *publicIDAllocator
}

func (r *gormSkillRepo) FindAll() ([]*models.Skill, error) {
	var skills []*models.Skill
	err := r.db.Order("name ASC").Find(&skills).Error
	return skills, err
}

func (r *gormSkillRepo) FindByCategory(category string) ([]*models.Skill, error) {
	var skills []*models.Skill
	err := r.db.Where("category = ?", category).Order("name ASC").Find(&skills).Error
	return skills, err
}

func (r *gormSkillRepo) FindByPublicID(id uint) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.Where("public_id = ?", id).First(&skill).Error
	return notFoundAsNil(&skill, err)
}

func (r *gormSkillRepo) Add(skill *models.Skill) error {
	if skill.ID == uuid.Nil {
		skill.ID = uuid.New()
	}
	publicID, err := r.alloc.allocate(r.db, "skills", skill.ID)
	if err != nil {
		return err
	}
	skill.PublicID = publicID
	return r.db.Create(skill).Error
}

func (r *gormSkillRepo) Update(skill *models.Skill) error {
	return r.db.Save(skill).Error
}

func (r *gormSkillRepo) Delete(id uint) (bool, error) {
	res := r.db.Where("public_id = ?", id).Delete(&models.Skill{})
	return res.RowsAffected > 0, res.Error
}
