package database

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-backend/models"
)

type gormUserRepo struct {
	db    *gorm.DB
	alloc *publicIDAllocator
}

func (r *gormUserRepo) FindByPublicID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.Where("public_id = ?", id).First(&user).Error
	return notFoundAsNil(&user, err)
}

func (r *gormUserRepo) FindByUsername(username string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ?", username).First(&user).Error
	return notFoundAsNil(&user, err)
}

func (r *gormUserRepo) Add(user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	publicID, err := r.alloc.allocate(r.db, "users", user.ID)
	if err != nil {
		return err
	}
	user.PublicID = publicID
	return r.db.Create(user).Error
}
