package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-backend/models"
)

type gormContactRepo struct {
	db    *gorm.DB
	alloc *publicIDAllocator
}

// FindAll returns all contact messages, newest first.
func (r *gormContactRepo) FindAll() ([]*models.Contact, error) {
	var contacts []*models.Contact
	err := r.db.Order("created_at DESC").Find(&contacts).Error
	return contacts, err
}

func (r *gormContactRepo) FindByPublicID(id uint) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.Where("public_id = ?", id).First(&contact).Error
	return notFoundAsNil(&contact, err)
}

// Add persists a new message. IsRead always starts false, whatever the
// caller supplied.
func (r *gormContactRepo) Add(contact *models.Contact) error {
	if contact.ID == uuid.Nil {
		contact.ID = uuid.New()
	}
	publicID, err := r.alloc.allocate(r.db, "contacts", contact.ID)
	if err != nil {
		return err
	}
	contact.PublicID = publicID
	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = time.Now().UTC()
	}
	contact.IsRead = false
	return r.db.Create(contact).Error
}

func (r *gormContactRepo) MarkRead(id uint) (bool, error) {
	res := r.db.Model(&models.Contact{}).Where("public_id = ?", id).Update("is_read", true)
	return res.RowsAffected > 0, res.Error
}

func (r *gormContactRepo) Delete(id uint) (bool, error) {
	res := r.db.Where("public_id = ?", id).Delete(&models.Contact{})
	return res.RowsAffected > 0, res.Error
}
