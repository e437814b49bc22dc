package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-backend/models"
)

type gormBlogPostRepo struct {
	db    *gorm.DB
	alloc *publicIDAllocator
}

// FindAll returns all blog posts, newest first.
func (r *gormBlogPostRepo) FindAll() ([]*models.BlogPost, error) {
	var posts []*models.BlogPost
	err := r.db.Order("created_at DESC").Find(&posts).Error
	return posts, err
}

func (r *gormBlogPostRepo) FindByPublicID(id uint) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.Where("public_id = ?", id).First(&post).Error
	return notFoundAsNil(&post, err)
}

func (r *gormBlogPostRepo) Add(post *models.BlogPost) error {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	publicID, err := r.alloc.allocate(r.db, "blog_posts", post.ID)
	if err != nil {
		return err
	}
	post.PublicID = publicID
	now := time.Now().UTC()
	if post.CreatedAt.IsZero() {
		post.CreatedAt = now
	}
	post.UpdatedAt = post.CreatedAt
	return r.db.Create(post).Error
}

// Update saves the merged record and stamps UpdatedAt regardless of which
// fields changed.
func (r *gormBlogPostRepo) Update(post *models.BlogPost) error {
	post.UpdatedAt = time.Now().UTC()
	return r.db.Save(post).Error
}

func (r *gormBlogPostRepo) Delete(id uint) (bool, error) {
	res := r.db.Where("public_id = ?", id).Delete(&models.BlogPost{})
	return res.RowsAffected > 0, res.Error
}
