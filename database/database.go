package database

import (
	"portfolio-backend/models"
)

// Database is the single data-access point for the process. Two
// implementations exist: a gorm-backed store for production and an
// in-memory store for tests and local development. Handlers depend on
// the interfaces only, so the backend is selected once at startup.
type Database interface {
	Users() UserRepo
	Projects() ProjectRepo
	BlogPosts() BlogPostRepo
	Videos() VideoRepo
	Skills() SkillRepo
	Contacts() ContactRepo

	// Stats runs four independent counts. Concurrent writes during
	// counting may yield a result that matches no single instant.
	Stats() (models.DashboardStats, error)
}

// Lookups by public id return (nil, nil) when no record exists; errors are
// reserved for unexpected storage failures.

type UserRepo interface {
	FindByPublicID(id uint) (*models.User, error)
	FindByUsername(username string) (*models.User, error)
	Add(user *models.User) error
}

type ProjectRepo interface {
	FindAll() ([]*models.Project, error)
	FindByPublicID(id uint) (*models.Project, error)
	Add(project *models.Project) error
	Update(project *models.Project) error
	Delete(id uint) (bool, error)
}

type BlogPostRepo interface {
	FindAll() ([]*models.BlogPost, error)
	FindByPublicID(id uint) (*models.BlogPost, error)
	Add(post *models.BlogPost) error
	// Update refreshes UpdatedAt on every call, whether or not any
	// other field changed.
	Update(post *models.BlogPost) error
	Delete(id uint) (bool, error)
}

type VideoRepo interface {
	FindAll() ([]*models.YoutubeVideo, error)
	FindByPublicID(id uint) (*models.YoutubeVideo, error)
	Add(video *models.YoutubeVideo) error
	Update(video *models.YoutubeVideo) error
	Delete(id uint) (bool, error)
}

type SkillRepo interface {
	FindAll() ([]*models.Skill, error)
	FindByCategory(category string) ([]*models.Skill, error)
	FindByPublicID(id uint) (*models.Skill, error)
	Add(skill *models.Skill) error
	Update(skill *models.Skill) error
	Delete(id uint) (bool, error)
}

type ContactRepo interface {
	FindAll() ([]*models.Contact, error)
	FindByPublicID(id uint) (*models.Contact, error)
	Add(contact *models.Contact) error
	MarkRead(id uint) (bool, error)
	Delete(id uint) (bool, error)
}
