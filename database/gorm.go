package database

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-backend/models"
)

// Gorm is the persisted Database implementation, one repository per entity
// sharing a single gorm connection.
type Gorm struct {
	db        *gorm.DB
	users     *gormUserRepo
	projects  *gormProjectRepo
	blogPosts *gormBlogPostRepo
	videos    *gormVideoRepo
	skills    *gormSkillRepo
	contacts  *gormContactRepo
}

// NewGorm initializes a Gorm store with each repository using a shared
// database instance and a shared public-id allocator.
func NewGorm(db *gorm.DB) *Gorm {
	alloc := &publicIDAllocator{}
	return &Gorm{
		db:        db,
		users:     &gormUserRepo{db, alloc},
		projects:  &gormProjectRepo{db, alloc},
		blogPosts: &gormBlogPostRepo{db, alloc},
		videos:    &gormVideoRepo{db, alloc},
		skills:    &gormSkillRepo{db, alloc},
		contacts:  &gormContactRepo{db, alloc},
	}
}

// Migrate creates or updates the tables for every entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.BlogPost{},
		&models.YoutubeVideo{},
		&models.Skill{},
		&models.Contact{},
	)
}

func (g *Gorm) Users() UserRepo         { return g.users }
func (g *Gorm) Projects() ProjectRepo   { return g.projects }
func (g *Gorm) BlogPosts() BlogPostRepo { return g.blogPosts }
func (g *Gorm) Videos() VideoRepo       { return g.videos }
func (g *Gorm) Skills() SkillRepo       { return g.skills }
func (g *Gorm) Contacts() ContactRepo   { return g.contacts }

func (g *Gorm) Stats() (models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := g.db.Model(&models.Project{}).Count(&stats.ProjectCount).Error; err != nil {
		return stats, err
	}
	if err := g.db.Model(&models.BlogPost{}).Count(&stats.BlogPostCount).Error; err != nil {
		return stats, err
	}
	if err := g.db.Model(&models.YoutubeVideo{}).Count(&stats.VideoCount).Error; err != nil {
		return stats, err
	}
	err := g.db.Model(&models.Contact{}).Where("is_read = ?", false).Count(&stats.UnreadContactCount).Error
	return stats, err
}

// publicIDAllocator assigns the public integer id for a new row. The row
// itself persists the native-id↔integer mapping, so every later lookup is
// a single indexed query. Allocation is process-serialized; the unique
// index on public_id backstops races across processes.
type publicIDAllocator struct {
	mu sync.Mutex
}

func (a *publicIDAllocator) allocate(db *gorm.DB, table string, nativeID uuid.UUID) (uint, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if candidate := DerivePublicID(nativeID.String()); candidate != 0 {
		var n int64
		if err := db.Table(table).Where("public_id = ?", candidate).Count(&n).Error; err != nil {
			return 0, err
		}
		if n == 0 {
			return candidate, nil
		}
	}

	var maxID int64
	if err := db.Table(table).Select("COALESCE(MAX(public_id), 0)").Scan(&maxID).Error; err != nil {
		return 0, err
	}
	return uint(maxID) + 1, nil
}

// notFoundAsNil turns gorm's record-not-found into the absence sentinel.
func notFoundAsNil[T any](record *T, err error) (*T, error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}
