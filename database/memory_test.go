package database

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/models"
)

func strPtr(s string) *string { return &s }

func TestMemoryProjectRoundTrip(t *testing.T) {
	db := NewMemory()

	project := models.Project{
		Title:        "Portfolio Site",
		Description:  "This very site",
		ImageURL:     strPtr("https://example.com/shot.png"),
		Technologies: []string{"Go", "chi"},
	}
	require.NoError(t, db.Projects().Add(&project))
	assert.NotZero(t, project.PublicID)
	assert.False(t, project.CreatedAt.IsZero())

	got, err := db.Projects().FindByPublicID(project.PublicID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, project.Title, got.Title)
	assert.Equal(t, project.Technologies, got.Technologies)

	// store hands out copies, not aliases
	got.Technologies[0] = "changed"
	again, err := db.Projects().FindByPublicID(project.PublicID)
	require.NoError(t, err)
	assert.Equal(t, "Go", again.Technologies[0])
}

func TestMemoryProjectDeleteThenGet(t *testing.T) {
	db := NewMemory()

	project := models.Project{Title: "t", Description: "d"}
	require.NoError(t, db.Projects().Add(&project))

	deleted, err := db.Projects().Delete(project.PublicID)
	require.NoError(t, err)
	assert.True(t, deleted)

	got, err := db.Projects().FindByPublicID(project.PublicID)
	require.NoError(t, err)
	assert.Nil(t, got)

	deleted, err = db.Projects().Delete(project.PublicID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestMemoryProjectsNewestFirst(t *testing.T) {
	db := NewMemory()

	older := models.Project{Title: "old", Description: "d", CreatedAt: time.Now().UTC().Add(-time.Hour)}
	newer := models.Project{Title: "new", Description: "d"}
	require.NoError(t, db.Projects().Add(&older))
	require.NoError(t, db.Projects().Add(&newer))

	projects, err := db.Projects().FindAll()
	require.NoError(t, err)
	require.Len(t, projects, 2)
	assert.Equal(t, "new", projects[0].Title)
	assert.Equal(t, "old", projects[1].Title)
}

func TestMemoryBlogPostUpdateRefreshesUpdatedAt(t *testing.T) {
	db := NewMemory()

	post := models.BlogPost{Title: "t", Content: "c", Excerpt: "e", Category: "go"}
	require.NoError(t, db.BlogPosts().Add(&post))
	assert.Equal(t, post.CreatedAt, post.UpdatedAt)

	before := post.UpdatedAt
	time.Sleep(5 * time.Millisecond)

	// an update that changes nothing still refreshes UpdatedAt
	require.NoError(t, db.BlogPosts().Update(&post))

	got, err := db.BlogPosts().FindByPublicID(post.PublicID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.UpdatedAt.After(before))
	assert.Equal(t, post.CreatedAt, got.CreatedAt)
}

func TestMemorySkillCategoryFilter(t *testing.T) {
	db := NewMemory()

	for _, s := range []models.Skill{
		{Name: "Go", Percentage: 80, Category: models.SkillCategoryBackend},
		{Name: "Postgres", Percentage: 70, Category: models.SkillCategoryBackend},
		{Name: "React", Percentage: 85, Category: models.SkillCategoryFrontend},
	} {
		skill := s
		require.NoError(t, db.Skills().Add(&skill))
	}

	backend, err := db.Skills().FindByCategory(models.SkillCategoryBackend)
	require.NoError(t, err)
	assert.Len(t, backend, 2)
	for _, s := range backend {
		assert.Equal(t, models.SkillCategoryBackend, s.Category)
	}

	all, err := db.Skills().FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestMemoryContactLifecycleAndStats(t *testing.T) {
	db := NewMemory()

	stats, err := db.Stats()
	require.NoError(t, err)
	assert.Zero(t, stats.UnreadContactCount)

	contact := models.Contact{
		Name:    "Ada",
		Email:   "ada@example.com",
		Subject: "Hello",
		Message: "Nice site",
		IsRead:  true, // must be ignored
	}
	require.NoError(t, db.Contacts().Add(&contact))
	assert.False(t, contact.IsRead)

	stats, err = db.Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.UnreadContactCount)

	marked, err := db.Contacts().MarkRead(contact.PublicID)
	require.NoError(t, err)
	assert.True(t, marked)

	stats, err = db.Stats()
	require.NoError(t, err)
	assert.Zero(t, stats.UnreadContactCount)

	got, err := db.Contacts().FindByPublicID(contact.PublicID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsRead)

	marked, err = db.Contacts().MarkRead(9999)
	require.NoError(t, err)
	assert.False(t, marked)
}

func TestMemoryStatsCounts(t *testing.T) {
	db := NewMemory()

	require.NoError(t, db.Projects().Add(&models.Project{Title: "p", Description: "d"}))
	require.NoError(t, db.BlogPosts().Add(&models.BlogPost{Title: "b", Content: "c", Excerpt: "e", Category: "go"}))
	require.NoError(t, db.Videos().Add(&models.YoutubeVideo{Title: "v", Description: "d", VideoURL: "https://youtu.be/x"}))

	stats, err := db.Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.ProjectCount)
	assert.EqualValues(t, 1, stats.BlogPostCount)
	assert.EqualValues(t, 1, stats.VideoCount)
}
