package database

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/models"
)

// Memory is the in-memory Database implementation used by tests and local
// development. Ids are plain counters: with integer keys native to the
// store there is nothing to normalize. Records are copied on the way in
// and out so callers never share memory with the store.
type Memory struct {
	mu sync.RWMutex

	users     map[uint]*models.User
	projects  map[uint]*models.Project
	blogPosts map[uint]*models.BlogPost
	videos    map[uint]*models.YoutubeVideo
	skills    map[uint]*models.Skill
	contacts  map[uint]*models.Contact

	nextUserID    uint
	nextProjectID uint
	nextPostID    uint
	nextVideoID   uint
	nextSkillID   uint
	nextContactID uint
}

func NewMemory() *Memory {
	return &Memory{
		users:         make(map[uint]*models.User),
		projects:      make(map[uint]*models.Project),
		blogPosts:     make(map[uint]*models.BlogPost),
		videos:        make(map[uint]*models.YoutubeVideo),
		skills:        make(map[uint]*models.Skill),
		contacts:      make(map[uint]*models.Contact),
		nextUserID:    1,
		nextProjectID: 1,
		nextPostID:    1,
		nextVideoID:   1,
		nextSkillID:   1,
		nextContactID: 1,
	}
}

func (m *Memory) Users() UserRepo         { return &memUserRepo{m} }
func (m *Memory) Projects() ProjectRepo   { return &memProjectRepo{m} }
func (m *Memory) BlogPosts() BlogPostRepo { return &memBlogPostRepo{m} }
func (m *Memory) Videos() VideoRepo       { return &memVideoRepo{m} }
func (m *Memory) Skills() SkillRepo       { return &memSkillRepo{m} }
func (m *Memory) Contacts() ContactRepo   { return &memContactRepo{m} }

func (m *Memory) Stats() (models.DashboardStats, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := models.DashboardStats{
		ProjectCount:  int64(len(m.projects)),
		BlogPostCount: int64(len(m.blogPosts)),
		VideoCount:    int64(len(m.videos)),
	}
	for _, contact := range m.contacts {
		if !contact.IsRead {
			stats.UnreadContactCount++
		}
	}
	return stats, nil
}

// User repo

type memUserRepo struct{ m *Memory }

func (r *memUserRepo) FindByPublicID(id uint) (*models.User, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	if user, ok := r.m.users[id]; ok {
		clone := *user
		return &clone, nil
	}
	return nil, nil
}

func (r *memUserRepo) FindByUsername(username string) (*models.User, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	for _, user := range r.m.users {
		if user.Username == username {
			clone := *user
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) Add(user *models.User) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.PublicID = r.m.nextUserID
	r.m.nextUserID++
	clone := *user
	r.m.users[user.PublicID] = &clone
	return nil
}

// Project repo

type memProjectRepo struct{ m *Memory }

func cloneProject(p *models.Project) *models.Project {
	clone := *p
	clone.Technologies = append([]string(nil), p.Technologies...)
	return &clone
}

func (r *memProjectRepo) FindAll() ([]*models.Project, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	projects := make([]*models.Project, 0, len(r.m.projects))
	for _, p := range r.m.projects {
		projects = append(projects, cloneProject(p))
	}
	sort.Slice(projects, func(i, j int) bool {
		if !projects[i].CreatedAt.Equal(projects[j].CreatedAt) {
			return projects[i].CreatedAt.After(projects[j].CreatedAt)
		}
		return projects[i].PublicID > projects[j].PublicID
	})
	return projects, nil
}

func (r *memProjectRepo) FindByPublicID(id uint) (*models.Project, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	if p, ok := r.m.projects[id]; ok {
		return cloneProject(p), nil
	}
	return nil, nil
}

func (r *memProjectRepo) Add(project *models.Project) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	project.PublicID = r.m.nextProjectID
	r.m.nextProjectID++
	if project.CreatedAt.IsZero() {
		project.CreatedAt = time.Now().UTC()
	}
	r.m.projects[project.PublicID] = cloneProject(project)
	return nil
}

func (r *memProjectRepo) Update(project *models.Project) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	r.m.projects[project.PublicID] = cloneProject(project)
	return nil
}

func (r *memProjectRepo) Delete(id uint) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.projects[id]; !ok {
		return false, nil
	}
	delete(r.m.projects, id)
	return true, nil
}

// Blog post repo

type memBlogPostRepo struct{ m *Memory }

func (r *memBlogPostRepo) FindAll() ([]*models.BlogPost, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	posts := make([]*models.BlogPost, 0, len(r.m.blogPosts))
	for _, p := range r.m.blogPosts {
		clone := *p
		posts = append(posts, &clone)
	}
	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].PublicID > posts[j].PublicID
	})
	return posts, nil
}

func (r *memBlogPostRepo) FindByPublicID(id uint) (*models.BlogPost, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	if p, ok := r.m.blogPosts[id]; ok {
		clone := *p
		return &clone, nil
	}
	return nil, nil
}

func (r *memBlogPostRepo) Add(post *models.BlogPost) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	post.PublicID = r.m.nextPostID
	r.m.nextPostID++
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}
	post.UpdatedAt = post.CreatedAt
	clone := *post
	r.m.blogPosts[post.PublicID] = &clone
	return nil
}

func (r *memBlogPostRepo) Update(post *models.BlogPost) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	post.UpdatedAt = time.Now().UTC()
	clone := *post
	r.m.blogPosts[post.PublicID] = &clone
	return nil
}

func (r *memBlogPostRepo) Delete(id uint) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.blogPosts[id]; !ok {
		return false, nil
	}
	delete(r.m.blogPosts, id)
	return true, nil
}

// Video repo

type memVideoRepo struct{ m *Memory }

func (r *memVideoRepo) FindAll() ([]*models.YoutubeVideo, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	videos := make([]*models.YoutubeVideo, 0, len(r.m.videos))
	for _, v := range r.m.videos {
		clone := *v
		videos = append(videos, &clone)
	}
	sort.Slice(videos, func(i, j int) bool {
		if !videos[i].CreatedAt.Equal(videos[j].CreatedAt) {
			return videos[i].CreatedAt.After(videos[j].CreatedAt)
		}
		return videos[i].PublicID > videos[j].PublicID
	})
	return videos, nil
}

func (r *memVideoRepo) FindByPublicID(id uint) (*models.YoutubeVideo, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	if v, ok := r.m.videos[id]; ok {
		clone := *v
		return &clone, nil
	}
	return nil, nil
}

func (r *memVideoRepo) Add(video *models.YoutubeVideo) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if video.ID == uuid.Nil {
		video.ID = uuid.New()
	}
	video.PublicID = r.m.nextVideoID
	r.m.nextVideoID++
	if video.CreatedAt.IsZero() {
		video.CreatedAt = time.Now().UTC()
	}
	clone := *video
	r.m.videos[video.PublicID] = &clone
	return nil
}

func (r *memVideoRepo) Update(video *models.YoutubeVideo) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	clone := *video
	r.m.videos[video.PublicID] = &clone
	return nil
}

func (r *memVideoRepo) Delete(id uint) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.videos[id]; !ok {
		return false, nil
	}
	delete(r.m.videos, id)
	return true, nil
}

// Skill repo

type memSkillRepo struct{ m *Memory }

func (r *memSkillRepo) FindAll() ([]*models.Skill, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	skills := make([]*models.Skill, 0, len(r.m.skills))
	for _, s := range r.m.skills {
		clone := *s
		skills = append(skills, &clone)
	}
	sort.Slice(skills, func(i, j int) bool { return skills[i].PublicID < skills[j].PublicID })
	return skills, nil
}

func (r *memSkillRepo) FindByCategory(category string) ([]*models.Skill, error) {
	all, err := r.FindAll()
	if err != nil {
		return nil, err
	}
	skills := make([]*models.Skill, 0, len(all))
	for _, s := range all {
		if s.Category == category {
			skills = append(skills, s)
		}
	}
	return skills, nil
}

func (r *memSkillRepo) FindByPublicID(id uint) (*models.Skill, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	if s, ok := r.m.skills[id]; ok {
		clone := *s
		return &clone, nil
	}
	return nil, nil
}

func (r *memSkillRepo) Add(skill *models.Skill) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if skill.ID == uuid.Nil {
		skill.ID = uuid.New()
	}
	skill.PublicID = r.m.nextSkillID
	r.m.nextSkillID++
	clone := *skill
	r.m.skills[skill.PublicID] = &clone
	return nil
}

func (r *memSkillRepo) Update(skill *models.Skill) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	clone := *skill
	r.m.skills[skill.PublicID] = &clone
	return nil
}

func (r *memSkillRepo) Delete(id uint) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.skills[id]; !ok {
		return false, nil
	}
	delete(r.m.skills, id)
	return true, nil
}

// Contact repo

type memContactRepo struct{ m *Memory }

func (r *memContactRepo) FindAll() ([]*models.Contact, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	contacts := make([]*models.Contact, 0, len(r.m.contacts))
	for _, c := range r.m.contacts {
		clone := *c
		contacts = append(contacts, &clone)
	}
	sort.Slice(contacts, func(i, j int) bool {
		if !contacts[i].CreatedAt.Equal(contacts[j].CreatedAt) {
			return contacts[i].CreatedAt.After(contacts[j].CreatedAt)
		}
		return contacts[i].PublicID > contacts[j].PublicID
	})
	return contacts, nil
}

func (r *memContactRepo) FindByPublicID(id uint) (*models.Contact, error) {
	r.m.mu.RLock()
	defer r.m.mu.RUnlock()
	if c, ok := r.m.contacts[id]; ok {
		clone := *c
		return &clone, nil
	}
	return nil, nil
}

func (r *memContactRepo) Add(contact *models.Contact) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if contact.ID == uuid.Nil {
		contact.ID = uuid.New()
	}
	contact.PublicID = r.m.nextContactID
	r.m.nextContactID++
	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = time.Now().UTC()
	}
	contact.IsRead = false
	clone := *contact
	r.m.contacts[contact.PublicID] = &clone
	return nil
}

func (r *memContactRepo) MarkRead(id uint) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	contact, ok := r.m.contacts[id]
	if !ok {
		return false, nil
	}
	contact.IsRead = true
	return true, nil
}

func (r *memContactRepo) Delete(id uint) (bool, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()
	if _, ok := r.m.contacts[id]; !ok {
		return false, nil
	}
	delete(r.m.contacts, id)
	return true, nil
}
