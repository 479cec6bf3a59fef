package mock

import (
	"sync"
	"time"

	"frontera/app/apperrors"
	"frontera/app/models"

	"github.com/google/uuid"
)

// PostRepository is an in-memory PostRepository for tests.
type PostRepository struct {
	posts map[string]*models.Post
	order []string
	mutex sync.RWMutex
}

// NewPostRepository creates an empty in-memory post repository.
func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts: make(map[string]*models.Post),
	}
}

// Clear resets the repository.
func (m *PostRepository) Clear() {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.posts = make(map[string]*models.Post)
	m.order = nil
}

func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.BeforeCreate()
	clone := *post
	m.posts[post.ID] = &clone
	m.order = append(m.order, post.ID)
	return nil
}

func (m *PostRepository) GetByID(id string) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, apperrors.ErrNotFound
	}
	clone := *post
	return &clone, nil
}

func (m *PostRepository) List() ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var posts []*models.Post
	for _, id := range m.order {
		if post, exists := m.posts[id]; exists {
			clone := *post
			posts = append(posts, &clone)
		}
	}
	return posts, nil
}

func (m *PostRepository) ListByStatus(status models.Status) ([]*models.Post, error) {
	all, err := m.List()
	if err != nil {
		return nil, err
	}
	var posts []*models.Post
	for _, post := range all {
		if post.Status == status {
			posts = append(posts, post)
		}
	}
	return posts, nil
}

func (m *PostRepository) Update(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.ID]; !exists {
		return apperrors.ErrNotFound
	}
	clone := *post
	m.posts[post.ID] = &clone
	return nil
}

func (m *PostRepository) UpdateStatus(id string, status models.Status) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post, exists := m.posts[id]
	if !exists {
		return apperrors.ErrNotFound
	}
	post.Status = status
	return nil
}

func (m *PostRepository) SetFeaturedExclusive(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	target, exists := m.posts[id]
	if !exists {
		return apperrors.ErrNotFound
	}
	for _, post := range m.posts {
		post.IsFeatured = false
	}
	target.IsFeatured = true
	return nil
}

func (m *PostRepository) ClearFeatured(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post, exists := m.posts[id]
	if !exists {
		return apperrors.ErrNotFound
	}
	post.IsFeatured = false
	return nil
}

func (m *PostRepository) Delete(id string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[id]; !exists {
		return apperrors.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

type likeKey struct {
	userID string
	postID string
}

// LikeRepository is an in-memory LikeRepository for tests. The map key is
// the (user, post) pair, so uniqueness holds by construction.
type LikeRepository struct {
	likes map[likeKey]*models.Like
	mutex sync.RWMutex
}

// NewLikeRepository creates an empty in-memory like ledger.
func NewLikeRepository() *LikeRepository {
	return &LikeRepository{
		likes: make(map[likeKey]*models.Like),
	}
}

func (m *LikeRepository) Insert(like *models.Like) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	key := likeKey{userID: like.UserID, postID: like.PostID}
	if _, exists := m.likes[key]; exists {
		return apperrors.ErrConflict
	}
	if like.CreatedAt.IsZero() {
		like.CreatedAt = time.Now()
	}
	clone := *like
	m.likes[key] = &clone
	return nil
}

func (m *LikeRepository) Remove(userID, postID string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	key := likeKey{userID: userID, postID: postID}
	if _, exists := m.likes[key]; !exists {
		return apperrors.ErrNotFound
	}
	delete(m.likes, key)
	return nil
}

func (m *LikeRepository) Exists(userID, postID string) (bool, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	_, exists := m.likes[likeKey{userID: userID, postID: postID}]
	return exists, nil
}

func (m *LikeRepository) CountByPost(postID string) (int, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	count := 0
	for key := range m.likes {
		if key.postID == postID {
			count++
		}
	}
	return count, nil
}

func (m *LikeRepository) DeleteByPost(postID string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for key := range m.likes {
		if key.postID == postID {
			delete(m.likes, key)
		}
	}
	return nil
}

// ProfileRepository is an in-memory ProfileRepository for tests.
type ProfileRepository struct {
	profiles map[string]*models.Profile
	byEmail  map[string]string
	mutex    sync.RWMutex
}

// NewProfileRepository creates an empty in-memory profile repository.
func NewProfileRepository() *ProfileRepository {
	return &ProfileRepository{
		profiles: make(map[string]*models.Profile),
		byEmail:  make(map[string]string),
	}
}

func (m *ProfileRepository) Create(profile *models.Profile) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.byEmail[profile.Email]; exists {
		return apperrors.ErrConflict
	}
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now()
	}
	clone := *profile
	m.profiles[profile.ID] = &clone
	m.byEmail[profile.Email] = profile.ID
	return nil
}

func (m *ProfileRepository) GetByID(id string) (*models.Profile, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	profile, exists := m.profiles[id]
	if !exists {
		return nil, apperrors.ErrNotFound
	}
	clone := *profile
	return &clone, nil
}

func (m *ProfileRepository) GetByEmail(email string) (*models.Profile, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	id, exists := m.byEmail[email]
	if !exists {
		return nil, apperrors.ErrNotFound
	}
	clone := *m.profiles[id]
	return &clone, nil
}

func (m *ProfileRepository) Update(profile *models.Profile) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.profiles[profile.ID]; !exists {
		return apperrors.ErrNotFound
	}
	clone := *profile
	m.profiles[profile.ID] = &clone
	return nil
}
