package repositories

import "frontera/app/models"

// PostRepository defines the interface for post data access.
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id string) (*models.Post, error)
	List() ([]*models.Post, error)
	ListByStatus(status models.Status) ([]*models.Post, error)
	Update(post *models.Post) error
	UpdateStatus(id string, status models.Status) error
	SetFeaturedExclusive(id string) error
	ClearFeatured(id string) error
	Delete(id string) error
}

// LikeRepository defines the interface for the like ledger. The
// (userID, postID) pair is the row identity; Insert must refuse a second
// row for the same pair.
type LikeRepository interface {
	Insert(like *models.Like) error
	Remove(userID, postID string) error
	Exists(userID, postID string) (bool, error)
	CountByPost(postID string) (int, error)
	DeleteByPost(postID string) error
}

// ProfileRepository defines the interface for user profile data access.
type ProfileRepository interface {
	Create(profile *models.Profile) error
	GetByID(id string) (*models.Profile, error)
	GetByEmail(email string) (*models.Profile, error)
	Update(profile *models.Profile) error
}
