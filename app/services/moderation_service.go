package services

import (
	"errors"
	"fmt"
	"sort"

	"frontera/app/apperrors"
	"frontera/app/models"
	"frontera/app/repositories"
)

// ModerationService governs a post's status, its featured flag, and
// permanent deletion. Moderators may re-toggle status in either direction;
// this is not a one-way pipeline.
type ModerationService struct {
	postRepo    repositories.PostRepository
	likeRepo    repositories.LikeRepository
	profileRepo repositories.ProfileRepository
}

// NewModerationService creates a new ModerationService
func NewModerationService(postRepo repositories.PostRepository, likeRepo repositories.LikeRepository, profileRepo repositories.ProfileRepository) *ModerationService {
	return &ModerationService{
		postRepo:    postRepo,
		likeRepo:    likeRepo,
		profileRepo: profileRepo,
	}
}

// SetStatus moves the post to the given moderation state. Setting the
// current state again is a no-op effect-wise.
func (s *ModerationService) SetStatus(id string, status models.Status) error {
	switch status {
	case models.StatusPending, models.StatusApproved, models.StatusRejected:
	default:
		return apperrors.NewValidation("status", fmt.Sprintf("unknown value %q", status))
	}
	return s.postRepo.UpdateStatus(id, status)
}

// SetFeatured toggles the featured flag. Featuring clears the flag on all
// posts before setting the target, so the featured set never accumulates
// past models.MaxFeatured.
func (s *ModerationService) SetFeatured(id string, featured bool) error {
	if featured {
		return s.postRepo.SetFeaturedExclusive(id)
	}
	return s.postRepo.ClearFeatured(id)
}

// Delete permanently removes the post and its like rows. Like rows go
// first so a partially failed delete never leaves ledger entries pointing
// at a missing post.
func (s *ModerationService) Delete(id string) error {
	if _, err := s.postRepo.GetByID(id); err != nil {
		return err
	}
	if err := s.likeRepo.DeleteByPost(id); err != nil {
		return fmt.Errorf("failed to delete likes: %w", err)
	}
	return s.postRepo.Delete(id)
}

// PostWithAuthor pairs a post with its author's profile for the admin
// listing. Author is nil when the account was deleted.
type PostWithAuthor struct {
	Post   *models.Post    `json:"post"`
	Author *models.Profile `json:"author"`
}

// ListAll returns every post newest-first with its author attached,
// regardless of status.
func (s *ModerationService) ListAll() ([]*PostWithAuthor, error) {
	posts, err := s.postRepo.List()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})

	rows := make([]*PostWithAuthor, 0, len(posts))
	for _, post := range posts {
		author, err := s.profileRepo.GetByID(post.AuthorID)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("failed to load author: %w", err)
		}
		rows = append(rows, &PostWithAuthor{Post: post, Author: author})
	}
	return rows, nil
}
