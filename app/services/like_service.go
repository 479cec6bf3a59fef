package services

import (
	"errors"
	"fmt"

	"frontera/app/apperrors"
	"frontera/app/models"
	"frontera/app/repositories"
)

// LikeState is what a reader sees for one post: the derived count and
// whether they hold the like themselves.
type LikeState struct {
	Count       int  `json:"count"`
	LikedByUser bool `json:"liked_by_user"`
}

// Toggled returns the state after an optimistic local flip. The inverse of
// the flip is simply the prior state, so a failed persistence call rolls
// back by restoring the value this was called on.
func (s LikeState) Toggled() LikeState {
	if s.LikedByUser {
		return LikeState{Count: s.Count - 1, LikedByUser: false}
	}
	return LikeState{Count: s.Count + 1, LikedByUser: true}
}

// LikeService maintains the one-like-per-(user, post) ledger.
type LikeService struct {
	likeRepo repositories.LikeRepository
	postRepo repositories.PostRepository
}

// NewLikeService creates a new LikeService
func NewLikeService(likeRepo repositories.LikeRepository, postRepo repositories.PostRepository) *LikeService {
	return &LikeService{
		likeRepo: likeRepo,
		postRepo: postRepo,
	}
}

// GetState reads the like state for a post. userID may be empty for
// anonymous readers, who never hold a like.
func (s *LikeService) GetState(userID, postID string) (LikeState, error) {
	count, err := s.likeRepo.CountByPost(postID)
	if err != nil {
		return LikeState{}, fmt.Errorf("failed to count likes: %w", err)
	}
	liked := false
	if userID != "" {
		liked, err = s.likeRepo.Exists(userID, postID)
		if err != nil {
			return LikeState{}, fmt.Errorf("failed to read like state: %w", err)
		}
	}
	return LikeState{Count: count, LikedByUser: liked}, nil
}

// Toggle flips the user's like on the post: insert when absent, delete when
// present. The ledger's pair uniqueness is the arbiter of concurrent
// toggles; a losing call reconciles by re-reading state instead of
// surfacing an error.
func (s *LikeService) Toggle(userID, postID string) (LikeState, error) {
	if _, err := s.postRepo.GetByID(postID); err != nil {
		return LikeState{}, err
	}

	liked, err := s.likeRepo.Exists(userID, postID)
	if err != nil {
		return LikeState{}, fmt.Errorf("failed to read like state: %w", err)
	}

	if liked {
		err = s.likeRepo.Remove(userID, postID)
		// A concurrent toggle already removed it; the intended end state
		// holds either way.
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrConflict) {
			return LikeState{}, fmt.Errorf("failed to remove like: %w", err)
		}
	} else {
		err = s.likeRepo.Insert(&models.Like{UserID: userID, PostID: postID})
		// Losing the insert race means the pair row exists; reconcile by
		// re-reading rather than trusting the optimistic flip.
		if err != nil && !errors.Is(err, apperrors.ErrConflict) {
			return LikeState{}, fmt.Errorf("failed to insert like: %w", err)
		}
	}

	return s.GetState(userID, postID)
}
