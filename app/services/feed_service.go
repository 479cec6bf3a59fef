package services

import (
	"fmt"
	"sort"

	"frontera/app/models"
	"frontera/app/repositories"
)

// Feed is the derived front-page view: up to MaxFeatured promoted posts and
// every other approved post, both newest-first. A post never appears in
// both lists, and neither backfills the other.
type Feed struct {
	Featured []*models.Post `json:"featured"`
	Recent   []*models.Post `json:"recent"`
}

// FeedService composes the feed from the approved-post set.
type FeedService struct {
	postRepo repositories.PostRepository
	likeRepo repositories.LikeRepository
}

// NewFeedService creates a new FeedService
func NewFeedService(postRepo repositories.PostRepository, likeRepo repositories.LikeRepository) *FeedService {
	return &FeedService{
		postRepo: postRepo,
		likeRepo: likeRepo,
	}
}

// Compose builds the feed. Zero approved posts yields two empty lists, not
// an error; callers render the explicit empty state.
func (s *FeedService) Compose() (*Feed, error) {
	approved, err := s.postRepo.ListByStatus(models.StatusApproved)
	if err != nil {
		return nil, err
	}

	// Base ordering: newest first. There is no independent feature rank;
	// ties among featured candidates break by recency.
	sort.SliceStable(approved, func(i, j int) bool {
		return approved[i].CreatedAt.After(approved[j].CreatedAt)
	})

	feed := &Feed{
		Featured: []*models.Post{},
		Recent:   []*models.Post{},
	}
	// Strict partition: featured candidates past the cap are dropped, not
	// demoted into recent.
	for _, post := range approved {
		switch {
		case post.IsFeatured && len(feed.Featured) < models.MaxFeatured:
			feed.Featured = append(feed.Featured, post)
		case !post.IsFeatured:
			feed.Recent = append(feed.Recent, post)
		}
	}

	for _, post := range append(append([]*models.Post{}, feed.Featured...), feed.Recent...) {
		count, err := s.likeRepo.CountByPost(post.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to count likes for post %s: %w", post.ID, err)
		}
		post.LikeCount = count
	}
	return feed, nil
}
