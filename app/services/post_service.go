package services

import (
	"fmt"
	"sync"

	"frontera/app/apperrors"
	"frontera/app/models"
	"frontera/app/repositories"
	"frontera/app/storage"
)

// ImageBucket holds every uploaded cover and block image.
const ImageBucket = "blog-images"

// PostService handles authoring and reading stories.
type PostService struct {
	postRepo repositories.PostRepository
	likeRepo repositories.LikeRepository
	store    storage.Store
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, likeRepo repositories.LikeRepository, store storage.Store) *PostService {
	return &PostService{
		postRepo: postRepo,
		likeRepo: likeRepo,
		store:    store,
	}
}

// SubmitInput carries a finished draft into Submit. Cover holds the chosen
// cover image bytes; Blobs maps each pending image block's local handle to
// its bytes.
type SubmitInput struct {
	Post  *models.Post
	Cover []byte
	Blobs map[string][]byte
}

// Submit runs the submission pipeline: local validation, cover upload,
// block-image uploads, then the post insert. Validation failures surface
// before any upload starts. Uploads that completed before a later step
// failed stay orphaned in storage; no compensating rollback.
func (s *PostService) Submit(in SubmitInput) (*models.Post, error) {
	post := in.Post
	if post.Title == "" {
		return nil, apperrors.NewValidation("title", "is required")
	}
	if len(in.Cover) == 0 && post.CoverImage == "" {
		return nil, apperrors.NewValidation("cover_image", "is required")
	}

	// The cover ref must be resolved before the row insert references it.
	if len(in.Cover) > 0 {
		ref, err := s.store.Upload(ImageBucket, storage.NewObjectKey("cover", ".jpg"), in.Cover)
		if err != nil {
			return nil, fmt.Errorf("submit: %w", err)
		}
		post.CoverImage = ref
	}

	if err := s.persistPendingImages(post, in.Blobs); err != nil {
		return nil, fmt.Errorf("submit: %w", err)
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, fmt.Errorf("submit: %w", err)
	}
	return post, nil
}

// persistPendingImages uploads every pending block image and swaps each
// block's local handle for the storage ref, preserving id and position.
// Sibling uploads run concurrently; all must resolve before the caller may
// insert the post row.
func (s *PostService) persistPendingImages(post *models.Post, blobs map[string][]byte) error {
	pending := post.PendingImages()
	if len(pending) == 0 {
		return nil
	}

	var wg sync.WaitGroup
	errs := make([]error, len(pending))
	refs := make([]string, len(pending))

	for i, block := range pending {
		wg.Add(1)
		go func(i int, handle string) {
			defer wg.Done()
			data, ok := blobs[handle]
			if !ok {
				errs[i] = apperrors.Transient("block image upload", fmt.Errorf("no bytes for handle %s", handle))
				return
			}
			refs[i], errs[i] = s.store.Upload(ImageBucket, storage.NewObjectKey("block", ".jpg"), data)
		}(i, block.Image.Handle)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	for i, block := range pending {
		block.Image.Persist(refs[i])
	}
	return nil
}

// GetPost retrieves a post with its derived like count. viewerID may be
// empty for anonymous readers.
func (s *PostService) GetPost(id, viewerID string) (*models.Post, bool, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, false, err
	}

	count, err := s.likeRepo.CountByPost(id)
	if err != nil {
		return nil, false, fmt.Errorf("failed to count likes: %w", err)
	}
	post.LikeCount = count

	liked := false
	if viewerID != "" {
		liked, err = s.likeRepo.Exists(viewerID, id)
		if err != nil {
			return nil, false, fmt.Errorf("failed to read like state: %w", err)
		}
	}
	return post, liked, nil
}

// SetCoverFraming persists a new focal point for the post's cover.
func (s *PostService) SetCoverFraming(id string, focal models.FocalPoint) error {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return err
	}
	post.CoverFocal = focal
	return s.postRepo.Update(post)
}
