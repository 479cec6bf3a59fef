package models

import "time"

// Status is the moderation state of a post.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// MaxFeatured is the most posts that may be flagged as featured at once.
const MaxFeatured = 3

// BlockKind identifies the variant of a content block.
type BlockKind string

const (
	BlockText     BlockKind = "text"
	BlockQuestion BlockKind = "question"
	BlockImage    BlockKind = "image"
	BlockVideo    BlockKind = "video"
)

// ImagePhase tracks the two-phase life of an image reference: a transient
// local handle usable for preview, replaced by a permanent storage ref on
// submission.
type ImagePhase string

const (
	ImagePending   ImagePhase = "pending"
	ImagePersisted ImagePhase = "persisted"
)

// ImageRef is the body of an image block.
type ImageRef struct {
	Phase  ImagePhase `json:"phase"`
	Handle string     `json:"handle"`
}

// ContentBlock is one typed unit of post content. Kind decides which body
// field is meaningful and is immutable once the block exists.
type ContentBlock struct {
	ID       string    `json:"id" validate:"required"`
	Kind     BlockKind `json:"kind" validate:"required,oneof=text question image video"`
	Text     string    `json:"text,omitempty"`
	Image    *ImageRef `json:"image,omitempty"`
	VideoURL string    `json:"video_url,omitempty"`
}

// FocalPoint is the relative (x%, y%) anchor used to crop a cover image.
// X stays pinned at 50; only vertical framing is adjustable.
type FocalPoint struct {
	X float64 `json:"x" validate:"gte=0,lte=100"`
	Y float64 `json:"y" validate:"gte=0,lte=100"`
}

// Post represents one interview-style story.
type Post struct {
	ID          string            `json:"id" validate:"required"`
	AuthorID    string            `json:"author_id" validate:"required"`
	Title       string            `json:"title" validate:"required,min=1,max=120"`
	Description string            `json:"description"`
	CoverImage  string            `json:"cover_image"`
	CoverFocal  FocalPoint        `json:"cover_focal_point"`
	Content     []ContentBlock    `json:"content" validate:"dive"`
	SocialLinks map[string]string `json:"social_links,omitempty"`
	Status      Status            `json:"status" validate:"required,oneof=pending approved rejected"`
	IsFeatured  bool              `json:"is_featured"`
	CreatedAt   time.Time         `json:"created_at"`

	// LikeCount is derived from the like ledger on read, never stored
	// authoritatively.
	LikeCount int `json:"like_count"`
}

// Like records that a user liked a post. At most one row may exist per
// (UserID, PostID) pair.
type Like struct {
	UserID    string    `json:"user_id" validate:"required"`
	PostID    string    `json:"post_id" validate:"required"`
	CreatedAt time.Time `json:"created_at"`
}

// Profile is the user metadata the core reads. IsAdmin is an opaque
// authorization predicate supplied by the identity side.
type Profile struct {
	ID           string    `json:"id" validate:"required"`
	Email        string    `json:"email" validate:"required,email"`
	Username     string    `json:"username"`
	FullName     string    `json:"full_name"`
	IsAdmin      bool      `json:"is_admin"`
	PasswordHash []byte    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
