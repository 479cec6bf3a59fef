package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DescriptionSeparator joins the profession and location halves of a post
// description.
const DescriptionSeparator = "•"

// Placeholders substituted when a description half is missing.
const (
	ProfessionPlaceholder = "Profession not specified"
	LocationPlaceholder   = "Location not specified"
)

// FallbackCoverURL is shown for posts that predate cover images.
const FallbackCoverURL = "https://images.unsplash.com/photo-1517487881594-2787fdb86ef5?auto=format&fit=crop&w=800"

// DefaultFocalPoint centers the cover crop.
func DefaultFocalPoint() FocalPoint {
	return FocalPoint{X: 50, Y: 50}
}

// Validate checks if the post meets all validation requirements.
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// BeforeCreate sets up any necessary fields before creation. Every fresh
// post starts pending and not featured.
func (p *Post) BeforeCreate() {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	if p.CoverFocal == (FocalPoint{}) {
		p.CoverFocal = DefaultFocalPoint()
	}
	p.Status = StatusPending
	p.IsFeatured = false
}

// ComposeDescription builds the stored description from its halves. Either
// side may be empty; rendering restores placeholders.
func ComposeDescription(profession, location string) string {
	return fmt.Sprintf("%s %s %s", profession, DescriptionSeparator, location)
}

// DescriptionParts splits the description back into profession and location,
// trimming whitespace and substituting placeholders for missing halves.
func (p *Post) DescriptionParts() (profession, location string) {
	profession = ProfessionPlaceholder
	location = LocationPlaceholder

	parts := strings.SplitN(p.Description, DescriptionSeparator, 2)
	if len(parts) > 0 {
		if s := strings.TrimSpace(parts[0]); s != "" {
			profession = s
		}
	}
	if len(parts) > 1 {
		if s := strings.TrimSpace(parts[1]); s != "" {
			location = s
		}
	}
	return profession, location
}

// CoverURLOr returns url, or the fallback cover when the post has none.
func (p *Post) CoverURLOr(url string) string {
	if p.CoverImage == "" || url == "" {
		return FallbackCoverURL
	}
	return url
}

// Excerpt returns the first text block's content truncated to limit runes,
// with an ellipsis when cut. Posts without a text block yield "".
func (p *Post) Excerpt(limit int) string {
	for _, b := range p.Content {
		if b.Kind != BlockText || b.Text == "" {
			continue
		}
		runes := []rune(b.Text)
		if len(runes) <= limit {
			return b.Text
		}
		return string(runes[:limit]) + "..."
	}
	return ""
}

// StatusLabel is the human-readable tag shown on the story page.
func (p *Post) StatusLabel() string {
	if p.Status == StatusPending {
		return "Pending approval"
	}
	return "Official story"
}

// SharePayload is the content handed to the platform share sheet.
type SharePayload struct {
	Title string `json:"title"`
	Text  string `json:"text"`
	URL   string `json:"url"`
}

// Share builds the share payload for the post at the given URL.
func (p *Post) Share(url string) SharePayload {
	return SharePayload{
		Title: p.Title,
		Text:  fmt.Sprintf("Read %s's story on Frontera", p.Title),
		URL:   url,
	}
}
