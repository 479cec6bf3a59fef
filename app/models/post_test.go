package models

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDescriptionParts(t *testing.T) {
	tests := []struct {
		name        string
		description string
		profession  string
		location    string
	}{
		{"both halves", "Architect • London", "Architect", "London"},
		{"extra whitespace", "  Architect  •  London, UK ", "Architect", "London, UK"},
		{"missing location", "Architect • ", "Architect", LocationPlaceholder},
		{"missing profession", " • London", ProfessionPlaceholder, "London"},
		{"empty", "", ProfessionPlaceholder, LocationPlaceholder},
		{"no separator", "Architect", "Architect", LocationPlaceholder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Post{Description: tt.description}
			profession, location := p.DescriptionParts()
			assert.Equal(t, tt.profession, profession)
			assert.Equal(t, tt.location, location)
		})
	}
}

func TestComposeDescription(t *testing.T) {
	p := &Post{Description: ComposeDescription("Architect", "London")}
	profession, location := p.DescriptionParts()
	assert.Equal(t, "Architect", profession)
	assert.Equal(t, "London", location)
}

func TestBeforeCreate(t *testing.T) {
	t.Run("fresh post is pending and not featured", func(t *testing.T) {
		p := &Post{AuthorID: "u1", Title: "Victoria Ruiz", Status: StatusApproved, IsFeatured: true}
		p.BeforeCreate()

		assert.Equal(t, StatusPending, p.Status)
		assert.False(t, p.IsFeatured)
		assert.NotEmpty(t, p.ID)
		assert.False(t, p.CreatedAt.IsZero())
	})

	t.Run("defaults the focal point to center", func(t *testing.T) {
		p := &Post{}
		p.BeforeCreate()
		assert.Equal(t, DefaultFocalPoint(), p.CoverFocal)
	})

	t.Run("preserves an explicit creation time", func(t *testing.T) {
		created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		p := &Post{CreatedAt: created}
		p.BeforeCreate()
		assert.Equal(t, created, p.CreatedAt)
	})
}

func TestPostValidate(t *testing.T) {
	valid := func() *Post {
		p := &Post{AuthorID: "u1", Title: "Victoria Ruiz"}
		p.BeforeCreate()
		return p
	}

	t.Run("valid post", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("empty title", func(t *testing.T) {
		p := valid()
		p.Title = ""
		assert.Error(t, p.Validate())
	})

	t.Run("missing author", func(t *testing.T) {
		p := valid()
		p.AuthorID = ""
		assert.Error(t, p.Validate())
	})

	t.Run("focal point out of range", func(t *testing.T) {
		p := valid()
		p.CoverFocal.Y = 140
		assert.Error(t, p.Validate())
	})
}

func TestExcerpt(t *testing.T) {
	t.Run("truncates the first text block", func(t *testing.T) {
		p := &Post{}
		q := p.AppendBlock(BlockQuestion)
		p.SetBlockBody(q.ID, "Why did you leave?")
		b := p.AppendBlock(BlockText)
		p.SetBlockBody(b.ID, strings.Repeat("a", 150))

		excerpt := p.Excerpt(100)
		assert.Equal(t, strings.Repeat("a", 100)+"...", excerpt)
	})

	t.Run("short text is untouched", func(t *testing.T) {
		p := &Post{}
		b := p.AppendBlock(BlockText)
		p.SetBlockBody(b.ID, "short intro")
		assert.Equal(t, "short intro", p.Excerpt(100))
	})

	t.Run("no text block yields empty", func(t *testing.T) {
		p := &Post{}
		p.AppendBlock(BlockImage)
		assert.Equal(t, "", p.Excerpt(100))
	})
}

func TestCoverURLOr(t *testing.T) {
	p := &Post{CoverImage: "blog-images/cover.jpg"}
	assert.Equal(t, "http://x/cover.jpg", p.CoverURLOr("http://x/cover.jpg"))

	empty := &Post{}
	assert.Equal(t, FallbackCoverURL, empty.CoverURLOr(""))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Pending approval", (&Post{Status: StatusPending}).StatusLabel())
	assert.Equal(t, "Official story", (&Post{Status: StatusApproved}).StatusLabel())
}

func TestShare(t *testing.T) {
	p := &Post{Title: "Victoria Ruiz"}
	payload := p.Share("https://frontera.example/blog/1")

	assert.Equal(t, "Victoria Ruiz", payload.Title)
	assert.Contains(t, payload.Text, "Victoria Ruiz")
	assert.Equal(t, "https://frontera.example/blog/1", payload.URL)
}
