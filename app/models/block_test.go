package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func blockIDs(p *Post) []string {
	ids := make([]string, 0, len(p.Content))
	for _, b := range p.Content {
		ids = append(ids, b.ID)
	}
	return ids
}

func TestBlockOrdering(t *testing.T) {
	t.Run("order equals insertion order", func(t *testing.T) {
		p := &Post{}
		a := p.AppendBlock(BlockText)
		b := p.AppendBlock(BlockQuestion)
		c := p.AppendBlock(BlockImage)
		d := p.AppendBlock(BlockVideo)

		assert.Equal(t, []string{a.ID, b.ID, c.ID, d.ID}, blockIDs(p))
	})

	t.Run("remove preserves order of the rest", func(t *testing.T) {
		p := &Post{}
		a := p.AppendBlock(BlockText)
		b := p.AppendBlock(BlockText)
		c := p.AppendBlock(BlockText)

		p.RemoveBlock(b.ID)
		assert.Equal(t, []string{a.ID, c.ID}, blockIDs(p))
	})

	t.Run("remove absent id is a no-op", func(t *testing.T) {
		p := &Post{}
		a := p.AppendBlock(BlockText)

		p.RemoveBlock("missing")
		assert.Equal(t, []string{a.ID}, blockIDs(p))
	})

	t.Run("ids are never reused", func(t *testing.T) {
		p := &Post{}
		seen := map[string]bool{}
		for i := 0; i < 50; i++ {
			b := p.AppendBlock(BlockText)
			assert.False(t, seen[b.ID])
			seen[b.ID] = true
			if i%3 == 0 {
				p.RemoveBlock(b.ID)
			}
		}
	})
}

func TestSetBlockBody(t *testing.T) {
	t.Run("targets only the given block", func(t *testing.T) {
		p := &Post{}
		a := p.AppendBlock(BlockText)
		b := p.AppendBlock(BlockText)

		p.SetBlockBody(b.ID, "updated")
		assert.Equal(t, "", p.Block(a.ID).Text)
		assert.Equal(t, "updated", p.Block(b.ID).Text)
	})

	t.Run("video body lands in the URL field", func(t *testing.T) {
		p := &Post{}
		v := p.AppendBlock(BlockVideo)
		p.SetBlockBody(v.ID, "https://youtu.be/dQw4w9WgXcQ")
		assert.Equal(t, "https://youtu.be/dQw4w9WgXcQ", p.Block(v.ID).VideoURL)
		assert.Equal(t, "", p.Block(v.ID).Text)
	})

	t.Run("image body becomes a pending handle", func(t *testing.T) {
		p := &Post{}
		img := p.AppendBlock(BlockImage)
		p.SetBlockBody(img.ID, "blob-123")

		block := p.Block(img.ID)
		require.NotNil(t, block.Image)
		assert.True(t, block.Image.IsPending())
		assert.Equal(t, "blob-123", block.Image.Handle)
	})

	t.Run("absent id is a no-op", func(t *testing.T) {
		p := &Post{}
		p.AppendBlock(BlockText)
		p.SetBlockBody("missing", "x")
		assert.Equal(t, "", p.Content[0].Text)
	})
}

func TestPendingImages(t *testing.T) {
	p := &Post{}
	p.AppendBlock(BlockText)
	img1 := p.AppendBlock(BlockImage)
	img2 := p.AppendBlock(BlockImage)
	p.AppendBlock(BlockVideo)

	p.SetBlockBody(img1.ID, "local-1")
	p.SetBlockBody(img2.ID, "local-2")

	pending := p.PendingImages()
	require.Len(t, pending, 2)
	assert.Equal(t, img1.ID, pending[0].ID)
	assert.Equal(t, img2.ID, pending[1].ID)

	t.Run("persist keeps id and position", func(t *testing.T) {
		before := blockIDs(p)
		pending[0].Image.Persist("blog-images/block-1.jpg")

		assert.Equal(t, before, blockIDs(p))
		block := p.Block(img1.ID)
		assert.Equal(t, ImagePersisted, block.Image.Phase)
		assert.Equal(t, "blog-images/block-1.jpg", block.Image.Handle)
		assert.False(t, block.Image.IsPending())

		// The persisted block drops out of the pending set.
		assert.Len(t, p.PendingImages(), 1)
	})

	t.Run("image block with no handle is not pending", func(t *testing.T) {
		q := &Post{}
		q.AppendBlock(BlockImage)
		assert.Empty(t, q.PendingImages())
	})
}

func TestNewDraft(t *testing.T) {
	draft := NewDraft("author-1")

	assert.Equal(t, "author-1", draft.AuthorID)
	require.Len(t, draft.Content, 3)
	assert.Equal(t, BlockText, draft.Content[0].Kind)
	assert.Equal(t, BlockQuestion, draft.Content[1].Kind)
	assert.Equal(t, BlockText, draft.Content[2].Kind)
	assert.NotEmpty(t, draft.Content[0].Text)
	assert.Equal(t, "", draft.Content[2].Text)
	assert.NotNil(t, draft.SocialLinks)
}
