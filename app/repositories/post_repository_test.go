package repositories

import (
	"testing"

	"frontera/app/apperrors"
	"frontera/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgerPostRepository(t *testing.T) {
	repo := NewBadgerPostRepository(openTestDB(t))

	post := &models.Post{AuthorID: "u1", Title: "Victoria Ruiz"}

	t.Run("create assigns id and pending status", func(t *testing.T) {
		require.NoError(t, repo.Create(post))
		assert.NotEmpty(t, post.ID)
		assert.Equal(t, models.StatusPending, post.Status)
		assert.False(t, post.IsFeatured)
	})

	t.Run("get round-trips the document", func(t *testing.T) {
		img := post.AppendBlock(models.BlockImage)
		post.SetBlockBody(img.ID, "local")
		require.NoError(t, repo.Update(post))

		stored, err := repo.GetByID(post.ID)
		require.NoError(t, err)
		assert.Equal(t, post.Title, stored.Title)
		require.Len(t, stored.Content, 1)
		assert.Equal(t, models.BlockImage, stored.Content[0].Kind)
		require.NotNil(t, stored.Content[0].Image)
		assert.True(t, stored.Content[0].Image.IsPending())
	})

	t.Run("get missing", func(t *testing.T) {
		_, err := repo.GetByID("missing")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("update missing", func(t *testing.T) {
		assert.ErrorIs(t, repo.Update(&models.Post{ID: "missing"}), apperrors.ErrNotFound)
	})

	t.Run("update status is idempotent", func(t *testing.T) {
		require.NoError(t, repo.UpdateStatus(post.ID, models.StatusApproved))
		require.NoError(t, repo.UpdateStatus(post.ID, models.StatusApproved))

		stored, err := repo.GetByID(post.ID)
		require.NoError(t, err)
		assert.Equal(t, models.StatusApproved, stored.Status)
	})

	t.Run("list by status", func(t *testing.T) {
		rejected := &models.Post{AuthorID: "u1", Title: "Rejected one"}
		require.NoError(t, repo.Create(rejected))
		require.NoError(t, repo.UpdateStatus(rejected.ID, models.StatusRejected))

		approved, err := repo.ListByStatus(models.StatusApproved)
		require.NoError(t, err)
		require.Len(t, approved, 1)
		assert.Equal(t, post.ID, approved[0].ID)

		all, err := repo.List()
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("delete", func(t *testing.T) {
		doomed := &models.Post{AuthorID: "u1", Title: "Doomed"}
		require.NoError(t, repo.Create(doomed))
		require.NoError(t, repo.Delete(doomed.ID))
		_, err := repo.GetByID(doomed.ID)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		assert.ErrorIs(t, repo.Delete(doomed.ID), apperrors.ErrNotFound)
	})
}

func TestBadgerSetFeatured(t *testing.T) {
	repo := NewBadgerPostRepository(openTestDB(t))

	var ids []string
	for i := 0; i < 5; i++ {
		post := &models.Post{AuthorID: "u1", Title: "Story"}
		require.NoError(t, repo.Create(post))
		ids = append(ids, post.ID)
	}

	countFeatured := func() int {
		all, err := repo.List()
		require.NoError(t, err)
		n := 0
		for _, p := range all {
			if p.IsFeatured {
				n++
			}
		}
		return n
	}

	t.Run("exclusive set clears the rest", func(t *testing.T) {
		for _, id := range ids {
			require.NoError(t, repo.SetFeaturedExclusive(id))
			assert.Equal(t, 1, countFeatured())
		}

		last, err := repo.GetByID(ids[len(ids)-1])
		require.NoError(t, err)
		assert.True(t, last.IsFeatured)
	})

	t.Run("clear featured", func(t *testing.T) {
		require.NoError(t, repo.ClearFeatured(ids[len(ids)-1]))
		assert.Zero(t, countFeatured())

		// Clearing an unfeatured post is a no-op.
		require.NoError(t, repo.ClearFeatured(ids[0]))
	})

	t.Run("missing post", func(t *testing.T) {
		assert.ErrorIs(t, repo.SetFeaturedExclusive("missing"), apperrors.ErrNotFound)
		assert.ErrorIs(t, repo.ClearFeatured("missing"), apperrors.ErrNotFound)
	})
}
