package repositories

import (
	"testing"

	"frontera/app/apperrors"
	"frontera/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBadgerProfileRepository(t *testing.T) {
	repo := NewBadgerProfileRepository(openTestDB(t))

	profile := &models.Profile{
		Email:    "victoria@example.com",
		FullName: "Victoria Ruiz",
		Username: "vruiz",
	}

	t.Run("create assigns an id", func(t *testing.T) {
		require.NoError(t, repo.Create(profile))
		assert.NotEmpty(t, profile.ID)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		err := repo.Create(&models.Profile{Email: "victoria@example.com"})
		assert.ErrorIs(t, err, apperrors.ErrConflict)
	})

	t.Run("get by id", func(t *testing.T) {
		stored, err := repo.GetByID(profile.ID)
		require.NoError(t, err)
		assert.Equal(t, "Victoria Ruiz", stored.FullName)
	})

	t.Run("get by email", func(t *testing.T) {
		stored, err := repo.GetByEmail("victoria@example.com")
		require.NoError(t, err)
		assert.Equal(t, profile.ID, stored.ID)
	})

	t.Run("missing lookups", func(t *testing.T) {
		_, err := repo.GetByID("missing")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
		_, err = repo.GetByEmail("nobody@example.com")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("update", func(t *testing.T) {
		profile.IsAdmin = true
		require.NoError(t, repo.Update(profile))

		stored, err := repo.GetByID(profile.ID)
		require.NoError(t, err)
		assert.True(t, stored.IsAdmin)

		assert.ErrorIs(t, repo.Update(&models.Profile{ID: "missing"}), apperrors.ErrNotFound)
	})
}
