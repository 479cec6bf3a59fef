package repositories

import (
	"time"

	"frontera/app/apperrors"
	"frontera/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// BadgerProfileRepository implements ProfileRepository using BadgerDB. A
// profile_email: secondary key maps each email to its profile id so sign-in
// can look users up without a scan.
type BadgerProfileRepository struct {
	db *badger.DB
}

// NewBadgerProfileRepository creates a new BadgerProfileRepository
func NewBadgerProfileRepository(db *badger.DB) *BadgerProfileRepository {
	return &BadgerProfileRepository{db: db}
}

// Create stores a new profile, failing with ErrConflict when the email is
// already registered.
func (r *BadgerProfileRepository) Create(profile *models.Profile) error {
	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now()
	}

	data, err := marshalEntity(profile)
	if err != nil {
		return err
	}

	return translateError(r.db.Update(func(txn *badger.Txn) error {
		emailKey := profileEmailKey(profile.Email)
		_, err := txn.Get(emailKey)
		if err == nil {
			return apperrors.ErrConflict
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		if err := txn.Set(profileKey(profile.ID), data); err != nil {
			return err
		}
		return txn.Set(emailKey, []byte(profile.ID))
	}))
}

// GetByID retrieves a profile by ID
func (r *BadgerProfileRepository) GetByID(id string) (*models.Profile, error) {
	var profile models.Profile

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(profileKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &profile)
		})
	})

	if err != nil {
		return nil, translateError(err)
	}
	return &profile, nil
}

// GetByEmail retrieves a profile through the email index.
func (r *BadgerProfileRepository) GetByEmail(email string) (*models.Profile, error) {
	var profile models.Profile

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(profileEmailKey(email))
		if err != nil {
			return err
		}
		var id string
		if err := item.Value(func(val []byte) error {
			id = string(val)
			return nil
		}); err != nil {
			return err
		}

		item, err = txn.Get(profileKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &profile)
		})
	})

	if err != nil {
		return nil, translateError(err)
	}
	return &profile, nil
}

// Update updates an existing profile. The email is treated as immutable.
func (r *BadgerProfileRepository) Update(profile *models.Profile) error {
	return translateError(r.db.Update(func(txn *badger.Txn) error {
		key := profileKey(profile.ID)
		if _, err := txn.Get(key); err != nil {
			return err
		}
		data, err := marshalEntity(profile)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	}))
}
