package repositories

import (
	"frontera/app/apperrors"
	"frontera/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

// Create creates a new post
func (r *BadgerPostRepository) Create(post *models.Post) error {
	post.BeforeCreate()

	data, err := marshalEntity(post)
	if err != nil {
		return err
	}

	return translateError(r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(postKey(post.ID), data)
	}))
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(id string) (*models.Post, error) {
	var post models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
	})

	if err != nil {
		return nil, translateError(err)
	}
	return &post, nil
}

// List retrieves all posts
func (r *BadgerPostRepository) List() ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		return forEachPost(txn, func(post *models.Post) error {
			posts = append(posts, post)
			return nil
		})
	})
	if err != nil {
		return nil, translateError(err)
	}
	return posts, nil
}

// ListByStatus retrieves all posts in the given moderation state
func (r *BadgerPostRepository) ListByStatus(status models.Status) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		return forEachPost(txn, func(post *models.Post) error {
			if post.Status == status {
				posts = append(posts, post)
			}
			return nil
		})
	})
	if err != nil {
		return nil, translateError(err)
	}
	return posts, nil
}

// Update updates an existing post
func (r *BadgerPostRepository) Update(post *models.Post) error {
	return translateError(r.db.Update(func(txn *badger.Txn) error {
		key := postKey(post.ID)

		// Verify post exists
		if _, err := txn.Get(key); err != nil {
			return err
		}

		data, err := marshalEntity(post)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	}))
}

// UpdateStatus sets the post's moderation state. Setting the current state
// again is a no-op effect-wise.
func (r *BadgerPostRepository) UpdateStatus(id string, status models.Status) error {
	return translateError(r.db.Update(func(txn *badger.Txn) error {
		post, err := readPost(txn, id)
		if err != nil {
			return err
		}
		if post.Status == status {
			return nil
		}
		post.Status = status
		return writePost(txn, post)
	}))
}

// SetFeaturedExclusive clears the featured flag on every post and then sets
// it on the target, all inside one transaction, so the featured set can
// never accumulate past the cap.
func (r *BadgerPostRepository) SetFeaturedExclusive(id string) error {
	return translateError(r.db.Update(func(txn *badger.Txn) error {
		target, err := readPost(txn, id)
		if err != nil {
			return err
		}

		if err := forEachPost(txn, func(post *models.Post) error {
			if !post.IsFeatured || post.ID == id {
				return nil
			}
			post.IsFeatured = false
			return writePost(txn, post)
		}); err != nil {
			return err
		}

		target.IsFeatured = true
		return writePost(txn, target)
	}))
}

// ClearFeatured clears the featured flag on the target post only.
func (r *BadgerPostRepository) ClearFeatured(id string) error {
	return translateError(r.db.Update(func(txn *badger.Txn) error {
		post, err := readPost(txn, id)
		if err != nil {
			return err
		}
		if !post.IsFeatured {
			return nil
		}
		post.IsFeatured = false
		return writePost(txn, post)
	}))
}

// Delete deletes a post by ID
func (r *BadgerPostRepository) Delete(id string) error {
	return translateError(r.db.Update(func(txn *badger.Txn) error {
		key := postKey(id)
		if _, err := txn.Get(key); err != nil {
			return err
		}
		return txn.Delete(key)
	}))
}

// readPost loads one post inside a transaction.
func readPost(txn *badger.Txn, id string) (*models.Post, error) {
	item, err := txn.Get(postKey(id))
	if err == badger.ErrKeyNotFound {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var post models.Post
	if err := item.Value(func(val []byte) error {
		return unmarshalEntity(val, &post)
	}); err != nil {
		return nil, err
	}
	return &post, nil
}

// writePost stores one post inside a transaction.
func writePost(txn *badger.Txn, post *models.Post) error {
	data, err := marshalEntity(post)
	if err != nil {
		return err
	}
	return txn.Set(postKey(post.ID), data)
}

// forEachPost scans the post keyspace, invoking fn per decoded post.
func forEachPost(txn *badger.Txn, fn func(*models.Post) error) error {
	opts := badger.DefaultIteratorOptions
	it := txn.NewIterator(opts)
	defer it.Close()

	prefix := []byte(PostKeyPrefix)
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		var post models.Post
		err := item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
		if err != nil {
			return err
		}
		if err := fn(&post); err != nil {
			return err
		}
	}
	return nil
}
