package repositories

import (
	"time"

	"frontera/app/apperrors"
	"frontera/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerLikeRepository implements LikeRepository using BadgerDB. The
// like:<postID>:<userID> key is the pair's primary key, and the
// check-then-set runs inside one update transaction: Badger aborts the
// loser of two conflicting transactions, so two concurrent inserts for the
// same pair cannot both succeed.
type BadgerLikeRepository struct {
	db *badger.DB
}

// NewBadgerLikeRepository creates a new BadgerLikeRepository
func NewBadgerLikeRepository(db *badger.DB) *BadgerLikeRepository {
	return &BadgerLikeRepository{db: db}
}

// Insert adds the like row, failing with ErrConflict when the
// (user, post) pair already holds one.
func (r *BadgerLikeRepository) Insert(like *models.Like) error {
	if like.CreatedAt.IsZero() {
		like.CreatedAt = time.Now()
	}

	data, err := marshalEntity(like)
	if err != nil {
		return err
	}

	return translateError(r.db.Update(func(txn *badger.Txn) error {
		key := likeKey(like.PostID, like.UserID)
		_, err := txn.Get(key)
		if err == nil {
			return apperrors.ErrConflict
		}
		if err != badger.ErrKeyNotFound {
			return err
		}
		return txn.Set(key, data)
	}))
}

// Remove deletes the like row, failing with ErrNotFound when the pair holds
// none.
func (r *BadgerLikeRepository) Remove(userID, postID string) error {
	return translateError(r.db.Update(func(txn *badger.Txn) error {
		key := likeKey(postID, userID)
		if _, err := txn.Get(key); err != nil {
			return err
		}
		return txn.Delete(key)
	}))
}

// Exists reports whether the (user, post) pair holds a like row.
func (r *BadgerLikeRepository) Exists(userID, postID string) (bool, error) {
	var exists bool
	err := r.db.View(func(txn *badger.Txn) error {
		_, err := txn.Get(likeKey(postID, userID))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		exists = true
		return nil
	})
	if err != nil {
		return false, translateError(err)
	}
	return exists, nil
}

// CountByPost recomputes the like count as the cardinality of rows for the
// post. Values are never fetched; the key scan is enough.
func (r *BadgerLikeRepository) CountByPost(postID string) (int, error) {
	count := 0
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := likePostPrefix(postID)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

// DeleteByPost removes every like row for the post, so deleting a post never
// leaves ledger entries pointing at a missing row.
func (r *BadgerLikeRepository) DeleteByPost(postID string) error {
	return translateError(r.db.Update(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)

		prefix := likePostPrefix(postID)
		var keys [][]byte
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			keys = append(keys, it.Item().KeyCopy(nil))
		}
		it.Close()

		for _, key := range keys {
			if err := txn.Delete(key); err != nil {
				return err
			}
		}
		return nil
	}))
}
