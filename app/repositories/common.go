package repositories

import (
	"encoding/json"
	"errors"
	"fmt"

	"frontera/app/apperrors"

	"github.com/dgraph-io/badger/v4"
)

const (
	// Key prefixes for different entity types
	PostKeyPrefix    = "post:"
	LikeKeyPrefix    = "like:"
	ProfileKeyPrefix = "profile:"

	// Secondary index mapping email -> profile id
	ProfileEmailKeyPrefix = "profile_email:"
)

func postKey(id string) []byte {
	return []byte(PostKeyPrefix + id)
}

// likeKey makes the (post, user) pair the primary key, so ledger uniqueness
// is the keyspace itself and a per-post prefix scan yields the count.
func likeKey(postID, userID string) []byte {
	return []byte(fmt.Sprintf("%s%s:%s", LikeKeyPrefix, postID, userID))
}

func likePostPrefix(postID string) []byte {
	return []byte(LikeKeyPrefix + postID + ":")
}

func profileKey(id string) []byte {
	return []byte(ProfileKeyPrefix + id)
}

func profileEmailKey(email string) []byte {
	return []byte(ProfileEmailKeyPrefix + email)
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %v", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %v", err)
	}
	return nil
}

// translateError maps Badger errors onto the shared taxonomy: a lost
// transaction conflict becomes ErrConflict so callers can reconcile by
// re-reading instead of trusting their optimistic state.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, badger.ErrKeyNotFound):
		return apperrors.ErrNotFound
	case errors.Is(err, badger.ErrConflict):
		return apperrors.ErrConflict
	case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrConflict):
		return err
	default:
		return apperrors.Transient("badger", err)
	}
}
