// Package storage is the object-store collaborator: opaque uploads in, a
// public URL out. The disk implementation exists to make the contract
// executable locally, not as a production backend.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"frontera/app/apperrors"

	"github.com/google/uuid"
)

// Store is the object storage contract consumed by the submission pipeline.
type Store interface {
	Upload(bucket, key string, data []byte) (ref string, err error)
	PublicURL(ref string) string
}

// NewObjectKey generates a collision-resistant object key: timestamp plus a
// random suffix.
func NewObjectKey(prefix, ext string) string {
	return fmt.Sprintf("%s-%d-%s%s", prefix, time.Now().UnixNano(), uuid.NewString(), ext)
}

// DiskStore keeps objects under a root directory, one subdirectory per
// bucket, and serves them from a base URL.
type DiskStore struct {
	root    string
	baseURL string
}

// NewDiskStore creates a DiskStore rooted at root, serving from baseURL.
func NewDiskStore(root, baseURL string) *DiskStore {
	return &DiskStore{root: root, baseURL: strings.TrimRight(baseURL, "/")}
}

// Upload writes the object and returns its ref ("bucket/key").
func (s *DiskStore) Upload(bucket, key string, data []byte) (string, error) {
	dir := filepath.Join(s.root, bucket)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", apperrors.Transient("storage upload", err)
	}
	if err := os.WriteFile(filepath.Join(dir, key), data, 0o644); err != nil {
		return "", apperrors.Transient("storage upload", err)
	}
	return bucket + "/" + key, nil
}

// PublicURL maps a ref to the URL it is served from.
func (s *DiskStore) PublicURL(ref string) string {
	if ref == "" {
		return ""
	}
	return s.baseURL + "/" + ref
}

// MemStore is an in-memory Store for tests. FailUploads makes every upload
// return a transient error, for exercising abort paths.
type MemStore struct {
	mu          sync.Mutex
	objects     map[string][]byte
	FailUploads bool
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{objects: make(map[string][]byte)}
}

// Upload stores the object in memory.
func (s *MemStore) Upload(bucket, key string, data []byte) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailUploads {
		return "", apperrors.Transient("storage upload", fmt.Errorf("upload rejected"))
	}
	ref := bucket + "/" + key
	s.objects[ref] = data
	return ref, nil
}

// PublicURL maps a ref to a synthetic URL.
func (s *MemStore) PublicURL(ref string) string {
	if ref == "" {
		return ""
	}
	return "mem://" + ref
}

// Len reports how many objects the store holds.
func (s *MemStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.objects)
}
