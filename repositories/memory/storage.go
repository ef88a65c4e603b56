package memory

import (
	"context"
	"sync"
	"time"

	"github.com/alerta-golpe/api-go/repositories"
)

// ObjectStorage records presigned and deleted keys instead of talking to a bucket.
type ObjectStorage struct {
	mu      sync.Mutex
	BaseURL string
	Signed  map[string]time.Duration
	Deleted []string
}

func NewObjectStorage(baseURL string) *ObjectStorage {
	return &ObjectStorage{BaseURL: baseURL, Signed: map[string]time.Duration{}}
}

var _ repositories.ObjectStorage = (*ObjectStorage)(nil)

func (s *ObjectStorage) PresignPut(_ context.Context, key, contentType string, expires time.Duration) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Signed[key] = expires
	return s.BaseURL + "/upload/" + key + "?content-type=" + contentType, nil
}

func (s *ObjectStorage) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Deleted = append(s.Deleted, key)
	return nil
}

func (s *ObjectStorage) PublicURL(key string) string {
	return s.BaseURL + "/" + key
}
