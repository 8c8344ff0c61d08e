package storagemock

import (
	"context"
	"fmt"
	"sync"
)

// Upload records a single Upload call.
type Upload struct {
	Bucket      string
	Key         string
	ContentType string
	Data        []byte
}

// Store is an in-memory object store that records every upload. The zero
// value is ready to use.
type Store struct {
	mu      sync.Mutex
	uploads []Upload

	// UploadErr, when set, is returned by Upload instead of recording.
	UploadErr error
}

func (s *Store) Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error {
	if s.UploadErr != nil {
		return s.UploadErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads = append(s.uploads, Upload{Bucket: bucket, Key: key, ContentType: contentType, Data: data})
	return nil
}

func (s *Store) PublicURL(bucket, key string) string {
	return fmt.Sprintf("http://store.local/%s/%s", bucket, key)
}

// Uploads returns a copy of the recorded uploads.
func (s *Store) Uploads() []Upload {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Upload, len(s.uploads))
	copy(out, s.uploads)
	return out
}
