// Package storage provides the object-store capability consumed by the
// vehicle image pipeline: upload bytes under a bucket/key and resolve a
// public URL for them.
package storage

import "context"

type ObjectStore interface {
	// Upload writes the object, replacing any existing object at the same
	// bucket/key.
	Upload(ctx context.Context, bucket, key string, data []byte, contentType string) error
	PublicURL(bucket, key string) string
}
