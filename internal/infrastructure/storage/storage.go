// Package storage archives report snapshots to S3-compatible object storage.
package storage

import (
	"context"
	"time"
)

// ObjectStore is the object storage surface the archiver needs.
type ObjectStore interface {
	// Put uploads data under the given key, overwriting any previous object.
	Put(ctx context.Context, key string, data []byte, contentType string) error
	// Exists reports whether an object is present under the key.
	Exists(ctx context.Context, key string) (bool, error)
	// Delete removes the object under the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// PresignDownload returns a time-limited URL for fetching the object.
	PresignDownload(ctx context.Context, key string, expiresIn time.Duration) (string, time.Time, error)
}
