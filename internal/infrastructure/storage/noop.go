package storage

import (
	"context"
	"errors"
	"time"
)

// NoopStore is the ObjectStore used when S3 archiving is disabled. Writes
// succeed silently and reads report nothing stored.
type NoopStore struct{}

// NewNoopStore creates a new NoopStore
func NewNoopStore() *NoopStore {
	return &NoopStore{}
}

func (*NoopStore) Put(_ context.Context, key string, _ []byte, _ string) error {
	if key == "" {
		return errors.New("storage key is required")
	}
	return nil
}

func (*NoopStore) Exists(_ context.Context, key string) (bool, error) {
	if key == "" {
		return false, errors.New("storage key is required")
	}
	return false, nil
}

func (*NoopStore) Delete(_ context.Context, key string) error {
	if key == "" {
		return errors.New("storage key is required")
	}
	return nil
}

func (*NoopStore) PresignDownload(_ context.Context, key string, expiresIn time.Duration) (string, time.Time, error) {
	if key == "" {
		return "", time.Time{}, errors.New("storage key is required")
	}
	return "", time.Now().Add(expiresIn), errors.New("object storage is disabled")
}

// Ensure NoopStore implements ObjectStore
var _ ObjectStore = (*NoopStore)(nil)
