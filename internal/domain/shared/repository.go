package shared

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the base interface for reference-data repositories.
// Listing returns the full collection: report aggregation operates on
// complete snapshots, so there is no pagination at this layer.
type Repository[T any] interface {
	FindByID(ctx context.Context, id uuid.UUID) (*T, error)
	FindAll(ctx context.Context) ([]T, error)
	Save(ctx context.Context, entity *T) error
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}
