package catalog

import (
	"context"

	"github.com/retailops/backend/internal/domain/shared"
)

// ProductRepository manages Product persistence
type ProductRepository interface {
	shared.Repository[Product]
	// ExistsByName reports whether a product with the exact name exists.
	// Used to reject duplicate catalog entries.
	ExistsByName(ctx context.Context, name string) (bool, error)
}
