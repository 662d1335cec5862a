package catalog

import (
	"strings"

	"github.com/retailops/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product is a catalog item. Prices are point values: movements snapshot
// the unit price at write time, so changing a price here never rewrites
// historical rows.
type Product struct {
	shared.BaseAggregateRoot
	Name      string          `gorm:"type:varchar(150);not null"`
	CostPrice decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	SalePrice decimal.Decimal `gorm:"type:decimal(15,2);not null"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new catalog product
func NewProduct(name string, costPrice, salePrice decimal.Decimal) (*Product, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(trimmed) > 150 {
		return nil, shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 150 characters")
	}
	if costPrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Cost price cannot be negative")
	}
	if salePrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Sale price cannot be negative")
	}

	product := &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              trimmed,
		CostPrice:         costPrice,
		SalePrice:         salePrice,
	}
	product.AddDomainEvent(NewProductCreatedEvent(product))

	return product, nil
}
