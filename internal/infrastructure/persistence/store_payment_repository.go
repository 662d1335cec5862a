package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/retailops/backend/internal/domain/ledger"
	"github.com/retailops/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormStorePaymentRepository implements StorePaymentRepository using GORM
type GormStorePaymentRepository struct {
	db *gorm.DB
}

// NewGormStorePaymentRepository creates a new GormStorePaymentRepository
func NewGormStorePaymentRepository(db *gorm.DB) *GormStorePaymentRepository {
	return &GormStorePaymentRepository{db: db}
}

// Save appends a payment to the ledger. Payments are immutable, so this
// is always an insert.
func (r *GormStorePaymentRepository) Save(ctx context.Context, payment *ledger.StorePayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

// FindByID finds a payment by its ID
func (r *GormStorePaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*ledger.StorePayment, error) {
	var payment ledger.StorePayment
	if err := r.db.WithContext(ctx).First(&payment, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &payment, nil
}

// FindForPeriod returns all payments matching the filter in
// chronological order
func (r *GormStorePaymentRepository) FindForPeriod(ctx context.Context, filter ledger.PeriodFilter) ([]ledger.StorePayment, error) {
	query := r.db.WithContext(ctx)
	if filter.From != nil {
		query = query.Where("date >= ?", dayStart(*filter.From))
	}
	if filter.To != nil {
		query = query.Where("date <= ?", dayEnd(*filter.To))
	}
	if filter.DistrictID != nil {
		query = query.Where("district_id = ?", *filter.DistrictID)
	}
	if filter.StoreID != nil {
		query = query.Where("store_id = ?", *filter.StoreID)
	}

	var payments []ledger.StorePayment
	if err := query.
		Order("date ASC, created_at ASC").
		Find(&payments).Error; err != nil {
		return nil, err
	}
	return payments, nil
}

// Count counts all payments
func (r *GormStorePaymentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ledger.StorePayment{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormStorePaymentRepository implements StorePaymentRepository
var _ ledger.StorePaymentRepository = (*GormStorePaymentRepository)(nil)
