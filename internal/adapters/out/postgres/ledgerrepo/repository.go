package ledgerrepo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// GormOrderLedger implements the order ledger over GORM.
type GormOrderLedger struct {
	db *gorm.DB
}

// NewGormOrderLedger creates a new GORM order ledger.
func NewGormOrderLedger(db *gorm.DB) *GormOrderLedger {
	return &GormOrderLedger{db: db}
}

// Persist writes the finalized order and its lines in one transaction.
func (r *GormOrderLedger) Persist(ctx context.Context, completed ports.CompletedOrder) error {
	dto := fromDomain(completed)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// Get retrieves a finalized order with its lines.
func (r *GormOrderLedger) Get(ctx context.Context, id uuid.UUID) (ports.CompletedOrder, error) {
	var dto CompletedOrderDTO
	err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.CompletedOrder{}, errs.NewObjectNotFoundError("completed order", id.String())
		}
		return ports.CompletedOrder{}, err
	}

	return toDomain(dto), nil
}
