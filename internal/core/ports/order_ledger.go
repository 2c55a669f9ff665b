package ports

import (
	"context"
	"time"

	"fulfillment/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// CompletedOrder is the durable record written when a conversation's order is
// finalized. Items are copied out of the session at completion time.
type CompletedOrder struct {
	ID          uuid.UUID
	SessionID   string
	Status      string
	CreatedAt   time.Time
	CompletedAt time.Time
	Items       []order.Item
	TotalAmount float64
}

// OrderLedger persists finalized orders. The ledger is append-only from the
// fulfillment core's perspective.
type OrderLedger interface {
	Persist(ctx context.Context, completed CompletedOrder) error
}
