// Package ledgerrepo persists completed orders. The ledger is the durable
// record of the ordering flow; sessions themselves never touch the database.
package ledgerrepo

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// CompletedOrderDTO is the database row for one finalized order.
type CompletedOrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	SessionID   string    `gorm:"index"`
	Status      string
	CreatedAt   time.Time
	CompletedAt time.Time `gorm:"index"`
	TotalAmount float64
	Items       []CompletedOrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName overrides GORM's default naming to use "completed_orders".
func (CompletedOrderDTO) TableName() string {
	return "completed_orders"
}

// CompletedOrderItemDTO is one order line of a finalized order.
type CompletedOrderItemDTO struct {
	ID             uint      `gorm:"primaryKey;autoIncrement"`
	OrderID        uuid.UUID `gorm:"type:uuid;index"`
	ItemID         string
	Name           string
	Category       string
	Quantity       int
	BasePrice      float64
	Customizations pq.StringArray `gorm:"type:text[]"`
	Size           *string
	SizePrice      float64
	ItemTotal      float64
}

// TableName overrides GORM's default naming to use "completed_order_items".
func (CompletedOrderItemDTO) TableName() string {
	return "completed_order_items"
}

func fromDomain(completed ports.CompletedOrder) CompletedOrderDTO {
	dto := CompletedOrderDTO{
		ID:          completed.ID,
		SessionID:   completed.SessionID,
		Status:      completed.Status,
		CreatedAt:   completed.CreatedAt,
		CompletedAt: completed.CompletedAt,
		TotalAmount: completed.TotalAmount,
	}

	for _, item := range completed.Items {
		dto.Items = append(dto.Items, CompletedOrderItemDTO{
			OrderID:        completed.ID,
			ItemID:         item.ItemID,
			Name:           item.Name,
			Category:       string(item.Category),
			Quantity:       item.Quantity,
			BasePrice:      item.BasePrice,
			Customizations: item.Customizations,
			Size:           item.Size,
			SizePrice:      item.SizePrice,
			ItemTotal:      item.ItemTotal,
		})
	}

	return dto
}

func toDomain(dto CompletedOrderDTO) ports.CompletedOrder {
	completed := ports.CompletedOrder{
		ID:          dto.ID,
		SessionID:   dto.SessionID,
		Status:      dto.Status,
		CreatedAt:   dto.CreatedAt,
		CompletedAt: dto.CompletedAt,
		TotalAmount: dto.TotalAmount,
	}

	for _, item := range dto.Items {
		completed.Items = append(completed.Items, order.Item{
			ItemID:         item.ItemID,
			Name:           item.Name,
			Category:       order.Category(item.Category),
			Quantity:       item.Quantity,
			BasePrice:      item.BasePrice,
			Customizations: item.Customizations,
			Size:           item.Size,
			SizePrice:      item.SizePrice,
			ItemTotal:      item.ItemTotal,
		})
	}

	return completed
}
