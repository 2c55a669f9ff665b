package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetCompletedOrdersQueryHandler lists recently completed orders from the
// ledger tables.
type GetCompletedOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetCompletedOrdersQueryHandler creates a handler for completed-order
// listings.
func NewGetCompletedOrdersQueryHandler(db *gorm.DB) GetCompletedOrdersQueryHandler {
	return GetCompletedOrdersQueryHandler{db: db}
}

// Handle returns up to Limit completed orders, newest first, with the
// summed item quantity per order.
func (h GetCompletedOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetCompletedOrdersQuery,
) ([]GetCompletedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetCompletedOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.session_id,
			o.completed_at,
			o.total_amount,
			COALESCE(SUM(i.quantity), 0) AS item_count
		FROM completed_orders o
		LEFT JOIN completed_order_items i ON i.order_id = o.id
		GROUP BY o.id, o.session_id, o.completed_at, o.total_amount
		ORDER BY o.completed_at DESC
		LIMIT ?
	`, query.Limit()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderResp GetCompletedOrdersQueryResponse
		if err = rows.Scan(
			&orderResp.ID,
			&orderResp.SessionID,
			&orderResp.CompletedAt,
			&orderResp.TotalAmount,
			&orderResp.ItemCount,
		); err != nil {
			return nil, err
		}
		orders = append(orders, orderResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
