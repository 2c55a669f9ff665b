package queries

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"fulfillment/internal/pkg/guard"
)

var (
	ErrGetCompletedOrdersQueryIsNotConstructed = errors.New(
		"GetCompletedOrdersQuery must be created via NewGetCompletedOrdersQuery constructor",
	)
	ErrLimitIsInvalid = errors.New("limit must be greater than 0")
)

// GetCompletedOrdersQuery retrieves the most recently completed orders
// for monitoring and reporting.
//
// Example:
//
//	query, err := NewGetCompletedOrdersQuery(20)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetCompletedOrdersQueryHandler(db)
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load completed orders: %w", err)
//	}
//	fmt.Printf("Last %d completed orders loaded\n", len(orders))
type GetCompletedOrdersQuery struct { //nolint:recvcheck //using for validation
	limit int

	guard guard.ConstructorGuard
}

// NewGetCompletedOrdersQuery creates a query for the latest completed
// orders, newest first.
func NewGetCompletedOrdersQuery(limit int) (GetCompletedOrdersQuery, error) {
	ordersQuery := GetCompletedOrdersQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := ordersQuery.setLimit(limit); err != nil {
		return GetCompletedOrdersQuery{}, err
	}

	return ordersQuery, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCompletedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetCompletedOrdersQueryIsNotConstructed)
}

// Limit returns the maximum number of orders to return.
func (q GetCompletedOrdersQuery) Limit() int {
	return q.limit
}

func (q *GetCompletedOrdersQuery) setLimit(limit int) error {
	if limit <= 0 {
		return ErrLimitIsInvalid
	}

	q.limit = limit
	return nil
}

// GetCompletedOrdersQueryResponse is one completed order in the listing.
type GetCompletedOrdersQueryResponse struct {
	ID          uuid.UUID
	SessionID   string
	CompletedAt time.Time
	TotalAmount float64
	ItemCount   int
}
