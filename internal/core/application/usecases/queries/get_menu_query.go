package queries

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrGetMenuQueryIsNotConstructed = errors.New(
	"GetMenuQuery must be created via NewGetMenuQuery constructor",
)

// GetMenuQuery retrieves the full catalog for display surfaces: kiosk
// screens, the agent's entity sync, back-office tooling.
//
// Example:
//
//	query := NewGetMenuQuery()
//	handler := NewGetMenuQueryHandler(db)
//
//	items, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to load menu: %w", err)
//	}
//	for _, item := range items {
//	    fmt.Printf("%s  $%.2f\n", item.Name, item.BasePrice)
//	}
type GetMenuQuery struct {
	guard guard.ConstructorGuard
}

// NewGetMenuQuery creates a query for the full catalog.
func NewGetMenuQuery() GetMenuQuery {
	return GetMenuQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetMenuQuery) Validate() error {
	return q.guard.Validate(ErrGetMenuQueryIsNotConstructed)
}

// GetMenuQueryResponse is one catalog item with its size surcharges.
type GetMenuQueryResponse struct {
	ID        string
	Name      string
	BasePrice float64
	HasSize   bool
	Sizes     map[string]float64
}
