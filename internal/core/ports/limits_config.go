package ports

import (
	"context"

	"fulfillment/internal/core/domain/model/order"
)

// CategoryLimit configures the orderable quantity ceiling for one category.
// ItemLimits overrides the default for specific item ids; a zero override is
// treated as unset.
type CategoryLimit struct {
	DefaultMaxQuantity int
	ItemLimits         map[string]int
}

// LimitsConfig is the externally managed quantity-limit policy document.
// ExceedMessage is a decline template; "{quantity}" and "{item_name}"
// placeholders are substituted when it is rendered.
type LimitsConfig struct {
	Food          CategoryLimit
	Drink         CategoryLimit
	ExceedMessage string
}

// Category returns the limit configuration for the given category.
func (c *LimitsConfig) Category(category order.Category) CategoryLimit {
	if category == order.CategoryDrink {
		return c.Drink
	}
	return c.Food
}

// LimitsConfigProvider fetches the quantity-limit configuration.
// An absent configuration is reported as (nil, nil); callers treat both an
// absent document and a fetch error as "no limit" (fail open).
type LimitsConfigProvider interface {
	Get(ctx context.Context) (*LimitsConfig, error)
}
