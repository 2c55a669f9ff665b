package services

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// unrestrictedMaxQuantity is the ceiling applied when neither an item
// override nor a category default is configured.
const unrestrictedMaxQuantity = 999

// LimitDecision is the outcome of a quantity-limit check. Message carries the
// user-facing decline text when Allowed is false.
type LimitDecision struct {
	Allowed bool
	Message string
}

// QuantityLimitPolicy decides whether a requested quantity is acceptable for
// an (item, category) pair based on the externally managed limits
// configuration.
//
// The policy fails open: an absent, unreachable, or malformed configuration
// allows the order to proceed. Availability is deliberately preferred over
// strictness here — a broken policy store must not stop the counter.
type QuantityLimitPolicy struct {
	provider ports.LimitsConfigProvider
	logger   *slog.Logger
}

// NewQuantityLimitPolicy creates a QuantityLimitPolicy over the given
// configuration provider.
func NewQuantityLimitPolicy(provider ports.LimitsConfigProvider, logger *slog.Logger) QuantityLimitPolicy {
	return QuantityLimitPolicy{
		provider: provider,
		logger:   logger.With("component", "quantity_limit_policy"),
	}
}

// Check validates the requested quantity. The effective maximum is the
// item-specific override when configured, else the category default, else an
// unrestricted ceiling.
func (p QuantityLimitPolicy) Check(
	ctx context.Context,
	category order.Category,
	itemID string,
	quantity int,
) LimitDecision {
	cfg, err := p.provider.Get(ctx)
	if err != nil {
		p.logger.WarnContext(ctx, "Order limits config unreachable, allowing order", "error", err)
		return LimitDecision{Allowed: true}
	}
	if cfg == nil {
		return LimitDecision{Allowed: true}
	}

	limit := cfg.Category(category)
	maxQuantity := limit.ItemLimits[itemID]
	if maxQuantity == 0 {
		maxQuantity = limit.DefaultMaxQuantity
	}
	if maxQuantity == 0 {
		maxQuantity = unrestrictedMaxQuantity
	}

	if quantity <= maxQuantity {
		return LimitDecision{Allowed: true}
	}

	return LimitDecision{Message: p.declineMessage(cfg, itemID, quantity)}
}

func (p QuantityLimitPolicy) declineMessage(cfg *ports.LimitsConfig, itemID string, quantity int) string {
	if cfg.ExceedMessage == "" {
		return fmt.Sprintf(
			"For orders of %d items, please visit our counter for special handling. How else can I help you?",
			quantity,
		)
	}

	return strings.NewReplacer(
		"{quantity}", strconv.Itoa(quantity),
		"{item_name}", itemID,
	).Replace(cfg.ExceedMessage)
}
