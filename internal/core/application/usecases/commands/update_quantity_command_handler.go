package commands

import (
	"context"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/dialog"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
)

// UpdateQuantityCommandHandler changes the quantity of the most recent
// order item, rechecking the quantity limit against the item's stored
// category before applying.
type UpdateQuantityCommandHandler struct {
	sessions ports.SessionStore
	limits   services.QuantityLimitPolicy
}

// NewUpdateQuantityCommandHandler creates a handler for quantity changes.
func NewUpdateQuantityCommandHandler(
	sessions ports.SessionStore,
	limits services.QuantityLimitPolicy,
) UpdateQuantityCommandHandler {
	return UpdateQuantityCommandHandler{
		sessions: sessions,
		limits:   limits,
	}
}

// Handle requantifies the last item and confirms the updated line.
func (h *UpdateQuantityCommandHandler) Handle(ctx context.Context, cmd UpdateQuantityCommand) (Reply, error) {
	if err := cmd.Validate(); err != nil {
		return Reply{}, err
	}

	if !cmd.Quantity().Valid {
		return textReply("I'm sorry, I didn't catch how many you wanted. Could you please repeat that?"), nil
	}
	quantity := cmd.Quantity().Value

	snapshot := h.sessions.GetOrCreate(cmd.SessionID())
	if len(snapshot.Items) == 0 {
		return textReply("I don't see any active orders to modify. What would you like to order?"), nil
	}
	last := snapshot.Items[len(snapshot.Items)-1]

	decision := h.limits.Check(ctx, last.Category, last.ItemID, quantity)
	if !decision.Allowed {
		return Reply{
			Text: decision.Message,
			Directives: []dialog.Directive{
				dialog.NewDirective(cmd.ProjectID(), cmd.SessionID(), dialog.ContextAwaitingLimitAcknowledgment, 1, nil),
			},
		}, nil
	}

	var updated order.Item
	if err := h.sessions.Update(cmd.SessionID(), func(s *order.Session) error {
		item, ok := s.RequantifyLast(quantity)
		if ok {
			updated = item
		}
		return nil
	}); err != nil {
		return Reply{}, err
	}

	text := fmt.Sprintf("I've updated the quantity to %d %s", quantity, updated.Name)
	if size := updated.SizeLabel(); size != "" {
		text = fmt.Sprintf("I've updated the quantity to %d %s %s", quantity, size, updated.Name)
	}
	if len(updated.Customizations) > 0 {
		text += " with " + strings.Join(updated.Customizations, ", ")
	}
	text += ". Would you like anything else?"

	return textReply(text), nil
}
