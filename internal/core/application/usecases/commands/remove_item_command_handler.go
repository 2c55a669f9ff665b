package commands

import (
	"context"
	"fmt"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
)

// RemoveItemCommandHandler removes an item, or part of its quantity,
// from the conversation's order. Removing fewer units than the line
// holds rescales the line total proportionally instead of repricing it,
// so size surcharges baked into the total shrink with the quantity.
type RemoveItemCommandHandler struct {
	sessions ports.SessionStore
}

// NewRemoveItemCommandHandler creates a handler for item removals.
func NewRemoveItemCommandHandler(sessions ports.SessionStore) RemoveItemCommandHandler {
	return RemoveItemCommandHandler{sessions: sessions}
}

// Handle removes the named item and confirms, or reports that the item
// was not in the order.
func (h *RemoveItemCommandHandler) Handle(_ context.Context, cmd RemoveItemCommand) (Reply, error) {
	if err := cmd.Validate(); err != nil {
		return Reply{}, err
	}

	snapshot := h.sessions.GetOrCreate(cmd.SessionID())
	if len(snapshot.Items) == 0 {
		return textReply("There's no active order to remove items from."), nil
	}

	target := cmd.FoodName()
	if target == "" {
		target = cmd.DrinkName()
	}
	if target == "" {
		return textReply("I'm not sure which item you want to remove. Could you please specify?"), nil
	}

	quantity := cmd.Quantity().OrDefault(1)

	removed := false
	if err := h.sessions.Update(cmd.SessionID(), func(s *order.Session) error {
		removed = s.Reduce(target, quantity)
		return nil
	}); err != nil {
		return Reply{}, err
	}

	if !removed {
		return textReply(fmt.Sprintf("I couldn't find %s in your order.", target)), nil
	}

	return textReply(fmt.Sprintf("You got it. I have removed %d %s. Anything else?", quantity, target)), nil
}
