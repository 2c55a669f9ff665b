package commands

import (
	"context"
	"errors"
	"fmt"

	"fulfillment/internal/core/domain/model/dialog"
	"fulfillment/internal/core/domain/model/menu"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

var errCombinedAddAborted = errors.New("combined add aborted")

// AddCombinedCommandHandler adds every item of a multi-item utterance to
// the order, foods first, then drinks. Processing is sequential and
// stops at the first item that fails: items committed before the failure
// stay in the order, so a partial utterance is confirmed partially
// rather than rolled back.
type AddCombinedCommandHandler struct {
	sessions ports.SessionStore
	catalog  ports.MenuCatalog
	limits   services.QuantityLimitPolicy
}

// NewAddCombinedCommandHandler creates a handler for multi-item additions.
func NewAddCombinedCommandHandler(
	sessions ports.SessionStore,
	catalog ports.MenuCatalog,
	limits services.QuantityLimitPolicy,
) AddCombinedCommandHandler {
	return AddCombinedCommandHandler{
		sessions: sessions,
		catalog:  catalog,
		limits:   limits,
	}
}

// Handle processes the combined addition and confirms the full list of
// added items, or relays the first decline it runs into.
func (h *AddCombinedCommandHandler) Handle(ctx context.Context, cmd AddCombinedCommand) (Reply, error) {
	if err := cmd.Validate(); err != nil {
		return Reply{}, err
	}

	quantities := dialog.PadQuantities(cmd.Quantities(), len(cmd.FoodNames())+len(cmd.DrinkNames()))

	var added []string
	slot := 0

	for _, name := range cmd.FoodNames() {
		quantity := quantities[slot].OrDefault(1)
		slot++

		item, reply, err := h.admit(ctx, cmd, order.CategoryFood, name, quantity)
		if err != nil {
			if errors.Is(err, errCombinedAddAborted) {
				return reply, nil
			}
			return Reply{}, err
		}

		line := newOrderLine(item, order.CategoryFood, quantity, "", nil)
		if err := h.append(cmd.SessionID(), line); err != nil {
			return Reply{}, err
		}
		added = append(added, describeAddition(quantity, "", item.Name, nil))
	}

	for i, name := range cmd.DrinkNames() {
		quantity := quantities[slot].OrDefault(1)
		slot++

		size := ""
		if i < len(cmd.DrinkSizes()) {
			size = cmd.DrinkSizes()[i]
		}

		item, reply, err := h.admit(ctx, cmd, order.CategoryDrink, name, quantity)
		if err != nil {
			if errors.Is(err, errCombinedAddAborted) {
				return reply, nil
			}
			return Reply{}, err
		}

		line := newOrderLine(item, order.CategoryDrink, quantity, size, nil)
		if err := h.append(cmd.SessionID(), line); err != nil {
			return Reply{}, err
		}

		// The drink is already committed; the size question interrupts the
		// confirmation without a continuation context.
		if size == "" && item.HasSize {
			return textReply(fmt.Sprintf("What size would you like for your %s?", name)), nil
		}
		added = append(added, describeAddition(quantity, size, item.Name, nil))
	}

	if len(added) == 0 {
		return textReply("I'm sorry, I didn't catch what items you wanted to order. Could you please repeat that?"), nil
	}

	return textReply(fmt.Sprintf(
		"Okay, I've added %s to your order. Anything else?", joinList(added),
	)), nil
}

// admit resolves the item against the catalog and checks the quantity
// limit. A catalog miss or a limit decline aborts the combined add with
// the reply to relay.
func (h *AddCombinedCommandHandler) admit(
	ctx context.Context,
	cmd AddCombinedCommand,
	category order.Category,
	name string,
	quantity int,
) (*menu.Item, Reply, error) {
	item, err := h.catalog.Lookup(ctx, name)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			reply := textReply(fmt.Sprintf("I'm sorry, we don't have %s on our menu.", name))
			return nil, reply, errCombinedAddAborted
		}
		return nil, Reply{}, err
	}

	decision := h.limits.Check(ctx, category, item.ID, quantity)
	if !decision.Allowed {
		reply := Reply{
			Text: decision.Message,
			Directives: []dialog.Directive{
				dialog.NewDirective(cmd.ProjectID(), cmd.SessionID(), dialog.ContextAwaitingLimitAcknowledgment, 1, nil),
			},
		}
		return nil, reply, errCombinedAddAborted
	}

	return item, Reply{}, nil
}

func (h *AddCombinedCommandHandler) append(sessionID string, line order.Item) error {
	return h.sessions.Update(sessionID, func(s *order.Session) error {
		s.Append(line)
		return nil
	})
}
