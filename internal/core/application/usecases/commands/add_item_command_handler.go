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

// AddItemCommandHandler adds one food or drink to the conversation's order.
//
// Foods and drinks with sizes follow different flows on purpose: a food
// missing its size is withheld from the order until the size arrives,
// while a drink is committed size-less first and the size question is
// asked afterwards.
//
// Example:
//
//	handler := NewAddItemCommandHandler(sessions, catalog, customizations, limits)
//	cmd, _ := NewAddItemCommand("abc-123", "my-project", order.CategoryDrink,
//	    "coke", "", dialog.Quantity{}, nil, nil)
//
//	reply, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("add failed: %w", err)
//	}
//	// reply.Text asks for the drink size, the coke is already in the order
type AddItemCommandHandler struct {
	sessions       ports.SessionStore
	catalog        ports.MenuCatalog
	customizations services.CustomizationPolicy
	limits         services.QuantityLimitPolicy
}

// NewAddItemCommandHandler creates a handler for single-item additions.
func NewAddItemCommandHandler(
	sessions ports.SessionStore,
	catalog ports.MenuCatalog,
	customizations services.CustomizationPolicy,
	limits services.QuantityLimitPolicy,
) AddItemCommandHandler {
	return AddItemCommandHandler{
		sessions:       sessions,
		catalog:        catalog,
		customizations: customizations,
		limits:         limits,
	}
}

// Handle processes the addition. Missing or unknown slot values produce
// clarification replies; only infrastructure failures surface as errors.
func (h *AddItemCommandHandler) Handle(ctx context.Context, cmd AddItemCommand) (Reply, error) {
	if err := cmd.Validate(); err != nil {
		return Reply{}, err
	}

	if cmd.ItemName() == "" {
		if cmd.Category() == order.CategoryDrink {
			return textReply("I didn't catch which drink you wanted. Could you please specify your drink?"), nil
		}
		return textReply("I'm sorry, I didn't catch what food item you wanted. Could you please repeat that?"), nil
	}

	item, err := h.catalog.Lookup(ctx, cmd.ItemName())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return textReply(fmt.Sprintf("I'm sorry, we don't have %s on our menu.", cmd.ItemName())), nil
		}
		return Reply{}, err
	}

	quantity := cmd.Quantity().OrDefault(1)

	var customizations []string
	if cmd.Category() == order.CategoryFood {
		customizations, err = h.validateCustomizations(item, cmd.ModificationKinds(), cmd.Components())
		if err != nil {
			var declined *customizationDeclinedError
			if errors.As(err, &declined) {
				return textReply(declined.reason), nil
			}
			return Reply{}, err
		}
	}

	decision := h.limits.Check(ctx, cmd.Category(), item.ID, quantity)
	if !decision.Allowed {
		return Reply{
			Text: decision.Message,
			Directives: []dialog.Directive{
				dialog.NewDirective(cmd.ProjectID(), cmd.SessionID(), dialog.ContextAwaitingLimitAcknowledgment, 1, nil),
			},
		}, nil
	}

	// A food with sizes is not committed until the size is known. The
	// requested quantity and accepted customizations ride on the context
	// so the size answer commits the item as originally asked.
	if cmd.Category() == order.CategoryFood && item.HasSize && cmd.Size() == "" {
		return h.askForSize(cmd, quantity, customizations), nil
	}

	line := newOrderLine(item, cmd.Category(), quantity, cmd.Size(), customizations)
	if err := h.sessions.Update(cmd.SessionID(), func(s *order.Session) error {
		s.Append(line)
		return nil
	}); err != nil {
		return Reply{}, err
	}

	// A drink is committed first and the size question asked afterwards.
	if cmd.Category() == order.CategoryDrink && item.HasSize && cmd.Size() == "" {
		return h.askForSize(cmd, quantity, nil), nil
	}

	if cmd.Category() == order.CategoryDrink {
		return textReply(fmt.Sprintf(
			"Okay, I've added %s to your order. Anything else?",
			describeAddition(quantity, cmd.Size(), cmd.ItemName(), nil),
		)), nil
	}

	return textReply(fmt.Sprintf(
		"Okay, I've added %s. Would you like anything else?",
		describeAddition(quantity, cmd.Size(), item.Name, customizations),
	)), nil
}

func (h *AddItemCommandHandler) askForSize(cmd AddItemCommand, quantity int, customizations []string) Reply {
	params := dialog.Params{
		"item_name": cmd.ItemName(),
		"item_type": string(cmd.Category()),
		"quantity":  quantity,
	}
	if len(customizations) > 0 {
		params["customizations"] = customizations
	}

	return Reply{
		Text: fmt.Sprintf("What size would you like for your %s?", cmd.ItemName()),
		Directives: []dialog.Directive{
			dialog.NewDirective(cmd.ProjectID(), cmd.SessionID(), dialog.ContextAwaitingSize, 2, params),
		},
	}
}

func (h *AddItemCommandHandler) validateCustomizations(
	item *menu.Item,
	kinds, components []string,
) ([]string, error) {
	var accepted []string
	for i, kind := range kinds {
		if i >= len(components) {
			break
		}
		if kind == "" || components[i] == "" {
			continue
		}

		result := h.customizations.Validate(item, kind, components[i])
		if !result.Allowed {
			return nil, &customizationDeclinedError{reason: result.Reason}
		}
		if result.Canonical != "" {
			accepted = append(accepted, result.Canonical)
		}
	}
	return accepted, nil
}

// customizationDeclinedError carries the spoken refusal out of the
// pairwise validation loop; it never escapes the handler.
type customizationDeclinedError struct {
	reason string
}

func (e *customizationDeclinedError) Error() string {
	return e.reason
}

// newOrderLine builds an order line from a catalog item and the recognized
// slots. The size label contributes its surcharge only when the item
// actually comes in sizes.
func newOrderLine(
	item *menu.Item,
	category order.Category,
	quantity int,
	size string,
	customizations []string,
) order.Item {
	line := order.Item{
		ItemID:         item.ID,
		Name:           item.Name,
		Category:       category,
		Quantity:       quantity,
		BasePrice:      item.BasePrice,
		Customizations: customizations,
	}

	if item.HasSize && size != "" {
		sizeLabel := size
		line.Size = &sizeLabel
		line.SizePrice = item.SizePrice(size)
	}

	line.ItemTotal = (line.BasePrice + line.SizePrice) * float64(quantity)
	return line
}
