package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/dialog"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// UpdateSizeCommandHandler resolves which item the size answer targets
// and applies it. When a matching item already sits in the order its
// quantity and customizations are preserved and its total recalculated;
// otherwise the item is appended with the quantity and customizations
// carried by the pending size question, falling back to quantity one.
type UpdateSizeCommandHandler struct {
	sessions ports.SessionStore
	catalog  ports.MenuCatalog
}

// NewUpdateSizeCommandHandler creates a handler for size answers.
func NewUpdateSizeCommandHandler(sessions ports.SessionStore, catalog ports.MenuCatalog) UpdateSizeCommandHandler {
	return UpdateSizeCommandHandler{
		sessions: sessions,
		catalog:  catalog,
	}
}

// Handle applies the size and clears the pending size question.
func (h *UpdateSizeCommandHandler) Handle(ctx context.Context, cmd UpdateSizeCommand) (Reply, error) {
	if err := cmd.Validate(); err != nil {
		return Reply{}, err
	}

	if !cmd.HasOngoingOrder() {
		return textReply("I couldn't find your order. Could you start over?"), nil
	}

	if cmd.Size() == "" {
		return textReply("I didn't catch what size you wanted. Could you please specify small, medium, or large?"), nil
	}

	targetName := cmd.AwaitedItem()
	targetCategory := cmd.AwaitedCategory()

	if !cmd.HasAwaitingSize() {
		name, category, reply, err := h.resolveLastSizedItem(ctx, cmd.SessionID())
		if err != nil {
			return Reply{}, err
		}
		if reply.Text != "" {
			return reply, nil
		}
		targetName, targetCategory = name, category
	}

	if targetName == "" {
		return textReply("I'm sorry, I lost track of your order. Could you please let me know what you'd like to order?"), nil
	}

	item, err := h.catalog.Lookup(ctx, targetName)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return textReply(fmt.Sprintf("I'm sorry, we don't have %s on our menu anymore.", targetName)), nil
		}
		return Reply{}, err
	}

	if !item.HasSize {
		return textReply(fmt.Sprintf("I'm sorry, but %s doesn't come in different sizes.", targetName)), nil
	}

	sizeLabel := cmd.Size()
	line := order.Item{
		ItemID:    item.ID,
		Name:      item.Name,
		Category:  targetCategory,
		Quantity:  1,
		BasePrice: item.BasePrice,
		Size:      &sizeLabel,
		SizePrice: item.SizePrice(sizeLabel),
	}
	if targetCategory == order.CategoryFood {
		line.Customizations = []string{}
	}

	var applied order.Item
	if err := h.sessions.Update(cmd.SessionID(), func(s *order.Session) error {
		if i := s.IndexOf(item.Name); i >= 0 {
			existing, _ := s.ItemAt(i)
			line.Category = existing.Category
			line.Quantity = existing.Quantity
			line.Customizations = existing.Customizations
			line.ItemTotal = (line.BasePrice + line.SizePrice) * float64(line.Quantity)
			s.Replace(i, line)
		} else {
			// A withheld food arrives here carrying the quantity and
			// customizations it was originally requested with.
			if q := cmd.AwaitedQuantity(); q > 0 {
				line.Quantity = q
			}
			if customs := cmd.AwaitedCustomizations(); len(customs) > 0 {
				line.Customizations = customs
			}
			line.ItemTotal = (line.BasePrice + line.SizePrice) * float64(line.Quantity)
			s.Append(line)
		}
		applied = line
		return nil
	}); err != nil {
		return Reply{}, err
	}

	text := fmt.Sprintf("Got it! I've updated your %s to ", targetName)
	if applied.Quantity > 1 {
		text += fmt.Sprintf("%d ", applied.Quantity)
	}
	text += cmd.Size()
	if len(applied.Customizations) > 0 {
		text += " with " + strings.Join(applied.Customizations, ", ")
	}
	text += ". Would you like anything else?"

	return Reply{
		Text: text,
		Directives: []dialog.Directive{
			dialog.ClearDirective(cmd.ProjectID(), cmd.SessionID(), dialog.ContextAwaitingSize),
		},
	}, nil
}

// resolveLastSizedItem picks the target of a spontaneous size change:
// the most recent item, provided the catalog says it comes in sizes.
func (h *UpdateSizeCommandHandler) resolveLastSizedItem(
	ctx context.Context,
	sessionID string,
) (string, order.Category, Reply, error) {
	cannotResolve := textReply("I'm not sure which item you want to set the size for. Could you please start over?")

	snapshot := h.sessions.GetOrCreate(sessionID)
	if len(snapshot.Items) == 0 {
		return "", "", cannotResolve, nil
	}

	last := snapshot.Items[len(snapshot.Items)-1]
	item, err := h.catalog.Lookup(ctx, last.Name)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return "", "", cannotResolve, nil
		}
		return "", "", Reply{}, err
	}
	if !item.HasSize {
		return "", "", cannotResolve, nil
	}

	return last.Name, last.Category, Reply{}, nil
}
