package commands

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"
)

// ModifyLastCommandHandler appends customizations to the most recent
// order item. All requested pairs are validated against the catalog
// before any of them is applied, so a declined pair leaves the item
// untouched.
type ModifyLastCommandHandler struct {
	sessions       ports.SessionStore
	catalog        ports.MenuCatalog
	customizations services.CustomizationPolicy
}

// NewModifyLastCommandHandler creates a handler for after-the-fact
// customizations.
func NewModifyLastCommandHandler(
	sessions ports.SessionStore,
	catalog ports.MenuCatalog,
	customizations services.CustomizationPolicy,
) ModifyLastCommandHandler {
	return ModifyLastCommandHandler{
		sessions:       sessions,
		catalog:        catalog,
		customizations: customizations,
	}
}

// Handle validates and applies the customizations, confirming what was
// added.
func (h *ModifyLastCommandHandler) Handle(ctx context.Context, cmd ModifyLastCommand) (Reply, error) {
	if err := cmd.Validate(); err != nil {
		return Reply{}, err
	}

	snapshot := h.sessions.GetOrCreate(cmd.SessionID())
	if len(snapshot.Items) == 0 {
		return textReply("I don't see any active orders to modify. What would you like to order?"), nil
	}
	last := snapshot.Items[len(snapshot.Items)-1]

	item, err := h.catalog.Lookup(ctx, last.Name)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return textReply(fmt.Sprintf("I'm sorry, I'm having trouble modifying your %s.", last.Name)), nil
		}
		return Reply{}, err
	}

	var accepted []string
	for i, kind := range cmd.ModificationKinds() {
		if i >= len(cmd.Components()) {
			break
		}
		component := cmd.Components()[i]
		if kind == "" || component == "" {
			continue
		}

		result := h.customizations.Validate(item, kind, component)
		if !result.Allowed {
			return textReply(result.Reason), nil
		}
		if result.Canonical != "" {
			accepted = append(accepted, result.Canonical)
		}
	}

	if err := h.sessions.Update(cmd.SessionID(), func(s *order.Session) error {
		s.CustomizeLast(accepted)
		return nil
	}); err != nil {
		return Reply{}, err
	}

	text := fmt.Sprintf("I've updated your %s", last.Name)
	if len(accepted) > 0 {
		text += " with " + strings.Join(accepted, ", ")
	}
	text += ". Would you like anything else?"

	return textReply(text), nil
}
