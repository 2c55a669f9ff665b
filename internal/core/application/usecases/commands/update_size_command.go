package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateSizeCommandIsNotConstructed = errors.New(
	"UpdateSizeCommand must be created via NewUpdateSizeCommand constructor",
)

// UpdateSizeCommand represents a size answer: either the reply to an
// explicit size question (AwaitedItem set from the awaiting-size
// context) or a spontaneous "make it large" aimed at the most recent
// sized item.
type UpdateSizeCommand struct { //nolint:recvcheck //using for validation
	sessionID       string
	projectID       string
	hasOngoingOrder bool
	size            string
	hasAwaitingSize bool
	awaitedItem     string
	awaitedCategory order.Category
	awaitedQuantity int
	awaitedCustoms  []string

	guard guard.ConstructorGuard
}

// NewUpdateSizeCommand creates a command to apply a size to an item.
// The awaited fields mirror the parameter bag of a pending size
// question: which item, its category, and the quantity and
// customizations it was originally requested with. They may be empty
// when no size question is pending; the handler then falls back to the
// last sized item.
func NewUpdateSizeCommand(
	sessionID, projectID string,
	hasOngoingOrder bool,
	size string,
	hasAwaitingSize bool,
	awaitedItem string,
	awaitedCategory order.Category,
	awaitedQuantity int,
	awaitedCustomizations []string,
) (UpdateSizeCommand, error) {
	sizeCommand := UpdateSizeCommand{
		guard:           guard.NewConstructorGuard(),
		projectID:       projectID,
		hasOngoingOrder: hasOngoingOrder,
		size:            size,
		hasAwaitingSize: hasAwaitingSize,
		awaitedItem:     awaitedItem,
		awaitedCategory: awaitedCategory,
		awaitedQuantity: awaitedQuantity,
		awaitedCustoms:  awaitedCustomizations,
	}

	if err := sizeCommand.setSessionID(sessionID); err != nil {
		return UpdateSizeCommand{}, err
	}

	return sizeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateSizeCommand) Validate() error {
	return c.guard.Validate(ErrUpdateSizeCommandIsNotConstructed)
}

// SessionID returns the conversation's session identifier.
func (c UpdateSizeCommand) SessionID() string {
	return c.sessionID
}

// ProjectID returns the agent project the session belongs to.
func (c UpdateSizeCommand) ProjectID() string {
	return c.projectID
}

// HasOngoingOrder reports whether the ongoing-order context was active
// on the inbound event.
func (c UpdateSizeCommand) HasOngoingOrder() bool {
	return c.hasOngoingOrder
}

// Size returns the recognized size label, possibly empty.
func (c UpdateSizeCommand) Size() string {
	return c.size
}

// HasAwaitingSize reports whether the awaiting-size context was active
// on the inbound event.
func (c UpdateSizeCommand) HasAwaitingSize() bool {
	return c.hasAwaitingSize
}

// AwaitedItem returns the item name carried by the awaiting-size
// context, possibly empty even when one is pending.
func (c UpdateSizeCommand) AwaitedItem() string {
	return c.awaitedItem
}

// AwaitedCategory returns the category carried by the awaiting-size
// context.
func (c UpdateSizeCommand) AwaitedCategory() order.Category {
	return c.awaitedCategory
}

// AwaitedQuantity returns the quantity the withheld item was requested
// with, or zero when none was carried.
func (c UpdateSizeCommand) AwaitedQuantity() int {
	return c.awaitedQuantity
}

// AwaitedCustomizations returns the customizations accepted for the
// withheld item before the size question was asked.
func (c UpdateSizeCommand) AwaitedCustomizations() []string {
	return c.awaitedCustoms
}

func (c *UpdateSizeCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}
