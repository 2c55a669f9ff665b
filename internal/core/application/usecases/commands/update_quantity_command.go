package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/dialog"
	"fulfillment/internal/pkg/guard"
)

var ErrUpdateQuantityCommandIsNotConstructed = errors.New(
	"UpdateQuantityCommand must be created via NewUpdateQuantityCommand constructor",
)

// UpdateQuantityCommand represents a request to change how many of the
// most recent item the customer wants. Unlike additions, an unparseable
// quantity here asks for clarification instead of assuming one: the
// whole point of the utterance was the number.
type UpdateQuantityCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	projectID string
	quantity  dialog.Quantity

	guard guard.ConstructorGuard
}

// NewUpdateQuantityCommand creates a command to requantify the last item.
func NewUpdateQuantityCommand(sessionID, projectID string, quantity dialog.Quantity) (UpdateQuantityCommand, error) {
	quantityCommand := UpdateQuantityCommand{
		guard:     guard.NewConstructorGuard(),
		projectID: projectID,
		quantity:  quantity,
	}

	if err := quantityCommand.setSessionID(sessionID); err != nil {
		return UpdateQuantityCommand{}, err
	}

	return quantityCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateQuantityCommand) Validate() error {
	return c.guard.Validate(ErrUpdateQuantityCommandIsNotConstructed)
}

// SessionID returns the conversation's session identifier.
func (c UpdateQuantityCommand) SessionID() string {
	return c.sessionID
}

// ProjectID returns the agent project the session belongs to.
func (c UpdateQuantityCommand) ProjectID() string {
	return c.projectID
}

// Quantity returns the recognized quantity slot.
func (c UpdateQuantityCommand) Quantity() dialog.Quantity {
	return c.quantity
}

func (c *UpdateQuantityCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}
