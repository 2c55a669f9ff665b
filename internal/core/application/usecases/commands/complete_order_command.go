package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents the customer saying they are done
// ordering.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	projectID string

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to finalize the order.
func NewCompleteOrderCommand(sessionID, projectID string) (CompleteOrderCommand, error) {
	completeCommand := CompleteOrderCommand{
		guard:     guard.NewConstructorGuard(),
		projectID: projectID,
	}

	if err := completeCommand.setSessionID(sessionID); err != nil {
		return CompleteOrderCommand{}, err
	}

	return completeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// SessionID returns the conversation's session identifier.
func (c CompleteOrderCommand) SessionID() string {
	return c.sessionID
}

// ProjectID returns the agent project the session belongs to.
func (c CompleteOrderCommand) ProjectID() string {
	return c.projectID
}

func (c *CompleteOrderCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}
