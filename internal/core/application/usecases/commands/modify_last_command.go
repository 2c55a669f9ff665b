package commands

import (
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrModifyLastCommandIsNotConstructed = errors.New(
	"ModifyLastCommand must be created via NewModifyLastCommand constructor",
)

// ModifyLastCommand represents a request to customize the most recent
// order item after the fact ("no onions on that"). Kinds and components
// are paired positionally.
type ModifyLastCommand struct { //nolint:recvcheck //using for validation
	sessionID         string
	modificationKinds []string
	components        []string

	guard guard.ConstructorGuard
}

// NewModifyLastCommand creates a command to customize the last item.
func NewModifyLastCommand(sessionID string, modificationKinds, components []string) (ModifyLastCommand, error) {
	modifyCommand := ModifyLastCommand{
		guard:             guard.NewConstructorGuard(),
		modificationKinds: modificationKinds,
		components:        components,
	}

	if err := modifyCommand.setSessionID(sessionID); err != nil {
		return ModifyLastCommand{}, err
	}

	return modifyCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c ModifyLastCommand) Validate() error {
	return c.guard.Validate(ErrModifyLastCommandIsNotConstructed)
}

// SessionID returns the conversation's session identifier.
func (c ModifyLastCommand) SessionID() string {
	return c.sessionID
}

// ModificationKinds returns the recognized customization kinds.
func (c ModifyLastCommand) ModificationKinds() []string {
	return c.modificationKinds
}

// Components returns the recognized customization components.
func (c ModifyLastCommand) Components() []string {
	return c.components
}

func (c *ModifyLastCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}
