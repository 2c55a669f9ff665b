package commands

import (
	"context"
	"errors"

	"fulfillment/internal/pkg/guard"
)

var ErrAcknowledgeCommandIsNotConstructed = errors.New(
	"AcknowledgeCommand must be created via NewAcknowledgeCommand constructor",
)

// AcknowledgeKind distinguishes what the customer is acknowledging.
type AcknowledgeKind string

const (
	// AcknowledgeLimit follows a quantity-limit decline.
	AcknowledgeLimit AcknowledgeKind = "limit"
	// AcknowledgeCompletion follows the order summary.
	AcknowledgeCompletion AcknowledgeKind = "completion"
)

// AcknowledgeCommand represents the customer's "okay, thanks" after a
// limit decline or after the order summary.
type AcknowledgeCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	kind      AcknowledgeKind

	guard guard.ConstructorGuard
}

// NewAcknowledgeCommand creates an acknowledgment command.
func NewAcknowledgeCommand(sessionID string, kind AcknowledgeKind) (AcknowledgeCommand, error) {
	ackCommand := AcknowledgeCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		ackCommand.setSessionID(sessionID),
		ackCommand.setKind(kind),
	); err != nil {
		return AcknowledgeCommand{}, err
	}

	return ackCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AcknowledgeCommand) Validate() error {
	return c.guard.Validate(ErrAcknowledgeCommandIsNotConstructed)
}

// SessionID returns the conversation's session identifier.
func (c AcknowledgeCommand) SessionID() string {
	return c.sessionID
}

// Kind returns what is being acknowledged.
func (c AcknowledgeCommand) Kind() AcknowledgeKind {
	return c.kind
}

func (c *AcknowledgeCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}

func (c *AcknowledgeCommand) setKind(kind AcknowledgeKind) error {
	if kind != AcknowledgeLimit && kind != AcknowledgeCompletion {
		return errors.New("acknowledge kind must be limit or completion")
	}

	c.kind = kind
	return nil
}

// AcknowledgeCommandHandler answers acknowledgments with a closing
// pleasantry.
type AcknowledgeCommandHandler struct{}

// NewAcknowledgeCommandHandler creates a handler for acknowledgments.
func NewAcknowledgeCommandHandler() AcknowledgeCommandHandler {
	return AcknowledgeCommandHandler{}
}

// Handle replies to the acknowledgment.
func (h *AcknowledgeCommandHandler) Handle(_ context.Context, cmd AcknowledgeCommand) (Reply, error) {
	if err := cmd.Validate(); err != nil {
		return Reply{}, err
	}

	if cmd.Kind() == AcknowledgeCompletion {
		return textReply("You're welcome! Have a great day!"), nil
	}
	return textReply("You're welcome!"), nil
}
