package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/dialog"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/pkg/guard"
)

var (
	ErrAddItemCommandIsNotConstructed = errors.New(
		"AddItemCommand must be created via NewAddItemCommand constructor",
	)
	ErrSessionIDIsRequired = errors.New("session id is required")
	ErrCategoryIsInvalid   = errors.New("category must be food or drink")
)

// AddItemCommand represents a request to add a single menu item to the
// conversation's order. The item name, size and quantity come straight
// from the recognized slots and may be empty: the handler answers with a
// clarification instead of failing.
//
// Example:
//
//	cmd, err := NewAddItemCommand("abc-123", "my-project", order.CategoryFood,
//	    "burger", "", dialog.Quantity{Value: 2, Valid: true}, nil, nil)
//	if err != nil {
//	    return fmt.Errorf("invalid add request: %w", err)
//	}
//
//	reply, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("failed to add item: %w", err)
//	}
//	fmt.Println(reply.Text)
type AddItemCommand struct { //nolint:recvcheck //using for validation
	sessionID         string
	projectID         string
	category          order.Category
	itemName          string
	size              string
	quantity          dialog.Quantity
	modificationKinds []string
	components        []string

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to add one item to the order.
// Validates that the session id is present and the category is a known
// one. Slot values are accepted as-is, including empty ones.
func NewAddItemCommand(
	sessionID, projectID string,
	category order.Category,
	itemName, size string,
	quantity dialog.Quantity,
	modificationKinds, components []string,
) (AddItemCommand, error) {
	addCommand := AddItemCommand{
		guard:             guard.NewConstructorGuard(),
		projectID:         projectID,
		itemName:          itemName,
		size:              size,
		quantity:          quantity,
		modificationKinds: modificationKinds,
		components:        components,
	}

	if err := errors.Join(
		addCommand.setSessionID(sessionID),
		addCommand.setCategory(category),
	); err != nil {
		return AddItemCommand{}, err
	}

	return addCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddItemCommandIsNotConstructed if validation fails.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// SessionID returns the conversation's session identifier.
func (c AddItemCommand) SessionID() string {
	return c.sessionID
}

// ProjectID returns the agent project the session belongs to.
func (c AddItemCommand) ProjectID() string {
	return c.projectID
}

// Category returns whether a food or a drink is being added.
func (c AddItemCommand) Category() order.Category {
	return c.category
}

// ItemName returns the recognized item name, possibly empty.
func (c AddItemCommand) ItemName() string {
	return c.itemName
}

// Size returns the recognized size label, possibly empty.
func (c AddItemCommand) Size() string {
	return c.size
}

// Quantity returns the recognized quantity slot.
func (c AddItemCommand) Quantity() dialog.Quantity {
	return c.quantity
}

// ModificationKinds returns the recognized customization kinds, paired
// positionally with Components.
func (c AddItemCommand) ModificationKinds() []string {
	return c.modificationKinds
}

// Components returns the recognized customization components.
func (c AddItemCommand) Components() []string {
	return c.components
}

func (c *AddItemCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}

func (c *AddItemCommand) setCategory(category order.Category) error {
	if category != order.CategoryFood && category != order.CategoryDrink {
		return ErrCategoryIsInvalid
	}

	c.category = category
	return nil
}
