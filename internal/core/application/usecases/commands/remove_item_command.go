package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/dialog"
	"fulfillment/internal/pkg/guard"
)

var ErrRemoveItemCommandIsNotConstructed = errors.New(
	"RemoveItemCommand must be created via NewRemoveItemCommand constructor",
)

// RemoveItemCommand represents a request to take some quantity of an
// item out of the order. When the utterance names both a food and a
// drink, the food wins.
type RemoveItemCommand struct { //nolint:recvcheck //using for validation
	sessionID string
	foodName  string
	drinkName string
	quantity  dialog.Quantity

	guard guard.ConstructorGuard
}

// NewRemoveItemCommand creates a command to remove an item.
func NewRemoveItemCommand(sessionID, foodName, drinkName string, quantity dialog.Quantity) (RemoveItemCommand, error) {
	removeCommand := RemoveItemCommand{
		guard:     guard.NewConstructorGuard(),
		foodName:  foodName,
		drinkName: drinkName,
		quantity:  quantity,
	}

	if err := removeCommand.setSessionID(sessionID); err != nil {
		return RemoveItemCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemCommandIsNotConstructed)
}

// SessionID returns the conversation's session identifier.
func (c RemoveItemCommand) SessionID() string {
	return c.sessionID
}

// FoodName returns the recognized food name, possibly empty.
func (c RemoveItemCommand) FoodName() string {
	return c.foodName
}

// DrinkName returns the recognized drink name, possibly empty.
func (c RemoveItemCommand) DrinkName() string {
	return c.drinkName
}

// Quantity returns the recognized quantity slot.
func (c RemoveItemCommand) Quantity() dialog.Quantity {
	return c.quantity
}

func (c *RemoveItemCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}
