package commands

import (
	"errors"

	"fulfillment/internal/core/domain/model/dialog"
	"fulfillment/internal/pkg/guard"
)

var ErrAddCombinedCommandIsNotConstructed = errors.New(
	"AddCombinedCommand must be created via NewAddCombinedCommand constructor",
)

// AddCombinedCommand represents a single utterance that names several
// foods and drinks at once ("two burgers and a large coke"). Quantities
// are matched positionally against foods first, then drinks; sizes are
// matched positionally against drinks only.
type AddCombinedCommand struct { //nolint:recvcheck //using for validation
	sessionID  string
	projectID  string
	foodNames  []string
	drinkNames []string
	drinkSizes []string
	quantities []dialog.Quantity

	guard guard.ConstructorGuard
}

// NewAddCombinedCommand creates a command for a multi-item utterance.
func NewAddCombinedCommand(
	sessionID, projectID string,
	foodNames, drinkNames, drinkSizes []string,
	quantities []dialog.Quantity,
) (AddCombinedCommand, error) {
	combinedCommand := AddCombinedCommand{
		guard:      guard.NewConstructorGuard(),
		projectID:  projectID,
		foodNames:  foodNames,
		drinkNames: drinkNames,
		drinkSizes: drinkSizes,
		quantities: quantities,
	}

	if err := combinedCommand.setSessionID(sessionID); err != nil {
		return AddCombinedCommand{}, err
	}

	return combinedCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddCombinedCommand) Validate() error {
	return c.guard.Validate(ErrAddCombinedCommandIsNotConstructed)
}

// SessionID returns the conversation's session identifier.
func (c AddCombinedCommand) SessionID() string {
	return c.sessionID
}

// ProjectID returns the agent project the session belongs to.
func (c AddCombinedCommand) ProjectID() string {
	return c.projectID
}

// FoodNames returns the recognized food names, in utterance order.
func (c AddCombinedCommand) FoodNames() []string {
	return c.foodNames
}

// DrinkNames returns the recognized drink names, in utterance order.
func (c AddCombinedCommand) DrinkNames() []string {
	return c.drinkNames
}

// DrinkSizes returns the recognized drink sizes, paired positionally
// with DrinkNames.
func (c AddCombinedCommand) DrinkSizes() []string {
	return c.drinkSizes
}

// Quantities returns the recognized quantities, covering foods first and
// drinks after.
func (c AddCombinedCommand) Quantities() []dialog.Quantity {
	return c.quantities
}

func (c *AddCombinedCommand) setSessionID(sessionID string) error {
	if sessionID == "" {
		return ErrSessionIDIsRequired
	}

	c.sessionID = sessionID
	return nil
}
