package commands_test

import (
	"context"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/dialog"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateQuantityCommandHandler_InvalidQuantityAsksForClarification(t *testing.T) {
	store := newStore()
	view := &SessionStoreView{store: store}
	view.Seed("s1", friesLine(1, nil))
	handler := commands.NewUpdateQuantityCommandHandler(store, unrestrictedLimits())

	cmd, _ := commands.NewUpdateQuantityCommand("s1", "proj", dialog.Quantity{})

	reply, err := handler.Handle(context.Background(), cmd)

	require.NoError(t, err)
	assert.Equal(t, "I'm sorry, I didn't catch how many you wanted. Could you please repeat that?", reply.Text)
	assert.Equal(t, 1, view.Items("s1")[0].Quantity)
}

func TestUpdateQuantityCommandHandler_EmptyOrder(t *testing.T) {
	handler := commands.NewUpdateQuantityCommandHandler(newStore(), unrestrictedLimits())
	cmd, _ := commands.NewUpdateQuantityCommand("s1", "proj", dialog.Quantity{Value: 3, Valid: true})

	reply, err := handler.Handle(context.Background(), cmd)

	require.NoError(t, err)
	assert.Equal(t, "I don't see any active orders to modify. What would you like to order?", reply.Text)
}

func TestUpdateQuantityCommandHandler_RequantifiesLastItem(t *testing.T) {
	store := newStore()
	view := &SessionStoreView{store: store}
	view.Seed("s1", friesLine(1, []string{"extra cheese"}))
	handler := commands.NewUpdateQuantityCommandHandler(store, unrestrictedLimits())

	cmd, _ := commands.NewUpdateQuantityCommand("s1", "proj", dialog.Quantity{Value: 4, Valid: true})

	reply, err := handler.Handle(context.Background(), cmd)

	require.NoError(t, err)
	assert.Equal(t, "I've updated the quantity to 4 Fries with extra cheese. Would you like anything else?", reply.Text)
	assert.Equal(t, 4, view.Items("s1")[0].Quantity)
	assert.InDelta(t, 8.0, view.Items("s1")[0].ItemTotal, 0.001)
	assert.InDelta(t, 8.0, view.Total("s1"), 0.001)
}

func TestUpdateQuantityCommandHandler_SizedItemMentionsSize(t *testing.T) {
	size := "large"
	store := newStore()
	view := &SessionStoreView{store: store}
	view.Seed("s1", order.Item{
		ItemID: "coke-1", Name: "Coke", Category: order.CategoryDrink,
		Quantity: 1, BasePrice: 1.5, Size: &size, SizePrice: 1.0, ItemTotal: 2.5,
	})
	handler := commands.NewUpdateQuantityCommandHandler(store, unrestrictedLimits())

	cmd, _ := commands.NewUpdateQuantityCommand("s1", "proj", dialog.Quantity{Value: 2, Valid: true})

	reply, err := handler.Handle(context.Background(), cmd)

	require.NoError(t, err)
	assert.Equal(t, "I've updated the quantity to 2 large Coke. Would you like anything else?", reply.Text)
	assert.InDelta(t, 5.0, view.Total("s1"), 0.001)
}

func TestUpdateQuantityCommandHandler_LimitDecline(t *testing.T) {
	store := newStore()
	view := &SessionStoreView{store: store}
	view.Seed("s1", friesLine(1, nil))
	handler := commands.NewUpdateQuantityCommandHandler(store, cappedLimits(5))

	cmd, _ := commands.NewUpdateQuantityCommand("s1", "proj", dialog.Quantity{Value: 50, Valid: true})

	reply, err := handler.Handle(context.Background(), cmd)

	require.NoError(t, err)
	assert.Contains(t, reply.Text, "For orders of 50 items")
	require.Len(t, reply.Directives, 1)
	assert.Equal(t, "projects/proj/agent/sessions/s1/contexts/awaiting-limit-acknowledgment", reply.Directives[0].Name)
	assert.Equal(t, 1, view.Items("s1")[0].Quantity)
}
