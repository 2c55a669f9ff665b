package commands_test

import (
	"context"
	"testing"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newModifyHandler(catalog *MenuCatalogMock) (commands.ModifyLastCommandHandler, *SessionStoreView) {
	store := newStore()
	handler := commands.NewModifyLastCommandHandler(store, catalog, services.NewCustomizationPolicy())
	return handler, &SessionStoreView{store: store}
}

func TestModifyLastCommandHandler_EmptyOrder(t *testing.T) {
	handler, _ := newModifyHandler(&MenuCatalogMock{})
	cmd, _ := commands.NewModifyLastCommand("s1", []string{"no"}, []string{"onions"})

	reply, err := handler.Handle(context.Background(), cmd)

	require.NoError(t, err)
	assert.Equal(t, "I don't see any active orders to modify. What would you like to order?", reply.Text)
}

func TestModifyLastCommandHandler_AppendsCustomizations(t *testing.T) {
	catalog := &MenuCatalogMock{}
	catalog.On("Lookup", mock.Anything, "Burger").Return(burgerMenuItem(), nil)
	handler, view := newModifyHandler(catalog)
	view.Seed("s1", burgerLine(1, []string{"no pickles"}))

	cmd, _ := commands.NewModifyLastCommand("s1",
		[]string{"no", "extra"}, []string{"onions", "cheese"})

	reply, err := handler.Handle(context.Background(), cmd)

	require.NoError(t, err)
	assert.Equal(t, "I've updated your Burger with no onions, extra cheese. Would you like anything else?", reply.Text)
	assert.Equal(t, []string{"no pickles", "no onions", "extra cheese"}, view.Items("s1")[0].Customizations)
}

func TestModifyLastCommandHandler_DeclineLeavesItemUntouched(t *testing.T) {
	catalog := &MenuCatalogMock{}
	catalog.On("Lookup", mock.Anything, "Burger").Return(burgerMenuItem(), nil)
	handler, view := newModifyHandler(catalog)
	view.Seed("s1", burgerLine(1, nil))

	// The first pair is valid, the second is not; nothing may be applied.
	cmd, _ := commands.NewModifyLastCommand("s1",
		[]string{"no", "extra"}, []string{"onions", "bacon"})

	reply, err := handler.Handle(context.Background(), cmd)

	require.NoError(t, err)
	assert.Equal(t, "I'm sorry, we cannot add extra bacon to this item.", reply.Text)
	assert.Empty(t, view.Items("s1")[0].Customizations)
}

func TestModifyLastCommandHandler_EmptyPairsAreSkipped(t *testing.T) {
	catalog := &MenuCatalogMock{}
	catalog.On("Lookup", mock.Anything, "Burger").Return(burgerMenuItem(), nil)
	handler, view := newModifyHandler(catalog)
	view.Seed("s1", burgerLine(1, nil))

	cmd, _ := commands.NewModifyLastCommand("s1",
		[]string{"", "no"}, []string{"onions", "pickles"})

	reply, err := handler.Handle(context.Background(), cmd)

	require.NoError(t, err)
	assert.Equal(t, "I've updated your Burger with no pickles. Would you like anything else?", reply.Text)
	assert.Equal(t, []string{"no pickles"}, view.Items("s1")[0].Customizations)
}

func TestModifyLastCommandHandler_ItemGoneFromCatalog(t *testing.T) {
	catalog := &MenuCatalogMock{}
	catalog.On("Lookup", mock.Anything, "Burger").Return(nil, errs.NewObjectNotFoundError("name", "Burger"))
	handler, view := newModifyHandler(catalog)
	view.Seed("s1", burgerLine(1, nil))

	cmd, _ := commands.NewModifyLastCommand("s1", []string{"no"}, []string{"onions"})

	reply, err := handler.Handle(context.Background(), cmd)

	require.NoError(t, err)
	assert.Equal(t, "I'm sorry, I'm having trouble modifying your Burger.", reply.Text)
}
