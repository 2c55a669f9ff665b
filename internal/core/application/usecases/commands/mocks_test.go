package commands_test

import (
	"context"
	"log/slog"

	"fulfillment/internal/adapters/out/inmemory"
	"fulfillment/internal/core/domain/model/menu"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MenuCatalogMock struct{ mock.Mock }

func (m *MenuCatalogMock) Lookup(ctx context.Context, name string) (*menu.Item, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.Item), args.Error(1)
}

type OrderLedgerMock struct{ mock.Mock }

func (m *OrderLedgerMock) Persist(ctx context.Context, completed ports.CompletedOrder) error {
	args := m.Called(ctx, completed)
	return args.Error(0)
}

type LimitsProviderMock struct{ mock.Mock }

func (m *LimitsProviderMock) Get(ctx context.Context) (*ports.LimitsConfig, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ports.LimitsConfig), args.Error(1)
}

// unrestrictedLimits builds a limit policy whose provider reports no
// configuration, so every quantity passes.
func unrestrictedLimits() services.QuantityLimitPolicy {
	provider := &LimitsProviderMock{}
	provider.On("Get", mock.Anything).Return(nil, nil)
	return services.NewQuantityLimitPolicy(provider, slog.Default())
}

// cappedLimits builds a limit policy that caps food at the given default
// quantity.
func cappedLimits(maxFood int) services.QuantityLimitPolicy {
	provider := &LimitsProviderMock{}
	provider.On("Get", mock.Anything).Return(&ports.LimitsConfig{
		Food: ports.CategoryLimit{DefaultMaxQuantity: maxFood},
	}, nil)
	return services.NewQuantityLimitPolicy(provider, slog.Default())
}

func burgerMenuItem() *menu.Item {
	return &menu.Item{
		ID:        "burger-1",
		Name:      "Burger",
		BasePrice: 5.0,
		Customizations: &menu.Customizations{
			Removable: []string{"onions", "pickles"},
			Addable:   []string{"cheese"},
			Modifiable: []string{
				"sauce",
			},
		},
	}
}

func friesMenuItem() *menu.Item {
	return &menu.Item{
		ID:        "fries-1",
		Name:      "Fries",
		BasePrice: 2.0,
		HasSize:   true,
		Sizes:     map[string]float64{"small": 0, "medium": 0.5, "large": 1.0},
		Customizations: &menu.Customizations{
			Addable: []string{"cheese"},
		},
	}
}

func cokeMenuItem() *menu.Item {
	return &menu.Item{
		ID:        "coke-1",
		Name:      "Coke",
		BasePrice: 1.5,
		HasSize:   true,
		Sizes:     map[string]float64{"small": 0, "medium": 0.5, "large": 1.0},
	}
}

func newStore() *inmemory.SessionStore {
	return inmemory.NewSessionStore()
}

func burgerLine(quantity int, customizations []string) order.Item {
	return order.Item{
		ItemID:         "burger-1",
		Name:           "Burger",
		Category:       order.CategoryFood,
		Quantity:       quantity,
		BasePrice:      5.0,
		Customizations: customizations,
		ItemTotal:      5.0 * float64(quantity),
	}
}

// SessionStoreView reads session state back out of the store for
// assertions.
type SessionStoreView struct {
	store *inmemory.SessionStore
}

func (v *SessionStoreView) Items(id string) []order.Item {
	return v.store.GetOrCreate(id).Items
}

func (v *SessionStoreView) Total(id string) float64 {
	return v.store.GetOrCreate(id).TotalAmount
}

func (v *SessionStoreView) Seed(id string, items ...order.Item) {
	_ = v.store.Update(id, func(s *order.Session) error {
		for _, item := range items {
			s.Append(item)
		}
		return nil
	})
}
