package queries_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/ledgerrepo"
	"fulfillment/internal/adapters/out/postgres/menurepo"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/menu"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// QueriesIntegrationTestSuite verifies the read-side handlers against a
// real PostgreSQL instance seeded through the write-side repositories.
type QueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	menuRepo  *menurepo.GormMenuRepository
	ledger    *ledgerrepo.GormOrderLedger
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&menurepo.MenuItemDTO{},
		&menurepo.MenuItemSizeDTO{},
		&ledgerrepo.CompletedOrderDTO{},
		&ledgerrepo.CompletedOrderItemDTO{},
	)
	suite.Require().NoError(err)

	suite.menuRepo = menurepo.NewGormMenuRepository(db)
	suite.ledger = ledgerrepo.NewGormOrderLedger(db)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE menu_items CASCADE").Error
	suite.Require().NoError(err)

	err = suite.db.Exec("TRUNCATE TABLE completed_orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *QueriesIntegrationTestSuite) seedMenu() {
	ctx := context.Background()

	items := []menu.Item{
		{
			ID:        "burger-1",
			Name:      "Burger",
			BasePrice: 5.0,
		},
		{
			ID:        "fries-1",
			Name:      "Fries",
			BasePrice: 2.0,
			HasSize:   true,
			Sizes: map[string]float64{
				"small":  0,
				"medium": 0.5,
				"large":  1.0,
			},
		},
	}

	for i := range items {
		suite.Require().NoError(suite.menuRepo.Upsert(ctx, &items[i]))
	}
}

func (suite *QueriesIntegrationTestSuite) seedCompletedOrder(sessionID string, completedAt time.Time, quantities ...int) uuid.UUID {
	ctx := context.Background()

	completed := ports.CompletedOrder{
		ID:          uuid.New(),
		SessionID:   sessionID,
		Status:      "completed",
		CreatedAt:   completedAt,
		CompletedAt: completedAt,
	}

	for i, quantity := range quantities {
		item := order.Item{
			ItemID:    "burger-1",
			Name:      "Burger",
			Category:  order.CategoryFood,
			Quantity:  quantity,
			BasePrice: 5.0,
			ItemTotal: 5.0 * float64(quantity),
		}
		if i%2 == 1 {
			item.ItemID = "coke-1"
			item.Name = "Coke"
			item.Category = order.CategoryDrink
			item.BasePrice = 1.5
			item.ItemTotal = 1.5 * float64(quantity)
		}
		completed.Items = append(completed.Items, item)
		completed.TotalAmount += item.ItemTotal
	}

	suite.Require().NoError(suite.ledger.Persist(ctx, completed))
	return completed.ID
}

func (suite *QueriesIntegrationTestSuite) TestGetMenu_GroupsSizesPerItem() {
	suite.seedMenu()

	handler := queries.NewGetMenuQueryHandler(suite.db)
	items, err := handler.Handle(context.Background(), queries.NewGetMenuQuery())
	suite.Require().NoError(err)

	suite.Require().Len(items, 2)
	suite.Equal("Burger", items[0].Name)
	suite.False(items[0].HasSize)
	suite.Nil(items[0].Sizes)

	suite.Equal("Fries", items[1].Name)
	suite.True(items[1].HasSize)
	suite.Equal(map[string]float64{"small": 0, "medium": 0.5, "large": 1.0}, items[1].Sizes)
}

func (suite *QueriesIntegrationTestSuite) TestGetMenu_EmptyCatalog() {
	handler := queries.NewGetMenuQueryHandler(suite.db)

	items, err := handler.Handle(context.Background(), queries.NewGetMenuQuery())
	suite.Require().NoError(err)
	suite.Empty(items)
}

func (suite *QueriesIntegrationTestSuite) TestGetMenu_UnconstructedQueryFails() {
	handler := queries.NewGetMenuQueryHandler(suite.db)

	_, err := handler.Handle(context.Background(), queries.GetMenuQuery{})
	suite.Require().Error(err)
	suite.ErrorIs(err, queries.ErrGetMenuQueryIsNotConstructed)
}

func (suite *QueriesIntegrationTestSuite) TestGetCompletedOrders_NewestFirstWithQuantities() {
	base := time.Now().UTC().Truncate(time.Microsecond)

	suite.seedCompletedOrder("session-1", base.Add(-2*time.Hour), 1)
	newest := suite.seedCompletedOrder("session-2", base, 2, 3)
	suite.seedCompletedOrder("session-3", base.Add(-time.Hour), 1, 1)

	query, err := queries.NewGetCompletedOrdersQuery(10)
	suite.Require().NoError(err)

	handler := queries.NewGetCompletedOrdersQueryHandler(suite.db)
	orders, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(orders, 3)
	suite.Equal(newest, orders[0].ID)
	suite.Equal("session-2", orders[0].SessionID)
	suite.Equal(5, orders[0].ItemCount)
	suite.Equal("session-3", orders[1].SessionID)
	suite.Equal("session-1", orders[2].SessionID)
}

func (suite *QueriesIntegrationTestSuite) TestGetCompletedOrders_RespectsLimit() {
	base := time.Now().UTC().Truncate(time.Microsecond)

	suite.seedCompletedOrder("session-1", base.Add(-time.Hour), 1)
	suite.seedCompletedOrder("session-2", base, 1)

	query, err := queries.NewGetCompletedOrdersQuery(1)
	suite.Require().NoError(err)

	handler := queries.NewGetCompletedOrdersQueryHandler(suite.db)
	orders, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Require().Len(orders, 1)
	suite.Equal("session-2", orders[0].SessionID)
}

func (suite *QueriesIntegrationTestSuite) TestGetCompletedOrders_RejectsNonPositiveLimit() {
	_, err := queries.NewGetCompletedOrdersQuery(0)

	suite.Require().Error(err)
	suite.ErrorIs(err, queries.ErrLimitIsInvalid)
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
