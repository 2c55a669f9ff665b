package ledgerrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/ledgerrepo"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// OrderLedgerIntegrationTestSuite verifies ledger persistence against a
// real PostgreSQL instance.
type OrderLedgerIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	ledger    *ledgerrepo.GormOrderLedger
}

func (suite *OrderLedgerIntegrationTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&ledgerrepo.CompletedOrderDTO{}, &ledgerrepo.CompletedOrderItemDTO{})
	suite.Require().NoError(err)

	suite.ledger = ledgerrepo.NewGormOrderLedger(db)
}

func (suite *OrderLedgerIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *OrderLedgerIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE completed_orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *OrderLedgerIntegrationTestSuite) completedOrder() ports.CompletedOrder {
	size := "large"
	now := time.Now().UTC().Truncate(time.Microsecond)

	return ports.CompletedOrder{
		ID:          uuid.New(),
		SessionID:   "session-1",
		Status:      "completed",
		CreatedAt:   now,
		CompletedAt: now,
		TotalAmount: 12.5,
		Items: []order.Item{
			{
				ItemID:         "burger-1",
				Name:           "Burger",
				Category:       order.CategoryFood,
				Quantity:       2,
				BasePrice:      5.0,
				Customizations: []string{"no onions", "extra cheese"},
				ItemTotal:      10.0,
			},
			{
				ItemID:    "coke-1",
				Name:      "Coke",
				Category:  order.CategoryDrink,
				Quantity:  1,
				BasePrice: 1.5,
				Size:      &size,
				SizePrice: 1.0,
				ItemTotal: 2.5,
			},
		},
	}
}

func (suite *OrderLedgerIntegrationTestSuite) TestPersistAndGet_RoundTrip() {
	ctx := context.Background()
	completed := suite.completedOrder()

	suite.Require().NoError(suite.ledger.Persist(ctx, completed))

	loaded, err := suite.ledger.Get(ctx, completed.ID)
	suite.Require().NoError(err)

	suite.Equal(completed.ID, loaded.ID)
	suite.Equal("session-1", loaded.SessionID)
	suite.Equal("completed", loaded.Status)
	suite.InDelta(12.5, loaded.TotalAmount, 0.001)
	suite.Require().Len(loaded.Items, 2)

	burger := loaded.Items[0]
	suite.Equal(order.CategoryFood, burger.Category)
	suite.Equal([]string{"no onions", "extra cheese"}, burger.Customizations)
	suite.Nil(burger.Size)

	coke := loaded.Items[1]
	suite.Equal(order.CategoryDrink, coke.Category)
	suite.Require().NotNil(coke.Size)
	suite.Equal("large", *coke.Size)
	suite.InDelta(1.0, coke.SizePrice, 0.001)
}

func (suite *OrderLedgerIntegrationTestSuite) TestGet_MissReportsObjectNotFound() {
	_, err := suite.ledger.Get(context.Background(), uuid.New())

	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderLedgerIntegrationTestSuite) TestPersist_SeparatesOrdersBySession() {
	ctx := context.Background()

	first := suite.completedOrder()
	second := suite.completedOrder()
	second.SessionID = "session-2"
	second.Items = second.Items[:1]
	second.TotalAmount = 10.0

	suite.Require().NoError(suite.ledger.Persist(ctx, first))
	suite.Require().NoError(suite.ledger.Persist(ctx, second))

	loaded, err := suite.ledger.Get(ctx, second.ID)
	suite.Require().NoError(err)
	suite.Equal("session-2", loaded.SessionID)
	suite.Len(loaded.Items, 1)
}

func TestOrderLedgerIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderLedgerIntegrationTestSuite))
}
