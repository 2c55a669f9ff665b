package limitsrepo_test

import (
	"context"
	"testing"
	"time"

	"fulfillment/internal/adapters/out/postgres/limitsrepo"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// LimitsProviderIntegrationTestSuite verifies the limits configuration
// provider against a real PostgreSQL instance.
type LimitsProviderIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	provider  *limitsrepo.GormLimitsProvider
}

func (suite *LimitsProviderIntegrationTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&limitsrepo.LimitsConfigDTO{}, &limitsrepo.ItemLimitDTO{})
	suite.Require().NoError(err)

	suite.provider = limitsrepo.NewGormLimitsProvider(db)
}

func (suite *LimitsProviderIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *LimitsProviderIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE order_limits_config CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *LimitsProviderIntegrationTestSuite) TestGet_EmptyTableMeansNoLimits() {
	cfg, err := suite.provider.Get(context.Background())

	suite.Require().NoError(err)
	suite.Nil(cfg)
}

func (suite *LimitsProviderIntegrationTestSuite) TestSaveAndGet_RoundTrip() {
	ctx := context.Background()

	dto := limitsrepo.LimitsConfigDTO{
		ID:              1,
		FoodDefaultMax:  10,
		DrinkDefaultMax: 5,
		ExceedMessage:   "Sorry, you can't order {quantity} {item_name}.",
		ItemLimits: []limitsrepo.ItemLimitDTO{
			{ItemID: "burger-1", Category: "food", MaxQuantity: 3},
			{ItemID: "coke-1", Category: "drink", MaxQuantity: 6},
		},
	}
	suite.Require().NoError(suite.provider.Save(ctx, dto))

	cfg, err := suite.provider.Get(ctx)
	suite.Require().NoError(err)
	suite.Require().NotNil(cfg)

	suite.Equal(10, cfg.Food.DefaultMaxQuantity)
	suite.Equal(5, cfg.Drink.DefaultMaxQuantity)
	suite.Equal("Sorry, you can't order {quantity} {item_name}.", cfg.ExceedMessage)
	suite.Equal(map[string]int{"burger-1": 3}, cfg.Food.ItemLimits)
	suite.Equal(map[string]int{"coke-1": 6}, cfg.Drink.ItemLimits)
}

func (suite *LimitsProviderIntegrationTestSuite) TestSave_ReplacesPreviousConfiguration() {
	ctx := context.Background()

	first := limitsrepo.LimitsConfigDTO{
		ID:             1,
		FoodDefaultMax: 10,
		ItemLimits: []limitsrepo.ItemLimitDTO{
			{ItemID: "burger-1", Category: "food", MaxQuantity: 3},
		},
	}
	suite.Require().NoError(suite.provider.Save(ctx, first))

	second := limitsrepo.LimitsConfigDTO{
		ID:             1,
		FoodDefaultMax: 20,
	}
	suite.Require().NoError(suite.provider.Save(ctx, second))

	cfg, err := suite.provider.Get(ctx)
	suite.Require().NoError(err)
	suite.Require().NotNil(cfg)
	suite.Equal(20, cfg.Food.DefaultMaxQuantity)
	suite.Empty(cfg.Food.ItemLimits)
}

func TestLimitsProviderIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(LimitsProviderIntegrationTestSuite))
}
