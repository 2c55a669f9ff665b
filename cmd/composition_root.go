package cmd

import (
	"log/slog"
	"strconv"
	"time"

	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/inmemory"
	"fulfillment/internal/adapters/out/postgres/ledgerrepo"
	"fulfillment/internal/adapters/out/postgres/limitsrepo"
	"fulfillment/internal/adapters/out/postgres/menurepo"
	"fulfillment/internal/core/application/dispatch"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/jobs"

	"gorm.io/gorm"
)

const defaultSessionTTL = 30 * time.Minute

type CompositionRoot struct {
	gormDB     *gorm.DB
	logger     *slog.Logger
	sessions   *inmemory.SessionStore
	catalog    *menurepo.GormMenuRepository
	ledger     *ledgerrepo.GormOrderLedger
	limits     services.QuantityLimitPolicy
	custom     services.CustomizationPolicy
	sessionTTL time.Duration
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	provider := limitsrepo.NewGormLimitsProvider(gormDB)

	return CompositionRoot{
		gormDB:     gormDB,
		logger:     logger,
		sessions:   inmemory.NewSessionStore(),
		catalog:    menurepo.NewGormMenuRepository(gormDB),
		ledger:     ledgerrepo.NewGormOrderLedger(gormDB),
		limits:     services.NewQuantityLimitPolicy(provider, logger),
		custom:     services.NewCustomizationPolicy(),
		sessionTTL: sessionTTL(config.SessionTTLMinutes),
	}
}

func (c *CompositionRoot) CreateRouter() *dispatch.Router {
	return dispatch.NewRouter(
		c.sessions,
		commands.NewAddItemCommandHandler(c.sessions, c.catalog, c.custom, c.limits),
		commands.NewAddCombinedCommandHandler(c.sessions, c.catalog, c.limits),
		commands.NewUpdateSizeCommandHandler(c.sessions, c.catalog),
		commands.NewUpdateQuantityCommandHandler(c.sessions, c.limits),
		commands.NewRemoveItemCommandHandler(c.sessions),
		commands.NewModifyLastCommandHandler(c.sessions, c.catalog, c.custom),
		commands.NewCompleteOrderCommandHandler(c.sessions, c.ledger),
		commands.NewAcknowledgeCommandHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateWebhookServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateRouter(),
		c.CreateGetMenuQueryHandler(),
		c.CreateGetCompletedOrdersQueryHandler(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.sessions, c.sessionTTL, c.logger)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCompletedOrdersQueryHandler() queries.GetCompletedOrdersQueryHandler {
	return queries.NewGetCompletedOrdersQueryHandler(c.gormDB)
}

func sessionTTL(minutes string) time.Duration {
	if minutes == "" {
		return defaultSessionTTL
	}
	n, err := strconv.Atoi(minutes)
	if err != nil || n <= 0 {
		return defaultSessionTTL
	}
	return time.Duration(n) * time.Minute
}
