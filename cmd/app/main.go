package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fulfillment/cmd"
	"fulfillment/internal/adapters/out/postgres/ledgerrepo"
	"fulfillment/internal/adapters/out/postgres/limitsrepo"
	"fulfillment/internal/adapters/out/postgres/menurepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB, err := openDatabase(configs)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort, logger)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	return cmd.Config{
		HTTPPort:          os.Getenv("HTTP_PORT"),
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            os.Getenv("DB_PORT"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBSslMode:         os.Getenv("DB_SSLMODE"),
		SessionTTLMinutes: os.Getenv("SESSION_TTL_MINUTES"),
	}
}

func openDatabase(configs cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = gormDB.AutoMigrate(
		&menurepo.MenuItemDTO{},
		&menurepo.MenuItemSizeDTO{},
		&ledgerrepo.CompletedOrderDTO{},
		&ledgerrepo.CompletedOrderItemDTO{},
		&limitsrepo.LimitsConfigDTO{},
		&limitsrepo.ItemLimitDTO{},
	)
	if err != nil {
		return nil, err
	}

	return gormDB, nil
}

func startWebServer(app cmd.CompositionRoot, port string, logger *slog.Logger) {
	server := app.CreateWebhookServer()

	e := echo.New()
	e.GET("/health", server.HandleHealth)
	e.POST("/webhook", server.HandleWebhook)
	e.GET("/api/v1/menu", server.GetMenu)
	e.GET("/api/v1/orders/completed", server.GetCompletedOrders)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Web server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Failed to shut down web server: %v", err)
	}
}
