package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"foodorder/cmd"
	"foodorder/internal/adapters/out/postgres/notificationrepo"
	"foodorder/internal/adapters/out/postgres/orderrepo"
	"foodorder/internal/adapters/out/postgres/userdirectory"
	"foodorder/internal/core/domain/model/order"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := order.ValidateTransitions(); err != nil {
		log.Fatalf("Broken status transition table: %v", err)
	}

	db := mustConnectDB(configs)

	app := cmd.NewCompositionRoot(configs, db, logger)

	app.SubscribeEventHandlers()
	app.EventBus().Start()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	e := newWebServer(app)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil {
			logger.Info("http server stopped", "error", err)
		}
	}()

	waitForShutdown()
	logger.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
	jobManager.StopAll()
	app.EventBus().Stop()
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ItemDTO{},
		&notificationrepo.NotificationDTO{},
		&userdirectory.UserDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database schema: %v", err)
	}

	return db
}

func newWebServer(app *cmd.CompositionRoot) *echo.Echo {
	e := echo.New()

	server := app.CreateHTTPServer()
	e.GET("/health", server.Health)
	e.POST("/api/v1/orders", server.CreateOrder)
	e.POST("/api/v1/orders/:id/status", server.ChangeOrderStatus)
	e.POST("/api/v1/orders/:id/cancel", server.CancelOrder)
	e.GET("/api/v1/notifications/:userId", server.GetNotifications)
	e.GET("/api/v1/restaurants/:id/orders/active", server.GetActiveOrders)

	wsServer := app.CreateWSServer()
	e.GET("/ws/customers/:id", wsServer.HandleCustomer)
	e.GET("/ws/restaurants/:id", wsServer.HandleRestaurant)

	return e
}

func waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
}
