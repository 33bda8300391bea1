package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"orders/cmd"
	"orders/internal/adapters/out/postgres/customerrepo"
	"orders/internal/adapters/out/postgres/orderrepo"
	"orders/internal/adapters/out/postgres/outboxrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create logger:", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	config := getConfigs(logger)

	db, err := openDatabase(config)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	root, err := cmd.NewCompositionRoot(config, db, logger)
	if err != nil {
		logger.Fatal("failed to build composition root", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	jobManager := root.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		logger.Fatal("failed to start jobs", zap.Error(err))
	}
	defer jobManager.StopAll()

	consumer := root.CreateConsumer()
	consumerDone := make(chan struct{})
	go func() {
		defer close(consumerDone)
		if err := consumer.Run(ctx); err != nil {
			logger.Error("consumer exited with error", zap.Error(err))
		}
	}()

	e := echo.New()
	e.HideBanner = true
	root.CreateHTTPServer().RegisterRoutes(e)

	go func() {
		address := fmt.Sprintf("0.0.0.0:%s", config.HTTPPort)
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", zap.Error(err))
	}
	<-consumerDone
}

func openDatabase(config cmd.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.DBHost, config.DBPort, config.DBUser, config.DBPassword, config.DBName, config.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &customerrepo.CustomerDTO{}, &outboxrepo.MessageDTO{})
	if err != nil {
		return nil, err
	}
	return db, nil
}

func getConfigs(logger *zap.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Warn("no .env file loaded, using process environment")
	}

	return cmd.Config{
		HTTPPort: envOrDefault("HTTP_PORT", "8080"),

		DBHost:     os.Getenv("DB_HOST"),
		DBPort:     envOrDefault("DB_PORT", "5432"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBSslMode:  envOrDefault("DB_SSLMODE", "disable"),

		KafkaHost:             os.Getenv("KAFKA_HOST"),
		KafkaConsumerGroup:    envOrDefault("KAFKA_CONSUMER_GROUP", "orders"),
		KafkaOrderEventsTopic: envOrDefault("KAFKA_ORDER_EVENTS_TOPIC", "orders.events"),
		KafkaInboundTopic:     envOrDefault("KAFKA_INBOUND_TOPIC", "orders.inbound"),

		ParcelsServiceURL:  os.Getenv("PARCELS_SERVICE_URL"),
		VehiclesServiceURL: os.Getenv("VEHICLES_SERVICE_URL"),
		PricingServiceURL:  os.Getenv("PRICING_SERVICE_URL"),

		DispatcherBatchSize:   envIntOrDefault(logger, "DISPATCHER_BATCH_SIZE", 20),
		DispatcherMaxAttempts: envIntOrDefault(logger, "DISPATCHER_MAX_ATTEMPTS", 10),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(logger *zap.Logger, key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		logger.Warn("invalid integer in environment, using default",
			zap.String("key", key), zap.String("value", raw), zap.Int("default", fallback))
		return fallback
	}
	return value
}
