package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"fooddrone/cmd"
	"fooddrone/internal/adapters/out/bus"
	"fooddrone/internal/adapters/out/postgres/deliveryrepo"
	"fooddrone/internal/adapters/out/postgres/dronerepo"
	"fooddrone/internal/adapters/out/postgres/orderrepo"
	"fooddrone/internal/adapters/out/postgres/paymentrepo"
	"fooddrone/internal/adapters/out/postgres/restaurantrepo"
	"fooddrone/internal/adapters/out/redisnotify"
	"fooddrone/internal/core/ports"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db := mustConnectDatabase(configs)
	mustMigrateDatabase(db)

	notifier := createNotifier(configs)
	eventBus := createEventBus(configs, logger)

	app := cmd.NewCompositionRoot(configs, db, eventBus, notifier, logger)

	app.CreateSubscriptions()
	if err := eventBus.Start(context.Background()); err != nil {
		log.Fatalf("Error starting event bus: %v", err)
	}
	defer eventBus.Close()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:           goDotEnvVariable("HTTP_PORT"),
		DBHost:             goDotEnvVariable("DB_HOST"),
		DBPort:             goDotEnvVariable("DB_PORT"),
		DBUser:             goDotEnvVariable("DB_USER"),
		DBPassword:         goDotEnvVariable("DB_PASSWORD"),
		DBName:             goDotEnvVariable("DB_NAME"),
		DBSslMode:          goDotEnvVariable("DB_SSLMODE"),
		BusDriver:          envOrDefault("BUS_DRIVER", "memory"),
		KafkaHost:          os.Getenv("KAFKA_HOST"),
		KafkaConsumerGroup: envOrDefault("KAFKA_CONSUMER_GROUP", "fooddrone"),
		RedisAddr:          goDotEnvVariable("REDIS_ADDR"),
		RedisPassword:      os.Getenv("REDIS_PASSWORD"),
		CatalogServiceURL:  goDotEnvVariable("CATALOG_SERVICE_URL"),
		PaymentGatewayURL:  goDotEnvVariable("PAYMENT_GATEWAY_URL"),
		UserServiceURL:     goDotEnvVariable("USER_SERVICE_URL"),
		TickSeconds:        envIntOrDefault("TICK_SECONDS", 5),
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

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Fatalf("Error parsing %s: %v", key, err)
	}
	return value
}

func mustConnectDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return db
}

func mustMigrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&paymentrepo.PaymentDTO{},
		&restaurantrepo.RestaurantOrderDTO{},
		&dronerepo.DroneDTO{},
		&deliveryrepo.DeliveryDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}
}

func createNotifier(configs cmd.Config) ports.Notifier {
	client := redis.NewClient(&redis.Options{
		Addr:     configs.RedisAddr,
		Password: configs.RedisPassword,
	})
	return redisnotify.NewNotifier(client)
}

func createEventBus(configs cmd.Config, logger *slog.Logger) ports.EventBus {
	if configs.BusDriver == "kafka" {
		kafkaBus, err := bus.NewKafkaBus(
			strings.Split(configs.KafkaHost, ","),
			configs.KafkaConsumerGroup,
			logger,
		)
		if err != nil {
			log.Fatalf("Error connecting to kafka: %v", err)
		}
		return kafkaBus
	}
	return bus.NewMemoryBus(logger)
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
