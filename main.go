package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"

	"lapak/internal/handlers"
	"lapak/internal/models"
	"lapak/internal/repositories"
	"lapak/pkg/mongodb"
	"lapak/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MONGO_URI", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB", "lapak")
	viper.SetDefault("RABBITMQ_URL", "") // empty disables change events
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	appEnv := viper.GetString("APP_ENV")

	level, err := zerolog.ParseLevel(viper.GetString("LOG_LEVEL"))
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stdout).With().Timestamp().Str("service", "lapak").Logger().Level(level)

	// --- Initialize MongoDB Client ---
	// The connection is established once here and shared by every
	// repository for the lifetime of the process.
	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := mongodb.NewClient(connectCtx, mongodb.Config{
		URI:      viper.GetString("MONGO_URI"),
		Database: viper.GetString("MONGO_DB"),
	})
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize MongoDB client")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Close(closeCtx); err != nil {
			log.Error().Err(err).Msg("error closing MongoDB client")
		}
	}()

	// --- Initialize RabbitMQ Client (optional) ---
	var events handlers.EventSink
	if mqURL := viper.GetString("RABBITMQ_URL"); mqURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: mqURL})
		if err != nil {
			log.Fatal().Err(err).Msg("failed to initialize RabbitMQ client")
		}
		defer mqClient.Close()
		events = mqClient

		// Drain change events so the queue does not grow unbounded when
		// nothing else consumes it.
		if err := mqClient.ConsumeChanges(func(msg amqp.Delivery) error {
			log.Info().RawJSON("event", msg.Body).Msg("catalog change event")
			return nil
		}); err != nil {
			log.Error().Err(err).Msg("failed to start RabbitMQ consumer")
		}
	}

	// --- Initialize Repositories ---
	userRepo := repositories.NewMongoUserRepository(db.Collection("user"))
	groceryRepo := repositories.NewMongoRepository[models.Grocery, *models.Grocery](db.Collection("groceries"))
	clothesRepo := repositories.NewMongoRepository[models.Clothes, *models.Clothes](db.Collection("clothes"))
	electronicsRepo := repositories.NewMongoRepository[models.Electronics, *models.Electronics](db.Collection("electronics"))

	// --- Initialize Handlers ---
	// Raw error detail in 500 bodies is gated to non-production runs.
	opts := handlers.Options{
		Log:          log,
		Events:       events,
		ExposeErrors: appEnv != "production",
	}
	userHandler := handlers.NewUserHandler(userRepo, opts)
	groceryHandler := handlers.NewGroceryHandler(groceryRepo, opts)
	clothesHandler := handlers.NewClothesHandler(clothesRepo, opts)
	electronicsHandler := handlers.NewElectronicsHandler(electronicsRepo, opts)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(fiberlogger.New())

	// --- API Routes ---
	userHandler.RegisterRoutes(app)
	groceryHandler.RegisterRoutes(app)
	clothesHandler.RegisterRoutes(app)
	electronicsHandler.RegisterRoutes(app)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		pingCtx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(pingCtx); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
				"time":   time.Now().Format(time.RFC3339),
			})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP Server ---
	log.Info().Str("port", appPort).Str("env", appEnv).Msg("starting server")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Info().Msg("shutting down server")

	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("error during shutdown")
	}
	log.Info().Msg("server stopped")
}
