package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"portfolio/internal/app"
	"portfolio/internal/config"
	"portfolio/internal/database"
	"portfolio/internal/services"
	"portfolio/pkg/logger"
	"portfolio/pkg/rabbitmq"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func main() {
	// --- Configuration ---
	cfg := config.Load(viper.GetViper())

	log, err := logger.New(cfg.LogLevel, cfg.LogDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// --- Database ---
	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatal("Failed to open database", zap.Error(err))
	}
	if err := database.Initialize(db, log); err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}

	// --- Contact notifications (optional) ---
	publisher, closePublisher := setupPublisher(cfg, log)
	defer closePublisher()

	// --- HTTP ---
	server := app.New(app.Deps{
		Config:    cfg,
		DB:        db,
		Publisher: publisher,
		Logger:    log,
	})

	log.Info("Starting portfolio server",
		zap.String("addr", cfg.AppPort),
		zap.String("static_dir", cfg.StaticDir),
		zap.String("db_driver", cfg.Database.Driver))

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Listen(cfg.AppPort); err != nil {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	<-quit
	log.Info("Shutting down server...")

	if err := server.Shutdown(); err != nil {
		log.Error("Error during Fiber shutdown", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}
	log.Info("Server gracefully stopped")
}

// setupPublisher connects to RabbitMQ when a URL is configured and starts a
// consumer that logs each received contact message. Without a URL, or when the
// broker is unreachable, it returns a nil publisher so messages are only stored.
func setupPublisher(cfg config.Config, log *zap.Logger) (services.EventPublisher, func()) {
	noop := func() {}
	if cfg.RabbitMQURL == "" {
		log.Info("RABBITMQ_URL not set, contact notifications disabled")
		return nil, noop
	}

	client, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, log)
	if err != nil {
		log.Warn("RabbitMQ unavailable, contact notifications disabled", zap.Error(err))
		return nil, noop
	}

	err = client.ConsumeContactEvents(func(event map[string]interface{}) error {
		log.Info("New contact message",
			zap.Any("message_id", event["message_id"]),
			zap.Any("name", event["name"]),
			zap.Any("email", event["email"]))
		return nil
	})
	if err != nil {
		log.Warn("Failed to start contact event consumer", zap.Error(err))
	}

	return client, func() {
		if err := client.Close(); err != nil {
			log.Error("Error closing RabbitMQ client", zap.Error(err))
		}
	}
}
