package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/streadway/amqp"

	"movieapi/internal/app"
	"movieapi/internal/config"
	"movieapi/internal/database"
	"movieapi/internal/logging"
	"movieapi/internal/repositories"
	"movieapi/internal/services"
	"movieapi/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Invalid configuration")
	}
	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	// --- Initialize Repositories ---
	movieRepo, userRepo, err := openRepositories(cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize storage")
	}

	// --- Initialize RabbitMQ Client ---
	// Events are optional; without RABBITMQ_URL nothing is published.
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL})
		if err != nil {
			logging.Fatal().Err(err).Msg("Failed to initialize RabbitMQ client")
		}
		defer mqClient.Close()
		publisher = mqClient

		err = mqClient.ConsumeUserEvents(func(msg amqp.Delivery) error {
			return services.AuditEvent(msg.Body)
		})
		if err != nil {
			logging.Error().Err(err).Msg("Failed to start RabbitMQ consumer")
		}
	}

	application := app.New(cfg, movieRepo, userRepo, publisher)

	if cfg.SeedFile != "" {
		seedMovies(application.MovieService, cfg.SeedFile)
	}

	// --- Start HTTP Server ---
	logging.Info().Str("port", cfg.AppPort).Str("driver", cfg.DatabaseDriver).Msg("Starting server")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := application.Fiber.Listen(cfg.AppPort); err != nil {
			logging.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	<-quit
	logging.Info().Msg("Shutting down server...")

	if err := application.Fiber.Shutdown(); err != nil {
		logging.Error().Err(err).Msg("Error during Fiber shutdown")
	}
	logging.Info().Msg("Server gracefully stopped")
}

func openRepositories(cfg config.Config) (repositories.MovieRepository, repositories.UserRepository, error) {
	if cfg.DatabaseDriver == "memory" {
		return repositories.NewMemoryMovieRepository(), repositories.NewMemoryUserRepository(), nil
	}

	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}
	return repositories.NewGORMMovieRepository(db), repositories.NewGORMUserRepository(db), nil
}

// seedMovies fills an empty catalog from a JSON file.
func seedMovies(service *services.MovieService, path string) {
	movies, err := database.LoadMovies(path)
	if err != nil {
		logging.Error().Err(err).Str("file", path).Msg("Skipping seed")
		return
	}

	n, err := service.Seed(movies)
	if err != nil {
		logging.Error().Err(err).Int("seeded", n).Msg("Error seeding movies")
		return
	}
	logging.Info().Int("seeded", n).Str("file", path).Msg("Seeded movies")
}
