package app

import (
	"time"

	"movieapi/internal/config"
	"movieapi/internal/handlers"
	"movieapi/internal/logging"
	"movieapi/internal/middleware"
	"movieapi/internal/repositories"
	"movieapi/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// WelcomeMessage is the body of GET /.
const WelcomeMessage = "Welcome to my movie database!"

// App bundles the Fiber application with the services behind it.
type App struct {
	Fiber        *fiber.App
	AuthService  *services.AuthService
	UserService  *services.UserService
	MovieService *services.MovieService
}

// New wires repositories, services, handlers and middleware into a Fiber app.
// publisher may be nil, in which case no events are emitted.
func New(cfg config.Config, movies repositories.MovieRepository, users repositories.UserRepository, publisher services.EventPublisher) *App {
	policy := services.NewAccessPolicy(cfg.Policy)

	authService := services.NewAuthService(users, cfg.JWTSecret, cfg.TokenTTL)
	userService := services.NewUserService(users, policy, publisher, cfg.Policy.RehashOnUpdate)
	movieService := services.NewMovieService(movies)

	authHandler := handlers.NewAuthHandler(authService, cfg.Policy.ExposePasswordHash)
	userHandler := handlers.NewUserHandler(userService, policy, cfg.Policy.ExposePasswordHash)
	movieHandler := handlers.NewMovieHandler(movieService)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler,
		UnescapePath: true,
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Output: logging.Writer(),
	}))
	app.Use(middleware.CORS(cfg.AllowedOrigins))
	app.Use(middleware.Metrics())

	// --- Open endpoints ---
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(WelcomeMessage)
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	var loginLimit fiber.Handler
	if cfg.LoginRateLimit > 0 {
		loginLimit = limiter.New(limiter.Config{
			Max:        cfg.LoginRateLimit,
			Expiration: time.Minute,
			LimitReached: func(c *fiber.Ctx) error {
				return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
					"message": "Too many login attempts, try again later",
				})
			},
		})
	}

	// --- API Routes ---
	auth := middleware.AuthRequired(authService)
	authHandler.RegisterRoutes(app, loginLimit)
	userHandler.RegisterRoutes(app, auth)

	var catalogGuard fiber.Handler
	if !policy.PublicCatalog {
		catalogGuard = auth
	}
	movieHandler.RegisterRoutes(app, catalogGuard)

	if cfg.StaticDir != "" {
		app.Static("/", cfg.StaticDir)
	}

	return &App{
		Fiber:        app,
		AuthService:  authService,
		UserService:  userService,
		MovieService: movieService,
	}
}
