package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	requestusecases "fixdesk/internal/application/request/usecases"
	userusecases "fixdesk/internal/application/user/usecases"
	"fixdesk/internal/infrastructure/auth"
	"fixdesk/internal/infrastructure/config"
	"fixdesk/internal/infrastructure/database"
	"fixdesk/internal/infrastructure/persistence/migrations"
	"fixdesk/internal/infrastructure/ratelimit"
	"fixdesk/internal/infrastructure/repository"
	httprouter "fixdesk/internal/interfaces/http"
	requesthandlers "fixdesk/internal/interfaces/http/handlers/request"
	userhandlers "fixdesk/internal/interfaces/http/handlers/user"
	"fixdesk/internal/interfaces/http/middleware"
	"fixdesk/internal/shared/authorization"
	"fixdesk/internal/shared/logger"
	"fixdesk/internal/shared/services/markdown"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the fixdesk HTTP server with the specified configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	cfg.Server.Mode = mapEnvToGinMode(env)

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	logger.Info("starting server", "environment", env, "auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if autoMigrate {
		if err := migrations.Migrate(database.Get()); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		logger.Info("database migrations applied")
	}

	gate, err := authorization.NewGate()
	if err != nil {
		return fmt.Errorf("failed to build authorization gate: %w", err)
	}

	log := logger.NewLogger()

	jwtService := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.AccessExpMinutes)
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)
	loginLimiter := buildLoginLimiter(cfg, log)

	requestRepo := repository.NewRequestRepository(database.Get())
	commentRepo := repository.NewCommentRepository(database.Get())
	userRepo := repository.NewUserRepository(database.Get())

	markdownService := markdown.NewService()

	requestHandler := requesthandlers.NewRequestHandler(
		requestusecases.NewCreateRequestUseCase(requestRepo, gate, log),
		requestusecases.NewGetRequestUseCase(requestRepo, gate, log),
		requestusecases.NewUpdateRequestUseCase(requestRepo, gate, log),
		requestusecases.NewSearchRequestsUseCase(requestRepo, gate, log),
		requestusecases.NewCountByStatusUseCase(requestRepo, gate, log),
		requestusecases.NewAddCommentUseCase(commentRepo, gate, log),
		requestusecases.NewListCommentsUseCase(requestRepo, commentRepo, gate, log),
		markdownService,
	)

	userHandler := userhandlers.NewUserHandler(
		userusecases.NewRegisterUserUseCase(userRepo, hasher, cfg.Auth.MinPasswordLen, log),
		userusecases.NewAuthenticateUserUseCase(userRepo, hasher, jwtService, loginLimiter, log),
		userusecases.NewSetRoleUseCase(userRepo, gate, log),
	)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, log)

	router := httprouter.NewRouter(requestHandler, userHandler, authMiddleware, log)
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.Engine(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "address", cfg.Server.GetAddr(), "mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

// buildLoginLimiter uses Redis when configured so limits hold across
// instances, and falls back to the in-process limiter otherwise.
func buildLoginLimiter(cfg *config.Config, log logger.Interface) userusecases.LoginLimiter {
	limits := ratelimit.Config{
		PerMinute: cfg.RateLimit.LoginPerMinute,
		PerHour:   cfg.RateLimit.LoginPerHour,
	}

	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		log.Infow("using redis login rate limiter", "addr", cfg.Redis.Addr)
		return ratelimit.Bind(ratelimit.NewRedisLimiter(client), limits)
	}

	return ratelimit.Bind(ratelimit.NewMemoryLimiter(), limits)
}

func mapEnvToGinMode(env string) string {
	switch env {
	case "production":
		return gin.ReleaseMode
	case "test":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
