package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"washmap-api/config"
	deliveryHttp "washmap-api/internal/delivery/http"
	"washmap-api/internal/delivery/http/handler"
	"washmap-api/internal/delivery/http/middleware"
	"washmap-api/internal/domain/entity"
	"washmap-api/internal/infrastructure/cache"
	"washmap-api/internal/infrastructure/memstore"
	"washmap-api/internal/repository"
	"washmap-api/internal/service"
	"washmap-api/internal/usecase"
	"washmap-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Store       *memstore.Store
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	log := setupLogger(cfg.Log)
	log.Info("Configuration loaded successfully")

	// In-memory catalog and ledger, reset on every start
	facilities := repository.DefaultFacilities()
	app.Store = memstore.New(facilities)

	// Initialize Redis (optional)
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	queueSync := service.NewQueueSyncService(redisClient, log)
	if err := queueSync.SyncOnStartup(context.Background(), facilities); err != nil {
		log.Warnf("Failed to sync queue counts to Redis (non-fatal): %+v", err)
	}

	// Initialize all layers
	app.Server = initializeServer(cfg, log, app.Store, queueSync)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.LogConfig) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, store *memstore.Store, queueSync *service.QueueSyncService) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	facilityRepo := repository.NewFacilityRepository()
	bookingRepo := repository.NewBookingRepository()

	// Initialize services
	generator := service.NewFacilityGenerator(cfg.Generator, nil)
	thresholds := entity.QueueThresholds{
		Low:    cfg.Queue.LowThreshold,
		Medium: cfg.Queue.MediumThreshold,
	}

	// Initialize usecases
	facilityUsecase := usecase.NewFacilityUsecase(store, log, facilityRepo, generator, thresholds)
	bookingUsecase := usecase.NewBookingUsecase(store, log, customValidator, facilityRepo, bookingRepo, queueSync)

	// Initialize handlers
	facilityHandler := handler.NewFacilityHandler(facilityUsecase)
	bookingHandler := handler.NewBookingHandler(bookingUsecase)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware(cfg.CORS)
	loggingMiddleware := middleware.NewLoggingMiddleware(log)

	// Initialize router
	router := deliveryHttp.NewRouter(facilityHandler, bookingHandler, corsMiddleware, loggingMiddleware)

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("WashMap server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close releases external connections. Bookings and queue changes are
// discarded with the process.
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
