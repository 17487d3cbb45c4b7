package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/fleetops/dispatchtrack/internal/pkg/config"
	"github.com/fleetops/dispatchtrack/internal/pkg/database"
	"github.com/fleetops/dispatchtrack/internal/pkg/health"
	pkghttp "github.com/fleetops/dispatchtrack/internal/pkg/http"
	"github.com/fleetops/dispatchtrack/internal/pkg/logger"
	natspkg "github.com/fleetops/dispatchtrack/internal/pkg/nats"
	"github.com/fleetops/dispatchtrack/internal/pkg/server"
	"github.com/fleetops/dispatchtrack/services/tracker"
	"github.com/fleetops/dispatchtrack/services/tracker/gateway/http"
	natsgw "github.com/fleetops/dispatchtrack/services/tracker/gateway/nats"
	"github.com/fleetops/dispatchtrack/services/tracker/handler"
	"github.com/fleetops/dispatchtrack/services/tracker/positioning"
	"github.com/fleetops/dispatchtrack/services/tracker/repository"
	"github.com/fleetops/dispatchtrack/services/tracker/usecase"
)

func main() {
	configs := config.InitConfig(".env")

	// New Relic is optional; without a license key logs stay local
	var nrApp *newrelic.Application
	if configs.NewRelic.Enabled && configs.NewRelic.LicenseKey != "" {
		var err error
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(configs.NewRelic.AppName),
			newrelic.ConfigLicense(configs.NewRelic.LicenseKey),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("Failed to initialize New Relic: %v", err)
		}
	}

	zapLogger, err := logger.NewZapLogger(configs.Logger, nrApp)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	shutdownManager := server.NewShutdownManager(zapLogger)

	// Redis holds the position cache and the session status mirror
	redisClient, err := database.NewRedisClient(configs.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis", logger.Err(err))
	}

	// The delivery journal is optional; an empty host disables it
	var postgresClient *database.PostgresClient
	var journalRepo *repository.JournalRepository
	if configs.Database.Host != "" {
		postgresClient, err = database.NewPostgresClient(configs.Database)
		if err != nil {
			logger.Fatal("Failed to connect to journal database", logger.Err(err))
		}
		journalRepo = repository.NewJournalRepository(postgresClient.GetDB())
	} else {
		logger.Warn("Journal database not configured; audit journal disabled")
	}

	natsClient, err := natspkg.NewClient(configs.NATS.URL)
	if err != nil {
		logger.Fatal("Failed to connect to NATS", logger.Err(err))
	}

	// Position source backed by the local gpsd daemon
	positionTimeout := time.Duration(configs.Tracker.PositionTimeoutS) * time.Second
	source := positioning.NewGPSDSource(configs.GPSD, positionTimeout)

	cacheRepo := repository.NewCacheRepository(
		redisClient,
		configs.Tracker.HistoryLimit,
		time.Duration(configs.Tracker.StatusTTLSeconds)*time.Second,
	)

	fleetClient := pkghttp.NewClient(
		configs.Fleet.BaseURL,
		configs.Fleet.APIKey,
		time.Duration(configs.Fleet.TimeoutSeconds)*time.Second,
	)
	fleetGW := http.NewFleetGateway(fleetClient)
	eventGW := natsgw.NewEventGateway(natsClient)

	// A typed nil must not reach the interface field
	var journal tracker.JournalRepo
	if journalRepo != nil {
		journal = journalRepo
	}
	trackerUC := usecase.NewTrackerUC(configs, source, fleetGW, eventGW, cacheRepo, journal)

	// Sessions stop first so their final status still reaches the
	// clients being closed after them
	shutdownManager.Register(trackerUC.Close)
	shutdownManager.Register(func(ctx context.Context) error {
		source.Close()
		return nil
	})
	shutdownManager.Register(func(ctx context.Context) error {
		natsClient.Close()
		return nil
	})
	if postgresClient != nil {
		shutdownManager.Register(func(ctx context.Context) error {
			return postgresClient.Close()
		})
	}
	shutdownManager.Register(func(ctx context.Context) error {
		return redisClient.Close()
	})

	e := echo.New()
	e.HideBanner = true

	checkers := []health.HealthChecker{
		health.NewRedisHealthChecker(redisClient),
		health.NewNATSHealthChecker(natsClient),
	}
	if postgresClient != nil {
		checkers = append(checkers, health.NewPostgresHealthChecker(postgresClient))
	}

	httpHandler := handler.NewHTTPHandler(trackerUC, cacheRepo, configs, checkers...)
	httpHandler.RegisterRoutes(e)

	gracefulServer := server.NewGracefulServer(e, zapLogger, configs.Server.Port)

	logger.Info("Starting dispatch tracker agent",
		logger.String("app", configs.App.Name),
		logger.Int("port", configs.Server.Port))

	if err := gracefulServer.Start(); err != nil {
		logger.Error("Server stopped", logger.Err(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := shutdownManager.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown finished with errors", logger.Err(err))
	}
}
