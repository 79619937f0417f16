package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/autonovo/autonovo-backend/api/controllers"
	"github.com/autonovo/autonovo-backend/api/routes"
	"github.com/autonovo/autonovo-backend/internal/analytics"
	"github.com/autonovo/autonovo-backend/internal/kyc"
	"github.com/autonovo/autonovo-backend/internal/mailer"
	"github.com/autonovo/autonovo-backend/internal/moderation"
	"github.com/autonovo/autonovo-backend/internal/vehicles"
	"github.com/autonovo/autonovo-backend/pkg/config"
	"github.com/autonovo/autonovo-backend/pkg/db"
	"github.com/autonovo/autonovo-backend/pkg/logger"
	"github.com/autonovo/autonovo-backend/pkg/metrics"
	"github.com/autonovo/autonovo-backend/pkg/migrate"
	"github.com/autonovo/autonovo-backend/pkg/pubsub"
	"github.com/autonovo/autonovo-backend/pkg/redis"
	"github.com/autonovo/autonovo-backend/pkg/sendgrid"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	kycService, err := kyc.NewService(kyc.ServiceParams{
		Repo:   kyc.NewRepository(dbClient.DB()),
		Logger: logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create kyc service", err)
		os.Exit(1)
	}

	vehicleService, err := vehicles.NewService(vehicles.ServiceParams{
		Repo: vehicles.NewRepository(dbClient.DB()),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create vehicle service", err)
		os.Exit(1)
	}

	moderationService, err := moderation.NewService(moderation.ServiceParams{
		KycRepo:     kyc.NewRepository(dbClient.DB()),
		VehicleRepo: vehicles.NewRepository(dbClient.DB()),
		Cache:       redisClient,
		Logger:      logg,
		CacheTTL:    cfg.Moderation.CountsCacheTTL,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create moderation service", err)
		os.Exit(1)
	}

	dispatcher, err := mailer.NewDispatcher(mailer.DispatcherParams{
		Sender:  sendgrid.NewClient(cfg.Sendgrid),
		Config:  cfg.Sendgrid,
		Logger:  logg,
		Metrics: metrics.NewDispatchMetrics(registry),
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create mail dispatcher", err)
		os.Exit(1)
	}

	health := map[string]controllers.Pinger{
		"database": dbClient,
		"redis":    redisClient,
	}

	// Page events go through Pub/Sub when a GCP project is configured. The
	// in-memory sink keeps local development working without emulators.
	var sink analytics.Sink = analytics.NewMemorySink()
	if cfg.GCP.ProjectID != "" {
		pubsubClient, err := pubsub.NewClient(context.Background(), cfg.GCP, cfg.PubSub, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap pubsub", err)
			os.Exit(1)
		}
		defer func() {
			if err := pubsubClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing pubsub", err)
			}
		}()
		sink, err = analytics.NewPubSubSink(pubsubClient.AnalyticsPublisher())
		if err != nil {
			logg.Error(context.Background(), "failed to create analytics sink", err)
			os.Exit(1)
		}
		health["pubsub"] = pubsubClient
	} else {
		logg.Warn(context.Background(), "no GCP project configured, page events stay in memory")
	}

	reporter, err := analytics.NewReporter(analytics.ReporterParams{
		Sink:   sink,
		Logger: logg,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create analytics reporter", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	id := os.Getenv("DYNO")
	if id == "" {
		id = "local"
	}
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": id,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Deps{
			Config:     cfg,
			Logger:     logg,
			Health:     health,
			Kyc:        kycService,
			Vehicles:   vehicleService,
			Moderation: moderationService,
			Mailer:     dispatcher,
			Reporter:   reporter,
			Metrics:    registry,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
