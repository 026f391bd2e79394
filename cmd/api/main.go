package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/boothlabs/boothtrack-backend/api/routes"
	"github.com/boothlabs/boothtrack-backend/internal/catalog"
	"github.com/boothlabs/boothtrack-backend/internal/inquiries"
	"github.com/boothlabs/boothtrack-backend/internal/reporting"
	"github.com/boothlabs/boothtrack-backend/internal/views"
	"github.com/boothlabs/boothtrack-backend/internal/visitors"
	"github.com/boothlabs/boothtrack-backend/pkg/config"
	"github.com/boothlabs/boothtrack-backend/pkg/logger"
	"github.com/boothlabs/boothtrack-backend/pkg/metrics"
	"github.com/boothlabs/boothtrack-backend/pkg/mongodb"
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

	mongoClient, err := mongodb.New(context.Background(), cfg.Mongo, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap mongodb", err)
		os.Exit(1)
	}
	defer func() {
		if err := mongoClient.Close(context.Background()); err != nil {
			logg.Error(context.Background(), "error closing mongodb", err)
		}
	}()

	visitorRepo := visitors.NewRepository(mongoClient.Database())
	if err := visitorRepo.EnsureIndexes(context.Background()); err != nil {
		logg.Error(context.Background(), "failed to ensure visitor indexes", err)
		os.Exit(1)
	}

	catalogRepo := catalog.NewRepository(mongoClient.Database())
	inquiryRepo := inquiries.NewRepository(mongoClient.Database())
	viewRepo := views.NewRepository(mongoClient.Database())
	reportingRepo := reporting.NewRepository(mongoClient.Database())

	visitorService, err := visitors.NewService(visitorRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create visitor service", err)
		os.Exit(1)
	}

	catalogService, err := catalog.NewService(catalogRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create catalog service", err)
		os.Exit(1)
	}

	inquiryService, err := inquiries.NewService(inquiryRepo, visitorRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create inquiry service", err)
		os.Exit(1)
	}

	viewService, err := views.NewService(viewRepo, catalogRepo, inquiryRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create views service", err)
		os.Exit(1)
	}

	reportingService, err := reporting.NewService(reportingRepo)
	if err != nil {
		logg.Error(context.Background(), "failed to create reporting service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(
			cfg,
			logg,
			mongoClient,
			httpMetrics,
			registry,
			visitorService,
			catalogService,
			viewService,
			inquiryService,
			reportingService,
			time.Now,
		),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
