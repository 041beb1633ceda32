package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/darziapp/darzi-backend/api/routes"
	"github.com/darziapp/darzi-backend/internal/customers"
	"github.com/darziapp/darzi-backend/internal/dashboard"
	"github.com/darziapp/darzi-backend/internal/measurements"
	"github.com/darziapp/darzi-backend/internal/orders"
	"github.com/darziapp/darzi-backend/internal/payments"
	"github.com/darziapp/darzi-backend/internal/shops"
	"github.com/darziapp/darzi-backend/internal/tailors"
	"github.com/darziapp/darzi-backend/pkg/config"
	"github.com/darziapp/darzi-backend/pkg/db"
	"github.com/darziapp/darzi-backend/pkg/logger"
	"github.com/darziapp/darzi-backend/pkg/metrics"
	"github.com/darziapp/darzi-backend/pkg/migrate"
	"github.com/darziapp/darzi-backend/pkg/redis"
)

const shutdownGrace = 15 * time.Second

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

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	shopRepo := shops.NewRepository(dbClient.DB())
	customerRepo := customers.NewRepository(dbClient.DB())
	tailorRepo := tailors.NewRepository(dbClient.DB())
	orderRepo := orders.NewRepository(dbClient.DB())
	paymentRepo := payments.NewRepository(dbClient.DB())
	measurementRepo := measurements.NewRepository(dbClient.DB())

	shopService, err := shops.NewService(shopRepo)
	exitOnErr(logg, "failed to create shop service", err)
	customerService, err := customers.NewService(customerRepo)
	exitOnErr(logg, "failed to create customer service", err)
	tailorService, err := tailors.NewService(tailorRepo)
	exitOnErr(logg, "failed to create tailor service", err)
	orderService, err := orders.NewService(orderRepo, customerRepo, tailorRepo)
	exitOnErr(logg, "failed to create order service", err)
	paymentService, err := payments.NewService(paymentRepo, orderRepo)
	exitOnErr(logg, "failed to create payment service", err)
	measurementService, err := measurements.NewService(measurementRepo, customerRepo)
	exitOnErr(logg, "failed to create measurement service", err)
	dashboardService, err := dashboard.NewService(orderRepo, paymentRepo, logg, cfg.Dashboard.Location())
	exitOnErr(logg, "failed to create dashboard service", err)

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
		Handler: routes.NewRouter(routes.Deps{
			Config:       cfg,
			Logger:       logg,
			DB:           dbClient,
			Redis:        redisClient,
			Metrics:      httpMetrics,
			Registry:     registry,
			Shops:        shopService,
			Customers:    customerService,
			Tailors:      tailorService,
			Orders:       orderService,
			Payments:     paymentService,
			Measurements: measurementService,
			Dashboard:    dashboardService,
		}),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case sig := <-stop:
		logg.Info(logg.WithField(ctx, "signal", sig.String()), "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
			os.Exit(1)
		}
	}
}

func exitOnErr(logg *logger.Logger, msg string, err error) {
	if err == nil {
		return
	}
	logg.Error(context.Background(), msg, err)
	os.Exit(1)
}
