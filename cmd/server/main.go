package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storefront/internal/catalog"
	"storefront/internal/checkout"
	"storefront/internal/config"
	"storefront/internal/logging"
	"storefront/internal/mailer"
	"storefront/internal/middleware"
	"storefront/internal/money"
	"storefront/internal/routes"
	"storefront/internal/telemetry"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	// Telemetry before logging; the slog otel handler reads the global logger
	// provider set here.
	tp, err := telemetry.Init(ctx, cfg.OTelServiceName, cfg.OTelEndpoint, cfg.Environment)
	if err != nil {
		log.Fatalf("Failed to init telemetry: %v", err)
	}

	logging.Init(cfg.OTelServiceName, cfg.Environment)

	metrics, err := telemetry.NewCheckoutMetrics(tp.Meter)
	if err != nil {
		log.Fatalf("Failed to init metrics: %v", err)
	}

	// Catalog
	cat := catalog.Default()
	if cfg.CatalogPath != "" {
		loaded, err := catalog.LoadFile(cfg.CatalogPath)
		if err != nil {
			logging.Warn(ctx, "catalog file not usable, using built-in catalog",
				"path", cfg.CatalogPath, "error", err)
		} else {
			cat = loaded
		}
	}

	// Mailer
	sender, err := mailer.NewSMTPSender(mailer.Options{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
	}, tp.Tracer, metrics)
	if err != nil {
		log.Fatalf("Failed to init mailer: %v", err)
	}

	// Checkout engine
	engine := &checkout.Engine{
		Catalog: cat,
		Tracer:  tp.Tracer,
		Metrics: metrics,
	}

	orderDeps := routes.OrderDeps{
		Engine:   engine,
		Sender:   sender,
		Currency: money.ByCode(cat.Currency()),
		MailFrom: cfg.MailFrom,
		MailTo:   cfg.MailTo,
	}

	// Router
	r := chi.NewRouter()
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.OTelHTTP(cfg.OTelServiceName))

	r.Get("/", routes.PageHandler())
	r.Get("/catalog", routes.CatalogHandler(cat))
	r.Post("/order", routes.OrderHandler(orderDeps))
	r.Get("/health", routes.HealthHandler(cfg.OTelServiceName))
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logging.Info(ctx, "server listening", "port", cfg.Port, "catalogItems", len(cat.Products()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logging.Info(ctx, "shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Error(ctx, "server shutdown error", "error", err)
	}
	if err := tp.Shutdown(shutdownCtx); err != nil {
		logging.Error(ctx, "telemetry shutdown error", "error", err)
	}
}
