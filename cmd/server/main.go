package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"busriya/internal/app"
	"busriya/internal/backend/rest"
	"busriya/internal/config"
	"busriya/internal/handler"
	internalRedis "busriya/internal/redis"
	"busriya/internal/service"
)

func main() {
	// Load configuration.
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Initialize New Relic FIRST so Redis and the backend clients can
	// be instrumented.
	var nrApp *newrelic.Application
	var err error
	if cfg.NewRelic.Enabled && cfg.NewRelic.LicenseKey != "" {
		nrApp, err = newrelic.NewApplication(
			newrelic.ConfigAppName(cfg.NewRelic.AppName),
			newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
			newrelic.ConfigDistributedTracerEnabled(true),
			newrelic.ConfigAppLogForwardingEnabled(true),
		)
		if err != nil {
			log.Printf("failed to initialize New Relic: %v", err)
		} else {
			log.Printf("New Relic enabled: app=%s", cfg.NewRelic.AppName)
		}
	}

	// Initialize Redis with New Relic instrumentation.
	redisClient, err := app.NewRedisClient(ctx, cfg.Redis, nrApp)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()
	log.Println("Connected to Redis")

	// Wire dependencies.
	server, cleanup := wireServer(redisClient, nrApp, cfg)
	defer cleanup()

	// Start server in goroutine.
	go func() {
		log.Printf("Starting server on port %s", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}

// wireServer wires all dependencies and returns the HTTP server plus a
// cleanup function for the workflow registries.
func wireServer(redisClient *redis.Client, nrApp *newrelic.Application, cfg *config.Config) (*http.Server, func()) {
	// One HTTP client shared by the backend gateways.
	httpClient := &http.Client{Timeout: cfg.Backends.Timeout}

	// Initialize backend gateways.
	coreService := rest.NewCoreService(cfg.Backends.CoreBaseURL, httpClient)
	tripService := rest.NewTripService(cfg.Backends.TripBaseURL, httpClient)
	bookingService := rest.NewBookingService(cfg.Backends.BookingBaseURL, httpClient)

	// Initialize Redis stores.
	sessionStore := internalRedis.NewSessionStore(redisClient, cfg.Session.TTL)

	// Initialize services.
	authService := service.NewAuthService(coreService, sessionStore)
	reservationService := service.NewReservationService(bookingService, tripService)
	bookingFlowService := service.NewBookingService(bookingService)

	// Live workflow and verification-flow instances. Evicted
	// workflows get their in-flight requests cancelled.
	workflows := service.NewRegistry(cfg.Workflow.IdleTTL, func(w *service.ReservationWorkflow) {
		w.Close()
	})
	flows := service.NewRegistry[*service.VerificationFlow](cfg.Workflow.IdleTTL, nil)

	// Initialize handlers.
	authHandler := handler.NewAuthHandler(authService)
	reservationHandler := handler.NewReservationHandler(reservationService, workflows)
	bookingHandler := handler.NewBookingHandler(bookingFlowService, bookingService, flows)
	tripHandler := handler.NewTripHandler(tripService)
	masterDataHandler := handler.NewMasterDataHandler(coreService)

	// Create router.
	router := app.NewRouter(app.RouterDeps{
		AuthHandler:        authHandler,
		ReservationHandler: reservationHandler,
		BookingHandler:     bookingHandler,
		TripHandler:        tripHandler,
		MasterDataHandler:  masterDataHandler,
		AuthService:        authService,
		RedisClient:        redisClient,
		NewRelicApp:        nrApp,
	})

	cleanup := func() {
		workflows.Close()
		flows.Close()
	}

	// Create HTTP server.
	return &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}, cleanup
}
