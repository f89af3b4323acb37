package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/consorcio/internal/auth"
	"github.com/mmynk/consorcio/internal/config"
	"github.com/mmynk/consorcio/internal/events"
	"github.com/mmynk/consorcio/internal/middleware"
	"github.com/mmynk/consorcio/internal/service"
	"github.com/mmynk/consorcio/internal/storage/sqlite"
	"github.com/mmynk/consorcio/pkg/api/apiconnect"
	"github.com/mmynk/consorcio/pkg/logging"
)

// publicProcedures can be called without a token.
var publicProcedures = []string{
	apiconnect.AuthServiceRegisterProcedure,
	apiconnect.AuthServiceLoginProcedure,
}

func main() {
	cfg := config.Load()
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		slog.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	// Initialize SQLite storage
	store, err := sqlite.New(cfg.DBPath)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DBPath)

	publisher := newPublisher(cfg)
	defer publisher.Close()

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenDuration)
	authenticator := auth.NewPasswordAuthenticator(store)
	metrics := middleware.NewMetrics()

	interceptors := connect.WithInterceptors(
		metrics.Interceptor(),
		middleware.RequireAuth(jwtManager, publicProcedures...),
		middleware.LoggingInterceptor(),
	)

	mux := http.NewServeMux()

	// Register Connect services
	mux.Handle(apiconnect.NewAuthServiceHandler(
		service.NewAuthService(authenticator, jwtManager, store, slog.Default()), interceptors))
	mux.Handle(apiconnect.NewParticipantServiceHandler(
		service.NewParticipantService(store), interceptors))
	mux.Handle(apiconnect.NewExpenseServiceHandler(
		service.NewExpenseService(store, publisher), interceptors))
	mux.Handle(apiconnect.NewPaymentServiceHandler(
		service.NewPaymentService(store, publisher), interceptors))
	mux.Handle(apiconnect.NewSummaryServiceHandler(
		service.NewSummaryService(store, publisher), interceptors))

	mux.Handle("GET /health", service.HealthHandler(store))
	mux.Handle("GET /metrics", metrics.Handler())

	handler := middleware.HTTPLogging(middleware.CORS(cfg.CORSOrigin, mux))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 16, // 64KB
	}

	// Graceful shutdown handling
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		slog.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
		cancel()
	}()

	slog.Info("Connect server starting", "address", srv.Addr, "url", fmt.Sprintf("http://localhost:%s", cfg.Port))
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}

	<-ctx.Done()
	slog.Info("Server stopped gracefully")
}

// newPublisher connects to the broker when one is configured. A broker
// that cannot be reached disables events instead of stopping the server.
func newPublisher(cfg *config.Config) events.Publisher {
	if !cfg.EventsEnabled() {
		slog.Info("Domain events disabled")
		return events.NopPublisher{}
	}

	publisher, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		slog.Warn("AMQP unavailable, domain events disabled", "error", err)
		return events.NopPublisher{}
	}

	slog.Info("Publishing domain events", "exchange", cfg.AMQPExchange, "queue", cfg.AMQPQueue)
	return publisher
}
