package http

import (
	"aircon/config"
	"aircon/infras/otel"
	"aircon/infras/postgres"
	notification "aircon/internal/domains/notification/service"
	"aircon/internal/handlers/health"
	"aircon/shared/constant"
	"aircon/transport/http/router"
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const (
	readHeaderTimeout     = 10 * time.Second
	defaultCleanupTimeout = 10 * time.Second
)

type HTTP struct {
	Config     *config.Config
	Router     router.Router
	Dispatcher notification.Dispatcher
	Otel       otel.Otel
	DB         *postgres.Connection
	mux        *chi.Mux
	once       sync.Once
}

func New(cfg *config.Config, r router.Router, dispatcher notification.Dispatcher, otel otel.Otel, db *postgres.Connection) *HTTP {
	return &HTTP{
		Config:     cfg,
		Router:     r,
		Dispatcher: dispatcher,
		Otel:       otel,
		DB:         db,
	}
}

// Serve listens until SIGINT or SIGTERM, then drains the server and pending notifications.
func (h *HTTP) Serve() {
	h.once.Do(h.setupRoutes)

	host := h.Config.Server.Host
	if host == "" {
		host = "0.0.0.0"
	}

	server := &http.Server{
		Addr:              net.JoinHostPort(host, h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan struct{})

	go func() {
		defer close(done)

		<-ctx.Done()
		h.shutdown(server)
	}()

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	<-done
}

// ServeHTTP serves a single request, for serverless entrypoints.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.once.Do(h.setupRoutes)

	h.mux.ServeHTTP(w, r)
}

func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	h.Router.SetupRoutes(h.mux)
}

func (h *HTTP) shutdown(server *http.Server) {
	shutdownConfig := h.Config.Server.Shutdown
	healthHandler := h.Router.DomainHandlers.Health

	log.Info().Msg("Received SIGTERM.")

	if h.Config.Server.Env != constant.ServerEnvDevelopment {
		log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

		healthHandler.SetState(health.ServerStateInGracePeriod)

		time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)
	}

	cleanupTimeout := time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second
	if cleanupTimeout <= 0 {
		cleanupTimeout = defaultCleanupTimeout
	}

	log.Info().Dur("timeout", cleanupTimeout).Msg("Entering cleanup period.")

	healthHandler.SetState(health.ServerStateInCleanupPeriod)

	ctx, cancel := context.WithTimeout(context.Background(), cleanupTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("failed to shut down HTTP server")
	}

	h.waitForNotifications(ctx)

	if err := h.Otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("failed to flush traces")
	}

	if err := h.DB.Close(); err != nil {
		log.Error().Err(err).Msg("failed to close database connections")
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

func (h *HTTP) waitForNotifications(ctx context.Context) {
	drained := make(chan struct{})

	go func() {
		h.Dispatcher.Wait()
		close(drained)
	}()

	select {
	case <-drained:
		log.Info().Msg("Pending notifications delivered.")
	case <-ctx.Done():
		log.Warn().Msg("Cleanup period ended with notifications still pending.")
	}
}
