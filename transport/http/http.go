package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"risecheckout/config"
	"risecheckout/infras/otel"
	"risecheckout/infras/postgres"
	"risecheckout/shared/cache"
	"risecheckout/shared/constant"
	"risecheckout/transport/http/response"
	"risecheckout/transport/http/router"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type ServerState int

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const (
	healthCheckTimeout = 2 * time.Second
	readHeaderTimeout  = 10 * time.Second
	healthStatusOK     = "ok"
)

// Pinger is a dependency the health check probes.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HTTP struct {
	Config *config.Config
	Router router.Router
	State  ServerState

	checks map[string]Pinger
	db     *postgres.Connection
	otel   otel.Otel
	mux    *chi.Mux
	server *http.Server
	once   sync.Once
	mu     sync.RWMutex
}

func New(cfg *config.Config, r router.Router, db *postgres.Connection, redisCache cache.RedisCache, otel otel.Otel) *HTTP {
	return &HTTP{
		Config: cfg,
		Router: r,
		checks: map[string]Pinger{
			"postgres": db,
			"redis":    redisCache,
		},
		db:   db,
		otel: otel,
	}
}

func (h *HTTP) Serve() {
	h.setup()
	h.setupGracefulShutdown()

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

// ServeHTTP lets the application run behind a serverless entry point.
func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.setup()
	h.mux.ServeHTTP(w, r)
}

func (h *HTTP) setup() {
	h.once.Do(func() {
		h.setupRoutes()
		h.setState(ServerStateReady)
	})
}

func (h *HTTP) setupRoutes() {
	h.mux = chi.NewRouter()

	h.Router.SetupRoutes(h.mux)
	h.mux.Get("/health", h.health)
}

func (h *HTTP) state() ServerState {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.State
}

func (h *HTTP) setState(state ServerState) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.State = state
}

func (h *HTTP) health(w http.ResponseWriter, r *http.Request) {
	if h.state() != ServerStateReady {
		response.WithPreparingShutdown(w)

		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	checks := make(map[string]string, len(h.checks))
	healthy := true

	for name, pinger := range h.checks {
		if err := pinger.Ping(ctx); err != nil {
			log.Error().Err(err).Str("dependency", name).Msg("health check failed")

			checks[name] = err.Error()
			healthy = false

			continue
		}

		checks[name] = healthStatusOK
	}

	if !healthy {
		response.WithUnhealthy(w)

		return
	}

	response.WithHealth(w, http.StatusOK, checks)
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer os.Exit(0)
	defer h.release()

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		return
	}

	shutdownConfig := h.Config.Server.Shutdown

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.setState(ServerStateInGracePeriod)

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.setState(ServerStateInCleanupPeriod)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(shutdownConfig.CleanupPeriodSeconds)*time.Second)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to drain HTTP server")
	}

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

// release flushes spans and closes the database pools.
func (h *HTTP) release() {
	ctx, cancel := context.WithTimeout(context.Background(), healthCheckTimeout)
	defer cancel()

	if err := h.otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to flush traces")
	}

	h.db.Close()
}
