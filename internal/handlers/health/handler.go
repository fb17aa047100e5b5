package health

import (
	"aircon/infras/otel"
	"aircon/shared/constant"
	"aircon/transport/http/response"
	"context"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const pingTimeout = 2 * time.Second

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

// Pinger reports whether a backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db    Pinger
	otel  otel.Otel
	state *atomic.Int32
}

func New(db Pinger, otel otel.Otel) Handler {
	state := &atomic.Int32{}
	state.Store(int32(ServerStateReady))

	return Handler{
		db:    db,
		otel:  otel,
		state: state,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

// SetState is called by the server while it shuts down.
func (handler *Handler) SetState(state ServerState) {
	handler.state.Store(int32(state))
}

func (handler *Handler) State() ServerState {
	return ServerState(handler.state.Load())
}

// Health reports readiness for load balancers.
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} response.Message
// @Failure 503 {object} response.Message
// @Router /health [get]
func (handler *Handler) Health(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Health")
	defer scope.End()

	if handler.State() != ServerStateReady {
		response.WithPreparingShutdown(writer)

		return
	}

	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := handler.db.Ping(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("health check failed")

		response.WithUnhealthy(writer)

		return
	}

	response.WithMessage(writer, http.StatusOK, "OK")
}
