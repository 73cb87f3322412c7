package roster

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	rosterservice "github.com/edenhub/eden-web/app/modules/roster/application"
	rosterhandlers "github.com/edenhub/eden-web/app/modules/roster/infrastructure/handlers"
	rosterrouter "github.com/edenhub/eden-web/app/modules/roster/infrastructure/router"
	rosterstore "github.com/edenhub/eden-web/app/modules/roster/infrastructure/store"
	"github.com/edenhub/eden-web/app/shared/clock"
	"github.com/edenhub/eden-web/app/shared/edenapi"
	"github.com/edenhub/eden-web/app/shared/httpx"
	"github.com/edenhub/eden-web/config"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// sweepInterval is how often idle boards are dropped.
const sweepInterval = time.Minute

// Module represents the roster module.
type Module struct {
	service  rosterservice.Service
	handlers *rosterhandlers.RosterHandlers
	router   *rosterrouter.Router
	store    *rosterstore.Store
	logger   *slog.Logger
	cancel   context.CancelFunc
}

// NewModule creates the roster module, starts the board sweeper and registers its routes.
func NewModule(
	ctx context.Context,
	cfg *config.Config,
	api *edenapi.Client,
	runs rosterservice.Runs,
	activity rosterservice.Activity,
	feed rosterhandlers.Feed,
	renderer rosterhandlers.Renderer,
	middleware httpx.Chain,
	requireAdmin func(http.Handler) http.Handler,
	logger *slog.Logger,
	tracer trace.Tracer,
	httpRouter chi.Router,
) *Module {
	logger.InfoContext(ctx, "Initializing roster module")

	store := rosterstore.New(cfg.Eden.BoardTTL, clock.Real{})
	service := rosterservice.NewService(api, runs, activity, store, logger, tracer)
	handlers := rosterhandlers.NewRosterHandlers(service, feed, renderer, logger, tracer)

	router := rosterrouter.NewRouter(handlers, middleware, requireAdmin)
	if httpRouter != nil {
		router.Configure(httpRouter)
	}

	sweepCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	go store.Run(sweepCtx, sweepInterval)

	return &Module{
		service:  service,
		handlers: handlers,
		router:   router,
		store:    store,
		logger:   logger,
		cancel:   cancel,
	}
}

// Close stops the board sweeper.
func (m *Module) Close() {
	m.logger.Info("Stopping roster module")
	m.cancel()
}
