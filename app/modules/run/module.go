package run

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	runservice "github.com/edenhub/eden-web/app/modules/run/application"
	runhandlers "github.com/edenhub/eden-web/app/modules/run/infrastructure/handlers"
	runrouter "github.com/edenhub/eden-web/app/modules/run/infrastructure/router"
	"github.com/edenhub/eden-web/app/shared/clock"
	"github.com/edenhub/eden-web/app/shared/edenapi"
	"github.com/edenhub/eden-web/app/shared/httpx"
	"github.com/edenhub/eden-web/config"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// Module represents the run module.
type Module struct {
	service  runservice.Service
	handlers *runhandlers.RunHandlers
	router   *runrouter.Router
	logger   *slog.Logger
}

// NewModule creates the run module and registers the admin run routes on httpRouter.
func NewModule(
	ctx context.Context,
	cfg *config.Config,
	api *edenapi.Client,
	renderer runhandlers.Renderer,
	middleware httpx.Chain,
	requireAdmin func(http.Handler) http.Handler,
	logger *slog.Logger,
	tracer trace.Tracer,
	httpRouter chi.Router,
) *Module {
	logger.InfoContext(ctx, "Initializing run module")

	service := runservice.NewService(api, cfg.Eden.ServerID, clock.Real{}, time.Local, logger, tracer)
	handlers := runhandlers.NewRunHandlers(service, renderer, time.Local, logger, tracer)

	router := runrouter.NewRouter(handlers, middleware, requireAdmin)
	if httpRouter != nil {
		router.Configure(httpRouter)
	}

	return &Module{
		service:  service,
		handlers: handlers,
		router:   router,
		logger:   logger,
	}
}

// Service exposes run lookups to the roster module.
func (m *Module) Service() runservice.Service {
	return m.service
}
