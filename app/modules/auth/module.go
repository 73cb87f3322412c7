package auth

import (
	"context"
	"log/slog"

	authservice "github.com/edenhub/eden-web/app/modules/auth/application"
	authhandlers "github.com/edenhub/eden-web/app/modules/auth/infrastructure/handlers"
	authrouter "github.com/edenhub/eden-web/app/modules/auth/infrastructure/router"
	"github.com/edenhub/eden-web/app/shared/edenapi"
	"github.com/edenhub/eden-web/app/shared/httpx"
	"github.com/edenhub/eden-web/config"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// Module represents the auth module.
type Module struct {
	service  authservice.Service
	handlers *authhandlers.AuthHandlers
	router   *authrouter.Router
	logger   *slog.Logger
}

// NewModule creates the auth module and registers its routes on httpRouter.
func NewModule(
	ctx context.Context,
	cfg *config.Config,
	api *edenapi.Client,
	renderer authhandlers.Renderer,
	middleware httpx.Chain,
	logger *slog.Logger,
	tracer trace.Tracer,
	httpRouter chi.Router,
) *Module {
	logger.InfoContext(ctx, "Initializing auth module")

	service := authservice.NewService(api, logger, tracer)

	// Use secure cookies unless in development
	handlers := authhandlers.NewAuthHandlers(service, renderer, logger, tracer, !cfg.IsDevelopment())

	router := authrouter.NewRouter(handlers, middleware)
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

// Handlers exposes the session middleware to the other modules.
func (m *Module) Handlers() authhandlers.Handlers {
	return m.handlers
}

// Configure registers the auth routes on httpRouter when NewModule was given none,
// so the session middleware can be installed first.
func (m *Module) Configure(httpRouter chi.Router) {
	m.router.Configure(httpRouter)
}
