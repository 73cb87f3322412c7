package character

import (
	"context"
	"log/slog"
	"net/http"

	characterservice "github.com/edenhub/eden-web/app/modules/character/application"
	characterhandlers "github.com/edenhub/eden-web/app/modules/character/infrastructure/handlers"
	characterrouter "github.com/edenhub/eden-web/app/modules/character/infrastructure/router"
	"github.com/edenhub/eden-web/app/shared/edenapi"
	"github.com/edenhub/eden-web/app/shared/httpx"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// Module represents the character module.
type Module struct {
	service  characterservice.Service
	handlers *characterhandlers.CharacterHandlers
	router   *characterrouter.Router
	logger   *slog.Logger
}

// NewModule creates the character module and registers the dashboard routes on httpRouter.
func NewModule(
	ctx context.Context,
	api *edenapi.Client,
	runs characterhandlers.RunsSource,
	renderer characterhandlers.Renderer,
	middleware httpx.Chain,
	requireUser func(http.Handler) http.Handler,
	logger *slog.Logger,
	tracer trace.Tracer,
	httpRouter chi.Router,
) *Module {
	logger.InfoContext(ctx, "Initializing character module")

	service := characterservice.NewService(api, logger, tracer)
	handlers := characterhandlers.NewCharacterHandlers(service, runs, renderer, logger, tracer)

	router := characterrouter.NewRouter(handlers, middleware, requireUser)
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
