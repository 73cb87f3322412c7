package signup

import (
	"context"
	"log/slog"
	"net/http"

	signupservice "github.com/edenhub/eden-web/app/modules/signup/application"
	signuphandlers "github.com/edenhub/eden-web/app/modules/signup/infrastructure/handlers"
	signuprouter "github.com/edenhub/eden-web/app/modules/signup/infrastructure/router"
	"github.com/edenhub/eden-web/app/shared/edenapi"
	"github.com/edenhub/eden-web/app/shared/httpx"
	"github.com/edenhub/eden-web/config"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// Module represents the signup module.
type Module struct {
	service  signupservice.Service
	handlers *signuphandlers.SignupHandlers
	router   *signuprouter.Router
	logger   *slog.Logger
}

// NewModule creates the signup module and registers its routes on httpRouter.
func NewModule(
	ctx context.Context,
	cfg *config.Config,
	api *edenapi.Client,
	middleware httpx.Chain,
	requireUser func(http.Handler) http.Handler,
	logger *slog.Logger,
	tracer trace.Tracer,
	httpRouter chi.Router,
) *Module {
	logger.InfoContext(ctx, "Initializing signup module")

	service := signupservice.NewService(api, cfg.Eden.ServerID, logger, tracer)
	handlers := signuphandlers.NewSignupHandlers(service, logger, tracer)

	router := signuprouter.NewRouter(handlers, middleware, requireUser)
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

// Service exposes the player's runs to the dashboard.
func (m *Module) Service() signupservice.Service {
	return m.service
}
