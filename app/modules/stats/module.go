package stats

import (
	"context"
	"log/slog"
	"net/http"

	statsservice "github.com/edenhub/eden-web/app/modules/stats/application"
	statshandlers "github.com/edenhub/eden-web/app/modules/stats/infrastructure/handlers"
	statsrouter "github.com/edenhub/eden-web/app/modules/stats/infrastructure/router"
	"github.com/edenhub/eden-web/app/shared/edenapi"
	"github.com/edenhub/eden-web/config"
	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/trace"
)

// Module represents the stats module.
type Module struct {
	service  statsservice.Service
	handlers *statshandlers.StatsHandlers
	router   *statsrouter.Router
}

// NewModule creates the stats module and registers the chart route.
func NewModule(
	ctx context.Context,
	cfg *config.Config,
	api *edenapi.Client,
	requireAdmin func(http.Handler) http.Handler,
	logger *slog.Logger,
	tracer trace.Tracer,
	httpRouter chi.Router,
) *Module {
	logger.InfoContext(ctx, "Initializing stats module")

	service := statsservice.NewService(api, cfg.Eden.ServerID, logger, tracer)
	handlers := statshandlers.NewStatsHandlers(service, logger, tracer)
	router := statsrouter.NewRouter(handlers, requireAdmin)
	if httpRouter != nil {
		router.Configure(httpRouter)
	}

	return &Module{service: service, handlers: handlers, router: router}
}
