package statsrouter

import (
	"net/http"

	statshandlers "github.com/edenhub/eden-web/app/modules/stats/infrastructure/handlers"
	"github.com/go-chi/chi/v5"
)

// Router mounts the stats chart.
type Router struct {
	handlers     statshandlers.Handlers
	requireAdmin func(http.Handler) http.Handler
}

// NewRouter creates a new stats router.
func NewRouter(handlers statshandlers.Handlers, requireAdmin func(http.Handler) http.Handler) *Router {
	return &Router{handlers: handlers, requireAdmin: requireAdmin}
}

// Configure registers the chart route.
func (r *Router) Configure(mux chi.Router) {
	mux.With(r.requireAdmin).Get(statshandlers.ChartPath, r.handlers.HandleChart)
}
