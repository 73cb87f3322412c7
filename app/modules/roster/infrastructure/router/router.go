package rosterrouter

import (
	"net/http"

	rosterhandlers "github.com/edenhub/eden-web/app/modules/roster/infrastructure/handlers"
	"github.com/edenhub/eden-web/app/shared/httpx"
	"github.com/go-chi/chi/v5"
)

// Router mounts the run detail and roster actions.
type Router struct {
	handlers     rosterhandlers.Handlers
	middleware   httpx.Chain
	requireAdmin func(http.Handler) http.Handler
}

// NewRouter creates a new roster router.
func NewRouter(handlers rosterhandlers.Handlers, middleware httpx.Chain, requireAdmin func(http.Handler) http.Handler) *Router {
	return &Router{
		handlers:     handlers,
		middleware:   middleware,
		requireAdmin: requireAdmin,
	}
}

// Configure registers the roster routes under /admin/runs/{runID}.
func (r *Router) Configure(mux chi.Router) {
	mux.Group(func(gr chi.Router) {
		gr.Use(r.requireAdmin)

		gr.Get("/admin/runs/{runID}", r.handlers.HandleDetail)
		gr.Get("/admin/runs/{runID}/roster/export.xlsx", r.handlers.HandleExport)

		gr.Group(func(pr chi.Router) {
			pr.Use(r.middleware.Protected()...)
			pr.Post("/admin/runs/{runID}/roster/drop", r.handlers.HandleDrop)
			pr.Post("/admin/runs/{runID}/roster/unassign", r.handlers.HandleUnassign)
			pr.Post("/admin/runs/{runID}/complete", r.handlers.HandleComplete)
			pr.Post("/admin/runs/{runID}/announce", r.handlers.HandleAnnounce)
		})
	})
}
