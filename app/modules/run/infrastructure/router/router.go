package runrouter

import (
	"net/http"

	runhandlers "github.com/edenhub/eden-web/app/modules/run/infrastructure/handlers"
	"github.com/edenhub/eden-web/app/shared/httpx"
	"github.com/go-chi/chi/v5"
)

// Router mounts the admin run pages.
type Router struct {
	handlers     runhandlers.Handlers
	middleware   httpx.Chain
	requireAdmin func(http.Handler) http.Handler
}

// NewRouter creates a new run router. requireAdmin gates every route.
func NewRouter(handlers runhandlers.Handlers, middleware httpx.Chain, requireAdmin func(http.Handler) http.Handler) *Router {
	return &Router{
		handlers:     handlers,
		middleware:   middleware,
		requireAdmin: requireAdmin,
	}
}

// Configure registers the run list, forms and deletion.
func (r *Router) Configure(mux chi.Router) {
	mux.Group(func(gr chi.Router) {
		gr.Use(r.requireAdmin)

		gr.Get(runhandlers.ListPath, r.handlers.HandleList)
		gr.Get("/admin/runs/new", r.handlers.HandleNew)
		gr.Get("/admin/runs/{runID}/edit", r.handlers.HandleEdit)

		gr.Group(func(pr chi.Router) {
			pr.Use(r.middleware.Protected()...)
			pr.Post(runhandlers.ListPath, r.handlers.HandleCreate)
			pr.Post("/admin/runs/{runID}/edit", r.handlers.HandleUpdate)
			pr.Post("/admin/runs/{runID}/delete", r.handlers.HandleDelete)
		})
	})
}
