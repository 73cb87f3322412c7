package characterrouter

import (
	"net/http"

	characterhandlers "github.com/edenhub/eden-web/app/modules/character/infrastructure/handlers"
	"github.com/edenhub/eden-web/app/shared/httpx"
	"github.com/go-chi/chi/v5"
)

// Router mounts the player dashboard.
type Router struct {
	handlers    characterhandlers.Handlers
	middleware  httpx.Chain
	requireUser func(http.Handler) http.Handler
}

// NewRouter creates a new character router. requireUser gates every route.
func NewRouter(handlers characterhandlers.Handlers, middleware httpx.Chain, requireUser func(http.Handler) http.Handler) *Router {
	return &Router{
		handlers:    handlers,
		middleware:  middleware,
		requireUser: requireUser,
	}
}

// Configure registers the dashboard and character routes.
func (r *Router) Configure(mux chi.Router) {
	mux.Group(func(gr chi.Router) {
		gr.Use(r.requireUser)

		gr.Get(characterhandlers.DashboardPath, r.handlers.HandleDashboard)
		gr.Get("/dashboard/characters/new", r.handlers.HandleNew)
		gr.Get("/dashboard/characters/{characterID}/edit", r.handlers.HandleEdit)

		gr.Group(func(pr chi.Router) {
			pr.Use(r.middleware.Protected()...)
			pr.Post("/dashboard/characters", r.handlers.HandleCreate)
			pr.Post("/dashboard/characters/{characterID}", r.handlers.HandleUpdate)
			pr.Post("/dashboard/characters/{characterID}/delete", r.handlers.HandleDelete)
			pr.Post("/dashboard/characters/{characterID}/lock", r.handlers.HandleToggleLock)
		})
	})
}
