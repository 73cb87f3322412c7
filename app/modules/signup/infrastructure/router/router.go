package signuprouter

import (
	"net/http"

	signuphandlers "github.com/edenhub/eden-web/app/modules/signup/infrastructure/handlers"
	"github.com/edenhub/eden-web/app/shared/httpx"
	"github.com/go-chi/chi/v5"
)

// Router mounts the signup actions.
type Router struct {
	handlers    signuphandlers.Handlers
	middleware  httpx.Chain
	requireUser func(http.Handler) http.Handler
}

// NewRouter creates a new signup router. requireUser gates every route.
func NewRouter(handlers signuphandlers.Handlers, middleware httpx.Chain, requireUser func(http.Handler) http.Handler) *Router {
	return &Router{
		handlers:    handlers,
		middleware:  middleware,
		requireUser: requireUser,
	}
}

// Configure registers the signup routes under /dashboard/runs.
func (r *Router) Configure(mux chi.Router) {
	mux.Route("/dashboard/runs/{runID}/signup", func(sr chi.Router) {
		sr.Use(r.requireUser)
		sr.Use(r.middleware.Protected()...)
		sr.Post("/", r.handlers.HandleSignUp)
		sr.Post("/cancel", r.handlers.HandleCancel)
	})
}
