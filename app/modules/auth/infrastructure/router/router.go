package authrouter

import (
	authhandlers "github.com/edenhub/eden-web/app/modules/auth/infrastructure/handlers"
	"github.com/edenhub/eden-web/app/shared/httpx"
	"github.com/go-chi/chi/v5"
)

// Router mounts the auth pages.
type Router struct {
	handlers   authhandlers.Handlers
	middleware httpx.Chain
}

// NewRouter creates a new auth router.
func NewRouter(handlers authhandlers.Handlers, middleware httpx.Chain) *Router {
	return &Router{handlers: handlers, middleware: middleware}
}

// Configure registers the public and signed-in auth routes.
func (r *Router) Configure(mux chi.Router) {
	mux.Get("/", r.handlers.HandleHome)
	mux.Get(authhandlers.LoginPath, r.handlers.HandleLoginPage)
	mux.Get("/auth/error", r.handlers.HandleAuthError)

	mux.With(r.middleware.Limited()...).Get("/auth/login", r.handlers.HandleLogin)
	mux.With(r.middleware.Protected()...).Post("/auth/logout", r.handlers.HandleLogout)

	mux.With(r.handlers.RequireUser).Get("/profile", r.handlers.HandleProfile)
}
