package authhandlers

import (
	"net/http"

	"github.com/edenhub/eden-web/app/web"
)

// Renderer renders full pages.
type Renderer interface {
	Page(w http.ResponseWriter, r *http.Request, status int, name string, view web.View)
}

// Handlers are the auth routes and middleware.
type Handlers interface {
	HandleHome(w http.ResponseWriter, r *http.Request)
	HandleLoginPage(w http.ResponseWriter, r *http.Request)
	HandleLogin(w http.ResponseWriter, r *http.Request)
	HandleLogout(w http.ResponseWriter, r *http.Request)
	HandleAuthError(w http.ResponseWriter, r *http.Request)
	HandleProfile(w http.ResponseWriter, r *http.Request)

	LoadUser(next http.Handler) http.Handler
	RequireUser(next http.Handler) http.Handler
	RequireAdmin(next http.Handler) http.Handler
}
