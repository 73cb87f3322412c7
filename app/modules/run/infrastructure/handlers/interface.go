package runhandlers

import (
	"net/http"

	"github.com/edenhub/eden-web/app/web"
)

// Renderer renders full pages.
type Renderer interface {
	Page(w http.ResponseWriter, r *http.Request, status int, name string, view web.View)
}

// Handlers are the admin run management routes.
type Handlers interface {
	HandleList(w http.ResponseWriter, r *http.Request)
	HandleNew(w http.ResponseWriter, r *http.Request)
	HandleCreate(w http.ResponseWriter, r *http.Request)
	HandleEdit(w http.ResponseWriter, r *http.Request)
	HandleUpdate(w http.ResponseWriter, r *http.Request)
	HandleDelete(w http.ResponseWriter, r *http.Request)
}
