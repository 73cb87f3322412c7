package characterhandlers

import (
	"context"
	"net/http"

	signupdomain "github.com/edenhub/eden-web/app/modules/signup/domain"
	"github.com/edenhub/eden-web/app/web"
)

// Renderer renders pages and fragments.
type Renderer interface {
	Page(w http.ResponseWriter, r *http.Request, status int, name string, view web.View)
	Fragment(w http.ResponseWriter, r *http.Request, status int, name string, data any)
}

// RunsSource feeds the dashboard's runs tab.
type RunsSource interface {
	MyRuns(ctx context.Context, userID string) (*signupdomain.MyRuns, error)
}

// Handlers are the player dashboard routes.
type Handlers interface {
	HandleDashboard(w http.ResponseWriter, r *http.Request)
	HandleNew(w http.ResponseWriter, r *http.Request)
	HandleCreate(w http.ResponseWriter, r *http.Request)
	HandleEdit(w http.ResponseWriter, r *http.Request)
	HandleUpdate(w http.ResponseWriter, r *http.Request)
	HandleDelete(w http.ResponseWriter, r *http.Request)
	HandleToggleLock(w http.ResponseWriter, r *http.Request)
}
