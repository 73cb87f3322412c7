package rosterhandlers

import (
	"context"
	"net/http"

	activitydomain "github.com/edenhub/eden-web/app/modules/activity/domain"
	"github.com/edenhub/eden-web/app/web"
)

// Renderer renders pages and fragments and issues csrf tokens for fragments.
type Renderer interface {
	Page(w http.ResponseWriter, r *http.Request, status int, name string, view web.View)
	Fragment(w http.ResponseWriter, r *http.Request, status int, name string, data any)
	CSRFToken(r *http.Request) string
}

// Feed reads a run's recent activity.
type Feed interface {
	Recent(ctx context.Context, runID string, limit int) ([]activitydomain.Event, error)
}

// Handlers are the run detail and roster routes.
type Handlers interface {
	HandleDetail(w http.ResponseWriter, r *http.Request)
	HandleDrop(w http.ResponseWriter, r *http.Request)
	HandleUnassign(w http.ResponseWriter, r *http.Request)
	HandleComplete(w http.ResponseWriter, r *http.Request)
	HandleAnnounce(w http.ResponseWriter, r *http.Request)
	HandleExport(w http.ResponseWriter, r *http.Request)
}
