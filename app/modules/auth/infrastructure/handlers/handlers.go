package authhandlers

import (
	"log/slog"
	"net/http"

	authservice "github.com/edenhub/eden-web/app/modules/auth/application"
	authdomain "github.com/edenhub/eden-web/app/modules/auth/domain"
	"github.com/edenhub/eden-web/app/shared/edenapi"
	"github.com/edenhub/eden-web/app/shared/flash"
	"github.com/edenhub/eden-web/app/web"
	"go.opentelemetry.io/otel/trace"
)

// AuthHandlers implements the Handlers interface.
type AuthHandlers struct {
	service       authservice.Service
	renderer      Renderer
	logger        *slog.Logger
	tracer        trace.Tracer
	secureCookies bool
}

// NewAuthHandlers creates a new AuthHandlers.
func NewAuthHandlers(
	service authservice.Service,
	renderer Renderer,
	logger *slog.Logger,
	tracer trace.Tracer,
	secureCookies bool,
) *AuthHandlers {
	return &AuthHandlers{
		service:       service,
		renderer:      renderer,
		logger:        logger,
		tracer:        tracer,
		secureCookies: secureCookies,
	}
}

// ErrorPage is the data of the generic error page.
type ErrorPage struct {
	Title       string
	Description string
	Detail      string
}

func (h *AuthHandlers) renderError(w http.ResponseWriter, r *http.Request, status int, title, description string) {
	h.renderer.Page(w, r, status, "error", web.View{
		Title: title,
		Data:  ErrorPage{Title: title, Description: description},
	})
}

// HandleHome renders the landing page.
func (h *AuthHandlers) HandleHome(w http.ResponseWriter, r *http.Request) {
	h.renderer.Page(w, r, http.StatusOK, "home", web.View{Title: "Eden"})
}

// HandleLoginPage renders the sign-in page.
func (h *AuthHandlers) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	h.renderer.Page(w, r, http.StatusOK, "login", web.View{Title: "Sign in"})
}

// HandleLogin sends the browser to the API's OAuth start.
func (h *AuthHandlers) HandleLogin(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, h.service.LoginURL(), http.StatusFound)
}

// HandleLogout ends the session. On failure the user stays signed in and sees the error.
func (h *AuthHandlers) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "AuthHandlers.HandleLogout")
	defer span.End()

	if err := h.service.Logout(ctx); err != nil {
		flash.Write(w, r, flash.Error(err.Error()))
		back := DashboardPath
		if user := authdomain.UserFrom(ctx); user == nil {
			back = "/"
		}
		http.Redirect(w, r, back, http.StatusSeeOther)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     edenapi.SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	flash.Write(w, r, flash.Info("Signed out."))
	http.Redirect(w, r, LoginPath, http.StatusSeeOther)
}

// authErrors maps OAuth error codes to page copy.
var authErrors = map[string]ErrorPage{
	"access_denied":   {Title: "Access Denied", Description: "You cancelled the Discord login. Please try again."},
	"invalid_request": {Title: "Invalid Request", Description: "The login request was invalid. Please try again."},
	"server_error":    {Title: "Server Error", Description: "An error occurred on Discord's server. Please try again later."},
}

// HandleAuthError renders the OAuth failure page for the error query parameter.
func (h *AuthHandlers) HandleAuthError(w http.ResponseWriter, r *http.Request) {
	page, ok := authErrors[r.URL.Query().Get("error")]
	if !ok {
		page = ErrorPage{Title: "Login Error", Description: "An error occurred during login. Please try again."}
	}
	page.Detail = r.URL.Query().Get("error_description")

	h.renderer.Page(w, r, http.StatusOK, "auth_error", web.View{Title: page.Title, Data: page})
}

// HandleProfile renders the profile page.
func (h *AuthHandlers) HandleProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "AuthHandlers.HandleProfile")
	defer span.End()

	view := web.View{Title: "Profile", Nav: "profile"}
	profile, err := h.service.Profile(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "Failed to load profile", slog.String("error", err.Error()))
		n := flash.Error("Failed to load profile")
		view.Notice = &n
		profile = &authservice.Profile{}
	}
	view.Data = profile

	h.renderer.Page(w, r, http.StatusOK, "profile", view)
}
