package authhandlers

import (
	"errors"
	"log/slog"
	"net/http"

	authservice "github.com/edenhub/eden-web/app/modules/auth/application"
	authdomain "github.com/edenhub/eden-web/app/modules/auth/domain"
	"github.com/edenhub/eden-web/app/shared/edenapi"
	"github.com/edenhub/eden-web/app/web"
)

// LoadUser forwards the session cookie to the API client and resolves the current user.
// Requests without a session skip the lookup.
func (h *AuthHandlers) LoadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(edenapi.SessionCookie)
		if err != nil || c.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := edenapi.WithSession(r.Context(), c.Value)
		state := authdomain.State{}

		user, err := h.service.CurrentUser(ctx)
		switch {
		case err == nil:
			state.User = user
			ctx = web.WithViewer(ctx, &web.Viewer{
				ID:        user.ID,
				Name:      user.Username,
				AvatarURL: user.AvatarURL,
				IsAdmin:   user.IsAdmin,
			})
		case errors.Is(err, authservice.ErrNotSignedIn):
		default:
			state.Err = err.Error()
			ctx = web.WithBanner(ctx, "Could not reach Eden: "+state.Err)
		}

		ctx = authdomain.WithState(ctx, state)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireUser lets signed-in users through. A rejected session restarts the OAuth flow;
// an unreachable API renders the error page instead of looping through redirects.
func (h *AuthHandlers) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		state := authdomain.StateFrom(r.Context())
		if state.User != nil {
			next.ServeHTTP(w, r)
			return
		}
		if state.Err != "" {
			h.renderError(w, r, http.StatusServiceUnavailable, "Eden is unavailable", state.Err)
			return
		}
		http.Redirect(w, r, "/auth/login", http.StatusSeeOther)
	})
}

// RequireAdmin answers 403 to signed-in users without the admin flag.
func (h *AuthHandlers) RequireAdmin(next http.Handler) http.Handler {
	return h.RequireUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user := authdomain.UserFrom(r.Context()); user == nil || !user.IsAdmin {
			h.logger.WarnContext(r.Context(), "Non-admin user denied",
				slog.String("path", r.URL.Path),
			)
			h.renderError(w, r, http.StatusForbidden, "Admins only", "Your account cannot manage runs.")
			return
		}
		next.ServeHTTP(w, r)
	}))
}
