package authhandlers

import (
	"net/http"
	"strings"

	"github.com/edenhub/eden-web/app/shared/edenapi"
)

const (
	LoginPath     = "/login"
	DashboardPath = "/dashboard"
)

var protectedPrefixes = []string{"/dashboard", "/profile", "/admin"}

// Decide is the route guard. It only looks at whether a session cookie exists;
// the cookie is not validated here.
func Decide(path string, hasSession bool) (target string, redirect bool) {
	if !hasSession {
		for _, prefix := range protectedPrefixes {
			if strings.HasPrefix(path, prefix) {
				return LoginPath, true
			}
		}
	}
	if hasSession && path == LoginPath {
		return DashboardPath, true
	}
	return "", false
}

// HasSession reports whether the request carries the session cookie, whatever its value.
func HasSession(r *http.Request) bool {
	_, err := r.Cookie(edenapi.SessionCookie)
	return err == nil
}

// Guard applies Decide to every request.
func Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if target, ok := Decide(r.URL.Path, HasSession(r)); ok {
			http.Redirect(w, r, target, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
