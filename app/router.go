package app

import (
	"log/slog"
	"net/http"
	"net/url"

	authhandlers "github.com/edenhub/eden-web/app/modules/auth/infrastructure/handlers"
	"github.com/edenhub/eden-web/app/shared/flash"
	"github.com/edenhub/eden-web/app/shared/httpx"
	"github.com/edenhub/eden-web/app/web"
	"github.com/edenhub/eden-web/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// newRouter builds the root router with the global middleware and the routes that
// need no session: static assets, health and metrics.
func newRouter(cfg *config.Config, logger *slog.Logger, metrics *httpx.Metrics, reg *prometheus.Registry) chi.Router {
	r := chi.NewRouter()

	r.Use(httpx.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(httpx.Logger(logger))
	if metrics != nil {
		r.Use(metrics.Middleware)
	}
	if len(cfg.HTTP.AllowedOrigins) > 0 {
		r.Use(httpx.CORS(cfg.HTTP.AllowedOrigins))
	}
	r.Use(authhandlers.Guard)

	r.Handle("/static/*", web.Static())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})
	if reg != nil {
		r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	}

	return r
}

// csrfFailure answers rejected posts: script fetches get a 403 with a toast header,
// form posts are sent back where they came from with a flash.
func csrfFailure(logger *slog.Logger) func(http.ResponseWriter, *http.Request, error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		logger.WarnContext(r.Context(), "CSRF check failed",
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
		)

		n := flash.Error("Your session expired. Reload the page and try again.")
		if httpx.IsFetch(r) {
			flash.SetHeader(w, n)
			w.WriteHeader(http.StatusForbidden)
			return
		}

		flash.Write(w, r, n)
		http.Redirect(w, r, sameOriginReferer(r), http.StatusSeeOther)
	}
}

func sameOriginReferer(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || (ref.Host != "" && ref.Host != r.Host) {
		return "/"
	}
	if ref.RawQuery != "" {
		return ref.Path + "?" + ref.RawQuery
	}
	return ref.Path
}
