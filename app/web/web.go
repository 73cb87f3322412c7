// Package web renders the HTML pages and fragments and serves the static assets.
package web

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"github.com/edenhub/eden-web/app/shared/csrf"
	"github.com/edenhub/eden-web/app/shared/flash"
)

//go:embed templates
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// Viewer is the signed-in user as the layout shows it.
type Viewer struct {
	ID        string
	Name      string
	AvatarURL string
	IsAdmin   bool
}

type viewerKey struct{}

// WithViewer stores the viewer shown in the layout header.
func WithViewer(ctx context.Context, v *Viewer) context.Context {
	return context.WithValue(ctx, viewerKey{}, v)
}

// ViewerFrom returns the viewer stored by WithViewer.
func ViewerFrom(ctx context.Context) *Viewer {
	v, _ := ctx.Value(viewerKey{}).(*Viewer)
	return v
}

type bannerKey struct{}

// WithBanner stores an error banner shown above every page.
func WithBanner(ctx context.Context, msg string) context.Context {
	return context.WithValue(ctx, bannerKey{}, msg)
}

// View is the data handed to every page template.
type View struct {
	Title  string
	Nav    string
	Data   any
	Notice *flash.Notice

	// Filled by the renderer.
	Viewer    *Viewer
	Banner    string
	CSRFToken string
	CSRFField string
}

// Renderer executes the embedded templates.
type Renderer struct {
	pages         map[string]*template.Template
	fragments     *template.Template
	csrf          csrf.Provider
	sessionCookie string
	logger        *slog.Logger
}

// NewRenderer parses every page against the shared layout and partials.
func NewRenderer(csrfProvider csrf.Provider, sessionCookie string, logger *slog.Logger) (*Renderer, error) {
	if logger == nil {
		logger = slog.Default()
	}

	base, err := template.New("base").Funcs(funcs()).ParseFS(templatesFS, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}

	names, err := fs.Glob(templatesFS, "templates/pages/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}

	pages := make(map[string]*template.Template, len(names))
	for _, name := range names {
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("failed to clone layout: %w", err)
		}
		page, err := clone.ParseFS(templatesFS, name)
		if err != nil {
			return nil, fmt.Errorf("failed to parse page %s: %w", name, err)
		}
		pages[strings.TrimSuffix(path.Base(name), ".html")] = page
	}

	return &Renderer{
		pages:         pages,
		fragments:     base,
		csrf:          csrfProvider,
		sessionCookie: sessionCookie,
		logger:        logger,
	}, nil
}

// CSRFToken issues a token bound to the request's session cookie.
func (r *Renderer) CSRFToken(req *http.Request) string {
	if r.csrf == nil {
		return ""
	}
	session := ""
	if c, err := req.Cookie(r.sessionCookie); err == nil {
		session = c.Value
	}
	token, err := r.csrf.Issue(session)
	if err != nil {
		r.logger.WarnContext(req.Context(), "Failed to issue csrf token", slog.String("error", err.Error()))
		return ""
	}
	return token
}

// Page renders a full page. A pending flash notice is consumed when the view carries none.
func (r *Renderer) Page(w http.ResponseWriter, req *http.Request, status int, name string, view View) {
	tmpl, ok := r.pages[name]
	if !ok {
		r.logger.ErrorContext(req.Context(), "Unknown page template", slog.String("page", name))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	if view.Notice == nil {
		if n, ok := flash.ReadAndClear(w, req); ok {
			view.Notice = &n
		}
	}
	view.Viewer = ViewerFrom(req.Context())
	view.Banner, _ = req.Context().Value(bannerKey{}).(string)
	view.CSRFToken = r.CSRFToken(req)
	view.CSRFField = csrf.FormField

	r.execute(w, req, status, tmpl, "layout", view)
}

// Fragment renders a named partial, used for script fetch responses.
func (r *Renderer) Fragment(w http.ResponseWriter, req *http.Request, status int, name string, data any) {
	r.execute(w, req, status, r.fragments, name, data)
}

func (r *Renderer) execute(w http.ResponseWriter, req *http.Request, status int, tmpl *template.Template, name string, data any) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		r.logger.ErrorContext(req.Context(), "Failed to render template",
			slog.String("template", name),
			slog.String("error", err.Error()),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// Static serves the embedded assets under /static/.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
}
