package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/edenhub/eden-web/app/eventbus"
	"github.com/edenhub/eden-web/app/modules/activity"
	"github.com/edenhub/eden-web/app/modules/auth"
	"github.com/edenhub/eden-web/app/modules/character"
	"github.com/edenhub/eden-web/app/modules/roster"
	"github.com/edenhub/eden-web/app/modules/run"
	"github.com/edenhub/eden-web/app/modules/signup"
	"github.com/edenhub/eden-web/app/modules/stats"
	"github.com/edenhub/eden-web/app/shared/csrf"
	"github.com/edenhub/eden-web/app/shared/edenapi"
	"github.com/edenhub/eden-web/app/shared/httpx"
	"github.com/edenhub/eden-web/app/web"
	"github.com/edenhub/eden-web/config"
	"github.com/go-chi/chi/v5"
	nc "github.com/nats-io/nats.go"
	"github.com/uptrace/bun"
	"golang.org/x/time/rate"
)

// App holds the wired modules and the resources they share.
type App struct {
	Config        *config.Config
	Observability *Observability
	Logger        *slog.Logger
	API           *edenapi.Client
	EventBus      eventbus.EventBus
	DB            *bun.DB
	Router        chi.Router

	AuthModule      *auth.Module
	SignupModule    *signup.Module
	CharacterModule *character.Module
	RunModule       *run.Module
	ActivityModule  *activity.Module
	RosterModule    *roster.Module
	StatsModule     *stats.Module
}

// Initialize sets up observability, the shared clients and every module.
// A failed Initialize releases whatever it had already opened.
func (app *App) Initialize(ctx context.Context) (err error) {
	cfg := app.Config
	if cfg == nil {
		return fmt.Errorf("config is required")
	}

	obs, err := NewObservability(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to set up observability: %w", err)
	}
	app.Observability = obs
	app.Logger = obs.Logger
	defer func() {
		if err != nil {
			app.Close(ctx)
		}
	}()
	logger, tracer := obs.Logger, obs.Tracer

	var apiMetrics *edenapi.Metrics
	var httpMetrics *httpx.Metrics
	if obs.Registry != nil {
		apiMetrics = edenapi.NewMetrics(obs.Registry)
		httpMetrics = httpx.NewMetrics(obs.Registry)
	}
	app.API = edenapi.NewClient(edenapi.Config{
		BaseURL: cfg.Eden.APIURL,
		Timeout: cfg.Eden.Timeout,
	}, logger, tracer, apiMetrics)

	secret := cfg.Security.CSRFSecret
	if secret == "" {
		logger.WarnContext(ctx, "CSRF_SECRET not set, using a per-process secret")
		secret = randomSecret()
	}
	csrfProvider := csrf.NewProvider(secret, cfg.Security.CSRFTTL)

	renderer, err := web.NewRenderer(csrfProvider, edenapi.SessionCookie, logger)
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}

	var natsOpts []nc.Option
	if cfg.NATS.NKeySeed != "" {
		opt, err := eventbus.NKeyOption(cfg.NATS.NKeySeed)
		if err != nil {
			return err
		}
		natsOpts = append(natsOpts, opt)
	}

	bus, err := eventbus.NewEventBus(cfg.NATS.URL, logger, natsOpts...)
	if err != nil {
		return fmt.Errorf("failed to create event bus: %w", err)
	}
	app.EventBus = bus
	logger.InfoContext(ctx, "Event bus ready", slog.String("backend", bus.Backend()))

	if cfg.Postgres.DSN != "" {
		db, err := OpenDB(ctx, cfg.Postgres.DSN)
		if err != nil {
			return err
		}
		app.DB = db
	}

	chain := httpx.Chain{
		RateLimit: httpx.RateLimit(httpx.NewIPRateLimiter(rate.Limit(cfg.HTTP.RateLimit), cfg.HTTP.RateBurst)),
		CSRF:      csrf.Middleware(csrfProvider, edenapi.SessionCookie, csrfFailure(logger)),
	}

	root := newRouter(cfg, logger, httpMetrics, obs.Registry)
	app.Router = root

	app.AuthModule = auth.NewModule(ctx, cfg, app.API, renderer, chain, logger, tracer, nil)
	authHandlers := app.AuthModule.Handlers()

	mux := root.With(authHandlers.LoadUser)
	app.AuthModule.Configure(mux)

	app.SignupModule = signup.NewModule(ctx, cfg, app.API, chain, authHandlers.RequireUser, logger, tracer, mux)
	app.CharacterModule = character.NewModule(ctx, app.API, app.SignupModule.Service(), renderer, chain, authHandlers.RequireUser, logger, tracer, mux)
	app.RunModule = run.NewModule(ctx, cfg, app.API, renderer, chain, authHandlers.RequireAdmin, logger, tracer, mux)
	app.ActivityModule = activity.NewModule(ctx, bus, app.DB, logger, tracer)
	app.RosterModule = roster.NewModule(ctx, cfg, app.API,
		app.RunModule.Service(),
		app.ActivityModule.Service(),
		app.ActivityModule.Service(),
		renderer, chain, authHandlers.RequireAdmin, logger, tracer, mux)
	app.StatsModule = stats.NewModule(ctx, cfg, app.API, authHandlers.RequireAdmin, logger, tracer, mux)

	logger.InfoContext(ctx, "Application initialized",
		slog.String("api_url", app.API.BaseURL()),
		slog.String("server_id", cfg.Eden.ServerID),
		slog.Bool("postgres", app.DB != nil),
	)
	return nil
}

// Close stops the background workers and releases the shared resources.
func (app *App) Close(ctx context.Context) {
	if app.RosterModule != nil {
		app.RosterModule.Close()
	}
	if app.ActivityModule != nil {
		app.ActivityModule.Close()
	}
	if app.EventBus != nil {
		if err := app.EventBus.Close(); err != nil {
			app.Logger.ErrorContext(ctx, "Failed to close event bus", slog.String("error", err.Error()))
		}
	}
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.ErrorContext(ctx, "Failed to close database", slog.String("error", err.Error()))
		}
	}
	if app.Observability != nil {
		if err := app.Observability.Shutdown(ctx); err != nil {
			app.Logger.ErrorContext(ctx, "Failed to flush traces", slog.String("error", err.Error()))
		}
	}
}

func randomSecret() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
