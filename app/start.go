package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Start serves HTTP until ctx is cancelled, then drains in-flight requests and closes the app.
func (app *App) Start(ctx context.Context) error {
	srv := &http.Server{
		Addr:              app.Config.HTTP.Addr,
		Handler:           app.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		app.Logger.InfoContext(ctx, "Starting HTTP server", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			app.Close(context.WithoutCancel(ctx))
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	return app.WaitForShutdown(context.WithoutCancel(ctx), srv)
}

// WaitForShutdown stops the server within the configured timeout and closes the app.
func (app *App) WaitForShutdown(ctx context.Context, srv *http.Server) error {
	app.Logger.InfoContext(ctx, "Shutting down application...")

	shutdownCtx, cancel := context.WithTimeout(ctx, app.Config.HTTP.ShutdownTimeout)
	defer cancel()

	err := srv.Shutdown(shutdownCtx)
	if err != nil {
		app.Logger.ErrorContext(ctx, "HTTP server shutdown failed", slog.String("error", err.Error()))
	}
	app.Close(shutdownCtx)

	app.Logger.InfoContext(ctx, "Graceful shutdown complete")
	return err
}
