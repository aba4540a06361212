// Package server exposes the views over HTTP. Each request renders exactly one view
// from the shared read-only table.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/KaramelBytes/beanview/internal/dataset"
	"github.com/KaramelBytes/beanview/internal/views"
)

// App holds the router and the state shared by every handler.
type App struct {
	router   *chi.Mux
	table    *dataset.Table
	renderer *views.Renderer
	controls views.ControlSet
	log      *zap.Logger
}

// New builds the HTTP shell over t. prefs seed the default control values.
func New(t *dataset.Table, renderer *views.Renderer, prefs views.Preferences, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	if renderer == nil {
		renderer = views.NewRenderer(views.DefaultOptions())
	}
	a := &App{
		router:   chi.NewRouter(),
		table:    t,
		renderer: renderer,
		controls: views.Controls(t, prefs),
		log:      log.Named("server"),
	}
	a.setupMiddleware()
	a.setupRoutes()
	return a
}

func (a *App) setupMiddleware() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.RealIP)
	a.router.Use(requestLogger(a.log))
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

func (a *App) setupRoutes() {
	a.router.Get("/healthz", a.handleHealth)
	a.router.Route("/api", func(r chi.Router) {
		r.Get("/controls", a.handleControls)
		r.Get("/table", a.handleTable)
		r.Get("/histogram", a.handleHistogram)
		r.Get("/scatter", a.handleScatter)
		r.Get("/countries", a.handleCountries)
	})
	a.router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "no route for " + r.URL.Path, Code: "NOT_FOUND"})
	})
	a.router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: r.Method + " not allowed", Code: "METHOD_NOT_ALLOWED"})
	})
}

// ServeHTTP implements http.Handler.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully,
// waiting at most timeout for in-flight requests.
func (a *App) ListenAndServe(ctx context.Context, addr string, timeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           a,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		a.log.Info("listening", zap.String("addr", addr), zap.String("table_id", a.table.ID))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listen %s: %w", addr, err)
	case <-ctx.Done():
	}

	a.log.Info("shutting down", zap.Duration("timeout", timeout))
	sctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
