package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Options struct {
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// NewRouter - wires the HTTP routes.
func NewRouter(handlers *Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/ping", pingHandler)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/moves", handlers.SuggestMove)
		r.Post("/players", handlers.CreatePlayer)
		r.Post("/games", handlers.StartGame)

		r.Route("/players/{playerID}", func(r chi.Router) {
			r.Get("/game", handlers.GetGame)
			r.Delete("/game", handlers.LeaveGame)
			r.Post("/turns", handlers.MakeTurn)
		})
	})

	return r
}

// Start - serves until ctx is canceled, then shuts the server down gracefully.
func Start(ctx context.Context, logger *slog.Logger, opts Options, handler http.Handler) error {
	log := logger.With("component", "rest")

	srv := &http.Server{
		Addr:         ":" + opts.Port,
		Handler:      handler,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		IdleTimeout:  opts.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", opts.Port)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), opts.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down server: %w", err)
	}

	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped with error: %w", err)
	}

	log.Info("HTTP server stopped")

	return nil
}
