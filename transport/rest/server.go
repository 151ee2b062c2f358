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
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

const shutdownTimeout = 5 * time.Second

type uSession interface {
	CreateSession(ctx context.Context) (*entity.Session, error)
	GetSession(ctx context.Context, id string) (*entity.Session, error)
	DeleteSession(ctx context.Context, id string) error

	MakeMove(ctx context.Context, id string, cell int) (*entity.Session, error)
	Restart(ctx context.Context, id string) (*entity.Session, error)
	ToggleTheme(ctx context.Context, id string) (*entity.Session, error)
	GetScore(ctx context.Context, id string) (entity.Score, error)
}

type Server struct {
	logger   *slog.Logger
	uSession uSession
}

func New(logger *slog.Logger, uSession uSession) *Server {
	return &Server{
		logger:   logger.With("component", "rest"),
		uSession: uSession,
	}
}

// Handler - returns the router with all API routes mounted.
func (that *Server) Handler() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)

	router.Get("/ping", pingHandler)

	router.Route("/api/sessions", func(r chi.Router) {
		r.Post("/", that.createSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", that.getSession)
			r.Delete("/", that.deleteSession)
			r.Post("/moves", that.makeMove)
			r.Post("/restart", that.restart)
			r.Post("/theme", that.toggleTheme)
			r.Get("/score", that.getScore)
		})
	})

	return router
}

// Start - serves the API until ctx is cancelled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      that.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down server: %w", err)
		}

		return nil
	}
}
