package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
)

type sessionRepo interface {
	Save(ctx context.Context, session *entity.Session) error
	GetByID(ctx context.Context, id string) (*entity.Session, error)
	DeleteByID(ctx context.Context, id string) error
}

// SessionManager drives one engine per session and persists it between calls.
type SessionManager struct {
	logger       *slog.Logger
	sessionRepo  sessionRepo
	defaultTheme entity.Theme
	newID        func() string

	// serializes load-apply-save so concurrent requests cannot interleave
	mu sync.Mutex
}

func NewSessionManager(logger *slog.Logger, sessionRepo sessionRepo, defaultTheme entity.Theme) *SessionManager {
	return &SessionManager{
		logger:       logger.With("component", "session_manager"),
		sessionRepo:  sessionRepo,
		defaultTheme: defaultTheme,
		newID:        uuid.NewString,
	}
}

func (that *SessionManager) CreateSession(ctx context.Context) (*entity.Session, error) {
	log := that.logger.With("method", "CreateSession")

	session := entity.NewSession(that.newID(), that.defaultTheme)
	session.Game = tictactoe.NewEngine().State()

	if err := that.sessionRepo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	log.Info("session created", "session_id", session.ID)

	return session, nil
}

func (that *SessionManager) GetSession(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return session, nil
}

// MakeMove plays the cell for whoever is to move. Rejected moves leave the stored session untouched.
func (that *SessionManager) MakeMove(ctx context.Context, id string, cell int) (*entity.Session, error) {
	log := that.logger.With("method", "MakeMove", "session_id", id)

	return that.update(ctx, id, func(session *entity.Session) error {
		engine := tictactoe.Restore(session.Game, session.Score)

		state, err := engine.ApplyMove(cell)
		if err != nil {
			log.Debug("move rejected", "cell", cell, "error", err)

			return fmt.Errorf("failed to apply move: %w", err)
		}

		session.Game = state
		session.Score = engine.Score()

		if state.IsFinished() {
			log.Info("game finished", "status", state.Status, "winner", state.Winner)
		}

		return nil
	})
}

// Restart begins a new game; the session score carries over.
func (that *SessionManager) Restart(ctx context.Context, id string) (*entity.Session, error) {
	return that.update(ctx, id, func(session *entity.Session) error {
		engine := tictactoe.Restore(session.Game, session.Score)
		session.Game = engine.Reset()

		return nil
	})
}

func (that *SessionManager) ToggleTheme(ctx context.Context, id string) (*entity.Session, error) {
	return that.update(ctx, id, func(session *entity.Session) error {
		session.Theme = session.Theme.Toggle()

		return nil
	})
}

func (that *SessionManager) GetScore(ctx context.Context, id string) (entity.Score, error) {
	session, err := that.GetSession(ctx, id)
	if err != nil {
		return entity.Score{}, err
	}

	return session.Score, nil
}

func (that *SessionManager) DeleteSession(ctx context.Context, id string) error {
	log := that.logger.With("method", "DeleteSession")

	if err := that.sessionRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	log.Info("session deleted", "session_id", id)

	return nil
}

func (that *SessionManager) update(ctx context.Context, id string, apply func(session *entity.Session) error) (*entity.Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	session, err := that.sessionRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if err = apply(session); err != nil {
		return nil, err
	}

	if err = that.sessionRepo.Save(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to save session: %w", err)
	}

	return session, nil
}
