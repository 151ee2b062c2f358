package repository

import (
	"context"
	"testing"
	"time"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wonSession(id string) *entity.Session {
	line := entity.Line{0, 1, 2}

	return &entity.Session{
		ID: id,
		Game: entity.GameState{
			Board: entity.Board{
				entity.PlayerX, entity.PlayerX, entity.PlayerX,
				entity.PlayerO, entity.PlayerO, entity.EmptyCell,
				entity.EmptyCell, entity.EmptyCell, entity.EmptyCell,
			},
			CurrentPlayer: entity.PlayerX,
			Status:        entity.StatusWon,
			Winner:        entity.PlayerX,
			WinningLine:   &line,
		},
		Score: entity.Score{XWins: 1, Draws: 2},
		Theme: entity.ThemeLight,
	}
}

// runSessionRepositoryContract checks the behaviour every SessionRepository shares.
func runSessionRepositoryContract(t *testing.T, newRepo func(t *testing.T) (context.Context, SessionRepository)) {
	t.Run("Save_And_GetByID", func(t *testing.T) {
		ctx, repo := newRepo(t)

		// Given: a saved session
		session := wonSession("123")
		require.NoError(t, repo.Save(ctx, session))

		// When: GetByID is called with its id
		retrieved, err := repo.GetByID(ctx, session.ID)

		// Then: the stored session is returned unchanged
		require.NoError(t, err)
		require.Equal(t, session, retrieved)
	})

	t.Run("Save_Overwrites", func(t *testing.T) {
		ctx, repo := newRepo(t)

		// Given: a saved session
		session := entity.NewSession("123", entity.ThemeDark)
		require.NoError(t, repo.Save(ctx, session))

		// When: it is saved again after a change
		session.Score.Draws = 5
		require.NoError(t, repo.Save(ctx, session))

		// Then: the latest version is returned
		retrieved, err := repo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, 5, retrieved.Score.Draws)
	})

	t.Run("GetByID_NotFound", func(t *testing.T) {
		ctx, repo := newRepo(t)

		// When: GetByID is called with an unknown id
		retrieved, err := repo.GetByID(ctx, "9999999")

		// Then: ErrSessionNotFound is returned
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
		assert.Nil(t, retrieved)
	})

	t.Run("DeleteByID_Success", func(t *testing.T) {
		ctx, repo := newRepo(t)

		// Given: a saved session
		require.NoError(t, repo.Save(ctx, entity.NewSession("123", entity.ThemeDark)))

		// When: DeleteByID is called
		err := repo.DeleteByID(ctx, "123")

		// Then: the session is gone
		require.NoError(t, err)

		_, err = repo.GetByID(ctx, "123")
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})

	t.Run("DeleteByID_NotFound", func(t *testing.T) {
		ctx, repo := newRepo(t)

		// When: DeleteByID is called with an unknown id
		err := repo.DeleteByID(ctx, "9999999")

		// Then: ErrSessionNotFound is returned
		require.ErrorIs(t, err, apperror.ErrSessionNotFound)
	})
}

func TestMemorySessionRepository(t *testing.T) {
	runSessionRepositoryContract(t, func(_ *testing.T) (context.Context, SessionRepository) {
		return context.Background(), NewMemorySessionRepository()
	})

	t.Run("Returns copies", func(t *testing.T) {
		ctx := context.Background()
		repo := NewMemorySessionRepository()

		// Given: a saved session
		session := wonSession("123")
		require.NoError(t, repo.Save(ctx, session))

		// When: the caller changes both the original and a retrieved copy
		session.Game.Board[8] = entity.PlayerO
		retrieved, err := repo.GetByID(ctx, "123")
		require.NoError(t, err)
		retrieved.Game.WinningLine[0] = 8

		// Then: the stored session is untouched
		again, err := repo.GetByID(ctx, "123")
		require.NoError(t, err)
		assert.Equal(t, entity.EmptyCell, again.Game.Board[8])
		assert.Equal(t, entity.Line{0, 1, 2}, *again.Game.WinningLine)
	})
}

func TestRedisSessionRepository(t *testing.T) {
	runSessionRepositoryContract(t, func(t *testing.T) (context.Context, SessionRepository) {
		ctx, st := suite.New(t)

		return ctx, NewSessionRepository(st.Storage, 0)
	})

	t.Run("Applies TTL", func(t *testing.T) {
		ctx, st := suite.New(t)

		repo := NewSessionRepository(st.Storage, time.Minute)

		// Given: a session saved with a ttl
		require.NoError(t, repo.Save(ctx, entity.NewSession("123", entity.ThemeDark)))

		// When: the key's ttl is read
		ttl, err := st.Storage.TTL(ctx, sessionKeyPrefix+"123").Result()

		// Then: it expires within the configured window
		require.NoError(t, err)
		assert.Positive(t, ttl)
		assert.LessOrEqual(t, ttl, time.Minute)
	})
}
