package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameState(t *testing.T) {
	// When: a new game state is created
	state := NewGameState()

	// Then: the board is empty, X moves first and the game is in progress
	expected := GameState{
		Board:         Board{},
		CurrentPlayer: PlayerX,
		Status:        StatusInProgress,
	}

	require.Equal(t, expected, state)
	assert.True(t, state.IsInProgress())
	assert.False(t, state.IsFinished())
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, PlayerO, PlayerX.Opponent())
	assert.Equal(t, PlayerX, PlayerO.Opponent())
}

func TestBoard_WinningLine(t *testing.T) {
	t.Run("Returns the row held by X", func(t *testing.T) {
		// Given: a board where X holds the top row
		board := Board{
			PlayerX, PlayerX, PlayerX,
			PlayerO, PlayerO, EmptyCell,
			EmptyCell, EmptyCell, EmptyCell,
		}

		// When: looking for a winning line
		line, ok := board.WinningLine()

		// Then: the top row is returned
		require.True(t, ok)
		assert.Equal(t, Line{0, 1, 2}, line)
	})

	t.Run("Returns the first line in scan order when several match", func(t *testing.T) {
		// Given: a board where O holds both the left column and the main diagonal
		board := Board{
			PlayerO, PlayerX, PlayerX,
			PlayerO, PlayerO, PlayerX,
			PlayerO, PlayerX, PlayerO,
		}

		// When: looking for a winning line
		line, ok := board.WinningLine()

		// Then: the column comes first in the fixed order
		require.True(t, ok)
		assert.Equal(t, Line{0, 3, 6}, line)
	})

	t.Run("Returns false when no line is complete", func(t *testing.T) {
		// Given: a full board without three in a row
		board := Board{
			PlayerX, PlayerO, PlayerX,
			PlayerX, PlayerO, PlayerO,
			PlayerO, PlayerX, PlayerX,
		}

		// When: looking for a winning line
		_, ok := board.WinningLine()

		// Then: nothing is found
		assert.False(t, ok)
	})
}

func TestBoard_IsFull(t *testing.T) {
	assert.False(t, Board{}.IsFull())
	assert.False(t, Board{PlayerX, PlayerO, PlayerX, PlayerX, PlayerO, PlayerO, PlayerO, PlayerX, EmptyCell}.IsFull())
	assert.True(t, Board{PlayerX, PlayerO, PlayerX, PlayerX, PlayerO, PlayerO, PlayerO, PlayerX, PlayerX}.IsFull())
}

func TestGameState_InWinningLine(t *testing.T) {
	// Given: a game won along the anti-diagonal
	line := Line{2, 4, 6}
	state := GameState{Status: StatusWon, Winner: PlayerO, WinningLine: &line}

	// Then: exactly the three cells of the line are reported
	for cell := 0; cell < BoardSize; cell++ {
		expected := cell == 2 || cell == 4 || cell == 6
		assert.Equal(t, expected, state.InWinningLine(cell), "cell %d", cell)
	}

	assert.False(t, NewGameState().InWinningLine(4))
}

func TestGameState_Clone(t *testing.T) {
	// Given: a won game
	line := Line{0, 1, 2}
	state := GameState{Status: StatusWon, Winner: PlayerX, WinningLine: &line}

	// When: the state is cloned and the clone is changed
	clone := state.Clone()
	clone.WinningLine[0] = 8
	clone.Board[0] = PlayerO

	// Then: the original is untouched
	assert.Equal(t, Line{0, 1, 2}, *state.WinningLine)
	assert.Equal(t, EmptyCell, state.Board[0])
}

func TestScore_Record(t *testing.T) {
	// Given: an empty score
	var score Score

	// When: results are recorded
	score.RecordWin(PlayerX)
	score.RecordWin(PlayerX)
	score.RecordWin(PlayerO)
	score.RecordDraw()
	score.RecordWin(EmptyCell)

	// Then: only real results are counted
	assert.Equal(t, Score{XWins: 2, OWins: 1, Draws: 1}, score)
}

func TestTheme_Toggle(t *testing.T) {
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.True(t, ThemeDark.Valid())
	assert.False(t, Theme("sepia").Valid())
}

func TestNewSession(t *testing.T) {
	t.Run("Keeps a valid theme", func(t *testing.T) {
		session := NewSession("abc", ThemeLight)

		assert.Equal(t, "abc", session.ID)
		assert.Equal(t, ThemeLight, session.Theme)
		assert.Equal(t, NewGameState(), session.Game)
		assert.Equal(t, Score{}, session.Score)
	})

	t.Run("Falls back to dark for unknown themes", func(t *testing.T) {
		session := NewSession("abc", "")

		assert.Equal(t, ThemeDark, session.Theme)
	})
}
