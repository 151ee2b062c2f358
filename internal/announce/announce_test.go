package announce

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	line := entity.Line{0, 4, 8}

	tests := []struct {
		name     string
		state    entity.GameState
		live     string
		headline string
	}{
		{
			name:     "in progress",
			state:    entity.GameState{Status: entity.StatusInProgress, CurrentPlayer: entity.PlayerO},
			live:     "Current player: O",
			headline: "Game in progress",
		},
		{
			name:     "won",
			state:    entity.GameState{Status: entity.StatusWon, Winner: entity.PlayerX, WinningLine: &line},
			live:     "Player X wins the game",
			headline: "Player X wins!",
		},
		{
			name:     "draw",
			state:    entity.GameState{Status: entity.StatusDraw},
			live:     "The game ended in a draw",
			headline: "It's a draw!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.live, Status(tt.state))
			assert.Equal(t, tt.headline, StatusLine(tt.state))
		})
	}
}

func TestCell(t *testing.T) {
	assert.Equal(t, "Cell 1, empty", Cell(0, entity.EmptyCell))
	assert.Equal(t, "Cell 9, O", Cell(8, entity.PlayerO))
}

func TestThemeToggle(t *testing.T) {
	assert.Equal(t, "Switch to light theme", ThemeToggle(entity.ThemeDark))
	assert.Equal(t, "Switch to dark theme", ThemeToggle(entity.ThemeLight))
	assert.Equal(t, "Light theme enabled", ThemeChanged(entity.ThemeLight))
	assert.Equal(t, "Dark theme enabled", ThemeChanged(entity.ThemeDark))
}

func TestGameLoaded(t *testing.T) {
	assert.Contains(t, GameLoaded(), "Player X starts")
}
