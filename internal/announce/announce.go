// Package announce builds the screen-reader and status texts shown next to the board.
package announce

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

func GameLoaded() string {
	return "Tic-tac-toe loaded. Player X starts. Use arrow keys to navigate cells and Enter or Space to select."
}

// Status is the live-region text for the current state of the game.
func Status(state entity.GameState) string {
	switch state.Status {
	case entity.StatusWon:
		return fmt.Sprintf("Player %s wins the game", state.Winner)
	case entity.StatusDraw:
		return "The game ended in a draw"
	default:
		return fmt.Sprintf("Current player: %s", state.CurrentPlayer)
	}
}

// StatusLine is the short visible status.
func StatusLine(state entity.GameState) string {
	switch state.Status {
	case entity.StatusWon:
		return fmt.Sprintf("Player %s wins!", state.Winner)
	case entity.StatusDraw:
		return "It's a draw!"
	default:
		return "Game in progress"
	}
}

// Cell labels a cell with its 1-based position.
func Cell(index int, mark entity.Mark) string {
	if mark == entity.EmptyCell {
		return fmt.Sprintf("Cell %d, empty", index+1)
	}

	return fmt.Sprintf("Cell %d, %s", index+1, mark)
}

// ThemeToggle labels the toggle with the theme it switches to.
func ThemeToggle(current entity.Theme) string {
	return fmt.Sprintf("Switch to %s theme", current.Toggle())
}

// ThemeChanged confirms the theme that was just switched on.
func ThemeChanged(current entity.Theme) string {
	if current == entity.ThemeLight {
		return "Light theme enabled"
	}

	return "Dark theme enabled"
}
