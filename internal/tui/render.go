package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rocketscienceinc/tictactoe-local/internal/announce"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

const helpText = "arrows/hjkl move • enter/space or 1-9 play • r restart • t theme • q quit"

func (that *Model) View() string {
	state := that.engine.State()

	sections := []string{
		that.styles.Title.Render("Tic-Tac-Toe"),
		that.renderTurn(state),
		"",
		that.renderBoard(state),
		"",
		that.renderStatus(state),
		that.renderScore(that.engine.Score()),
		that.styles.Announcement.Render(that.announcement),
		"",
		that.styles.Help.Render(helpText + " (" + announce.ThemeToggle(that.theme) + ")"),
	}

	return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (that *Model) renderTurn(state entity.GameState) string {
	if !state.IsInProgress() {
		return that.styles.Turn.Render(" ")
	}

	return that.styles.Turn.Render(announce.Status(state))
}

func (that *Model) renderBoard(state entity.GameState) string {
	rows := make([]string, 0, 5)
	divider := that.styles.Separator.Render(strings.Repeat("─", 5) + "┼" + strings.Repeat("─", 5) + "┼" + strings.Repeat("─", 5))
	bar := that.styles.Separator.Render("│")

	for row := 0; row < 3; row++ {
		if row > 0 {
			rows = append(rows, divider)
		}

		cells := make([]string, 0, 5)
		for col := 0; col < 3; col++ {
			if col > 0 {
				cells = append(cells, bar)
			}
			cells = append(cells, that.renderCell(state, row*3+col))
		}

		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (that *Model) renderCell(state entity.GameState, index int) string {
	mark := state.Board[index]

	text := " "
	if mark == entity.PlayerX {
		text = that.styles.MarkX.Render(string(mark))
	} else if mark == entity.PlayerO {
		text = that.styles.MarkO.Render(string(mark))
	}

	style := that.styles.Cell
	switch {
	case state.InWinningLine(index):
		style = style.Inherit(that.styles.Winning)
	case index == that.cursor && state.IsInProgress():
		style = style.Inherit(that.styles.Cursor)
	}

	return style.Render(text)
}

func (that *Model) renderStatus(state entity.GameState) string {
	line := announce.StatusLine(state)

	switch state.Status {
	case entity.StatusWon:
		return that.styles.StatusWon.Render(line)
	case entity.StatusDraw:
		return that.styles.StatusDraw.Render(line)
	default:
		return that.styles.Status.Render(line)
	}
}

func (that *Model) renderScore(score entity.Score) string {
	return that.styles.Score.Render(fmt.Sprintf("X wins: %d   O wins: %d   Draws: %d", score.XWins, score.OWins, score.Draws))
}
