package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

// Styles holds every style the board view uses for one theme.
type Styles struct {
	Title        lipgloss.Style
	Turn         lipgloss.Style
	Cell         lipgloss.Style
	MarkX        lipgloss.Style
	MarkO        lipgloss.Style
	Cursor       lipgloss.Style
	Winning      lipgloss.Style
	Separator    lipgloss.Style
	Status       lipgloss.Style
	StatusWon    lipgloss.Style
	StatusDraw   lipgloss.Style
	Score        lipgloss.Style
	Announcement lipgloss.Style
	Help         lipgloss.Style
}

func DarkStyles() Styles {
	return Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Turn:         lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Cell:         lipgloss.NewStyle().Width(5).Align(lipgloss.Center),
		MarkX:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")), // coral
		MarkO:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81")),  // sky blue
		Cursor:       lipgloss.NewStyle().Background(lipgloss.Color("238")),
		Winning:      lipgloss.NewStyle().Background(lipgloss.Color("22")),
		Separator:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Status:       lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("22")),
		StatusWon:    lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("255")).Background(lipgloss.Color("22")),
		StatusDraw:   lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("232")).Background(lipgloss.Color("214")),
		Score:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Announcement: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("245")),
		Help:         lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

func LightStyles() Styles {
	return Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("232")),
		Turn:         lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Cell:         lipgloss.NewStyle().Width(5).Align(lipgloss.Center),
		MarkX:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160")), // dark red
		MarkO:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),  // deep blue
		Cursor:       lipgloss.NewStyle().Background(lipgloss.Color("254")),
		Winning:      lipgloss.NewStyle().Background(lipgloss.Color("157")),
		Separator:    lipgloss.NewStyle().Foreground(lipgloss.Color("248")),
		Status:       lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("232")).Background(lipgloss.Color("157")),
		StatusWon:    lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("232")).Background(lipgloss.Color("157")),
		StatusDraw:   lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("232")).Background(lipgloss.Color("221")),
		Score:        lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		Announcement: lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("242")),
		Help:         lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	}
}

func StylesFor(theme entity.Theme) Styles {
	if theme == entity.ThemeLight {
		return LightStyles()
	}
	return DarkStyles()
}
