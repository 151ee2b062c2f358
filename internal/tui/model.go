package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rocketscienceinc/tictactoe-local/internal/announce"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/tictactoe"
)

const loadedAnnouncementTTL = 3 * time.Second

// Controller is what the input layer calls when the player acts on the board.
type Controller interface {
	OnCellActivated(index int)
	OnRestart()
	OnThemeToggle()
}

type clearAnnouncementMsg struct {
	seq int
}

// Model is the Bubble Tea program for a hot-seat game. It only reads engine state to render.
type Model struct {
	logger *slog.Logger
	engine *tictactoe.Engine
	keys   *KeyMapper

	theme  entity.Theme
	styles Styles
	cursor int

	announcement string
	// bumped on every announcement so a stale clear does not wipe a newer one
	announcementSeq int
}

var _ Controller = (*Model)(nil)

func New(logger *slog.Logger, engine *tictactoe.Engine, theme entity.Theme) *Model {
	if !theme.Valid() {
		theme = entity.ThemeDark
	}

	return &Model{
		logger:       logger.With("component", "tui"),
		engine:       engine,
		keys:         NewKeyMapper(),
		theme:        theme,
		styles:       StylesFor(theme),
		cursor:       4,
		announcement: announce.GameLoaded(),
	}
}

// Run blocks until the player quits or ctx is cancelled.
func Run(ctx context.Context, logger *slog.Logger, engine *tictactoe.Engine, theme entity.Theme) error {
	program := tea.NewProgram(New(logger, engine, theme), tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal ui failed: %w", err)
	}

	return nil
}

func (that *Model) Init() tea.Cmd {
	return that.clearAfter(loadedAnnouncementTTL)
}

func (that *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clearAnnouncementMsg:
		if msg.seq == that.announcementSeq {
			that.announcement = ""
		}

	case tea.KeyMsg:
		action, cell := that.keys.MapKey(msg)

		switch action {
		case ActionQuit:
			return that, tea.Quit
		case ActionUp:
			if that.cursor >= 3 {
				that.cursor -= 3
			}
		case ActionDown:
			if that.cursor < 6 {
				that.cursor += 3
			}
		case ActionLeft:
			if that.cursor%3 > 0 {
				that.cursor--
			}
		case ActionRight:
			if that.cursor%3 < 2 {
				that.cursor++
			}
		case ActionActivate:
			that.OnCellActivated(that.cursor)
		case ActionSelectCell:
			that.cursor = cell
			that.OnCellActivated(cell)
		case ActionRestart:
			that.OnRestart()
		case ActionToggleTheme:
			that.OnThemeToggle()
		}
	}

	return that, nil
}

// OnCellActivated plays the cell. Rejected moves are ignored; the unchanged board says enough.
func (that *Model) OnCellActivated(index int) {
	state, err := that.engine.ApplyMove(index)
	if err != nil {
		that.logger.Debug("move ignored", "cell", index, "error", err)
		return
	}

	that.announce(fmt.Sprintf("%s. %s", announce.Cell(index, state.Board[index]), announce.Status(state)))

	if state.IsFinished() {
		that.logger.Info("game finished", "status", state.Status, "winner", state.Winner, "score", that.engine.Score())
	}
}

func (that *Model) OnRestart() {
	state := that.engine.Reset()
	that.announce(announce.Status(state))
}

func (that *Model) OnThemeToggle() {
	that.theme = that.theme.Toggle()
	that.styles = StylesFor(that.theme)
	that.announce(announce.ThemeChanged(that.theme))
}

func (that *Model) Theme() entity.Theme {
	return that.theme
}

func (that *Model) Cursor() int {
	return that.cursor
}

func (that *Model) Announcement() string {
	return that.announcement
}

func (that *Model) announce(text string) {
	that.announcementSeq++
	that.announcement = text
}

func (that *Model) clearAfter(d time.Duration) tea.Cmd {
	seq := that.announcementSeq

	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearAnnouncementMsg{seq: seq}
	})
}
