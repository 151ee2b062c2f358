package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionActivate
	ActionSelectCell
	ActionRestart
	ActionToggleTheme
	ActionQuit
)

// KeyMapper translates Bubble Tea key messages to board actions.
type KeyMapper struct{}

func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey returns the action for the key. For ActionSelectCell the second value is the 0-based cell.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (Action, int) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q", "Q":
		return ActionQuit, 0
	case "up", "k":
		return ActionUp, 0
	case "down", "j":
		return ActionDown, 0
	case "left", "h":
		return ActionLeft, 0
	case "right", "l":
		return ActionRight, 0
	case "enter", " ", "space":
		return ActionActivate, 0
	case "r", "R":
		return ActionRestart, 0
	case "t", "T":
		return ActionToggleTheme, 0
	}

	// 1-9 pick a cell directly, numbered like the accessible labels
	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		return ActionSelectCell, int(key[0] - '1')
	}

	return ActionNone, 0
}
