package entity

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

func (that Theme) Toggle() Theme {
	if that == ThemeLight {
		return ThemeDark
	}
	return ThemeLight
}

// Valid reports whether the theme is one of the known ones.
func (that Theme) Valid() bool {
	return that == ThemeDark || that == ThemeLight
}

// Session is one player's game together with the session-wide score and display preference.
type Session struct {
	ID    string    `json:"id"`
	Game  GameState `json:"game"`
	Score Score     `json:"score"`
	Theme Theme     `json:"theme"`
}

func NewSession(id string, theme Theme) *Session {
	if !theme.Valid() {
		theme = ThemeDark
	}

	return &Session{
		ID:    id,
		Game:  NewGameState(),
		Theme: theme,
	}
}
