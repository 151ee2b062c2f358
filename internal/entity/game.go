package entity

type Mark string

const (
	EmptyCell Mark = ""
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
)

// Opponent returns the mark that moves after m.
func (that Mark) Opponent() Mark {
	if that == PlayerX {
		return PlayerO
	}
	return PlayerX
}

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDraw       Status = "draw"
)

const BoardSize = 9

type (
	Board [BoardSize]Mark
	Line  [3]int
)

// WinLines are scanned in this order; the first uniformly marked line wins.
var WinLines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// GameState is a snapshot of a single game. Winner and WinningLine are set only when Status is StatusWon.
type GameState struct {
	Board         Board  `json:"board"`
	CurrentPlayer Mark   `json:"current_player"`
	Status        Status `json:"status"`
	Winner        Mark   `json:"winner,omitempty"`
	WinningLine   *Line  `json:"winning_line,omitempty"`
}

func NewGameState() GameState {
	return GameState{
		Board:         Board{},
		CurrentPlayer: PlayerX,
		Status:        StatusInProgress,
	}
}

func (that GameState) IsInProgress() bool {
	return that.Status == StatusInProgress
}

func (that GameState) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

// InWinningLine reports whether the cell belongs to the winning line.
func (that GameState) InWinningLine(cell int) bool {
	if that.WinningLine == nil {
		return false
	}

	for _, idx := range that.WinningLine {
		if idx == cell {
			return true
		}
	}

	return false
}

// Clone returns a copy that shares nothing with the receiver.
func (that GameState) Clone() GameState {
	clone := that
	if that.WinningLine != nil {
		line := *that.WinningLine
		clone.WinningLine = &line
	}
	return clone
}

// IsFull reports whether no empty cell is left.
func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// WinningLine returns the first line in WinLines held by a single mark.
func (that Board) WinningLine() (Line, bool) {
	for _, line := range WinLines {
		a, b, c := that[line[0]], that[line[1]], that[line[2]]
		if a != EmptyCell && a == b && b == c {
			return line, true
		}
	}

	return Line{}, false
}

type Score struct {
	XWins int `json:"x_wins"`
	OWins int `json:"o_wins"`
	Draws int `json:"draws"`
}

// RecordWin credits a win to the given mark.
func (that *Score) RecordWin(winner Mark) {
	switch winner {
	case PlayerX:
		that.XWins++
	case PlayerO:
		that.OWins++
	}
}

func (that *Score) RecordDraw() {
	that.Draws++
}
