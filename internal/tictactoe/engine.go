package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-local/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
)

// Engine owns one game and the score of the session it belongs to.
// It is not safe for concurrent use.
type Engine struct {
	state entity.GameState
	score entity.Score
}

func NewEngine() *Engine {
	engine := &Engine{}
	engine.Initialize()

	return engine
}

// Restore rebuilds an engine from a persisted snapshot.
func Restore(state entity.GameState, score entity.Score) *Engine {
	return &Engine{
		state: state.Clone(),
		score: score,
	}
}

// Initialize starts a fresh game. The score is left as is.
func (that *Engine) Initialize() entity.GameState {
	that.state = entity.NewGameState()

	return that.state.Clone()
}

// Reset starts the next game of the session.
func (that *Engine) Reset() entity.GameState {
	return that.Initialize()
}

// ApplyMove places the current player's mark on the cell.
func (that *Engine) ApplyMove(cell int) (entity.GameState, error) {
	if !that.state.IsInProgress() {
		return that.state.Clone(), apperror.ErrGameOver
	}

	if err := validateCell(that.state.Board, cell); err != nil {
		return that.state.Clone(), err
	}

	player := that.state.CurrentPlayer
	that.state.Board[cell] = player

	that.updateGameStatus(player)

	return that.state.Clone(), nil
}

func (that *Engine) State() entity.GameState {
	return that.state.Clone()
}

func (that *Engine) Score() entity.Score {
	return that.score
}

// validateCell - checks that the cell is on the board and still empty.
func validateCell(board entity.Board, cell int) error {
	if cell < 0 || cell >= len(board) {
		return fmt.Errorf("%w: cell %d is out of range", apperror.ErrInvalidCell, cell)
	}

	if board[cell] != entity.EmptyCell {
		return fmt.Errorf("%w: cell %d is occupied", apperror.ErrInvalidCell, cell)
	}

	return nil
}

// updateGameStatus - settles the game after a mark was placed.
func (that *Engine) updateGameStatus(player entity.Mark) {
	if line, ok := that.state.Board.WinningLine(); ok {
		that.state.Status = entity.StatusWon
		that.state.Winner = player
		that.state.WinningLine = &line
		that.score.RecordWin(player)

		return
	}

	if that.state.Board.IsFull() {
		that.state.Status = entity.StatusDraw
		that.score.RecordDraw()

		return
	}

	that.state.CurrentPlayer = player.Opponent()
}
