package apperror

import "errors"

var (
	ErrInvalidCell     = errors.New("invalid cell")
	ErrGameOver        = errors.New("game is over")
	ErrSessionNotFound = errors.New("session not found")
)
