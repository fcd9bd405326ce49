package apperror

import "errors"

// Error kinds. Every rejected move wraps ErrIllegalMove, every request the AI
// cannot serve wraps ErrInvalidState.
var (
	ErrIllegalMove  = errors.New("illegal move")
	ErrInvalidState = errors.New("invalid state")
)

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrNotYourTurn  = errors.New("it's not your turn")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrInvalidCell  = errors.New("invalid cell index")
	ErrInvalidMark  = errors.New("invalid mark")
	ErrNoMoves      = errors.New("no available moves")
	ErrNotFound     = errors.New("not found")
	ErrUnknownMode  = errors.New("unknown game mode")
)
