package bot

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

// NoMove is returned together with an error when there is nothing to play.
const NoMove = -1

// Strategy picks a cell for mark on board.
type Strategy interface {
	SelectMove(board entity.Board, mark entity.Mark) (int, error)
}

// ForMode maps a game mode to its policy. Two-player games have none.
func ForMode(mode entity.Mode, easy, hard Strategy) (Strategy, error) {
	switch mode {
	case entity.ModeAIEasy:
		return easy, nil
	case entity.ModeAIHard:
		return hard, nil
	case entity.ModeTwoPlayer:
		return nil, fmt.Errorf("%w: %s has no computer player", apperror.ErrInvalidState, mode)
	default:
		return nil, fmt.Errorf("%w: %q", apperror.ErrUnknownMode, mode)
	}
}

// checkPlayable rejects boards the computer cannot move on: finished or full
// ones, and an invalid mark.
func checkPlayable(board entity.Board, mark entity.Mark) error {
	if !mark.IsPlayer() {
		return fmt.Errorf("%w: %w: %q", apperror.ErrInvalidState, apperror.ErrInvalidMark, mark)
	}

	if winner, won := tictactoe.CheckWinner(board); won {
		return fmt.Errorf("%w: %w: %s already won", apperror.ErrInvalidState, apperror.ErrGameFinished, winner)
	}

	if board.IsFull() {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidState, apperror.ErrNoMoves)
	}

	return nil
}
