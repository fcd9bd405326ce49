package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// MakeTurn places mark at cell for the session. On error the session is not
// modified.
func MakeTurn(session *entity.Session, mark entity.Mark, cell int) error {
	if session.IsFinished() {
		return fmt.Errorf("%w: %w", apperror.ErrIllegalMove, apperror.ErrGameFinished)
	}

	if session.Turn != mark {
		return fmt.Errorf("%w: %w", apperror.ErrIllegalMove, apperror.ErrNotYourTurn)
	}

	board, err := ApplyMove(session.Board, cell, mark)
	if err != nil {
		return fmt.Errorf("invalid turn: %w", err)
	}

	session.Board = board
	updateSessionStatus(session, mark)

	return nil
}

// updateSessionStatus - checks the session status after a move. A win is
// checked before a draw.
func updateSessionStatus(session *entity.Session, player entity.Mark) {
	if line, won := WinningLine(session.Board); won {
		winner := session.Board[line[0]]

		session.Active = false
		session.Winner = winner
		session.WinningLine = line[:]
		if session.Scores == nil {
			session.Scores = entity.NewScore()
		}
		session.Scores[winner]++

		return
	}

	if CheckDraw(session.Board) {
		session.Active = false
		session.Draw = true

		return
	}

	session.Turn = SwitchTurn(player)
}

// NewRound clears the board and terminal state. Scores are kept.
func NewRound(session *entity.Session) {
	session.Board = entity.Board{}
	session.Turn = entity.PlayerX
	session.Active = true
	session.Winner = entity.EmptyCell
	session.Draw = false
	session.WinningLine = nil
	session.Round++
}

// Restart starts the session over from the first round with zero scores.
func Restart(session *entity.Session) {
	NewRound(session)
	session.Scores = entity.NewScore()
	session.Round = 1
}
