package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

// WinningLines are checked in this order: rows, columns, diagonals.
var WinningLines = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// ApplyMove returns a copy of board with mark placed at cell. The input board
// is left untouched.
func ApplyMove(board entity.Board, cell int, mark entity.Mark) (entity.Board, error) {
	if err := validateMove(board, cell, mark); err != nil {
		return board, err
	}

	board[cell] = mark

	return board, nil
}

// validateMove - checks if the move is valid.
func validateMove(board entity.Board, cell int, mark entity.Mark) error {
	if cell < 0 || cell >= len(board) {
		return fmt.Errorf("%w: %w: cell %d", apperror.ErrIllegalMove, apperror.ErrInvalidCell, cell)
	}

	if !mark.IsPlayer() {
		return fmt.Errorf("%w: %w: %q", apperror.ErrIllegalMove, apperror.ErrInvalidMark, mark)
	}

	if board[cell] != entity.EmptyCell {
		return fmt.Errorf("%w: %w: cell %d", apperror.ErrIllegalMove, apperror.ErrCellOccupied, cell)
	}

	return nil
}

// CheckWinner returns the mark of the first completed line, if any.
func CheckWinner(board entity.Board) (entity.Mark, bool) {
	line, ok := WinningLine(board)
	if !ok {
		return entity.EmptyCell, false
	}

	return board[line[0]], true
}

// WinningLine returns the first line whose three cells hold the same mark.
func WinningLine(board entity.Board) ([3]int, bool) {
	for _, line := range WinningLines {
		a, b, c := board[line[0]], board[line[1]], board[line[2]]
		if a != entity.EmptyCell && a == b && b == c {
			return line, true
		}
	}

	return [3]int{}, false
}

// HasLine reports whether mark occupies any whole line.
func HasLine(board entity.Board, mark entity.Mark) bool {
	for _, line := range WinningLines {
		if board[line[0]] == mark && board[line[1]] == mark && board[line[2]] == mark {
			return true
		}
	}

	return false
}

// CheckDraw is true only for a full board without a winner.
func CheckDraw(board entity.Board) bool {
	if _, won := CheckWinner(board); won {
		return false
	}

	return board.IsFull()
}

func SwitchTurn(currentMark entity.Mark) entity.Mark {
	if currentMark == entity.PlayerX {
		return entity.PlayerO
	}
	return entity.PlayerX
}
