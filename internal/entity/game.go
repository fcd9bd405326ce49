package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
)

// Mark is a player's symbol or the content of an empty cell.
type Mark string

const (
	PlayerX   Mark = "X"
	PlayerO   Mark = "O"
	EmptyCell Mark = ""
)

const BoardSize = 9

// Board is the 3x3 grid in row-major order: index = row*3 + col.
type Board [BoardSize]Mark

const (
	ModeTwoPlayer Mode = "two-player"
	ModeAIEasy    Mode = "ai-easy"
	ModeAIHard    Mode = "ai-hard"
)

// Mode selects whether the computer plays and which policy it uses.
type Mode string

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent returns the other player's mark. EmptyCell has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return EmptyCell
	}
}

// ParseMark accepts "X" or "O" in any case.
func ParseMark(value string) (Mark, error) {
	mark := Mark(strings.ToUpper(strings.TrimSpace(value)))
	if !mark.IsPlayer() {
		return EmptyCell, fmt.Errorf("%w: %q", apperror.ErrInvalidMark, value)
	}

	return mark, nil
}

// EmptyCells lists the indices of empty cells in ascending order.
func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == EmptyCell {
			cells = append(cells, i)
		}
	}

	return cells
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}

	return true
}

// String renders the board as three rows, with '.' for empty cells.
func (that Board) String() string {
	var sb strings.Builder
	for i, cell := range that {
		if cell == EmptyCell {
			sb.WriteByte('.')
		} else {
			sb.WriteString(string(cell))
		}

		if i%3 == 2 && i != BoardSize-1 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}

func ParseMode(value string) (Mode, error) {
	switch mode := Mode(strings.ToLower(strings.TrimSpace(value))); mode {
	case ModeTwoPlayer, ModeAIEasy, ModeAIHard:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownMode, value)
	}
}

func (that Mode) WithAI() bool {
	return that == ModeAIEasy || that == ModeAIHard
}
