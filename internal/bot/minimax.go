package bot

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

const (
	scoreWin  = 10
	scoreDraw = 0
)

// Minimax searches the whole game tree and never loses.
type Minimax struct{}

func NewMinimax() *Minimax {
	return &Minimax{}
}

// SelectMove returns the cell with the highest minimax score for mark. Ties go
// to the lowest index.
func (that *Minimax) SelectMove(board entity.Board, mark entity.Mark) (int, error) {
	if err := checkPlayable(board, mark); err != nil {
		return NoMove, err
	}

	opponent := tictactoe.SwitchTurn(mark)

	bestScore := math.MinInt
	bestMove := NoMove

	for _, cell := range board.EmptyCells() {
		board[cell] = mark
		score := minimax(&board, 0, false, mark, opponent)
		board[cell] = entity.EmptyCell

		if score > bestScore {
			bestScore = score
			bestMove = cell
		}
	}

	return bestMove, nil
}

// minimax scores board from the point of view of ai. depth counts the plies
// played since the root so that faster wins and slower losses score higher.
// board is used as scratch space and restored before returning.
func minimax(board *entity.Board, depth int, maximizing bool, ai, opponent entity.Mark) int {
	if tictactoe.HasLine(*board, ai) {
		return scoreWin - depth
	}
	if tictactoe.HasLine(*board, opponent) {
		return depth - scoreWin
	}
	if board.IsFull() {
		return scoreDraw
	}

	mark, best, better := opponent, math.MaxInt, minInt
	if maximizing {
		mark, best, better = ai, math.MinInt, maxInt
	}

	for cell := range board {
		if board[cell] != entity.EmptyCell {
			continue
		}

		board[cell] = mark
		score := minimax(board, depth+1, !maximizing, ai, opponent)
		board[cell] = entity.EmptyCell

		best = better(best, score)
	}

	return best
}

func maxInt(a, b int) int { return max(a, b) }

func minInt(a, b int) int { return min(a, b) }
