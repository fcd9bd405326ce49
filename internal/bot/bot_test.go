package bot

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

var (
	fullBoard = entity.Board{
		x, o, x,
		x, o, o,
		o, x, x,
	}
	wonBoard = entity.Board{
		x, x, x,
		o, o, e,
		e, e, e,
	}
)

func TestForMode(t *testing.T) {
	easy, hard := NewSeededRandom(1), NewMinimax()

	t.Run("AI modes map to their policy", func(t *testing.T) {
		strategy, err := ForMode(entity.ModeAIEasy, easy, hard)
		require.NoError(t, err)
		assert.Same(t, easy, strategy)

		strategy, err = ForMode(entity.ModeAIHard, easy, hard)
		require.NoError(t, err)
		assert.Same(t, hard, strategy)
	})

	t.Run("Two-player mode has no computer player", func(t *testing.T) {
		_, err := ForMode(entity.ModeTwoPlayer, easy, hard)
		assert.ErrorIs(t, err, apperror.ErrInvalidState)
	})

	t.Run("Unknown mode", func(t *testing.T) {
		_, err := ForMode("nightmare", easy, hard)
		assert.ErrorIs(t, err, apperror.ErrUnknownMode)
	})
}

func TestRandom_SelectMove(t *testing.T) {
	t.Run("Always picks an empty cell", func(t *testing.T) {
		// Given: a board with three empty cells
		board := entity.Board{
			x, o, e,
			o, x, e,
			x, o, e,
		}
		strategy := NewSeededRandom(42)

		for n := 0; n < 100; n++ {
			// When: the random policy moves
			cell, err := strategy.SelectMove(board, o)

			// Then: the chosen cell is one of the empty ones
			require.NoError(t, err)
			assert.Contains(t, []int{2, 5, 8}, cell)
		}
	})

	t.Run("Same seed gives the same sequence", func(t *testing.T) {
		first, second := NewSeededRandom(7), NewSeededRandom(7)

		for n := 0; n < 20; n++ {
			a, err := first.SelectMove(entity.Board{}, o)
			require.NoError(t, err)
			b, err := second.SelectMove(entity.Board{}, o)
			require.NoError(t, err)

			assert.Equal(t, a, b)
		}
	})

	t.Run("Covers every empty cell eventually", func(t *testing.T) {
		strategy := NewSeededRandom(3)
		seen := map[int]bool{}

		for n := 0; n < 500; n++ {
			cell, err := strategy.SelectMove(entity.Board{}, x)
			require.NoError(t, err)
			seen[cell] = true
		}

		assert.Len(t, seen, entity.BoardSize)
	})

	t.Run("Full or finished board is an invalid state", func(t *testing.T) {
		strategy := NewSeededRandom(1)

		for _, board := range []entity.Board{fullBoard, wonBoard} {
			cell, err := strategy.SelectMove(board, o)

			require.ErrorIs(t, err, apperror.ErrInvalidState)
			assert.Equal(t, NoMove, cell)
		}
	})
}

func TestMinimax_SelectMove(t *testing.T) {
	strategy := NewMinimax()

	t.Run("Completes its own top row", func(t *testing.T) {
		// Given: O holds 0 and 1, cell 2 is empty and it is O's move
		board := entity.Board{
			o, o, e,
			x, x, e,
			x, e, e,
		}

		// When: the optimal policy moves for O
		cell, err := strategy.SelectMove(board, o)

		// Then: it takes the immediate win
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Prefers winning to blocking a lower cell", func(t *testing.T) {
		// Given: X threatens cell 2, O can win at 5
		board := entity.Board{
			x, x, e,
			o, o, e,
			x, e, e,
		}

		// When: the optimal policy moves for O
		cell, err := strategy.SelectMove(board, o)

		// Then: it wins instead of blocking
		require.NoError(t, err)
		assert.Equal(t, 5, cell)
	})

	t.Run("Blocks the opponent's open line", func(t *testing.T) {
		// Given: X threatens the top row
		board := entity.Board{
			x, x, e,
			e, o, e,
			e, e, e,
		}

		// When: the optimal policy moves for O
		cell, err := strategy.SelectMove(board, o)

		// Then: it blocks at 2
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
	})

	t.Run("Answers a center opening with the first corner", func(t *testing.T) {
		// Given: X opened in the center
		board := entity.Board{
			e, e, e,
			e, x, e,
			e, e, e,
		}

		// When: the optimal policy moves for O
		cell, err := strategy.SelectMove(board, o)

		// Then: all corners draw and the lowest one is chosen
		require.NoError(t, err)
		assert.Equal(t, 0, cell)
	})

	t.Run("Ties on an empty board go to the lowest index", func(t *testing.T) {
		cell, err := strategy.SelectMove(entity.Board{}, x)

		require.NoError(t, err)
		assert.Equal(t, 0, cell)
	})

	t.Run("Plays for X as well", func(t *testing.T) {
		// Given: X can win on the left column
		board := entity.Board{
			x, o, o,
			x, e, e,
			e, e, e,
		}

		cell, err := strategy.SelectMove(board, x)

		require.NoError(t, err)
		assert.Equal(t, 6, cell)
	})

	t.Run("Does not modify the caller's board", func(t *testing.T) {
		board := entity.Board{e, e, e, e, x, e, e, e, e}
		before := board

		_, err := strategy.SelectMove(board, o)

		require.NoError(t, err)
		assert.Equal(t, before, board)
	})

	t.Run("Full or finished board is an invalid state", func(t *testing.T) {
		for _, board := range []entity.Board{fullBoard, wonBoard} {
			cell, err := strategy.SelectMove(board, o)

			require.ErrorIs(t, err, apperror.ErrInvalidState)
			assert.Equal(t, NoMove, cell)
		}
	})
}

// playOut runs a full game between two strategies and returns the winner, or
// EmptyCell on a draw.
func playOut(t *testing.T, players map[entity.Mark]Strategy) (entity.Mark, entity.Board) {
	t.Helper()

	session := entity.NewSession("sim", entity.ModeTwoPlayer, e, nil)
	for session.Active {
		cell, err := players[session.Turn].SelectMove(session.Board, session.Turn)
		require.NoError(t, err)
		require.NoError(t, tictactoe.MakeTurn(session, session.Turn, cell))
	}

	return session.Winner, session.Board
}

func TestMinimax_OptimalVersusOptimalDraws(t *testing.T) {
	optimal := NewMinimax()

	winner, board := playOut(t, map[entity.Mark]Strategy{x: optimal, o: optimal})

	assert.Equal(t, e, winner)
	assert.True(t, board.IsFull())
	assert.True(t, tictactoe.CheckDraw(board))
}

func TestMinimax_NeverLosesToRandom(t *testing.T) {
	if testing.Short() {
		t.Skip("plays many full games")
	}

	optimal := NewMinimax()

	for _, optimalMark := range []entity.Mark{x, o} {
		wins, draws := 0, 0
		const games = 40

		for seed := int64(0); seed < games; seed++ {
			players := map[entity.Mark]Strategy{
				optimalMark:                       optimal,
				tictactoe.SwitchTurn(optimalMark): NewSeededRandom(seed),
			}

			winner, _ := playOut(t, players)
			switch winner {
			case optimalMark:
				wins++
			case e:
				draws++
			default:
				t.Fatalf("optimal %s lost with seed %d", optimalMark, seed)
			}
		}

		assert.Equal(t, games, wins+draws, "optimal as %s", optimalMark)
	}
}
