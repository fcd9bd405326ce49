package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/bot"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func newTestBotService() BotService {
	return NewBotService(bot.NewSeededRandom(1), bot.NewMinimax())
}

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("Hard bot blocks the opponent", func(t *testing.T) {
		// Given: X threatens the top row and O (the computer) is to move
		session := entity.NewSession("s1", entity.ModeAIHard, entity.PlayerO, nil)
		session.Board = entity.Board{x, x, e, e, o, e, e, e, e}
		session.Turn = o

		// When: the bot moves
		cell, err := newTestBotService().MakeTurn(session)

		// Then: it takes the blocking cell and hands the turn back
		require.NoError(t, err)
		assert.Equal(t, 2, cell)
		assert.Equal(t, o, session.Board[2])
		assert.Equal(t, x, session.Turn)
		assert.True(t, session.Active)
	})

	t.Run("Hard bot prefers winning over blocking", func(t *testing.T) {
		// Given: both sides have a winning threat
		session := entity.NewSession("s1", entity.ModeAIHard, entity.PlayerO, nil)
		session.Board = entity.Board{x, x, e, o, o, e, e, e, x}
		session.Turn = o

		// When: the bot moves
		cell, err := newTestBotService().MakeTurn(session)

		// Then: it wins and the session is over
		require.NoError(t, err)
		assert.Equal(t, 5, cell)
		assert.False(t, session.Active)
		assert.Equal(t, o, session.Winner)
		assert.Equal(t, []int{3, 4, 5}, session.WinningLine)
		assert.Equal(t, 1, session.Scores[o])
	})

	t.Run("Easy bot plays an empty cell", func(t *testing.T) {
		// Given: an easy session where the computer plays X
		session := entity.NewSession("s1", entity.ModeAIEasy, entity.PlayerX, nil)
		session.Board = entity.Board{o, e, e, e, e, e, e, e, o}

		// When: the bot moves
		cell, err := newTestBotService().MakeTurn(session)

		// Then: the move lands on a previously empty cell
		require.NoError(t, err)
		assert.NotContains(t, []int{0, 8}, cell)
		assert.Equal(t, x, session.Board[cell])
		assert.Equal(t, o, session.Turn)
	})

	t.Run("Rejects when it's the human's turn", func(t *testing.T) {
		// Given: a fresh session where the human plays X
		session := entity.NewSession("s1", entity.ModeAIHard, entity.PlayerO, nil)

		// When: the bot is asked to move
		cell, err := newTestBotService().MakeTurn(session)

		// Then: nothing is played
		require.ErrorIs(t, err, apperror.ErrInvalidState)
		assert.Equal(t, bot.NoMove, cell)
		assert.Equal(t, entity.Board{}, session.Board)
	})

	t.Run("Rejects two-player sessions", func(t *testing.T) {
		session := entity.NewSession("s1", entity.ModeTwoPlayer, entity.EmptyCell, nil)

		cell, err := newTestBotService().MakeTurn(session)

		require.ErrorIs(t, err, apperror.ErrInvalidState)
		assert.Equal(t, bot.NoMove, cell)
	})

	t.Run("Rejects finished sessions", func(t *testing.T) {
		// Given: a session that has already been won
		session := entity.NewSession("s1", entity.ModeAIHard, entity.PlayerO, nil)
		session.Board = entity.Board{x, x, x, o, o, e, e, e, e}
		session.Active = false
		session.Winner = x
		session.Turn = o

		// When: the bot is asked to move
		cell, err := newTestBotService().MakeTurn(session)

		// Then: the board is untouched
		require.ErrorIs(t, err, apperror.ErrInvalidState)
		assert.Equal(t, bot.NoMove, cell)
		assert.Equal(t, e, session.Board[5])
	})
}
