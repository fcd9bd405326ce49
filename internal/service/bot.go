package service

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/bot"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type BotService interface {
	MakeTurn(session *entity.Session) (int, error)
}

type botService struct {
	easy bot.Strategy
	hard bot.Strategy
}

// NewBotService plays easy for ai-easy sessions and hard for ai-hard ones.
func NewBotService(easy, hard bot.Strategy) BotService {
	return &botService{
		easy: easy,
		hard: hard,
	}
}

// MakeTurn plays the computer's move in session and returns the chosen cell.
func (that *botService) MakeTurn(session *entity.Session) (int, error) {
	if !session.IsAITurn() {
		return bot.NoMove, fmt.Errorf("%w: it's not the computer's turn", apperror.ErrInvalidState)
	}

	strategy, err := bot.ForMode(session.Mode, that.easy, that.hard)
	if err != nil {
		return bot.NoMove, fmt.Errorf("failed to pick strategy: %w", err)
	}

	cell, err := strategy.SelectMove(session.Board, session.AIMark)
	if err != nil {
		return bot.NoMove, fmt.Errorf("bot failed to select move: %w", err)
	}

	if err = tictactoe.MakeTurn(session, session.AIMark, cell); err != nil {
		return bot.NoMove, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return cell, nil
}
