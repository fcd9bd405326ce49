package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

type sessionService interface {
	CreateSession(ctx context.Context, mode entity.Mode, aiMark entity.Mark, names map[entity.Mark]string) (*entity.Session, error)
	UpdateSession(ctx context.Context, session *entity.Session) error
	DeleteSession(ctx context.Context, sessionID string) error
	GetSessionByID(ctx context.Context, id string) (*entity.Session, error)
}

type botService interface {
	MakeTurn(session *entity.Session) (int, error)
}

// GameManager drives sessions: it applies human moves, lets the computer
// answer in AI modes and persists the result. Calls for the same session are
// serialized.
type GameManager struct {
	logger *slog.Logger

	sessionService sessionService
	botService     botService

	aiDelay time.Duration
	wait    func(ctx context.Context, d time.Duration) error
	locks   *sessionLocker
}

func NewGameManager(logger *slog.Logger, sessionService sessionService, botService botService, aiDelay time.Duration) *GameManager {
	return &GameManager{
		logger: logger.With("component", "game_manager"),

		sessionService: sessionService,
		botService:     botService,

		aiDelay: aiDelay,
		wait:    sleep,
		locks:   newSessionLocker(),
	}
}

// NewSession creates a session. When the computer plays X it opens right away.
func (that *GameManager) NewSession(ctx context.Context, mode entity.Mode, aiMark entity.Mark, names map[entity.Mark]string) (*entity.Session, error) {
	log := that.logger.With("method", "NewSession")

	mode, err := entity.ParseMode(string(mode))
	if err != nil {
		return nil, err
	}

	session, err := that.sessionService.CreateSession(ctx, mode, aiMark, names)
	if err != nil {
		return nil, fmt.Errorf("failed create session: %w", err)
	}

	unlock := that.locks.Lock(session.ID)
	defer unlock()

	if session.IsAITurn() {
		if err = that.playComputer(ctx, session, false); err != nil {
			return nil, err
		}

		if err = that.updateSession(ctx, session); err != nil {
			return nil, err
		}
	}

	log.Info("session created", "session_id", session.ID, "mode", session.Mode)

	return session, nil
}

func (that *GameManager) GetSession(ctx context.Context, id string) (*entity.Session, error) {
	session, err := that.sessionService.GetSessionByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed get session by id: %w", err)
	}

	return session, nil
}

// MakeTurn plays mark at cell. An empty mark means whoever is to move. In AI
// modes the computer answers after the configured delay, within the same call.
// A rejected move leaves the stored session untouched.
func (that *GameManager) MakeTurn(ctx context.Context, id string, mark entity.Mark, cell int) (*entity.Session, error) {
	log := that.logger.With("method", "MakeTurn")

	unlock := that.locks.Lock(id)
	defer unlock()

	session, err := that.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if mark == entity.EmptyCell {
		mark = session.Turn
	}

	if session.Active && session.Mode.WithAI() && mark == session.AIMark {
		return nil, fmt.Errorf("%w: %w: %s is played by the computer", apperror.ErrIllegalMove, apperror.ErrNotYourTurn, mark)
	}

	if err = tictactoe.MakeTurn(session, mark, cell); err != nil {
		return nil, fmt.Errorf("failed make turn: %w", err)
	}

	log.Debug("turn made", "session_id", id, "mark", mark, "cell", cell, "board", session.Board.String())

	if session.IsAITurn() {
		if err = that.playComputer(ctx, session, true); err != nil {
			return nil, err
		}
	}

	if err = that.updateSession(ctx, session); err != nil {
		return nil, err
	}

	if session.IsFinished() {
		log.Info("round finished", "session_id", id, "winner", session.WinnerName(), "draw", session.Draw)
	}

	return session, nil
}

// NewRound clears the board and keeps the score.
func (that *GameManager) NewRound(ctx context.Context, id string) (*entity.Session, error) {
	return that.reset(ctx, id, tictactoe.NewRound)
}

// Restart clears the board and the score.
func (that *GameManager) Restart(ctx context.Context, id string) (*entity.Session, error) {
	return that.reset(ctx, id, tictactoe.Restart)
}

func (that *GameManager) DeleteSession(ctx context.Context, id string) error {
	log := that.logger.With("method", "DeleteSession")

	unlock := that.locks.Lock(id)
	defer unlock()

	if err := that.sessionService.DeleteSession(ctx, id); err != nil {
		return fmt.Errorf("failed delete session: %w", err)
	}

	log.Info("session deleted", "session_id", id)

	return nil
}

func (that *GameManager) reset(ctx context.Context, id string, resetFn func(*entity.Session)) (*entity.Session, error) {
	unlock := that.locks.Lock(id)
	defer unlock()

	session, err := that.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	resetFn(session)

	if session.IsAITurn() {
		if err = that.playComputer(ctx, session, false); err != nil {
			return nil, err
		}
	}

	if err = that.updateSession(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (that *GameManager) playComputer(ctx context.Context, session *entity.Session, delayed bool) error {
	log := that.logger.With("method", "playComputer")

	if delayed && that.aiDelay > 0 {
		if err := that.wait(ctx, that.aiDelay); err != nil {
			return fmt.Errorf("computer move interrupted: %w", err)
		}
	}

	cell, err := that.botService.MakeTurn(session)
	if err != nil {
		return fmt.Errorf("failed computer turn: %w", err)
	}

	log.Debug("computer moved", "session_id", session.ID, "mode", session.Mode, "cell", cell)

	return nil
}

func (that *GameManager) updateSession(ctx context.Context, session *entity.Session) error {
	if err := that.sessionService.UpdateSession(ctx, session); err != nil {
		return fmt.Errorf("failed update session: %w", err)
	}

	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
