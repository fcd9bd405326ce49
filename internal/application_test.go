package application

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-engine/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
)

func TestGameDefaults(t *testing.T) {
	t.Run("Parses mode and mark", func(t *testing.T) {
		defaults, err := gameDefaults(config.Game{Mode: "AI-Easy", AIMark: "x"})

		require.NoError(t, err)
		assert.Equal(t, entity.ModeAIEasy, defaults.Mode)
		assert.Equal(t, entity.PlayerX, defaults.AIMark)
	})

	t.Run("Rejects unknown mode", func(t *testing.T) {
		_, err := gameDefaults(config.Game{Mode: "chess", AIMark: "O"})

		require.ErrorIs(t, err, apperror.ErrUnknownMode)
	})

	t.Run("Rejects bad mark", func(t *testing.T) {
		_, err := gameDefaults(config.Game{Mode: "ai-hard", AIMark: "Z"})

		require.ErrorIs(t, err, apperror.ErrInvalidMark)
	})
}

func TestNewSessionRepository(t *testing.T) {
	ctx := context.Background()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("Memory storage", func(t *testing.T) {
		// Given: a config selecting in-memory storage
		conf := &config.Config{Storage: config.StorageMemory}

		// When: the repository is built
		repo, closeFn, err := newSessionRepository(ctx, log, conf)

		// Then: it works without any external service
		require.NoError(t, err)
		defer closeFn()

		session := entity.NewSession("s1", entity.ModeTwoPlayer, entity.EmptyCell, nil)
		require.NoError(t, repo.CreateOrUpdate(ctx, session))

		stored, err := repo.GetByID(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, session, stored)
	})

	t.Run("Unknown storage", func(t *testing.T) {
		_, _, err := newSessionRepository(ctx, log, &config.Config{Storage: "floppy"})

		require.Error(t, err)
	})
}
