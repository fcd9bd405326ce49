package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/tictactoe-engine/internal/bot"
	"github.com/rocketscienceinc/tictactoe-engine/internal/config"
	"github.com/rocketscienceinc/tictactoe-engine/internal/entity"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository"
	"github.com/rocketscienceinc/tictactoe-engine/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-engine/internal/service"
	"github.com/rocketscienceinc/tictactoe-engine/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-engine/transport/rest"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	defaults, err := gameDefaults(conf.Game)
	if err != nil {
		return fmt.Errorf("invalid game config: %w", err)
	}

	sessionRepo, closeRepo, err := newSessionRepository(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeRepo()

	seed := conf.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sessionService := service.NewSessionService(sessionRepo)
	botService := service.NewBotService(bot.NewSeededRandom(seed), bot.NewMinimax())
	gameManager := usecase.NewGameManager(logger, sessionService, botService, conf.Game.AIDelay)

	router := rest.NewRouter(logger, gameManager, defaults)

	log.Info("Starting HTTP server", "port", conf.HTTPPort, "storage", conf.Storage, "default_mode", defaults.Mode)
	if err = rest.Start(ctx, conf.HTTPPort, router); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

func gameDefaults(conf config.Game) (rest.Defaults, error) {
	mode, err := entity.ParseMode(conf.Mode)
	if err != nil {
		return rest.Defaults{}, err
	}

	aiMark, err := entity.ParseMark(conf.AIMark)
	if err != nil {
		return rest.Defaults{}, err
	}

	return rest.Defaults{Mode: mode, AIMark: aiMark}, nil
}

func newSessionRepository(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.SessionRepository, func(), error) {
	switch conf.Storage {
	case config.StorageMemory:
		return repository.NewMemorySessionRepository(), func() {}, nil
	case config.StorageRedis:
		redisStorage, err := storage.New(ctx, conf.Redis.GetRedisAddr())
		if err != nil {
			return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
		}

		closeFn := func() {
			if err := redisStorage.Close(); err != nil {
				log.Error("could not close redis storage", "error", err)
			}
		}

		return repository.NewSessionRepository(redisStorage, conf.Redis.SessionTTL), closeFn, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage %q", conf.Storage)
	}
}
