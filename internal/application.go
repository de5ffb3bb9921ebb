package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-strategist/internal/config"
	"github.com/rocketscienceinc/tictactoe-strategist/internal/repository"
	"github.com/rocketscienceinc/tictactoe-strategist/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-strategist/internal/service"
	"github.com/rocketscienceinc/tictactoe-strategist/internal/tactic"
	"github.com/rocketscienceinc/tictactoe-strategist/transport/rest"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	strategy, err := tactic.ByName(conf.Game.Strategy)
	if err != nil {
		return fmt.Errorf("could not select computer player: %w", err)
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	playerRepo := repository.NewPlayerRepository(redisStorage.Connection)
	gameRepo := repository.NewGameRepository(redisStorage.Connection, conf.Game.TTL)

	playerService := service.NewPlayerService(playerRepo)
	gameService := service.NewGameService(gameRepo)
	botService := service.NewBotService(logger, strategy)
	gamePlayService := service.NewGamePlayService(logger, playerService, gameService, botService)

	handlers := rest.NewHandlers(logger, botService, playerService, gamePlayService)

	log.Info("computer player selected", "strategy", strategy.Name(), "tactics", strategy.TacticNames())

	if err = rest.Start(ctx, logger, rest.Options{
		Port:            conf.HTTP.Port,
		ReadTimeout:     conf.HTTP.ReadTimeout,
		WriteTimeout:    conf.HTTP.WriteTimeout,
		IdleTimeout:     conf.HTTP.IdleTimeout,
		ShutdownTimeout: conf.HTTP.ShutdownTimeout,
	}, rest.NewRouter(handlers)); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
