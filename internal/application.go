package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/config"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

var (
	ErrAddrNotFound = errors.New("redis address string is empty")
	ErrUnknownMode  = errors.New("unknown mode")
)

// RunApp - runs the mode selected in the config until it finishes or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf)
}

// Run dispatches on conf.Mode.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	opening, err := tictactoe.ParseOpening(conf.Search.Opening)
	if err != nil {
		return fmt.Errorf("invalid search config: %w", err)
	}

	switch conf.Mode {
	case config.ModeSelfPlay:
		return runSelfPlay(ctx, logger, conf, opening)
	case config.ModeSolve:
		return runSolve(logger, conf, opening)
	case config.ModeTablebase:
		return withTablebase(ctx, logger, conf, func(tablebase service.TablebaseService) error {
			if _, err := tablebase.Build(ctx); err != nil {
				return fmt.Errorf("could not build tablebase: %w", err)
			}
			return nil
		})
	case config.ModeLookup:
		return withTablebase(ctx, logger, conf, func(tablebase service.TablebaseService) error {
			return runLookup(ctx, logger, conf, tablebase)
		})
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, conf.Mode)
	}
}

func runSelfPlay(ctx context.Context, logger *slog.Logger, conf *config.Config, opening tictactoe.Opening) error {
	playerX, err := tictactoe.NewStrategy(conf.Players.X, logger, opening)
	if err != nil {
		return fmt.Errorf("invalid X player: %w", err)
	}

	playerO, err := tictactoe.NewStrategy(conf.Players.O, logger, opening)
	if err != nil {
		return fmt.Errorf("invalid O player: %w", err)
	}

	if _, err = service.NewMatchService(logger).Play(ctx, playerX, playerO); err != nil {
		return fmt.Errorf("match failed: %w", err)
	}

	return nil
}

func runSolve(logger *slog.Logger, conf *config.Config, opening tictactoe.Opening) error {
	log := logger.With("component", "solver")

	board, err := entity.ParseBoard(conf.Board)
	if err != nil {
		return fmt.Errorf("could not read board: %w", err)
	}

	engine := tictactoe.NewMinimax(logger, opening)

	move, err := engine.BestMove(board)
	if err != nil {
		return fmt.Errorf("could not solve board: %w", err)
	}

	value := engine.Value(board)
	log.Info("best move", "board", board.Rows(), "player", board.CurrentPlayer().String(), "move", move.String(), "value", value, "outcome", tictactoe.DescribeValue(value))

	return nil
}

func runLookup(ctx context.Context, logger *slog.Logger, conf *config.Config, tablebase service.TablebaseService) error {
	board, err := entity.ParseBoard(conf.Board)
	if err != nil {
		return fmt.Errorf("could not read board: %w", err)
	}

	position, err := tablebase.Lookup(ctx, board)
	if err != nil {
		return fmt.Errorf("could not look up board: %w", err)
	}

	logger.Info("tablebase entry", "component", "tablebase", "board", board.Rows(), "player", position.Turn, "move", position.BestMove.String(), "value", position.Value, "outcome", tictactoe.DescribeValue(position.Value))

	return nil
}

func withTablebase(ctx context.Context, logger *slog.Logger, conf *config.Config, run func(service.TablebaseService) error) error {
	log := logger.With("component", "app")

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == ":" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	engine := tictactoe.NewMinimax(logger, tictactoe.OpeningSearch)
	tablebase := service.NewTablebaseService(logger, repository.NewTablebaseRepository(redisStorage), engine)

	return run(tablebase)
}
