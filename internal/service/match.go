package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type MatchService interface {
	Play(ctx context.Context, playerX, playerO tictactoe.Strategy) (*entity.Match, error)
}

type matchService struct {
	logger *slog.Logger
}

func NewMatchService(logger *slog.Logger) MatchService {
	return &matchService{
		logger: logger,
	}
}

// Play runs a whole game from the empty board, asking each strategy for a move on its turn.
func (that *matchService) Play(ctx context.Context, playerX, playerO tictactoe.Strategy) (*entity.Match, error) {
	match := entity.NewMatch(uuid.NewString(), playerX.Name(), playerO.Name())

	log := that.logger.With("method", "Play", "matchID", match.ID)
	log.Info("match started", "playerX", match.PlayerX, "playerO", match.PlayerO)

	for !match.Board.IsTerminal() {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("match %s interrupted: %w", match.ID, err)
		}

		mover := match.Board.CurrentPlayer()
		strategy := playerX
		if mover == entity.O {
			strategy = playerO
		}

		move, err := strategy.NextMove(match.Board)
		if err != nil {
			return nil, fmt.Errorf("%s player %s failed to choose a move: %w", mover, strategy.Name(), err)
		}

		next, err := match.Board.ApplyMove(move)
		if err != nil {
			return nil, fmt.Errorf("%s player %s failed to make turn: %w", mover, strategy.Name(), err)
		}

		match.Board = next
		match.Moves = append(match.Moves, move)

		log.Debug("turn", "mark", mover.String(), "strategy", strategy.Name(), "move", move.String(), "board", next.Rows())
	}

	match.Finish()

	log.Info("match finished", "result", match.Result, "utility", match.Utility, "moves", len(match.Moves), "board", match.Board.Rows())

	return match, nil
}
