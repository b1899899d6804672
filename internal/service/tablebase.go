package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/tictactoe"
)

type TablebaseService interface {
	Build(ctx context.Context) (int, error)
	Lookup(ctx context.Context, board entity.Board) (*entity.Position, error)
}

type tablebaseRepo interface {
	CreateOrUpdate(ctx context.Context, position *entity.Position) error
	GetByBoard(ctx context.Context, board entity.Board) (*entity.Position, error)
}

type tablebaseService struct {
	logger *slog.Logger

	repo   tablebaseRepo
	engine *tictactoe.Minimax
}

func NewTablebaseService(logger *slog.Logger, repo tablebaseRepo, engine *tictactoe.Minimax) TablebaseService {
	return &tablebaseService{
		logger: logger,
		repo:   repo,
		engine: engine,
	}
}

// Build solves every non-terminal position reachable from the empty board and stores it.
// It returns the number of positions written.
func (that *tablebaseService) Build(ctx context.Context) (int, error) {
	log := that.logger.With("method", "Build")

	seen := make(map[entity.Board]struct{})
	stack := []entity.Board{entity.InitialState()}

	for len(stack) > 0 {
		board := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := seen[board]; ok || board.IsTerminal() {
			continue
		}
		seen[board] = struct{}{}

		if err := ctx.Err(); err != nil {
			return len(seen) - 1, fmt.Errorf("tablebase build interrupted: %w", err)
		}

		move, value, err := that.engine.Evaluate(board)
		if err != nil {
			return len(seen) - 1, fmt.Errorf("failed to evaluate board %s: %w", board, err)
		}

		if err = that.repo.CreateOrUpdate(ctx, entity.NewPosition(board, value, move)); err != nil {
			return len(seen) - 1, fmt.Errorf("failed to store board %s: %w", board, err)
		}

		for _, legal := range board.LegalMoves() {
			next, err := board.ApplyMove(legal)
			if err != nil {
				return len(seen), fmt.Errorf("failed to expand board %s: %w", board, err)
			}
			stack = append(stack, next)
		}

		if len(seen)%500 == 0 {
			log.Debug("tablebase progress", "positions", len(seen))
		}
	}

	log.Info("tablebase built", "positions", len(seen))

	return len(seen), nil
}

func (that *tablebaseService) Lookup(ctx context.Context, board entity.Board) (*entity.Position, error) {
	if board.IsTerminal() {
		return nil, fmt.Errorf("%w: board %s", apperror.ErrGameFinished, board)
	}

	position, err := that.repo.GetByBoard(ctx, board)
	if err != nil {
		return nil, fmt.Errorf("failed to get position: %w", err)
	}

	return position, nil
}
