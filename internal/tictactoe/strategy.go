package tictactoe

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const (
	StrategyMinimax = "minimax"
	StrategyFirst   = "first"
	StrategyGreedy  = "greedy"
)

var ErrUnknownStrategy = errors.New("unknown strategy")

// Strategy picks a move for the player to move on a non-terminal board.
type Strategy interface {
	Name() string
	NextMove(board entity.Board) (entity.Move, error)
}

func NewStrategy(name string, logger *slog.Logger, opening Opening) (Strategy, error) {
	switch name {
	case StrategyMinimax, "":
		return NewMinimax(logger, opening), nil
	case StrategyFirst:
		return FirstAvailable{}, nil
	case StrategyGreedy:
		return WinIfPossible{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// FirstAvailable plays the first empty cell in row-major order.
type FirstAvailable struct{}

func (FirstAvailable) Name() string {
	return StrategyFirst
}

func (FirstAvailable) NextMove(board entity.Board) (entity.Move, error) {
	if board.IsTerminal() {
		return entity.Move{}, fmt.Errorf("%w: board %s", apperror.ErrGameFinished, board)
	}

	return board.LegalMoves()[0], nil
}

// WinIfPossible looks one move ahead: it takes an immediate win when there is one,
// otherwise the first move in row-major order.
type WinIfPossible struct{}

func (WinIfPossible) Name() string {
	return StrategyGreedy
}

func (WinIfPossible) NextMove(board entity.Board) (entity.Move, error) {
	if board.IsTerminal() {
		return entity.Move{}, fmt.Errorf("%w: board %s", apperror.ErrGameFinished, board)
	}

	mover := board.CurrentPlayer()
	moves := board.LegalMoves()

	best, bestValue := moves[0], result(board, moves[0]).Utility()
	for _, move := range moves[1:] {
		value := result(board, move).Utility()
		if (mover == entity.X && value > bestValue) || (mover == entity.O && value < bestValue) {
			best, bestValue = move, value
		}
	}

	return best, nil
}
