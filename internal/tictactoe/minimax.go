package tictactoe

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

var ErrUnknownOpening = errors.New("unknown opening")

// Opening decides what BestMove does on the empty board.
// All nine first moves are worth a draw, so any fixed cell is optimal.
type Opening string

const (
	OpeningCorner Opening = "corner"
	OpeningCenter Opening = "center"
	OpeningSearch Opening = "search"
)

func ParseOpening(s string) (Opening, error) {
	switch opening := Opening(s); opening {
	case OpeningCorner, OpeningCenter, OpeningSearch:
		return opening, nil
	case "":
		return OpeningCorner, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOpening, s)
	}
}

// Move returns the fixed opening cell. ok is false for OpeningSearch.
func (that Opening) Move() (entity.Move, bool) {
	switch that {
	case OpeningCorner:
		return entity.Move{Row: 0, Col: 0}, true
	case OpeningCenter:
		return entity.Move{Row: 1, Col: 1}, true
	default:
		return entity.Move{}, false
	}
}

// Minimax searches the whole game tree without pruning.
type Minimax struct {
	logger  *slog.Logger
	opening Opening
}

func NewMinimax(logger *slog.Logger, opening Opening) *Minimax {
	return &Minimax{
		logger:  logger,
		opening: opening,
	}
}

var defaultMinimax = NewMinimax(slog.New(slog.NewTextHandler(io.Discard, nil)), OpeningCorner)

// BestMove returns the optimal move for the player to move using the default settings.
func BestMove(board entity.Board) (entity.Move, error) {
	return defaultMinimax.BestMove(board)
}

func (that *Minimax) Name() string {
	return StrategyMinimax
}

func (that *Minimax) NextMove(board entity.Board) (entity.Move, error) {
	return that.BestMove(board)
}

// BestMove returns the optimal move for the player to move.
// The board must not be terminal.
func (that *Minimax) BestMove(board entity.Board) (entity.Move, error) {
	if board == entity.InitialState() {
		if move, ok := that.opening.Move(); ok {
			that.logger.Debug("opening move", "method", "BestMove", "opening", that.opening, "move", move.String())
			return move, nil
		}
	}

	move, _, err := that.Evaluate(board)
	if err != nil {
		return entity.Move{}, err
	}

	return move, nil
}

// Evaluate runs the full search and returns the chosen move with its minimax value.
// Ties keep the first move in row-major order; a move reaching the mover's best
// possible value stops the search.
func (that *Minimax) Evaluate(board entity.Board) (entity.Move, int, error) {
	if board.IsTerminal() {
		return entity.Move{}, 0, fmt.Errorf("%w: board %s", apperror.ErrGameFinished, board)
	}

	log := that.logger.With("method", "Evaluate", "board", board.String())

	mover := board.CurrentPlayer()
	target := winValue(mover)

	var (
		bestMove  entity.Move
		bestValue int
		found     bool
	)

	for _, move := range board.LegalMoves() {
		child := result(board, move)

		var value int
		if mover == entity.X {
			value = that.MinValue(child)
		} else {
			value = that.MaxValue(child)
		}

		log.Debug("candidate", "move", move.String(), "result", child.String(), "value", value, "outcome", DescribeValue(value))

		if value == target {
			return move, value, nil
		}

		if !found || (mover == entity.X && value > bestValue) || (mover == entity.O && value < bestValue) {
			bestMove, bestValue, found = move, value, true
		}
	}

	return bestMove, bestValue, nil
}

// Value is the minimax value of the board with the player to move choosing.
func (that *Minimax) Value(board entity.Board) int {
	if board.CurrentPlayer() == entity.X {
		return that.MaxValue(board)
	}
	return that.MinValue(board)
}

// MaxValue is the best utility X can force from the board.
func (that *Minimax) MaxValue(board entity.Board) int {
	if board.IsTerminal() {
		return board.Utility()
	}

	value := math.MinInt
	for _, move := range board.LegalMoves() {
		value = max(value, that.MinValue(result(board, move)))
	}
	return value
}

// MinValue is the best utility O can force from the board.
func (that *Minimax) MinValue(board entity.Board) int {
	if board.IsTerminal() {
		return board.Utility()
	}

	value := math.MaxInt
	for _, move := range board.LegalMoves() {
		value = min(value, that.MaxValue(result(board, move)))
	}
	return value
}

func winValue(mark entity.Mark) int {
	if mark == entity.X {
		return 1
	}
	return -1
}

// result applies a move taken from LegalMoves, which cannot be illegal.
func result(board entity.Board, move entity.Move) entity.Board {
	next, err := board.ApplyMove(move)
	if err != nil {
		panic(fmt.Errorf("legal move rejected: %w", err))
	}
	return next
}
