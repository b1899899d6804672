package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/apperror"
)

const boardSize = 3

// Mark is the content of a single cell.
type Mark uint8

const (
	Empty Mark = iota
	X
	O
)

func (that Mark) String() string {
	switch that {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return "."
	}
}

// Opponent returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}

// Move addresses a cell by row and column, both zero based.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (that Move) String() string {
	return fmt.Sprintf("(%d, %d)", that.Row, that.Col)
}

func (that Move) onBoard() bool {
	return that.Row >= 0 && that.Row < boardSize && that.Col >= 0 && that.Col < boardSize
}

// WinLines lists the rows, columns and diagonals that end the game when filled by one mark.
var WinLines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is a 3x3 grid. It is a value type: every operation returns a new board.
type Board [boardSize][boardSize]Mark

// InitialState returns the empty board.
func InitialState() Board {
	return Board{}
}

func (that Board) count(mark Mark) int {
	n := 0
	for _, row := range that {
		for _, cell := range row {
			if cell == mark {
				n++
			}
		}
	}
	return n
}

// CurrentPlayer returns the mark that moves next. X always starts.
func (that Board) CurrentPlayer() Mark {
	xCount, oCount := that.count(X), that.count(O)
	if xCount > oCount {
		return O
	}
	return X
}

// LegalMoves returns all empty cells in row-major order.
func (that Board) LegalMoves() []Move {
	moves := make([]Move, 0, boardSize*boardSize)
	for i, row := range that {
		for j, cell := range row {
			if cell == Empty {
				moves = append(moves, Move{Row: i, Col: j})
			}
		}
	}
	return moves
}

// ApplyMove places the current player's mark on the given cell and returns the resulting board.
// The receiver is left untouched. An occupied or off-board cell yields ErrIllegalMove and a zero board.
func (that Board) ApplyMove(move Move) (Board, error) {
	if !move.onBoard() {
		return Board{}, fmt.Errorf("%w: cell %s is off the board", apperror.ErrIllegalMove, move)
	}

	if that[move.Row][move.Col] != Empty {
		return Board{}, fmt.Errorf("%w: cell %s is already occupied", apperror.ErrIllegalMove, move)
	}

	next := that
	next[move.Row][move.Col] = that.CurrentPlayer()

	return next, nil
}

// Winner returns the mark that completed a line, or Empty.
func (that Board) Winner() Mark {
	for _, line := range WinLines {
		a := that[line[0].Row][line[0].Col]
		b := that[line[1].Row][line[1].Col]
		c := that[line[2].Row][line[2].Col]
		if a != Empty && a == b && b == c {
			return a
		}
	}
	return Empty
}

// IsFull reports whether no empty cell remains.
func (that Board) IsFull() bool {
	return that.count(Empty) == 0
}

// IsTerminal reports whether the game on this board is over.
func (that Board) IsTerminal() bool {
	return that.Winner() != Empty || that.IsFull()
}

// Utility is 1 when X won, -1 when O won and 0 otherwise.
// It only has meaning on terminal boards.
func (that Board) Utility() int {
	switch that.Winner() {
	case X:
		return 1
	case O:
		return -1
	default:
		return 0
	}
}

// String renders the board row-major as nine characters, e.g. "XO.X.....".
func (that Board) String() string {
	var sb strings.Builder
	sb.Grow(boardSize * boardSize)
	for _, row := range that {
		for _, cell := range row {
			sb.WriteString(cell.String())
		}
	}
	return sb.String()
}

// Rows renders the board as three lines, for logs.
func (that Board) Rows() []string {
	rows := make([]string, 0, boardSize)
	s := that.String()
	for i := 0; i < boardSize; i++ {
		rows = append(rows, s[i*boardSize:(i+1)*boardSize])
	}
	return rows
}

// ParseBoard reads the form produced by String. '-', '_' and ' ' are accepted as empty,
// '/' and '|' are ignored so "XO./...|..." style input works.
func ParseBoard(s string) (Board, error) {
	var board Board

	n := 0
	for _, r := range s {
		var mark Mark
		switch r {
		case '/', '|', '\n':
			continue
		case 'X', 'x':
			mark = X
		case 'O', 'o':
			mark = O
		case '.', '-', '_', ' ':
			mark = Empty
		default:
			return Board{}, fmt.Errorf("%w: unexpected character %q", apperror.ErrInvalidBoard, r)
		}

		if n >= boardSize*boardSize {
			return Board{}, fmt.Errorf("%w: more than %d cells", apperror.ErrInvalidBoard, boardSize*boardSize)
		}

		board[n/boardSize][n%boardSize] = mark
		n++
	}

	if n != boardSize*boardSize {
		return Board{}, fmt.Errorf("%w: got %d cells, want %d", apperror.ErrInvalidBoard, n, boardSize*boardSize)
	}

	if diff := board.count(X) - board.count(O); diff != 0 && diff != 1 {
		return Board{}, fmt.Errorf("%w: %d X marks against %d O marks", apperror.ErrInvalidBoard, board.count(X), board.count(O))
	}

	return board, nil
}
