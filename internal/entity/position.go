package entity

// Position is a solved non-terminal board as kept in the tablebase.
type Position struct {
	Board    string `json:"board"`
	Turn     string `json:"turn"`
	Value    int    `json:"value"`
	BestMove Move   `json:"best_move"`
}

func NewPosition(board Board, value int, bestMove Move) *Position {
	return &Position{
		Board:    board.String(),
		Turn:     board.CurrentPlayer().String(),
		Value:    value,
		BestMove: bestMove,
	}
}
