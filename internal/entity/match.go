package entity

const (
	ResultXWins = "X"
	ResultOWins = "O"
	ResultTie   = "-"
)

// Match is a finished game between two strategies.
type Match struct {
	ID      string `json:"id"`
	PlayerX string `json:"player_x"`
	PlayerO string `json:"player_o"`
	Moves   []Move `json:"moves"`
	Board   Board  `json:"-"`
	Result  string `json:"result"`
	Utility int    `json:"utility"`
}

func NewMatch(id, playerX, playerO string) *Match {
	return &Match{
		ID:      id,
		PlayerX: playerX,
		PlayerO: playerO,
		Board:   InitialState(),
	}
}

// Finish records the outcome of the final board.
func (that *Match) Finish() {
	switch that.Board.Winner() {
	case X:
		that.Result = ResultXWins
	case O:
		that.Result = ResultOWins
	default:
		that.Result = ResultTie
	}
	that.Utility = that.Board.Utility()
}

func (that *Match) IsTie() bool {
	return that.Result == ResultTie
}
