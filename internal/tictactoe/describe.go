package tictactoe

// DescribeValue explains a minimax value in words.
func DescribeValue(value int) string {
	switch {
	case value > 0:
		return "If X plays optimally, X wins"
	case value < 0:
		return "If O plays optimally, O wins"
	default:
		return "If both play optimally, tie"
	}
}
