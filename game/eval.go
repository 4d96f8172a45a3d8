package game

// EvaluateMaterial tallies the squares each player holds and scores the
// difference from player's perspective
func EvaluateMaterial(b Board, player Color) int {
	return b.NumOfColor(player) - b.NumOfColor(player.Opposite())
}

// EvaluateSpots tallies the spots each player has on the board and scores the
// difference from player's perspective
func EvaluateSpots(b Board, player Color) int {
	own, opp := tallySpots(b, player)
	return own - opp
}

// EvaluateSquaresAndSpots weighs held squares above spots, so spots only break
// ties between positions with the same material
func EvaluateSquaresAndSpots(b Board, player Color) int {
	own, opp := tallySpots(b, player)
	squares := EvaluateMaterial(b, player)
	// A square never holds more than 4 spots, so 4*N*N+1 dominates any spot difference
	weight := 4*b.Size()*b.Size() + 1
	return squares*weight + (own - opp)
}

// EvaluateTerminalOnly scores every unfinished position as 0, leaving only
// wins and losses to separate moves
func EvaluateTerminalOnly(b Board, player Color) int {
	return 0
}

func tallySpots(b Board, player Color) (own, opp int) {
	opponent := player.Opposite()
	for i := 0; i < b.Size()*b.Size(); i++ {
		switch b.Color(i) {
		case player:
			own += b.Spots(i)
		case opponent:
			opp += b.Spots(i)
		}
	}
	return own, opp
}
