/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package tchess

// slidingStrategyPoints is the shared ray-walking algorithm behind the
// queen, rook and bishop: walk each direction until a square can't be
// looked through, reporting dead ends, attacks and defenses along the way.
func slidingStrategyPoints(p *Piece, board *BoardMap, directions []Vector) []StrategyPoint {
	var out []StrategyPoint
	oppositeKing, _ := board.King(p.Color.Opposite())

	for _, dir := range directions {
		for _, pt := range VectorPointsWithoutInitial(p.Position, board.Dim, dir) {
			sq := board.BoardSquare(pt)

			if sq.IsVoid() {
				out = append(out, DeadEnd(pt))
				break
			}
			if sq.IsEmpty() || sq.IsEnemySquare(p.Color) {
				out = append(out, Attack(pt))
			}
			if sq.IsAllySquare(p.Color) {
				out = append(out, Defense(pt))
			}
			if !sq.CanLookThrough(p.Color, oppositeKing) {
				break
			}
		}
	}
	return out
}

// slidingMoves is the shared legal-move walk for sliders: stop at the first
// occupied square (including it only if it's a capturable enemy), and
// restrict to the pin axis when pinned.
func slidingMoves(p *Piece, board *BoardMap, directions []Vector) []PieceMove {
	if pin, ok := p.Pin(); ok {
		directions = onlyPinAxis(directions, pin.PinVector)
	}
	oppositeKing, _ := board.King(p.Color.Opposite())

	var out []PieceMove
	for _, dir := range directions {
		for _, pt := range VectorPointsWithoutInitial(p.Position, board.Dim, dir) {
			sq := board.BoardSquare(pt)
			if sq.IsVoid() {
				break
			}
			if sq.IsEmpty() || sq.IsCapturableEnemySquare(p.Color, oppositeKing) {
				out = append(out, PointMove(pt))
			}
			if !sq.IsEmpty() {
				break
			}
		}
	}
	return out
}

// onlyPinAxis keeps only the directions that lie along v or its inverse -
// the single axis a pinned slider may still move on.
func onlyPinAxis(directions []Vector, v Vector) []Vector {
	inv := v.Inverse()
	var out []Vector
	for _, d := range directions {
		if d == v || d == inv {
			out = append(out, d)
		}
	}
	return out
}
