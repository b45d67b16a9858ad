/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package tchess

// knightStrategyPoints looks one hop along each jump vector; unlike a
// slider it never continues past the first square.
func knightStrategyPoints(p *Piece, board *BoardMap) []StrategyPoint {
	var out []StrategyPoint

	for _, dir := range JumpVectors() {
		pt, ok := FirstStep(p.Position, board.Dim, dir)
		if !ok {
			continue
		}
		sq := board.BoardSquare(pt)

		if sq.IsVoid() {
			out = append(out, DeadEnd(pt))
			continue
		}
		if sq.IsEmpty() || sq.IsEnemySquare(p.Color) {
			out = append(out, Attack(pt))
		}
		if sq.IsAllySquare(p.Color) {
			out = append(out, Defense(pt))
		}
	}
	return out
}

// knightMoves has no legal moves at all while pinned - no jump vector lines
// up with a line-or-diagonal pin axis, so a pinned knight can never resolve
// the pin by moving.
func knightMoves(p *Piece, board *BoardMap, _ []StrategyPoint) []PieceMove {
	if _, pinned := p.Pin(); pinned {
		return nil
	}

	oppositeKing, _ := board.King(p.Color.Opposite())
	var out []PieceMove
	for _, dir := range JumpVectors() {
		pt, ok := FirstStep(p.Position, board.Dim, dir)
		if !ok {
			continue
		}
		sq := board.BoardSquare(pt)
		if sq.IsVoid() {
			continue
		}
		if sq.IsEmpty() || sq.IsCapturableEnemySquare(p.Color, oppositeKing) {
			out = append(out, PointMove(pt))
		}
	}
	return out
}
