/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package tchess

// kingStrategyPoints projects one step along all eight directions; a king
// never slides, so it behaves exactly like the knight's single-hop walk but
// over the diagonal-and-line vectors instead of jump vectors.
func kingStrategyPoints(p *Piece, board *BoardMap) []StrategyPoint {
	var out []StrategyPoint
	for _, dir := range DiagonalAndLineVectors() {
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

// kingMoves needs the opponent's StrategyIndex to exclude squares that are
// attacked or defended by the other color - capturing a defended piece
// would leave the king in check just as walking into an empty attacked
// square would.
func kingMoves(p *Piece, board *BoardMap, _ []StrategyPoint) []PieceMove {
	panic("kingMoves must be called through kingMovesWithOpponentIndex; see board.go")
}

// kingMovesWithOpponentIndex is the real king move generator. Board calls
// this directly (bypassing Piece.Moves's plain dispatch) since unlike every
// other piece, king legality depends on the opponent's StrategyIndex rather
// than solely on this piece's own pin state.
func kingMovesWithOpponentIndex(p *Piece, board *BoardMap, opponent *StrategyIndex) []PieceMove {
	var out []PieceMove
	for _, dir := range DiagonalAndLineVectors() {
		pt, ok := FirstStep(p.Position, board.Dim, dir)
		if !ok {
			continue
		}
		sq := board.BoardSquare(pt)
		if sq.IsVoid() || sq.IsAllySquare(p.Color) {
			continue
		}
		if opponent.IsUnderAttack(pt) || opponent.IsUnderDefense(pt) {
			continue
		}
		out = append(out, PointMove(pt))
	}

	out = append(out, kingCastleMoves(p, board, opponent)...)
	return out
}

// kingCastleMoves emits one Castle move per side the king still holds the
// Castle buff for, provided the partner rook also carries Castle, every
// square between them is empty, none of the king's transit squares are
// attacked, and the king is not currently in check.
func kingCastleMoves(king *Piece, board *BoardMap, opponent *StrategyIndex) []PieceMove {
	if !king.HasCastle() || king.IsInCheck() {
		return nil
	}

	var out []PieceMove
	for _, rook := range board.ActivePieces(king.Color) {
		if rook.Kind != Rook || !rook.HasCastle() {
			continue
		}
		cp, ok := castleGeometry(king, rook, board.Dim)
		if !ok {
			continue
		}
		if !squaresEmptyBetween(board, king.Position, rook.Position) {
			continue
		}
		intermediate := king.Position.Add((cp.KingDest.X - king.Position.X) / 2, 0)
		if anyAttacked(opponent, king.Position, intermediate, cp.KingDest) {
			continue
		}
		out = append(out, CastleMove(cp))
	}
	return out
}

// castleGeometry derives the destination squares for castling king with
// rook: the king ends two steps toward the rook, the rook ends on the
// square the king passed over, matching standard castling geometry
// generalized to an arbitrary board width.
func castleGeometry(king, rook *Piece, dim Dimension) (CastlePoints, bool) {
	dx := int16(2)
	if rook.Position.X < king.Position.X {
		dx = -2
	}
	kingDest := king.Position.Add(dx, 0)
	rookDest := king.Position.Add(dx/2, 0)
	if !dim.Contains(kingDest) || !dim.Contains(rookDest) {
		return CastlePoints{}, false
	}
	return NewCastlePoints(kingDest, rookDest, king.Position, rook.Position), true
}

func squaresEmptyBetween(board *BoardMap, a, b Point) bool {
	lo, hi := a.X, b.X
	if lo > hi {
		lo, hi = hi, lo
	}
	for x := lo + 1; x < hi; x++ {
		sq := board.BoardSquare(Point{X: x, Y: a.Y})
		if !sq.IsEmpty() {
			return false
		}
	}
	return true
}

func anyAttacked(opponent *StrategyIndex, points ...Point) bool {
	for _, p := range points {
		if opponent.IsUnderAttack(p) {
			return true
		}
	}
	return false
}
