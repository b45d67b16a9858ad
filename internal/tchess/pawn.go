/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package tchess

// pawnForward returns the pawn's forward direction: +y for White, -y for Black.
func pawnForward(c Color) int16 {
	if c == White {
		return 1
	}
	return -1
}

// pawnDiagonals returns the two diagonal vectors a pawn of color c attacks
// and defends along.
func pawnDiagonals(c Color) []Vector {
	if c == White {
		return []Vector{DiagUpLeft, DiagUpRight}
	}
	return []Vector{DiagDownLeft, DiagDownRight}
}

// pawnStrategyPoints reports only diagonal attack/defense squares - a pawn
// never attacks the square it can push to, only the squares it can capture
// on.
func pawnStrategyPoints(p *Piece, board *BoardMap) []StrategyPoint {
	var out []StrategyPoint
	for _, dir := range pawnDiagonals(p.Color) {
		pt, ok := FirstStep(p.Position, board.Dim, dir)
		if !ok {
			continue
		}
		sq := board.BoardSquare(pt)
		if sq.IsVoid() {
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

// pawnMoves implements forward push, double push, diagonal capture, en
// passant and promotion. A pinned pawn may only act along its pin axis,
// same as every other piece, but since a pawn's forward push and its
// diagonal captures lie on different axes the pin can silently eliminate
// one kind of move while leaving the other open.
func pawnMoves(p *Piece, board *BoardMap, _ []StrategyPoint) []PieceMove {
	forward := pawnForward(p.Color)
	var pinAxis Vector
	pinned := false
	if pin, ok := p.Pin(); ok {
		pinAxis, pinned = pin.PinVector, true
	}

	var out []PieceMove

	forwardLine := LineUp
	if p.Color == Black {
		forwardLine = LineDown
	}
	allowed := func(dir Vector) bool {
		return !pinned || dir == pinAxis || dir == pinAxis.Inverse()
	}

	if allowed(forwardLine) {
		p1 := p.Position.Add(0, forward)
		if board.Dim.Contains(p1) {
			sq1 := board.BoardSquare(p1)
			if !sq1.IsVoid() && sq1.IsEmpty() {
				out = append(out, promoteOrPlain(p, board, p1)...)

				if p.HasAdditionalPoint() {
					p2 := p.Position.Add(0, 2*forward)
					if board.Dim.Contains(p2) {
						sq2 := board.BoardSquare(p2)
						if !sq2.IsVoid() && sq2.IsEmpty() {
							out = append(out, LongMoveTo(p2))
						}
					}
				}
			}
		}
	}

	oppositeKing, _ := board.King(p.Color.Opposite())
	for _, dir := range pawnDiagonals(p.Color) {
		if !allowed(dir) {
			continue
		}
		pt, ok := FirstStep(p.Position, board.Dim, dir)
		if !ok {
			continue
		}
		sq := board.BoardSquare(pt)
		if sq.IsVoid() {
			continue
		}
		if sq.IsCapturableEnemySquare(p.Color, oppositeKing) {
			out = append(out, promoteOrPlain(p, board, pt)...)
			continue
		}
		if sq.IsEmpty() {
			if victim, ok := enPassantVictimAt(board, pt, p.Color); ok {
				out = append(out, EnPassantMove(pt, victim))
			}
		}
	}

	return out
}

// promoteOrPlain emits four Promote moves if dest is on the last rank for
// p's color, or a single Point move otherwise.
func promoteOrPlain(p *Piece, board *BoardMap, dest Point) []PieceMove {
	if !isLastRank(board.Dim, p.Color, dest) {
		return []PieceMove{PointMove(dest)}
	}
	moves := make([]PieceMove, 0, len(AllPromoteKinds()))
	for _, kind := range AllPromoteKinds() {
		moves = append(moves, PromoteMove(dest, kind))
	}
	return moves
}

func isLastRank(dim Dimension, c Color, p Point) bool {
	if c == White {
		return p.Y == dim.Max.Y
	}
	return p.Y == dim.Min.Y
}

// enPassantVictimAt reports whether the pawn adjacent to landing (one step
// back along mover's forward direction) is a victim carrying an EnPassant
// buff naming landing as its landing square.
func enPassantVictimAt(board *BoardMap, landing Point, mover Color) (Point, bool) {
	victimPos := landing.Add(0, -pawnForward(mover))
	victim, ok := board.PieceAt(victimPos)
	if !ok || victim.Kind != Pawn || victim.Color == mover {
		return Point{}, false
	}
	buff, ok := victim.EnPassant()
	if !ok || buff.EnPassantLanding != landing {
		return Point{}, false
	}
	return victimPos, true
}
