/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package tchess

import "fmt"

// PieceMoveKind tags the PieceMove variant.
type PieceMoveKind int8

const (
	MoveKindPoint PieceMoveKind = iota
	MoveKindLongMove
	MoveKindEnPassant
	MoveKindPromote
	MoveKindCastle
	MoveKindUnreachable
)

// PieceMove is a candidate move for a single piece. It is a plain
// comparable struct (no pointers or slices) so it can be used directly as a
// map/set key, matching the hashable move type the moves index relies on.
type PieceMove struct {
	Kind PieceMoveKind

	// Point is the destination square for Point, LongMove and Promote moves,
	// and the landing square for an EnPassant capture.
	Point Point
	// EnPassantVictim is the square of the pawn removed by an EnPassant
	// capture; only meaningful when Kind == MoveKindEnPassant.
	EnPassantVictim Point
	// Promote is the piece kind a pawn promotes to; only meaningful when
	// Kind == MoveKindPromote.
	Promote PromoteKind
	// Castle fully describes a castling move; only meaningful when
	// Kind == MoveKindCastle.
	Castle CastlePoints
}

// PointMove is a simple move or capture to p.
func PointMove(p Point) PieceMove { return PieceMove{Kind: MoveKindPoint, Point: p} }

// LongMoveTo is a pawn's two-square advance to p.
func LongMoveTo(p Point) PieceMove { return PieceMove{Kind: MoveKindLongMove, Point: p} }

// EnPassantMove captures the pawn at victim by landing on landing.
func EnPassantMove(landing, victim Point) PieceMove {
	return PieceMove{Kind: MoveKindEnPassant, Point: landing, EnPassantVictim: victim}
}

// PromoteMove lands a pawn on p, promoting it to kind.
func PromoteMove(p Point, kind PromoteKind) PieceMove {
	return PieceMove{Kind: MoveKindPromote, Point: p, Promote: kind}
}

// CastleMove performs the given castling.
func CastleMove(cp CastlePoints) PieceMove {
	return PieceMove{Kind: MoveKindCastle, Castle: cp}
}

// UnreachableMove is the null move - a move that cannot be completed.
func UnreachableMove() PieceMove { return PieceMove{Kind: MoveKindUnreachable} }

// Destination returns the square the move ends on, if any.
func (m PieceMove) Destination() (Point, bool) {
	switch m.Kind {
	case MoveKindPoint, MoveKindLongMove, MoveKindEnPassant, MoveKindPromote:
		return m.Point, true
	case MoveKindCastle:
		return m.Castle.KingDest, true
	default:
		return Point{}, false
	}
}

// CapturedSquare returns the square whose occupant this move removes from
// the board, if any. For every kind but EnPassant that's the destination
// square; EnPassant removes a pawn that never sat on the landing square.
func (m PieceMove) CapturedSquare() (Point, bool) {
	if m.Kind == MoveKindEnPassant {
		return m.EnPassantVictim, true
	}
	return m.Destination()
}

func (m PieceMove) String() string {
	switch m.Kind {
	case MoveKindPoint:
		return fmt.Sprintf("Move%s", m.Point)
	case MoveKindLongMove:
		return fmt.Sprintf("LongMove%s", m.Point)
	case MoveKindEnPassant:
		return fmt.Sprintf("EnPassant(%s,%s)", m.Point, m.EnPassantVictim)
	case MoveKindPromote:
		return fmt.Sprintf("Promote(%s,%s)", m.Point, m.Promote)
	case MoveKindCastle:
		side := "Queen"
		if m.Castle.Side == CastleKingSide {
			side = "King"
		}
		return fmt.Sprintf("Castle(%s side)", side)
	default:
		return "UnreachablePoint"
	}
}
