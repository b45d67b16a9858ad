/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package tchess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Scenario 1: a slider's attack ray continues through the enemy king, and
// the king's own legal moves exclude the square beyond it.
func TestXRayThroughEnemyKing(t *testing.T) {
	sq := newRectSquares(1, 1, 4, 4)
	b := NewBoard(BoardConfig{Squares: sq})

	bishop := b.AddPiece(Bishop, White, nil, nil, Point{X: 1, Y: 1})
	b.AddPiece(King, Black, nil, nil, Point{X: 2, Y: 2})

	points, ok := b.StrategyPoints(White).PointsOf(bishop)
	require.True(t, ok)
	assert.Contains(t, points, Attack(Point{X: 2, Y: 2}))
	assert.Contains(t, points, Attack(Point{X: 3, Y: 3}))

	blackKingID, ok := b.King(Black)
	require.True(t, ok)
	moves, _ := b.Moves(Black).MovesOf(blackKingID)
	for move := range moves {
		dest, ok := move.Destination()
		require.True(t, ok)
		assert.NotEqual(t, Point{X: 3, Y: 3}, dest)
	}

	if verbose {
		t.Logf("bishop strategy points: %v", points)
	}
}

// Scenario 2: capturing a piece removes it from every index.
func TestCaptureRemovesAllIndices(t *testing.T) {
	sq := newRectSquares(1, 1, 4, 4)
	b := NewBoard(BoardConfig{Squares: sq})

	whiteBishop := b.AddPiece(Bishop, White, nil, nil, Point{X: 2, Y: 2})
	b.AddPiece(King, White, nil, nil, Point{X: 1, Y: 1})
	blackBishop := b.AddPiece(Bishop, Black, nil, nil, Point{X: 3, Y: 3})
	b.AddPiece(King, Black, nil, nil, Point{X: 4, Y: 4})

	err := b.MovePiece(whiteBishop, PointMove(Point{X: 3, Y: 3}))
	require.NoError(t, err)

	_, stillActive := b.ActivePieces(Black)[blackBishop]
	assert.False(t, stillActive)

	_, hasPoints := b.StrategyPoints(Black).PointsOf(blackBishop)
	assert.False(t, hasPoints)

	_, hasMoves := b.Moves(Black).MovesOf(blackBishop)
	assert.False(t, hasMoves)

	piece, ok := b.PieceAt(Point{X: 3, Y: 3})
	require.True(t, ok)
	assert.Equal(t, whiteBishop, piece.ID)
}

// Scenario 3: a pinned knight has no legal moves at all.
func TestPinnedKnightHasNoMoves(t *testing.T) {
	sq := newRectSquares(1, 1, 4, 4)
	b := NewBoard(BoardConfig{Squares: sq})

	knight := b.AddPiece(Knight, White, nil, nil, Point{X: 2, Y: 2})
	b.AddPiece(King, White, nil, nil, Point{X: 2, Y: 1})
	b.AddPiece(Rook, Black, nil, nil, Point{X: 2, Y: 3})
	b.AddPiece(King, Black, nil, nil, Point{X: 4, Y: 4})

	piece, ok := b.Map.Piece(knight)
	require.True(t, ok)
	_, pinned := piece.Pin()
	assert.True(t, pinned)

	moves, ok := b.Moves(White).MovesOf(knight)
	if ok {
		assert.Empty(t, moves)
	}
}

// Scenario 4: an en-passant capture is offered for exactly one reply, and
// is withdrawn once an unrelated move intervenes.
func TestEnPassantWindowIsOneTurn(t *testing.T) {
	sq := newRectSquares(1, 1, 8, 8)
	b := NewBoard(BoardConfig{Squares: sq})

	whitePawn := b.AddPiece(Pawn, White, nil, nil, Point{X: 2, Y: 5})
	blackPawn := b.AddPiece(Pawn, Black, []Buff{AdditionalPointBuff()}, nil, Point{X: 3, Y: 7})
	b.AddPiece(King, White, nil, nil, Point{X: 1, Y: 1})
	b.AddPiece(King, Black, nil, nil, Point{X: 8, Y: 8})

	b.SideToMove = Black
	require.NoError(t, b.MovePiece(blackPawn, LongMoveTo(Point{X: 3, Y: 5})))

	want := EnPassantMove(Point{X: 3, Y: 6}, Point{X: 3, Y: 5})
	moves, ok := b.Moves(White).MovesOf(whitePawn)
	require.True(t, ok)
	assert.Contains(t, moves, want)

	require.NoError(t, b.MovePiece(whitePawn, want))

	piece, ok := b.PieceAt(Point{X: 3, Y: 6})
	require.True(t, ok)
	assert.Equal(t, whitePawn, piece.ID)

	_, blackPawnStillThere := b.ActivePieces(Black)[blackPawn]
	assert.False(t, blackPawnStillThere)
}

func TestEnPassantClearedAfterInterveningMove(t *testing.T) {
	sq := newRectSquares(1, 1, 8, 8)
	b := NewBoard(BoardConfig{Squares: sq})

	whitePawn := b.AddPiece(Pawn, White, nil, nil, Point{X: 2, Y: 5})
	blackPawn := b.AddPiece(Pawn, Black, []Buff{AdditionalPointBuff()}, nil, Point{X: 3, Y: 7})
	whiteBishop := b.AddPiece(Bishop, White, nil, nil, Point{X: 1, Y: 1})
	blackBishop := b.AddPiece(Bishop, Black, nil, nil, Point{X: 8, Y: 8})
	b.AddPiece(King, White, nil, nil, Point{X: 5, Y: 1})
	b.AddPiece(King, Black, nil, nil, Point{X: 5, Y: 8})

	b.SideToMove = Black
	require.NoError(t, b.MovePiece(blackPawn, LongMoveTo(Point{X: 3, Y: 5})))
	require.NoError(t, b.MovePiece(whiteBishop, PointMove(Point{X: 2, Y: 2})))
	require.NoError(t, b.MovePiece(blackBishop, PointMove(Point{X: 7, Y: 7})))

	enPassant := EnPassantMove(Point{X: 3, Y: 6}, Point{X: 3, Y: 5})
	moves, ok := b.Moves(White).MovesOf(whitePawn)
	require.True(t, ok)
	assert.NotContains(t, moves, enPassant)
}

// Scenario 5: queen-side castling relocates king and rook and clears the
// king's Castle buff. King starts on e1 (X=5) and the a-file rook (X=1)
// castles to land the king on c1 and the rook on d1, the standard
// queen-side geometry generalized to an 8-wide board.
func TestQueenSideCastlePlacement(t *testing.T) {
	sq := newRectSquares(1, 1, 8, 3)
	b := NewBoard(BoardConfig{Squares: sq})

	kingID := b.AddPiece(King, White, []Buff{CastleBuff()}, nil, Point{X: 5, Y: 1})
	aRookID := b.AddPiece(Rook, White, []Buff{CastleBuff()}, nil, Point{X: 1, Y: 1})
	b.AddPiece(King, Black, nil, nil, Point{X: 5, Y: 3})

	cp, ok := castleGeometry(mustPiece(t, b, kingID), mustPiece(t, b, aRookID), sq.Dimension())
	require.True(t, ok)

	require.NoError(t, b.MovePiece(kingID, CastleMove(cp)))

	king, ok := b.PieceAt(cp.KingDest)
	require.True(t, ok)
	assert.Equal(t, kingID, king.ID)
	assert.False(t, king.HasCastle())

	rook, ok := b.PieceAt(cp.RookDest)
	require.True(t, ok)
	assert.Equal(t, aRookID, rook.ID)

	moves, _ := b.Moves(White).MovesOf(kingID)
	for move := range moves {
		assert.NotEqual(t, MoveKindCastle, move.Kind)
	}
}

func mustPiece(t *testing.T, b *Board, id PieceID) *Piece {
	t.Helper()
	p, ok := b.Map.Piece(id)
	require.True(t, ok)
	return p
}

// Scenario 6: a single check from a slider constrains every other piece's
// moves to captures of the attacker or interpositions on the checking ray,
// while the king keeps its own unconstrained "not into attack" filter.
func TestSingleCheckWithBlockOption(t *testing.T) {
	sq := newRectSquares(1, 1, 4, 8)
	b := NewBoard(BoardConfig{Squares: sq})

	kingID := b.AddPiece(King, White, nil, nil, Point{X: 1, Y: 1})
	rookID := b.AddPiece(Rook, White, nil, nil, Point{X: 2, Y: 8})
	bishopID := b.AddPiece(Bishop, Black, nil, nil, Point{X: 3, Y: 3})
	b.AddPiece(King, Black, nil, nil, Point{X: 4, Y: 8})

	king, ok := b.Map.Piece(kingID)
	require.True(t, ok)
	require.True(t, king.IsInCheck())

	constraints := b.Constraints(White)
	require.True(t, constraints.Enabled)

	rookMoves, ok := constraints.MovesOf(rookID)
	require.True(t, ok)
	for move := range rookMoves {
		dest, ok := move.Destination()
		require.True(t, ok)
		assert.Contains(t, []Point{{X: 3, Y: 3}, {X: 2, Y: 2}}, dest)
	}

	_ = bishopID
}

// Scenario 7: a pawn's double push delivers check and the only legal reply
// is an en-passant capture of that very pawn. Constraint-building must
// compare the attacker's square against the capture's victim square, not
// the en-passant move's landing square.
func TestSingleCheckResolvedByEnPassant(t *testing.T) {
	sq := newRectSquares(1, 1, 4, 8)
	b := NewBoard(BoardConfig{Squares: sq})

	kingID := b.AddPiece(King, White, nil, nil, Point{X: 4, Y: 4})
	whitePawn := b.AddPiece(Pawn, White, nil, nil, Point{X: 2, Y: 5})
	blackPawn := b.AddPiece(Pawn, Black, []Buff{AdditionalPointBuff()}, nil, Point{X: 3, Y: 7})
	b.AddPiece(King, Black, nil, nil, Point{X: 1, Y: 8})

	b.SideToMove = Black
	require.NoError(t, b.MovePiece(blackPawn, LongMoveTo(Point{X: 3, Y: 5})))

	king, ok := b.Map.Piece(kingID)
	require.True(t, ok)
	require.True(t, king.IsInCheck())

	constraints := b.Constraints(White)
	require.True(t, constraints.Enabled)

	want := EnPassantMove(Point{X: 3, Y: 6}, Point{X: 3, Y: 5})
	pawnMoves, ok := constraints.MovesOf(whitePawn)
	require.True(t, ok)
	assert.Contains(t, pawnMoves, want)
	for move := range pawnMoves {
		assert.NotEqual(t, PointMove(Point{X: 2, Y: 6}), move)
	}
}
