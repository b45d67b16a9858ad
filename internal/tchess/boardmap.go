/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package tchess

import (
	"github.com/frankkopp/tchess-go/internal/assert"
)

// BoardMap maintains point -> square, the per-color piece registry, and the
// per-color king lookup. All mutation on a void square or an out-of-range
// point is a fatal contract violation.
type BoardMap struct {
	Dim     Dimension
	squares map[Point]BoardSquare
	pieces  [2]map[PieceID]*Piece
	king    [2]PieceID // zero means "no king of this color"
}

// NewBoardMap builds an empty BoardMap bounded by dim, with no squares
// registered yet.
func NewBoardMap(dim Dimension) *BoardMap {
	return &BoardMap{
		Dim:     dim,
		squares: make(map[Point]BoardSquare),
		pieces:  [2]map[PieceID]*Piece{make(map[PieceID]*Piece), make(map[PieceID]*Piece)},
	}
}

// AddSquare registers the intrinsic square at point, used while building the
// board from a SquaresMap.
func (b *BoardMap) AddSquare(p Point, sq BoardSquare) {
	b.squares[p] = sq
}

// BoardSquare returns the square at p, or a void square if p has never been
// registered (mirrors the source's "unwrap_or(VoidSquare)").
func (b *BoardMap) BoardSquare(p Point) BoardSquare {
	if sq, ok := b.squares[p]; ok {
		return sq
	}
	return VoidSquare()
}

// AddPiece places piece onto the square at piece.Position, registers it in
// the active-piece set for its color, and updates the king lookup. The
// target square must already exist and be non-void.
func (b *BoardMap) AddPiece(piece *Piece) {
	sq, ok := b.squares[piece.Position]
	assert.That(ok, "tchess: point %s is out of bounds", piece.Position)
	assert.That(!sq.IsVoid(), "tchess: can't place %s piece onto void square at %s", piece.Kind, piece.Position)

	b.squares[piece.Position] = sq.withPiece(piece.ID)
	b.pieces[piece.Color][piece.ID] = piece
	if piece.Kind == King {
		b.king[piece.Color] = piece.ID
	}
}

// RemovePiece clears the square holding id and removes it from the active
// set. Fails fatally if id is unknown.
func (b *BoardMap) RemovePiece(id PieceID) *Piece {
	piece, ok := b.pieces[id.Color()][id]
	assert.That(ok, "tchess: unknown piece id %s", id)

	sq, ok := b.squares[piece.Position]
	assert.That(ok && !sq.IsVoid(), "tchess: can't take piece off void/out-of-range square at %s", piece.Position)

	b.squares[piece.Position] = sq.withoutPiece()
	delete(b.pieces[id.Color()], id)
	if piece.Kind == King && b.king[id.Color()] == id {
		b.king[id.Color()] = 0
	}
	return piece
}

// ChangePiecePosition moves the piece with id from its current square to
// target, returning its old position. Both squares must be non-void and in
// range.
func (b *BoardMap) ChangePiecePosition(id PieceID, target Point) Point {
	piece, ok := b.pieces[id.Color()][id]
	assert.That(ok, "tchess: unknown piece id %s", id)

	oldSq, ok := b.squares[piece.Position]
	assert.That(ok && !oldSq.IsVoid(), "tchess: source square %s is void or out of range", piece.Position)
	targetSq, ok := b.squares[target]
	assert.That(ok && !targetSq.IsVoid(), "tchess: target square %s is void or out of range", target)

	b.squares[piece.Position] = oldSq.withoutPiece()
	b.squares[target] = targetSq.withPiece(id)
	old := piece.Position
	piece.Position = target
	return old
}

// PieceAt returns the piece occupying p, if any.
func (b *BoardMap) PieceAt(p Point) (*Piece, bool) {
	id, ok := b.BoardSquare(p).PieceID()
	if !ok {
		return nil, false
	}
	piece, ok := b.pieces[id.Color()][id]
	return piece, ok
}

// PieceIDAt returns the id occupying p, if any.
func (b *BoardMap) PieceIDAt(p Point) (PieceID, bool) {
	return b.BoardSquare(p).PieceID()
}

// Piece looks a piece up by id directly.
func (b *BoardMap) Piece(id PieceID) (*Piece, bool) {
	p, ok := b.pieces[id.Color()][id]
	return p, ok
}

// King returns the id of color's king, if one is on the board.
func (b *BoardMap) King(c Color) (PieceID, bool) {
	id := b.king[c]
	return id, id != 0
}

// ActivePieces returns the live registry for color. Callers that need a
// read-only snapshot should copy it; the engine itself uses this directly.
func (b *BoardMap) ActivePieces(c Color) map[PieceID]*Piece {
	return b.pieces[c]
}

// clone returns an independent deep copy: new square/piece maps, and new
// Piece values so mutating the clone never touches the original.
func (b *BoardMap) clone() *BoardMap {
	out := &BoardMap{
		Dim:     b.Dim,
		squares: make(map[Point]BoardSquare, len(b.squares)),
		pieces:  [2]map[PieceID]*Piece{make(map[PieceID]*Piece), make(map[PieceID]*Piece)},
		king:    b.king,
	}
	for p, sq := range b.squares {
		out.squares[p] = sq
	}
	for _, c := range []Color{White, Black} {
		for id, piece := range b.pieces[c] {
			out.pieces[c][id] = piece.clone()
		}
	}
	return out
}
