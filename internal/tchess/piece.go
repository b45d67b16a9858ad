/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package tchess

import "fmt"

// Piece is a single unit on the board: its identity, kind, color, current
// position, and the buffs/debuffs currently attached to it.
type Piece struct {
	ID       PieceID
	Kind     PieceKind
	Color    Color
	Position Point

	buffs   buffSet
	debuffs debuffSet
}

// NewPiece builds a fresh piece with no buffs or debuffs.
func NewPiece(id PieceID, kind PieceKind, c Color, pos Point) *Piece {
	return &Piece{
		ID:       id,
		Kind:     kind,
		Color:    c,
		Position: pos,
		buffs:    newBuffSet(nil),
		debuffs:  newDebuffSet(nil),
	}
}

func (p *Piece) HasCastle() bool { return p.buffs.has(BuffCastle) }

func (p *Piece) EnPassant() (Buff, bool) { return p.buffs.get(BuffEnPassant) }

func (p *Piece) HasAdditionalPoint() bool { return p.buffs.has(BuffAdditionalPoint) }

func (p *Piece) AddBuff(b Buff) { p.buffs.add(b) }

func (p *Piece) RemoveBuff(k BuffKind) { p.buffs.remove(k) }

func (p *Piece) IsCaptured() bool { return p.debuffs.has(DebuffCaptured) }

func (p *Piece) IsInCheck() bool { return p.debuffs.has(DebuffCheck) }

func (p *Piece) IsCheckmate() bool { return p.debuffs.has(DebuffCheckmate) }

func (p *Piece) Pin() (Debuff, bool) { return p.debuffs.get(DebuffPin) }

func (p *Piece) AddDebuff(d Debuff) { p.debuffs.add(d) }

func (p *Piece) RemoveDebuff(k DebuffKind) { p.debuffs.remove(k) }

// ClearDebuffs drops every debuff the piece carries, Captured included.
// Board's recompute pass does not call it; it removes Check, Checkmate and
// Pin one kind at a time instead.
func (p *Piece) ClearDebuffs() {
	p.debuffs = newDebuffSet(nil)
}

// StrategyPoints computes every StrategyPoint this piece projects onto the
// board, dispatching to the per-kind generator.
func (p *Piece) StrategyPoints(board *BoardMap) []StrategyPoint {
	switch p.Kind {
	case King:
		return kingStrategyPoints(p, board)
	case Queen:
		return queenStrategyPoints(p, board)
	case Rook:
		return rookStrategyPoints(p, board)
	case Bishop:
		return bishopStrategyPoints(p, board)
	case Knight:
		return knightStrategyPoints(p, board)
	case Pawn:
		return pawnStrategyPoints(p, board)
	default:
		panic(fmt.Sprintf("tchess: unknown piece kind %v", p.Kind))
	}
}

// Moves computes every PieceMove available to this piece on board,
// dispatching to the per-kind generator; the generators read the board
// directly and ignore points. King legality
// depends on the opponent's StrategyIndex rather than this piece alone, so
// callers must use Board's king move path instead of calling this on a
// King; Moves panics if asked to.
func (p *Piece) Moves(board *BoardMap, points []StrategyPoint) []PieceMove {
	switch p.Kind {
	case King:
		return kingMoves(p, board, points)
	case Queen:
		return queenMoves(p, board, points)
	case Rook:
		return rookMoves(p, board, points)
	case Bishop:
		return bishopMoves(p, board, points)
	case Knight:
		return knightMoves(p, board, points)
	case Pawn:
		return pawnMoves(p, board, points)
	default:
		panic(fmt.Sprintf("tchess: unknown piece kind %v", p.Kind))
	}
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s%s@%s", p.Color, p.Kind, p.Position)
}

// clone returns an independent copy - the buff/debuff maps are copied so
// mutating the clone never touches the original.
func (p *Piece) clone() *Piece {
	c := *p
	c.buffs = make(buffSet, len(p.buffs))
	for k, v := range p.buffs {
		c.buffs[k] = v
	}
	c.debuffs = make(debuffSet, len(p.debuffs))
	for k, v := range p.debuffs {
		c.debuffs[k] = v
	}
	return &c
}
