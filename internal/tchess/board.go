/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package tchess

// BoardConfig supplies everything Board needs to seed its BoardMap and,
// optionally, score candidate moves. Heat may be nil, in which case every
// move scores WeightDelta(0) and MovesMap still provides a total order
// (just an uninformative one) - scoring is a pure convenience for
// evaluation-driven callers, never a legality input.
type BoardConfig struct {
	Squares SquaresMap
	Heat    HeatMap
	// NeedsEval gates whether scoring consults Heat for that color at all,
	// so a caller only paying the HeatMap cost for the side it actually
	// evaluates.
	NeedsEval [2]bool
}

// Board is the synchronous board-state engine: BoardMap plus the derived
// per-color StrategyIndex, MovesMap and MoveConstraints, kept consistent by
// MovePiece's single entry point.
type Board struct {
	Dim        Dimension
	Map        *BoardMap
	SideToMove Color

	ids IdsGenerator

	strategy    [2]*StrategyIndex
	moves       [2]*MovesMap
	constraints [2]*MoveConstraints

	heat      HeatMap
	needsEval [2]bool

	changes []Change
}

// NewBoard builds an empty board over cfg.Squares's field and recomputes
// its (still-empty) derived indices.
func NewBoard(cfg BoardConfig) *Board {
	dim := cfg.Squares.Dimension()
	bm := NewBoardMap(dim)
	for _, p := range dim.Points() {
		if sq, ok := cfg.Squares.SquareAt(p); ok {
			bm.AddSquare(p, sq)
		}
	}

	b := &Board{
		Dim:         dim,
		Map:         bm,
		SideToMove:  White,
		strategy:    [2]*StrategyIndex{NewStrategyIndex(), NewStrategyIndex()},
		moves:       [2]*MovesMap{NewMovesMap(), NewMovesMap()},
		constraints: [2]*MoveConstraints{NewMoveConstraints(), NewMoveConstraints()},
		heat:        cfg.Heat,
		needsEval:   cfg.NeedsEval,
	}
	return b
}

// AddPiece places a freshly-minted piece of kind/color at p carrying the
// given buffs/debuffs, and recomputes every derived index. Intended for
// board setup, not for use mid-game.
func (b *Board) AddPiece(kind PieceKind, c Color, buffs []Buff, debuffs []Debuff, p Point) PieceID {
	b.changes = b.changes[:0]
	id := b.ids.NextID(c)
	piece := NewPiece(id, kind, c, p)
	for _, buff := range buffs {
		piece.AddBuff(buff)
	}
	for _, d := range debuffs {
		piece.AddDebuff(d)
	}
	b.Map.AddPiece(piece)
	b.changes = append(b.changes, addedChange(id, p))
	b.recompute()
	return id
}

// MovePiece applies move to the piece identified by id. On success it
// mutates the board, recomputes every derived index, flips SideToMove and
// returns nil. On an illegal move (wrong turn, unknown piece, move not in
// the piece's current legal set) it returns an error and leaves the board
// unchanged.
func (b *Board) MovePiece(id PieceID, move PieceMove) error {
	if id.Color() != b.SideToMove {
		return ErrWrongSideToMove
	}
	piece, ok := b.Map.Piece(id)
	if !ok {
		return ErrUnknownPiece
	}
	if !b.isLegal(id, move) {
		return ErrIllegalMove
	}

	b.changes = b.changes[:0]

	switch move.Kind {
	case MoveKindPoint, MoveKindLongMove, MoveKindPromote:
		b.captureAt(move.Point)
		old := b.Map.ChangePiecePosition(id, move.Point)
		b.changes = append(b.changes, movedChange(id, old, move.Point))
		if move.Kind == MoveKindPromote {
			piece.Kind = move.Promote.Kind()
		}
	case MoveKindEnPassant:
		b.captureAt(move.EnPassantVictim)
		old := b.Map.ChangePiecePosition(id, move.Point)
		b.changes = append(b.changes, movedChange(id, old, move.Point))
	case MoveKindCastle:
		rookID, _ := b.Map.PieceIDAt(move.Castle.InitialRook)
		oldKing := b.Map.ChangePiecePosition(id, move.Castle.KingDest)
		oldRook := b.Map.ChangePiecePosition(rookID, move.Castle.RookDest)
		b.changes = append(b.changes, movedChange(id, oldKing, move.Castle.KingDest))
		b.changes = append(b.changes, movedChange(rookID, oldRook, move.Castle.RookDest))
	}

	b.updateBuffs(piece, move)
	b.recompute()
	b.SideToMove = b.SideToMove.Opposite()
	return nil
}

// isLegal checks move against the piece's current whitelist: the
// constraint set if the color is in check, otherwise the full MovesMap.
func (b *Board) isLegal(id PieceID, move PieceMove) bool {
	color := id.Color()
	if b.constraints[color].Enabled {
		moves, ok := b.constraints[color].MovesOf(id)
		if !ok {
			return false
		}
		_, ok = moves[move]
		return ok
	}
	moves, ok := b.moves[color].MovesOf(id)
	if !ok {
		return false
	}
	_, ok = moves[move]
	return ok
}

// captureAt removes whatever enemy piece sits at p, if any, marking it
// Captured and recording the change.
func (b *Board) captureAt(p Point) {
	piece, ok := b.Map.PieceAt(p)
	if !ok {
		return
	}
	piece.AddDebuff(CapturedDebuff())
	b.Map.RemovePiece(piece.ID)
	b.strategy[piece.Color].RemovePiece(piece.ID)
	b.moves[piece.Color].RemovePiece(piece.ID)
	b.changes = append(b.changes, removedChange(piece.ID, piece.Position))
}

// updateBuffs applies the buff bookkeeping step of apply_move: castle
// rights are forfeited by the piece(s) that just moved, the mover loses its
// double-push marker, every stale EnPassant buff the mover's own color
// still carries from its previous turn is cleared, and a fresh double push
// grants a new one.
func (b *Board) updateBuffs(piece *Piece, move PieceMove) {
	mover := piece.Color

	piece.RemoveBuff(BuffAdditionalPoint)

	if move.Kind == MoveKindCastle {
		piece.RemoveBuff(BuffCastle)
		b.changes = append(b.changes, castleChange(piece.ID))
		if rookID, ok := b.Map.PieceIDAt(move.Castle.RookDest); ok {
			if rook, ok := b.Map.Piece(rookID); ok {
				rook.RemoveBuff(BuffCastle)
				b.changes = append(b.changes, castleChange(rookID))
			}
		}
	} else if piece.HasCastle() {
		piece.RemoveBuff(BuffCastle)
		b.changes = append(b.changes, castleChange(piece.ID))
	}

	for _, p := range b.Map.ActivePieces(mover) {
		if _, ok := p.EnPassant(); ok {
			p.RemoveBuff(BuffEnPassant)
			b.changes = append(b.changes, enPassantChange(p.ID))
		}
	}

	if move.Kind == MoveKindLongMove {
		landing := piece.Position.Add(0, -pawnForward(mover))
		piece.AddBuff(EnPassantBuff(landing, piece.Position))
		b.changes = append(b.changes, enPassantChange(piece.ID))
	}
}

// recompute rebuilds both colors' StrategyIndex and MovesMap from the
// current BoardMap state, recomputes pins, and then runs check/checkmate
// detection. This is a full recompute rather than the incrementally-scoped
// update described for steps 5-7 of the move pipeline: see DESIGN.md for
// why that simplification preserves every invariant in section 8 of the
// source specification.
func (b *Board) recompute() {
	for _, c := range [2]Color{White, Black} {
		b.strategy[c].Rebuild(b.Map.ActivePieces(c), b.Map)
	}
	b.recomputePins()
	for _, c := range [2]Color{White, Black} {
		b.rebuildMoves(c)
	}
	b.recomputeCheckAndConstraints()
}

// rebuildMoves regenerates color's entire MovesMap. King moves need the
// opponent's StrategyIndex, so they bypass Piece.Moves's plain dispatch.
func (b *Board) rebuildMoves(c Color) {
	mm := NewMovesMap()
	opp := c.Opposite()
	for id, piece := range b.Map.ActivePieces(c) {
		var pieceMoves []PieceMove
		if piece.Kind == King {
			pieceMoves = kingMovesWithOpponentIndex(piece, b.Map, b.strategy[opp])
		} else {
			pieceMoves = piece.Moves(b.Map, nil)
		}
		for _, mv := range pieceMoves {
			mm.Add(id, mv, b.scoreFor(piece, mv))
		}
	}
	b.moves[c] = mm
}

// scoreFor computes the WeightDelta a candidate move earns: the heat-map
// delta between the piece's destination and origin, plus - per the
// capture-scoring policy this implementation chose (see DESIGN.md) - the
// positional value of any piece it captures.
func (b *Board) scoreFor(piece *Piece, move PieceMove) MoveScore {
	if b.heat == nil || !b.needsEval[piece.Color] {
		return WeightDelta(0)
	}
	dest, ok := move.Destination()
	if !ok {
		return WeightDelta(0)
	}

	kind := piece.Kind
	if move.Kind == MoveKindPromote {
		kind = move.Promote.Kind()
	}

	before := b.heat.PositionalValue(piece.Kind, piece.Color, piece.Position)
	after := b.heat.PositionalValue(kind, piece.Color, dest)
	delta := after - before

	if captured, ok := b.Map.PieceAt(dest); ok && captured.Color != piece.Color {
		delta += b.heat.PositionalValue(captured.Kind, captured.Color, dest)
	} else if move.Kind == MoveKindEnPassant {
		if victim, ok := b.Map.PieceAt(move.EnPassantVictim); ok {
			delta += b.heat.PositionalValue(victim.Kind, victim.Color, victim.Position)
		}
	}

	return WeightDelta(delta)
}

// recomputeCheckAndConstraints clears both kings' Check/Checkmate debuffs
// and both colors' constraint sets, then re-derives them from the fresh
// StrategyIndex pair: a king is in check iff its square is attacked by the
// opposite color, and an enabled-but-empty constraint set is checkmate.
func (b *Board) recomputeCheckAndConstraints() {
	for _, c := range [2]Color{White, Black} {
		b.constraints[c].Clear()
		if kingID, ok := b.Map.King(c); ok {
			if king, ok := b.Map.Piece(kingID); ok {
				king.RemoveDebuff(DebuffCheck)
				king.RemoveDebuff(DebuffCheckmate)
			}
		}
	}

	for _, attackerColor := range [2]Color{White, Black} {
		defender := attackerColor.Opposite()
		kingID, ok := b.Map.King(defender)
		if !ok {
			continue
		}
		king, ok := b.Map.Piece(kingID)
		if !ok {
			continue
		}
		attackers := b.strategy[attackerColor].PiecesAt(Attack(king.Position))
		if len(attackers) == 0 {
			continue
		}
		king.AddDebuff(CheckDebuff())
		b.buildConstraints(defender, attackers, king)
		if b.constraints[defender].IsEmpty() {
			king.AddDebuff(CheckmateDebuff())
		}
	}
}

// buildConstraints whitelists, for the side in check: every king move
// (unconditionally), and - only when there is exactly one checker - every
// other piece's moves that capture the checker or, if it's a slider,
// interpose somewhere along its ray to the king.
func (b *Board) buildConstraints(sideInCheck Color, attackers map[PieceID]struct{}, king *Piece) {
	c := b.constraints[sideInCheck]
	c.Enabled = true

	if kingMoves, ok := b.moves[sideInCheck].MovesOf(king.ID); ok {
		for move := range kingMoves {
			score, _ := b.moves[sideInCheck].ScoreFor(king.ID, move)
			c.Add(king.ID, move, score)
		}
	}

	if len(attackers) != 1 {
		return // double check: only king moves are legal
	}
	var attackerID PieceID
	for id := range attackers {
		attackerID = id
	}
	attacker, ok := b.Map.Piece(attackerID)
	if !ok {
		return
	}

	allowedDest := map[Point]struct{}{attacker.Position: {}}
	if isSlider(attacker.Kind) {
		if dir, ok := VectorDirection(attacker.Position, king.Position); ok {
			for _, pt := range VectorPointsWithoutInitial(attacker.Position, b.Dim, dir) {
				if pt == king.Position {
					break
				}
				allowedDest[pt] = struct{}{}
			}
		}
	}

	for id, piece := range b.Map.ActivePieces(sideInCheck) {
		if piece.Kind == King {
			continue
		}
		moves, ok := b.moves[sideInCheck].MovesOf(id)
		if !ok {
			continue
		}
		for move := range moves {
			// CapturedSquare, not Destination: an EnPassant capture removes
			// the checking pawn from its own square, not from the landing
			// square the mover ends up on.
			sq, ok := move.CapturedSquare()
			if !ok {
				continue
			}
			if _, allowed := allowedDest[sq]; allowed {
				score, _ := b.moves[sideInCheck].ScoreFor(id, move)
				c.Add(id, move, score)
			}
		}
	}
}

func isSlider(kind PieceKind) bool {
	return kind == Queen || kind == Rook || kind == Bishop
}

// ActivePieces returns every live piece of color c.
func (b *Board) ActivePieces(c Color) map[PieceID]*Piece {
	return b.Map.ActivePieces(c)
}

// Moves returns color's current MovesMap.
func (b *Board) Moves(c Color) *MovesMap {
	return b.moves[c]
}

// StrategyPoints returns color's current StrategyIndex.
func (b *Board) StrategyPoints(c Color) *StrategyIndex {
	return b.strategy[c]
}

// Constraints returns color's current MoveConstraints.
func (b *Board) Constraints(c Color) *MoveConstraints {
	return b.constraints[c]
}

// PieceAt returns the piece occupying p, if any.
func (b *Board) PieceAt(p Point) (*Piece, bool) {
	return b.Map.PieceAt(p)
}

// King returns color's king id, if one is on the board.
func (b *Board) King(c Color) (PieceID, bool) {
	return b.Map.King(c)
}

// ToVec returns every active piece on the board, in no particular order.
func (b *Board) ToVec() []*Piece {
	out := make([]*Piece, 0, len(b.Map.pieces[White])+len(b.Map.pieces[Black]))
	for _, c := range [2]Color{White, Black} {
		for _, p := range b.Map.ActivePieces(c) {
			out = append(out, p)
		}
	}
	return out
}

// DrainChanges returns the Change stream produced by the most recent
// AddPiece/MovePiece call and clears it.
func (b *Board) DrainChanges() []Change {
	out := b.changes
	b.changes = nil
	return out
}

// Clone returns an independent deep copy suitable for handing to a
// concurrent search worker: a fresh BoardMap with copied pieces, and
// freshly rebuilt derived indices.
func (b *Board) Clone() *Board {
	clone := &Board{
		Dim:         b.Dim,
		SideToMove:  b.SideToMove,
		ids:         b.ids,
		heat:        b.heat,
		needsEval:   b.needsEval,
		strategy:    [2]*StrategyIndex{NewStrategyIndex(), NewStrategyIndex()},
		moves:       [2]*MovesMap{NewMovesMap(), NewMovesMap()},
		constraints: [2]*MoveConstraints{NewMoveConstraints(), NewMoveConstraints()},
	}
	clone.Map = b.Map.clone()
	clone.recompute()
	return clone
}
