/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package tchess

// recomputePins clears every piece's Pin debuff, then for each color's
// king walks every enemy slider's rays: if a ray meets exactly one piece of
// the king's color before reaching the king, that piece is pinned along
// the ray's direction.
func (b *Board) recomputePins() {
	for _, c := range [2]Color{White, Black} {
		for _, p := range b.Map.ActivePieces(c) {
			p.RemoveDebuff(DebuffPin)
		}
	}

	for _, kingColor := range [2]Color{White, Black} {
		kingID, ok := b.Map.King(kingColor)
		if !ok {
			continue
		}
		king, ok := b.Map.Piece(kingID)
		if !ok {
			continue
		}
		attackerColor := kingColor.Opposite()
		for _, slider := range b.Map.ActivePieces(attackerColor) {
			dirs := slidingDirections(slider.Kind)
			if dirs == nil {
				continue
			}
			for _, dir := range dirs {
				b.checkPinAlongRay(slider, dir, king, kingColor)
			}
		}
	}
}

// slidingDirections returns the ray directions kind slides along, or nil
// for a non-sliding piece.
func slidingDirections(kind PieceKind) []Vector {
	switch kind {
	case Queen:
		return DiagonalAndLineVectors()
	case Rook:
		return LineVectors()
	case Bishop:
		return DiagonalVectors()
	default:
		return nil
	}
}

// checkPinAlongRay walks from slider along dir: the first occupied square
// must belong to kingColor to be a pin candidate; if the next occupied
// square after that is the king, the candidate is pinned along dir.
func (b *Board) checkPinAlongRay(slider *Piece, dir Vector, king *Piece, kingColor Color) {
	var blocker *Piece
	for _, pt := range VectorPointsWithoutInitial(slider.Position, b.Dim, dir) {
		sq := b.Map.BoardSquare(pt)
		if sq.IsVoid() {
			return
		}
		if sq.IsEmpty() {
			continue
		}

		occupantID, _ := sq.PieceID()

		if blocker == nil {
			if occupantID == king.ID {
				return // direct check, no intervening piece to pin
			}
			occ, ok := b.Map.Piece(occupantID)
			if !ok || occ.Color != kingColor {
				return // first piece on the ray isn't the king's own
			}
			blocker = occ
			continue
		}

		if occupantID == king.ID {
			blocker.AddDebuff(PinDebuff(dir))
		}
		return
	}
}
