/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package tchess

// StrategyIndex is a bidirectional index of one color's StrategyPoints:
// which pieces project onto a given point, and which points a given piece
// projects onto. Board rebuilds both colors' indices wholesale after every
// AddPiece and MovePiece.
type StrategyIndex struct {
	pointToPieces map[StrategyPoint]map[PieceID]struct{}
	pieceToPoints map[PieceID][]StrategyPoint
}

// NewStrategyIndex builds an empty index.
func NewStrategyIndex() *StrategyIndex {
	return &StrategyIndex{
		pointToPieces: make(map[StrategyPoint]map[PieceID]struct{}),
		pieceToPoints: make(map[PieceID][]StrategyPoint),
	}
}

// Add associates point with id.
func (s *StrategyIndex) Add(point StrategyPoint, id PieceID) {
	if s.pointToPieces[point] == nil {
		s.pointToPieces[point] = make(map[PieceID]struct{})
	}
	s.pointToPieces[point][id] = struct{}{}
	s.pieceToPoints[id] = append(s.pieceToPoints[id], point)
}

// RemovePiece drops every association for id, e.g. on capture.
func (s *StrategyIndex) RemovePiece(id PieceID) {
	points := s.pieceToPoints[id]
	delete(s.pieceToPoints, id)
	for _, point := range points {
		pieces := s.pointToPieces[point]
		delete(pieces, id)
		if len(pieces) == 0 {
			delete(s.pointToPieces, point)
		}
	}
}

// PointsOf returns every StrategyPoint id projects, if any.
func (s *StrategyIndex) PointsOf(id PieceID) ([]StrategyPoint, bool) {
	points, ok := s.pieceToPoints[id]
	return points, ok
}

// HasPieces reports whether any piece projects point.
func (s *StrategyIndex) HasPieces(point StrategyPoint) bool {
	return len(s.pointToPieces[point]) > 0
}

// PiecesAt returns the set of pieces that project point.
func (s *StrategyIndex) PiecesAt(point StrategyPoint) map[PieceID]struct{} {
	return s.pointToPieces[point]
}

// IsUnderAttack reports whether any piece attacks p.
func (s *StrategyIndex) IsUnderAttack(p Point) bool {
	return s.HasPieces(Attack(p))
}

// IsUnderDefense reports whether any piece defends p.
func (s *StrategyIndex) IsUnderDefense(p Point) bool {
	return s.HasPieces(Defense(p))
}

// Rebuild clears and repopulates the index from every piece in pieces,
// dispatching to each piece's own StrategyPoints method against board.
func (s *StrategyIndex) Rebuild(pieces map[PieceID]*Piece, board *BoardMap) {
	s.pointToPieces = make(map[StrategyPoint]map[PieceID]struct{})
	s.pieceToPoints = make(map[PieceID][]StrategyPoint)
	for id, piece := range pieces {
		for _, point := range piece.StrategyPoints(board) {
			s.Add(point, id)
		}
	}
}
