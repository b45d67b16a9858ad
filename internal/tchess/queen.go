/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package tchess

func queenStrategyPoints(p *Piece, board *BoardMap) []StrategyPoint {
	return slidingStrategyPoints(p, board, DiagonalAndLineVectors())
}

func queenMoves(p *Piece, board *BoardMap, _ []StrategyPoint) []PieceMove {
	return slidingMoves(p, board, DiagonalAndLineVectors())
}
