/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package tchess

import "errors"

// ErrIllegalMove is returned by Board.MovePiece when the requested move is
// not present in the piece's current legal move set. Callers distinguish it
// from a contract violation (panic via internal/assert) with errors.Is.
var ErrIllegalMove = errors.New("tchess: illegal move")

// ErrUnknownPiece is returned when a move is requested for a PieceID that
// is not an active piece on the board (already captured, or never placed).
var ErrUnknownPiece = errors.New("tchess: unknown piece id")

// ErrWrongSideToMove is returned when a move is requested for a piece whose
// color is not the side currently to move.
var ErrWrongSideToMove = errors.New("tchess: not this color's turn")
