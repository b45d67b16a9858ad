/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package rules implements the fifty-move clock and insufficient-material
// draw checks as external collaborators over the core's read-only views -
// spec.md explicitly scopes both out of the board engine itself.
package rules

import "github.com/frankkopp/tchess-go/internal/tchess"

// FiftyMoveClock counts half-moves since the last capture or pawn move. The
// caller is responsible for calling Reset on a capture (DrainChanges
// reporting PieceRemoved) or a pawn move, and Tick otherwise.
type FiftyMoveClock struct {
	halfMoves int
}

// Tick advances the clock by one half-move.
func (c *FiftyMoveClock) Tick() {
	c.halfMoves++
}

// Reset zeroes the clock, called after a capture or a pawn move.
func (c *FiftyMoveClock) Reset() {
	c.halfMoves = 0
}

// HalfMoves returns the current count.
func (c *FiftyMoveClock) HalfMoves() int {
	return c.halfMoves
}

// IsFiftyMoveDraw reports whether 100 half-moves (fifty full moves for each
// side) have passed without a capture or pawn move.
func (c *FiftyMoveClock) IsFiftyMoveDraw() bool {
	return c.halfMoves >= 100
}

// Observe advances or resets the clock from one move's LastBoardChanges
// batch: any PieceRemoved resets it (a capture happened), otherwise it
// ticks. Pawn moves are not distinguishable from the change stream alone
// (a PiecePositionChanged carries no piece kind), so callers that need the
// exact rule should call Reset directly when they know the mover was a
// pawn; Observe alone implements only the capture half of the rule.
func (c *FiftyMoveClock) Observe(batch []tchess.Change) {
	for _, ch := range batch {
		if ch.Kind == tchess.PieceRemoved {
			c.Reset()
			return
		}
	}
	c.Tick()
}

// HasInsufficientMaterial reports whether the position on b can no longer
// be checkmated by either side: king-only vs king-only, king+minor vs
// king-only, or king+minor vs king+minor are the recognized draws; any
// pawn, rook, or queen on the board, or two or more minors on one side,
// means mate is still possible.
func HasInsufficientMaterial(b *tchess.Board) bool {
	for _, c := range []tchess.Color{tchess.White, tchess.Black} {
		minors := 0
		for _, piece := range b.ActivePieces(c) {
			switch piece.Kind {
			case tchess.King:
				continue
			case tchess.Knight, tchess.Bishop:
				minors++
			default:
				return false // pawn, rook or queen - mate is still reachable
			}
			if minors > 1 {
				return false
			}
		}
	}
	return true
}
