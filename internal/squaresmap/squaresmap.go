/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package squaresmap provides ready-made tchess.SquaresMap implementations
// describing the intrinsic shape of a playing field: which points exist and
// whether each is a void or a normal square.
package squaresmap

import "github.com/frankkopp/tchess-go/internal/tchess"

// Classic implements tchess.SquaresMap as a solid rectangle of alternating
// light/dark squares, width columns by height rows, origin at (1,1). width
// 8, height 8 reproduces a standard chessboard; any other size is just as
// valid a field.
type Classic struct {
	dim tchess.Dimension
}

// NewClassic builds a solid width x height rectangle with no void squares.
func NewClassic(width, height int16) *Classic {
	min := tchess.Point{X: 1, Y: 1}
	max := tchess.Point{X: width, Y: height}
	return &Classic{dim: tchess.NewDimension(min, max)}
}

func (c *Classic) Dimension() tchess.Dimension { return c.dim }

func (c *Classic) SquareAt(p tchess.Point) (tchess.BoardSquare, bool) {
	if !c.dim.Contains(p) {
		return tchess.BoardSquare{}, false
	}
	return tchess.NewSquare(squareColor(p)), true
}

// VoidFrame wraps a Classic field and punches a rectangular hole of void
// squares out of it, bounded by holeMin/holeMax inclusive. Used for the
// void-square scenarios the specification calls out - an irregular field is
// still addressable across its full Dimension, but moves can never land or
// pass through the void region.
type VoidFrame struct {
	inner            *Classic
	holeMin, holeMax tchess.Point
}

// NewVoidFrame builds a width x height field with the inclusive rectangle
// [holeMin, holeMax] carved out as void.
func NewVoidFrame(width, height int16, holeMin, holeMax tchess.Point) *VoidFrame {
	return &VoidFrame{inner: NewClassic(width, height), holeMin: holeMin, holeMax: holeMax}
}

func (v *VoidFrame) Dimension() tchess.Dimension { return v.inner.Dimension() }

func (v *VoidFrame) SquareAt(p tchess.Point) (tchess.BoardSquare, bool) {
	sq, ok := v.inner.SquareAt(p)
	if !ok {
		return sq, false
	}
	if v.inHole(p) {
		return tchess.VoidSquare(), true
	}
	return sq, true
}

func (v *VoidFrame) inHole(p tchess.Point) bool {
	return p.X >= v.holeMin.X && p.X <= v.holeMax.X && p.Y >= v.holeMin.Y && p.Y <= v.holeMax.Y
}

// squareColor reproduces the usual light/dark checkerboard pattern from a
// point's parity, with (1,1) dark - matching a1 on a standard board.
func squareColor(p tchess.Point) tchess.Color {
	if (p.X+p.Y)%2 == 0 {
		return tchess.Black
	}
	return tchess.White
}
