/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package heatmap provides tchess.HeatMap implementations that turn a piece
// kind/color/point into a positional value, used to score candidate moves.
package heatmap

import (
	"fmt"
	"math"

	"github.com/BurntSushi/toml"

	"github.com/frankkopp/tchess-go/internal/tchess"
)

// Table is a flat per-kind-per-color table of point values. A missing point
// for a given kind/color reads as zero.
type Table struct {
	values map[tchess.PieceKind]map[tchess.Color]map[tchess.Point]int16
}

// NewTable builds an empty table; Set populates it.
func NewTable() *Table {
	return &Table{values: make(map[tchess.PieceKind]map[tchess.Color]map[tchess.Point]int16)}
}

// Set records the value a kind/color pair receives at p.
func (t *Table) Set(kind tchess.PieceKind, c tchess.Color, p tchess.Point, value int16) {
	byColor, ok := t.values[kind]
	if !ok {
		byColor = make(map[tchess.Color]map[tchess.Point]int16)
		t.values[kind] = byColor
	}
	byPoint, ok := byColor[c]
	if !ok {
		byPoint = make(map[tchess.Point]int16)
		byColor[c] = byPoint
	}
	byPoint[p] = value
}

// PositionalValue implements tchess.HeatMap.
func (t *Table) PositionalValue(kind tchess.PieceKind, c tchess.Color, p tchess.Point) int16 {
	byColor, ok := t.values[kind]
	if !ok {
		return 0
	}
	byPoint, ok := byColor[c]
	if !ok {
		return 0
	}
	return byPoint[p]
}

// tomlDoc is the on-disk shape for a heat table asset: one flat entry per
// kind/color/point, decoded with the same silent-fallback-to-defaults
// posture as internal/config.
type tomlDoc struct {
	Entries []tomlEntry `toml:"entry"`
}

type tomlEntry struct {
	Kind  string `toml:"kind"`
	Color string `toml:"color"`
	X     int16  `toml:"x"`
	Y     int16  `toml:"y"`
	Value int16  `toml:"value"`
}

// LoadFile reads a heat table asset from path. On any decode error it
// returns an empty Table and the error instead of failing hard; it logs
// nothing. cmd/tchess falls back to Classic when it gets an error.
func LoadFile(path string) (*Table, error) {
	var doc tomlDoc
	if _, err := toml.DecodeFile(path, &doc); err != nil {
		return NewTable(), err
	}
	t := NewTable()
	for _, e := range doc.Entries {
		kind, ok := parseKind(e.Kind)
		if !ok {
			return NewTable(), fmt.Errorf("heatmap: unknown piece kind %q", e.Kind)
		}
		color, ok := parseColor(e.Color)
		if !ok {
			return NewTable(), fmt.Errorf("heatmap: unknown color %q", e.Color)
		}
		t.Set(kind, color, tchess.Point{X: e.X, Y: e.Y}, e.Value)
	}
	return t, nil
}

func parseKind(s string) (tchess.PieceKind, bool) {
	switch s {
	case "king", "King":
		return tchess.King, true
	case "queen", "Queen":
		return tchess.Queen, true
	case "rook", "Rook":
		return tchess.Rook, true
	case "bishop", "Bishop":
		return tchess.Bishop, true
	case "knight", "Knight":
		return tchess.Knight, true
	case "pawn", "Pawn":
		return tchess.Pawn, true
	default:
		return 0, false
	}
}

func parseColor(s string) (tchess.Color, bool) {
	switch s {
	case "white", "White":
		return tchess.White, true
	case "black", "Black":
		return tchess.Black, true
	default:
		return 0, false
	}
}

// Classic builds a classic piece-square table, generalizing the per-kind
// material constants original_source's ClassicHeatMap stubs out (300 for a
// minor, 500 for a rook, 1000 for a queen, 0 for a king) into position-aware
// tables over an arbitrary Dimension: pawns are rewarded for advancing,
// minors and the queen for centralizing, and the king for staying away from
// the center. Black's table is White's mirrored across the board's
// vertical midpoint, the usual PST symmetry.
func Classic(dim tchess.Dimension) *Table {
	t := NewTable()
	kinds := []tchess.PieceKind{tchess.King, tchess.Queen, tchess.Rook, tchess.Bishop, tchess.Knight, tchess.Pawn}
	for _, kind := range kinds {
		for y := dim.Min.Y; y <= dim.Max.Y; y++ {
			for x := dim.Min.X; x <= dim.Max.X; x++ {
				p := tchess.Point{X: x, Y: y}
				t.Set(kind, tchess.White, p, classicValue(kind, p, dim))
				t.Set(kind, tchess.Black, p, classicValue(kind, mirrorRank(p, dim), dim))
			}
		}
	}
	return t
}

// mirrorRank reflects p across the board's vertical midpoint, turning a
// White-perspective square into the corresponding Black-perspective one.
func mirrorRank(p tchess.Point, dim tchess.Dimension) tchess.Point {
	return tchess.Point{X: p.X, Y: dim.Min.Y + dim.Max.Y - p.Y}
}

func classicValue(kind tchess.PieceKind, p tchess.Point, dim tchess.Dimension) int16 {
	centerX := float64(dim.Min.X+dim.Max.X) / 2
	centerY := float64(dim.Min.Y+dim.Max.Y) / 2
	centerDist := math.Abs(float64(p.X)-centerX) + math.Abs(float64(p.Y)-centerY)
	advance := float64(p.Y - dim.Min.Y)

	switch kind {
	case tchess.King:
		return int16(0 + centerDist*5)
	case tchess.Queen:
		return int16(1000 - centerDist*5)
	case tchess.Rook:
		return int16(500 - centerDist*2)
	case tchess.Bishop, tchess.Knight:
		return int16(300 - centerDist*10)
	case tchess.Pawn:
		return int16(100 + advance*10)
	default:
		return 0
	}
}

// Flat returns a HeatMap assigning every kind/color/point the same constant
// value - useful as a neutral default when no table asset is configured.
type Flat struct {
	Value int16
}

func (f Flat) PositionalValue(tchess.PieceKind, tchess.Color, tchess.Point) int16 {
	return f.Value
}
