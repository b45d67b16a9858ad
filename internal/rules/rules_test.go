package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/tchess-go/internal/squaresmap"
	"github.com/frankkopp/tchess-go/internal/tchess"
)

func TestFiftyMoveClock(t *testing.T) {
	var c FiftyMoveClock
	for i := 0; i < 99; i++ {
		c.Tick()
	}
	assert.False(t, c.IsFiftyMoveDraw())
	c.Tick()
	assert.True(t, c.IsFiftyMoveDraw())

	c.Reset()
	assert.Equal(t, 0, c.HalfMoves())
	assert.False(t, c.IsFiftyMoveDraw())
}

func TestFiftyMoveClockObserveResetsOnCapture(t *testing.T) {
	var c FiftyMoveClock
	c.Tick()
	c.Tick()
	c.Observe([]tchess.Change{{Kind: tchess.PieceRemoved, ID: 1}})
	assert.Equal(t, 0, c.HalfMoves())
}

func TestInsufficientMaterialKingsOnly(t *testing.T) {
	sm := squaresmap.NewClassic(8, 8)
	b := tchess.NewBoard(tchess.BoardConfig{Squares: sm})
	b.AddPiece(tchess.King, tchess.White, nil, nil, tchess.Point{X: 5, Y: 1})
	b.AddPiece(tchess.King, tchess.Black, nil, nil, tchess.Point{X: 5, Y: 8})
	assert.True(t, HasInsufficientMaterial(b))
}

func TestSufficientMaterialWithRook(t *testing.T) {
	sm := squaresmap.NewClassic(8, 8)
	b := tchess.NewBoard(tchess.BoardConfig{Squares: sm})
	b.AddPiece(tchess.King, tchess.White, nil, nil, tchess.Point{X: 5, Y: 1})
	b.AddPiece(tchess.King, tchess.Black, nil, nil, tchess.Point{X: 5, Y: 8})
	b.AddPiece(tchess.Rook, tchess.White, nil, nil, tchess.Point{X: 1, Y: 1})
	assert.False(t, HasInsufficientMaterial(b))
}

func TestInsufficientMaterialKingAndBishopVsKing(t *testing.T) {
	sm := squaresmap.NewClassic(8, 8)
	b := tchess.NewBoard(tchess.BoardConfig{Squares: sm})
	b.AddPiece(tchess.King, tchess.White, nil, nil, tchess.Point{X: 5, Y: 1})
	b.AddPiece(tchess.King, tchess.Black, nil, nil, tchess.Point{X: 5, Y: 8})
	b.AddPiece(tchess.Bishop, tchess.White, nil, nil, tchess.Point{X: 3, Y: 1})
	assert.True(t, HasInsufficientMaterial(b))
}
