package heatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/tchess-go/internal/tchess"
)

func TestTableDefaultsToZero(t *testing.T) {
	tbl := NewTable()
	assert.EqualValues(t, 0, tbl.PositionalValue(tchess.Knight, tchess.White, tchess.Point{X: 4, Y: 4}))
}

func TestTableSetAndGet(t *testing.T) {
	tbl := NewTable()
	tbl.Set(tchess.Knight, tchess.White, tchess.Point{X: 4, Y: 4}, 30)
	assert.EqualValues(t, 30, tbl.PositionalValue(tchess.Knight, tchess.White, tchess.Point{X: 4, Y: 4}))
	assert.EqualValues(t, 0, tbl.PositionalValue(tchess.Knight, tchess.Black, tchess.Point{X: 4, Y: 4}))
}

func TestFlatConstant(t *testing.T) {
	f := Flat{Value: 7}
	assert.EqualValues(t, 7, f.PositionalValue(tchess.Pawn, tchess.Black, tchess.Point{X: 1, Y: 1}))
}

func TestLoadFileMissingFallsBackEmpty(t *testing.T) {
	tbl, err := LoadFile("/nonexistent/heat.toml")
	assert.Error(t, err)
	assert.EqualValues(t, 0, tbl.PositionalValue(tchess.Pawn, tchess.White, tchess.Point{X: 1, Y: 1}))
}

func TestClassicPawnRewardsAdvancement(t *testing.T) {
	dim := tchess.NewDimension(tchess.Point{X: 1, Y: 1}, tchess.Point{X: 8, Y: 8})
	tbl := Classic(dim)

	home := tbl.PositionalValue(tchess.Pawn, tchess.White, tchess.Point{X: 4, Y: 2})
	advanced := tbl.PositionalValue(tchess.Pawn, tchess.White, tchess.Point{X: 4, Y: 7})
	assert.Greater(t, advanced, home)
}

func TestClassicIsMirroredForBlack(t *testing.T) {
	dim := tchess.NewDimension(tchess.Point{X: 1, Y: 1}, tchess.Point{X: 8, Y: 8})
	tbl := Classic(dim)

	whiteValue := tbl.PositionalValue(tchess.Pawn, tchess.White, tchess.Point{X: 4, Y: 7})
	blackValue := tbl.PositionalValue(tchess.Pawn, tchess.Black, tchess.Point{X: 4, Y: 2})
	assert.Equal(t, whiteValue, blackValue)
}

func TestClassicKingPrefersTheEdge(t *testing.T) {
	dim := tchess.NewDimension(tchess.Point{X: 1, Y: 1}, tchess.Point{X: 8, Y: 8})
	tbl := Classic(dim)

	corner := tbl.PositionalValue(tchess.King, tchess.White, tchess.Point{X: 1, Y: 1})
	center := tbl.PositionalValue(tchess.King, tchess.White, tchess.Point{X: 4, Y: 4})
	assert.Greater(t, corner, center)
}
