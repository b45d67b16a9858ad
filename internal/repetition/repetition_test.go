package repetition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/tchess-go/internal/changes"
	"github.com/frankkopp/tchess-go/internal/squaresmap"
	"github.com/frankkopp/tchess-go/internal/tchess"
)

func newTestBoard(t *testing.T) *tchess.Board {
	t.Helper()
	sm := squaresmap.NewClassic(8, 8)
	b := tchess.NewBoard(tchess.BoardConfig{Squares: sm})
	b.AddPiece(tchess.King, tchess.White, nil, nil, tchess.Point{X: 5, Y: 1})
	b.AddPiece(tchess.King, tchess.Black, nil, nil, tchess.Point{X: 5, Y: 8})
	b.AddPiece(tchess.Rook, tchess.White, nil, nil, tchess.Point{X: 1, Y: 1})
	return b
}

func TestHasherSameKeyForSamePosition(t *testing.T) {
	dim := tchess.NewDimension(tchess.Point{X: 1, Y: 1}, tchess.Point{X: 8, Y: 8})

	b1 := newTestBoard(t)
	h1 := NewHasher(dim)
	h1.Seed(b1)
	key1 := h1.Current()

	b2 := newTestBoard(t)
	h2 := NewHasher(dim)
	h2.Seed(b2)
	key2 := h2.Current()

	assert.Equal(t, key1, key2)
}

func TestTableThreefold(t *testing.T) {
	tbl := NewTable()
	k := Key(42)
	assert.False(t, tbl.IsThreefold(k))
	tbl.Record(k)
	tbl.Record(k)
	assert.False(t, tbl.IsThreefold(k))
	tbl.Record(k)
	assert.True(t, tbl.IsThreefold(k))
}

func TestAttachTracksMoves(t *testing.T) {
	dim := tchess.NewDimension(tchess.Point{X: 1, Y: 1}, tchess.Point{X: 8, Y: 8})
	b := newTestBoard(t)

	h := NewHasher(dim)
	h.Seed(b)
	tbl := NewTable()
	rec := changes.NewRecorder()
	Attach(rec, h, tbl)

	assert.False(t, b.Moves(tchess.White).IsEmpty())

	seeded := h.Current()
	rook, _ := b.PieceAt(tchess.Point{X: 1, Y: 1})
	assert.NoError(t, b.MovePiece(rook.ID, tchess.PointMove(tchess.Point{X: 1, Y: 2})))
	rec.Observe(b.DrainChanges())

	assert.Equal(t, 1, rec.Len())
	assert.NotEqual(t, seeded, h.Current())
	assert.Equal(t, 1, tbl.Count(h.Current()))
}
