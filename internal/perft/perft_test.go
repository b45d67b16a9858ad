package perft

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/tchess-go/internal/squaresmap"
	"github.com/frankkopp/tchess-go/internal/tchess"
)

// kingsOnlyBoard builds a minimal two-king board where White's king, in the
// (1,1) corner, has exactly its three neighbouring squares to move to;
// Black's king on (8,8) is too far away to attack any of them.
func kingsOnlyBoard(t *testing.T) *tchess.Board {
	t.Helper()
	sm := squaresmap.NewClassic(8, 8)
	b := tchess.NewBoard(tchess.BoardConfig{Squares: sm})
	b.AddPiece(tchess.King, tchess.White, nil, nil, tchess.Point{X: 1, Y: 1})
	b.AddPiece(tchess.King, tchess.Black, nil, nil, tchess.Point{X: 8, Y: 8})
	return b
}

func TestCountDepthOneMatchesMovesMap(t *testing.T) {
	b := kingsOnlyBoard(t)
	want := 0
	for id := range b.ActivePieces(tchess.White) {
		if moves, ok := b.Moves(tchess.White).MovesOf(id); ok {
			want += len(moves)
		}
	}

	r := Count(b, 1, 1)
	assert.EqualValues(t, want, r.Nodes)
	assert.True(t, want > 0)
}

func TestCountDepthTwoIsPositiveAndConcurrencySafe(t *testing.T) {
	b := kingsOnlyBoard(t)
	single := Count(b, 2, 1)
	parallel := Count(b, 2, 4)
	assert.Equal(t, single.Nodes, parallel.Nodes)
	assert.True(t, single.Nodes > 0)
}

func TestResultString(t *testing.T) {
	r := Result{Nodes: 1234}
	assert.Contains(t, r.String(), "1,234")
}
