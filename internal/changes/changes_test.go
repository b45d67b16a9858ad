package changes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frankkopp/tchess-go/internal/tchess"
)

func TestRecorderIgnoresEmptyBatch(t *testing.T) {
	r := NewRecorder()
	r.Observe(nil)
	assert.Equal(t, 0, r.Len())
}

func TestRecorderFansOutToListeners(t *testing.T) {
	r := NewRecorder()
	var seen []tchess.Change
	r.Listen(func(batch []tchess.Change) {
		seen = append(seen, batch...)
	})

	batch := []tchess.Change{{Kind: tchess.PieceAdded, ID: 1, To: tchess.Point{X: 1, Y: 1}}}
	r.Observe(batch)

	assert.Equal(t, 1, r.Len())
	assert.Len(t, seen, 1)
	assert.Equal(t, tchess.PieceAdded, seen[0].Kind)
}

func TestRecorderHistoryIsIndependentCopy(t *testing.T) {
	r := NewRecorder()
	batch := []tchess.Change{{Kind: tchess.PieceRemoved, ID: 2}}
	r.Observe(batch)
	batch[0].ID = 99

	assert.EqualValues(t, 2, r.History()[0][0].ID)
}
