/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package repetition hashes board positions with a Zobrist scheme and tracks
// threefold repetition, entirely outside the core tchess package - the core
// exposes only its LastBoardChanges stream and read-only views, never a
// hash of its own.
package repetition

import (
	"math/rand"

	"github.com/frankkopp/tchess-go/internal/changes"
	"github.com/frankkopp/tchess-go/internal/tchess"
)

// Key is a Zobrist hash of a board position.
type Key uint64

// zobristSeed fixes the table's PRNG seed so two Hashers built in the same
// process (or across runs) assign identical per-piece/per-square keys.
const zobristSeed = 1070372

// Hasher assigns one random key per (kind, color, point) and per side to
// move, folding LastBoardChanges batches into a running Key incrementally -
// the same incremental-XOR shape the teacher's position.go applies on
// doMove/undoMove, just driven from outside the core by observing changes
// instead of being woven into the move-application code.
type Hasher struct {
	pieceKeys map[tchess.PieceKind]map[tchess.Color]map[tchess.Point]Key
	sideKey   Key

	byID map[tchess.PieceID]pieceIdentity
	key  Key
}

type pieceIdentity struct {
	kind tchess.PieceKind
	c    tchess.Color
	at   tchess.Point
}

// NewHasher builds a Hasher with pieceKeys assigned deterministically for
// every point in dim. It holds no pieces yet; Seed folds in a board's
// placement.
func NewHasher(dim tchess.Dimension) *Hasher {
	r := rand.New(rand.NewSource(zobristSeed))
	h := &Hasher{
		pieceKeys: make(map[tchess.PieceKind]map[tchess.Color]map[tchess.Point]Key),
		byID:      make(map[tchess.PieceID]pieceIdentity),
	}
	kinds := []tchess.PieceKind{tchess.King, tchess.Queen, tchess.Rook, tchess.Bishop, tchess.Knight, tchess.Pawn}
	for _, kind := range kinds {
		h.pieceKeys[kind] = make(map[tchess.Color]map[tchess.Point]Key)
		for _, c := range []tchess.Color{tchess.White, tchess.Black} {
			h.pieceKeys[kind][c] = make(map[tchess.Point]Key)
			for _, p := range dim.Points() {
				h.pieceKeys[kind][c][p] = Key(r.Uint64())
			}
		}
	}
	h.sideKey = Key(r.Uint64())
	return h
}

// Seed primes the hasher with the board's initial piece placement, folding
// in every piece's key once. Call once before observing any changes.
func (h *Hasher) Seed(b *tchess.Board) {
	for _, c := range []tchess.Color{tchess.White, tchess.Black} {
		for id, piece := range b.ActivePieces(c) {
			h.place(id, piece.Kind, piece.Color, piece.Position)
		}
	}
}

// Observe folds one move's LastBoardChanges batch into the running key and
// flips the side-to-move key. Registered as a changes.Recorder listener.
func (h *Hasher) Observe(batch []tchess.Change) {
	for _, ch := range batch {
		switch ch.Kind {
		case tchess.PieceAdded:
			// identity unknown from the change alone; caller must Seed or
			// track placement separately for genuinely new pieces
			// (promotion results handled via PiecePositionChanged below).
		case tchess.PieceRemoved:
			h.remove(ch.ID)
		case tchess.PiecePositionChanged:
			h.move(ch.ID, ch.To)
		case tchess.EnPassantChanged, tchess.CastleChanged:
			// buff-only transitions don't change piece identity/position.
		}
	}
	h.key ^= h.sideKey
}

func (h *Hasher) place(id tchess.PieceID, kind tchess.PieceKind, c tchess.Color, p tchess.Point) {
	h.byID[id] = pieceIdentity{kind: kind, c: c, at: p}
	h.key ^= h.pieceKeys[kind][c][p]
}

func (h *Hasher) remove(id tchess.PieceID) {
	ident, ok := h.byID[id]
	if !ok {
		return
	}
	h.key ^= h.pieceKeys[ident.kind][ident.c][ident.at]
	delete(h.byID, id)
}

func (h *Hasher) move(id tchess.PieceID, to tchess.Point) {
	ident, ok := h.byID[id]
	if !ok {
		return
	}
	h.key ^= h.pieceKeys[ident.kind][ident.c][ident.at]
	ident.at = to
	h.byID[id] = ident
	h.key ^= h.pieceKeys[ident.kind][ident.c][ident.at]
}

// Current returns the running hash.
func (h *Hasher) Current() Key {
	return h.key
}

// Table counts occurrences of each hash seen so far and reports threefold
// repetition.
type Table struct {
	counts map[Key]int
}

// NewTable builds an empty occurrence table.
func NewTable() *Table {
	return &Table{counts: make(map[Key]int)}
}

// Record registers one more occurrence of k, typically called once per move
// with Hasher.Current().
func (t *Table) Record(k Key) {
	t.counts[k]++
}

// Count returns how many times k has been recorded.
func (t *Table) Count(k Key) int {
	return t.counts[k]
}

// IsThreefold reports whether k has occurred three or more times.
func (t *Table) IsThreefold(k Key) bool {
	return t.counts[k] >= 3
}

// Attach registers a listener on rec that folds each observed batch into h
// and records the resulting key in t, so the repetition table stays current
// as moves are applied without the caller wiring the two by hand.
func Attach(rec *changes.Recorder, h *Hasher, t *Table) {
	rec.Listen(func(batch []tchess.Change) {
		h.Observe(batch)
		t.Record(h.Current())
	})
}
