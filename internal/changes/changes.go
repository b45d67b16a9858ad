/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package changes mirrors the board's per-move LastBoardChanges stream for
// external consumers (repetition, rules) that need to observe state
// transitions without reaching into the core package's internals.
package changes

import "github.com/frankkopp/tchess-go/internal/tchess"

// Recorder accumulates the changes drained from a Board after each applied
// move, and hands them to every registered listener in order.
type Recorder struct {
	listeners []func([]tchess.Change)
	history   [][]tchess.Change
}

// NewRecorder builds an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Listen registers fn to be called with every batch of changes Observe
// receives, in addition to being appended to History.
func (r *Recorder) Listen(fn func([]tchess.Change)) {
	r.listeners = append(r.listeners, fn)
}

// Observe takes the change batch produced by one applied move (as returned
// by Board.DrainChanges), appends it to History, and fans it out to every
// registered listener.
func (r *Recorder) Observe(batch []tchess.Change) {
	if len(batch) == 0 {
		return
	}
	cp := make([]tchess.Change, len(batch))
	copy(cp, batch)
	r.history = append(r.history, cp)
	for _, fn := range r.listeners {
		fn(cp)
	}
}

// History returns every batch observed so far, one entry per applied move.
func (r *Recorder) History() [][]tchess.Change {
	return r.history
}

// Len returns the number of move-batches observed so far.
func (r *Recorder) Len() int {
	return len(r.history)
}
