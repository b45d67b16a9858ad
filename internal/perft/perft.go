/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package perft implements the move-count diagnostic standard to chess
// engines: count every leaf position reachable in N plies and break it down
// by move kind, as a correctness/speed benchmark for the core's move
// generation - not a search or evaluation engine.
package perft

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/tchess-go/internal/tchess"
)

var printer = message.NewPrinter(language.English)

// Result tallies one perft run's leaf count and a breakdown by move kind,
// mirroring the teacher's own Perft counters.
type Result struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
	Checks     uint64
	Checkmates uint64
	Elapsed    time.Duration
}

// NodesPerSecond returns Nodes scaled by Elapsed, or 0 if nothing elapsed.
func (r Result) NodesPerSecond() uint64 {
	ns := r.Elapsed.Nanoseconds()
	if ns <= 0 {
		return 0
	}
	return r.Nodes * uint64(time.Second.Nanoseconds()) / uint64(ns)
}

// String formats the result the way the teacher's perft.go prints its own
// run summary, with thousands-grouped numbers.
func (r Result) String() string {
	return printer.Sprintf(
		"Nodes: %d  NPS: %d  Captures: %d  EnPassant: %d  Castles: %d  Promotions: %d  Checks: %d  Checkmates: %d",
		r.Nodes, r.NodesPerSecond(), r.Captures, r.EnPassants, r.Castles, r.Promotions, r.Checks, r.Checkmates)
}

// candidate pairs a piece id with one of its legal moves.
type candidate struct {
	id   tchess.PieceID
	move tchess.PieceMove
}

// Count runs perft to depth from b's current position, splitting the root's
// legal moves across a semaphore-bounded pool of up to workers goroutines,
// each operating on its own Board clone - never sharing one Board across
// goroutines. workers <= 1 runs single-threaded.
func Count(b *tchess.Board, depth int, workers int) Result {
	if depth <= 0 {
		depth = 1
	}
	if workers <= 0 {
		workers = 1
	}

	start := time.Now()

	var mu sync.Mutex
	var total Result
	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup

	for _, cand := range legalMoves(b, b.SideToMove) {
		cand := cand
		_ = sem.Acquire(context.TODO(), 1)
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)

			r := countMove(b.Clone(), cand, depth)

			mu.Lock()
			total.Nodes += r.Nodes
			total.Captures += r.Captures
			total.EnPassants += r.EnPassants
			total.Castles += r.Castles
			total.Promotions += r.Promotions
			total.Checks += r.Checks
			total.Checkmates += r.Checkmates
			mu.Unlock()
		}()
	}
	wg.Wait()

	total.Elapsed = time.Since(start)
	return total
}

// countMove applies cand's move on b, then either tallies it as a leaf (at
// depth 1) or recurses depth-1 further plies via miniMax.
func countMove(b *tchess.Board, cand candidate, depth int) Result {
	var r Result

	capture := isCapture(b, cand.move)
	isEnPassant := cand.move.Kind == tchess.MoveKindEnPassant
	isCastle := cand.move.Kind == tchess.MoveKindCastle
	isPromote := cand.move.Kind == tchess.MoveKindPromote
	mover := cand.id.Color()

	if err := b.MovePiece(cand.id, cand.move); err != nil {
		return r
	}

	if depth > 1 {
		return miniMax(b, depth-1)
	}

	r.Nodes = 1
	if capture {
		r.Captures++
	}
	if isEnPassant {
		r.EnPassants++
		r.Captures++
	}
	if isCastle {
		r.Castles++
	}
	if isPromote {
		r.Promotions++
	}
	if kingID, ok := b.King(mover.Opposite()); ok {
		if king, ok := b.ActivePieces(mover.Opposite())[kingID]; ok && king.IsInCheck() {
			r.Checks++
			if king.IsCheckmate() {
				r.Checkmates++
			}
		}
	}
	return r
}

// miniMax walks every legal move of the side to move, recursing depth-1
// further plies and summing leaf counts and their breakdowns.
func miniMax(b *tchess.Board, depth int) Result {
	var total Result
	for _, cand := range legalMoves(b, b.SideToMove) {
		r := countMove(b.Clone(), cand, depth)
		total.Nodes += r.Nodes
		total.Captures += r.Captures
		total.EnPassants += r.EnPassants
		total.Castles += r.Castles
		total.Promotions += r.Promotions
		total.Checks += r.Checks
		total.Checkmates += r.Checkmates
	}
	return total
}

// legalMoves flattens the side's MovesMap into one candidate per (piece,
// move) pair.
func legalMoves(b *tchess.Board, side tchess.Color) []candidate {
	var out []candidate
	for id := range b.ActivePieces(side) {
		moves, ok := b.Moves(side).MovesOf(id)
		if !ok {
			continue
		}
		for move := range moves {
			out = append(out, candidate{id: id, move: move})
		}
	}
	return out
}

func isCapture(b *tchess.Board, move tchess.PieceMove) bool {
	dest, ok := move.Destination()
	if !ok {
		return false
	}
	_, occupied := b.PieceAt(dest)
	return occupied
}
