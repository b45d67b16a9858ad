/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package assert checks the engine's internal contracts. Unlike the
// teacher's DEBUG-gated assertions, these run unconditionally: a board
// invariant violation (an out-of-range point, an unknown piece id, a
// move applied to a piece that isn't on the board) is a programming error,
// not a recoverable condition, and must fail loudly in every build.
package assert

import (
	"fmt"

	"github.com/frankkopp/tchess-go/internal/tlog"
)

var log = tlog.Get("assert")

// That logs format (CRITICAL level) and panics when cond is false.
func That(cond bool, format string, args ...interface{}) {
	if cond {
		return
	}
	log.Criticalf(format, args...)
	panic(fmt.Sprintf(format, args...))
}
