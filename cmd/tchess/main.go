/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/pkg/profile"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/frankkopp/tchess-go/internal/config"
	"github.com/frankkopp/tchess-go/internal/heatmap"
	"github.com/frankkopp/tchess-go/internal/perft"
	"github.com/frankkopp/tchess-go/internal/squaresmap"
	"github.com/frankkopp/tchess-go/internal/tchess"
	"github.com/frankkopp/tchess-go/internal/tlog"
)

var out = message.NewPrinter(language.English)

func main() {
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglevel", "", "log level, overriding config.toml's Log.LogLvl\n(critical|error|warning|notice|info|debug)")
	profileMode := flag.String("profile", "", "enable profiling\n(cpu|mem|block|goroutine)")
	board := flag.String("board", "", "board preset, overriding config.toml's Board.Preset\n(classic|voidframe)")
	depth := flag.Int("depth", 0, "perft depth, overriding config.toml's Perft.DefaultDepth; negative dumps the starting position instead")
	workers := flag.Int("workers", 0, "perft worker count, overriding config.toml's Perft.DefaultWorkers")
	flag.Parse()

	if *profileMode != "" {
		defer startProfile(*profileMode).Stop()
	}

	// Command line options only overwrite what Setup loaded from the config
	// file or its defaults when they're actually given, matching the
	// teacher's config-then-flag-override precedence.
	config.ConfFile = *configFile
	config.Setup()
	if *logLvl != "" {
		config.Settings.Log.LogLvl = *logLvl
	}
	if lvl, found := config.LogLevels[config.Settings.Log.LogLvl]; found {
		config.LogLevel = lvl
	}
	if *board != "" {
		config.Settings.Board.Preset = *board
	}
	if *depth != 0 {
		config.Settings.Perft.DefaultDepth = *depth
	}
	if *workers != 0 {
		config.Settings.Perft.DefaultWorkers = *workers
	}

	tlog.Configure(config.Settings.Log.LogLvl)
	log := tlog.Get("main")

	b := newStartingBoard(config.Settings.Board.Preset, config.Settings.Board.Width, config.Settings.Board.Height)

	if config.Settings.Perft.DefaultDepth < 0 {
		log.Info("negative perft depth, dumping the starting position")
		dumpBoard(b)
		return
	}

	runPerft(b, config.Settings.Perft.DefaultDepth, config.Settings.Perft.DefaultWorkers)
}

func startProfile(mode string) interface{ Stop() } {
	switch mode {
	case "mem":
		return profile.Start(profile.MemProfile)
	case "block":
		return profile.Start(profile.BlockProfile)
	case "goroutine":
		return profile.Start(profile.GoroutineProfile)
	default:
		return profile.Start(profile.CPUProfile)
	}
}

func newStartingBoard(preset string, width, height int16) *tchess.Board {
	var sm tchess.SquaresMap
	switch preset {
	case "voidframe":
		holeMin := tchess.Point{X: config.Settings.Board.VoidHoleMinX, Y: config.Settings.Board.VoidHoleMinY}
		holeMax := tchess.Point{X: config.Settings.Board.VoidHoleMaxX, Y: config.Settings.Board.VoidHoleMaxY}
		sm = squaresmap.NewVoidFrame(width, height, holeMin, holeMax)
	default:
		sm = squaresmap.NewClassic(width, height)
	}

	heat, needsEval := newHeatMap(sm.Dimension())

	b := tchess.NewBoard(tchess.BoardConfig{Squares: sm, Heat: heat, NeedsEval: needsEval})
	placeClassicPieces(b)
	return b
}

// newHeatMap builds the HeatMap cmd/tchess scores moves with: a loaded
// asset if Board.HeatMapPath decodes cleanly, else a classic piece-square
// table, when Board.UseHeatMap is set; otherwise a neutral Flat table that
// Board.scoreFor never needs to consult (NeedsEval stays false).
func newHeatMap(dim tchess.Dimension) (tchess.HeatMap, [2]bool) {
	if !config.Settings.Board.UseHeatMap {
		return heatmap.Flat{}, [2]bool{false, false}
	}
	if tbl, err := heatmap.LoadFile(config.Settings.Board.HeatMapPath); err == nil {
		return tbl, [2]bool{true, true}
	}
	return heatmap.Classic(dim), [2]bool{true, true}
}

// placeClassicPieces sets up the standard chess opening layout on files 1-8
// of ranks 1, 2, 7 and 8. Every one of those squares must exist and be
// non-void; placing a piece anywhere else is a fatal AddPiece error.
func placeClassicPieces(b *tchess.Board) {
	backRank := []tchess.PieceKind{
		tchess.Rook, tchess.Knight, tchess.Bishop, tchess.Queen,
		tchess.King, tchess.Bishop, tchess.Knight, tchess.Rook,
	}
	for i, kind := range backRank {
		x := int16(i + 1)
		b.AddPiece(kind, tchess.White, []tchess.Buff{tchess.CastleBuff()}, nil, tchess.Point{X: x, Y: 1})
		b.AddPiece(kind, tchess.Black, []tchess.Buff{tchess.CastleBuff()}, nil, tchess.Point{X: x, Y: 8})
	}
	for x := int16(1); x <= 8; x++ {
		b.AddPiece(tchess.Pawn, tchess.White, []tchess.Buff{tchess.AdditionalPointBuff()}, nil, tchess.Point{X: x, Y: 2})
		b.AddPiece(tchess.Pawn, tchess.Black, []tchess.Buff{tchess.AdditionalPointBuff()}, nil, tchess.Point{X: x, Y: 7})
	}
}

func runPerft(b *tchess.Board, depth int, workers int) {
	bar := progressbar.NewOptions(depth,
		progressbar.OptionSetElapsedTime(true),
		progressbar.OptionSetItsString("ply"),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionShowCount(),
	)

	out.Printf("Perft to depth %d with %d worker(s)\n", depth, workers)
	for d := 1; d <= depth; d++ {
		r := perft.Count(b, d, workers)
		_ = bar.Add(1)
		out.Printf("depth %d: %s\n", d, r)
	}
}

func dumpBoard(b *tchess.Board) {
	dim := b.Dim
	var sb strings.Builder
	for _, y := range reverse(dim.RowsRange()) {
		for _, x := range dim.ColumnsRange() {
			p := tchess.Point{X: x, Y: y}
			sq := b.Map.BoardSquare(p)
			sb.WriteString(squareGlyph(sq))
		}
		sb.WriteString("\n")
	}
	fmt.Print(sb.String())
}

func squareGlyph(sq tchess.BoardSquare) string {
	if sq.IsVoid() {
		return " . "
	}
	id, ok := sq.PieceID()
	if !ok {
		return " - "
	}
	return fmt.Sprintf("%3d", int32(id))
}

func reverse(xs []int16) []int16 {
	out := make([]int16, len(xs))
	for i, x := range xs {
		out[len(xs)-1-i] = x
	}
	return out
}
