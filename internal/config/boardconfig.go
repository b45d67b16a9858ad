/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package config

// boardConfiguration holds the settings cmd/tchess uses to build a Board:
// its dimensions, which squaresmap preset to seed it from, and where to
// load a heat table asset from, if any.
type boardConfiguration struct {
	Preset string // "classic" or "voidframe"

	Width  int16
	Height int16

	UseHeatMap  bool
	HeatMapPath string

	VoidHoleMinX int16
	VoidHoleMinY int16
	VoidHoleMaxX int16
	VoidHoleMaxY int16
}

// sets defaults which might be overwritten by the config file.
func init() {
	Settings.Board.Preset = "classic"

	Settings.Board.Width = 8
	Settings.Board.Height = 8

	Settings.Board.UseHeatMap = false
	Settings.Board.HeatMapPath = "./assets/heatmap.toml"

	Settings.Board.VoidHoleMinX = 4
	Settings.Board.VoidHoleMinY = 4
	Settings.Board.VoidHoleMaxX = 5
	Settings.Board.VoidHoleMaxY = 5
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupBoard() {
}
