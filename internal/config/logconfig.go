/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

package config

type logConfiguration struct {
	LogLvl string
}

// sets defaults which might be overwritten by the config file.
func init() {
	Settings.Log.LogLvl = "info"
}

// set defaults for configurations here in case a configuration
// is not available from the config file.
func setupLogLvl() {
	if Settings.Log.LogLvl != "" {
		if lvl, found := LogLevels[Settings.Log.LogLvl]; found {
			LogLevel = lvl
		}
	}
}

// LogLevels maps string representations of log levels to numerical values,
// matching github.com/op/go-logging's level names.
var LogLevels = map[string]int{
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}
