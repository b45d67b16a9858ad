/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 */

// Package tlog centralizes logger construction so every package gets the
// same format and backend, configured once from internal/config.
package tlog

import (
	"os"
	"sync"

	. "github.com/op/go-logging"
)

var backendOnce sync.Once

// Get returns a module logger named name, writing to stdout with the
// engine's standard format. The shared backend is installed at DEBUG level
// by the first call only, so a level set by Configure survives later Get
// calls; Get itself never errors.
func Get(name string) *Logger {
	log := MustGetLogger(name)
	backendOnce.Do(func() {
		backend := NewLogBackend(os.Stdout, "", 0)
		format := MustStringFormatter(
			`%{time:15:04:05.000} %{shortfile}:%{shortfunc} %{level:7s}:  %{message}`,
		)
		leveled := AddModuleLevel(NewBackendFormatter(backend, format))
		leveled.SetLevel(DEBUG, "")
		SetBackend(leveled)
	})
	return log
}

// Configure sets the global log level by name ("DEBUG", "INFO", "WARNING",
// "ERROR", "CRITICAL"). Unknown names are silently ignored, matching the
// rest of the engine's fall-back-to-defaults configuration policy.
func Configure(levelName string) {
	lvl, err := LogLevel(levelName)
	if err != nil {
		return
	}
	SetLevel(lvl, "")
}
