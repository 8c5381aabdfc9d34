package dwrite

import (
	"log/slog"

	"github.com/gogpu/dwrite/com"
)

// SetLogger configures the logger for dwrite and package com; both share
// one logger. By default, nothing is logged. Pass nil to restore silence.
//
// Log levels used:
//   - [slog.LevelDebug]: failed COM calls, final releases, DLL lookup failures
//   - [slog.LevelInfo]: factory creation and close
//
// Example:
//
//	dwrite.SetLogger(slog.Default())
func SetLogger(l *slog.Logger) {
	com.SetLogger(l)
}

// Logger returns the current logger used by dwrite.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return com.Logger()
}
