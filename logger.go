// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package wgtypes

import (
	"log/slog"
	"sync/atomic"
)

// silent drops every record; its handler reports every level disabled.
var silent = slog.New(slog.DiscardHandler)

var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger routes the diagnostics of wgtypes and its sub-packages to l.
// Nothing is logged until it is called. A nil l silences logging again.
// It may be called while other goroutines log.
//
// Levels:
//   - [slog.LevelDebug]: limit failures, preset registration, first
//     lookup of a format in a cache.FormatFeatures
//   - [slog.LevelInfo]: the adapter picked by cmd/wgpuinfo
//
// Example:
//
//	wgtypes.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger, or a silent one.
func Logger() *slog.Logger {
	return current.Load()
}
