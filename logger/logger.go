// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package logger provides a slog based logger used across the tool.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// New returns a JSON logger writing to w, filtered at the given level.
// The level is parsed from its textual form (debug, info, warn, error).
func New(w io.Writer, levelText string) (*slog.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(levelText)); err != nil {
		return nil, err
	}

	logHandler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})

	return slog.New(logHandler), nil
}

// ExitWithError terminates the process with the given code. Meant to be
// deferred from main so that cleanup registered earlier still runs.
func ExitWithError(code *int) {
	os.Exit(*code)
}
