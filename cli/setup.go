// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package cli contains the command line interface of the tool.
package cli

import (
	"log/slog"

	"github.com/absmach/opcua-enum/browse"
)

var (
	svc    browse.Service
	logger *slog.Logger

	// ExitCode is set by commands that must terminate the process with a
	// non-zero status.
	ExitCode int
)

// SetService sets the browse service used by the commands.
func SetService(s browse.Service) {
	svc = s
}

// SetLogger sets the logger used by the commands.
func SetLogger(l *slog.Logger) {
	logger = l
}
