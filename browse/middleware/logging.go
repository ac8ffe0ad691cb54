// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/absmach/opcua-enum/browse"
)

var _ browse.Service = (*loggingMiddleware)(nil)

type loggingMiddleware struct {
	logger  *slog.Logger
	service browse.Service
}

// LoggingMiddleware adds logging facilities to the browse service.
func LoggingMiddleware(service browse.Service, logger *slog.Logger) browse.Service {
	return &loggingMiddleware{
		logger:  logger,
		service: service,
	}
}

func (lm *loggingMiddleware) Browse(ctx context.Context, serverURI string, req browse.Request) (err error) {
	defer func(begin time.Time) {
		args := []any{
			slog.String("duration", time.Since(begin).String()),
			slog.Group("request",
				slog.String("server_uri", serverURI),
				slog.String("mode", req.Mode.String()),
				slog.Int("depth", req.Depth),
				slog.String("target", req.Target),
			),
		}
		if err != nil {
			args = append(args, slog.Any("error", err))
			lm.logger.Warn("Browse failed", args...)
			return
		}
		lm.logger.Info("Browse completed successfully", args...)
	}(time.Now())

	return lm.service.Browse(ctx, serverURI, req)
}
