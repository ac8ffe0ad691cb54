// Copyright (c) Abstract Machines
// SPDX-License-Identifier: Apache-2.0

// Package main contains the entry point of the opcua-enum tool.
package main

import (
	"context"
	"log"
	"os"

	"github.com/absmach/opcua-enum/browse"
	"github.com/absmach/opcua-enum/browse/gopcua"
	"github.com/absmach/opcua-enum/browse/middleware"
	"github.com/absmach/opcua-enum/cli"
	mglog "github.com/absmach/opcua-enum/logger"
	"github.com/caarlos0/env/v11"
	cc "github.com/ivanpirog/coloredcobra"
)

const svcName = "opcua-enum"

type config struct {
	LogLevel string `env:"OPCUA_ENUM_LOG_LEVEL" envDefault:"info"`
}

func main() {
	cfg := config{}
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("failed to load %s configuration : %s", svcName, err)
	}

	opcConfig := gopcua.Config{}
	if err := env.Parse(&opcConfig); err != nil {
		log.Fatalf("failed to load %s client configuration : %s", svcName, err)
	}

	logger, err := mglog.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to init logger: %s", err)
	}

	var exitCode int
	defer mglog.ExitWithError(&exitCode)

	svc := browse.New(gopcua.NewDialer(opcConfig, logger), os.Stdout, logger)
	svc = middleware.LoggingMiddleware(svc, logger)

	cli.SetService(svc)
	cli.SetLogger(logger)

	rootCmd := cli.NewBrowseCmd()

	cc.Init(&cc.Config{
		RootCmd:       rootCmd,
		Headings:      cc.HiCyan + cc.Bold + cc.Underline,
		Commands:      cc.HiYellow + cc.Bold,
		Example:       cc.Italic,
		ExecName:      cc.Bold,
		Flags:         cc.Bold,
		FlagsDataType: cc.Italic + cc.HiBlue,
	})

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Error(err.Error())
		exitCode = 1
		return
	}

	exitCode = cli.ExitCode
}
