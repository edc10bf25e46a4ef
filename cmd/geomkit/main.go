// Command geomkit evaluates geometry scene files and prints the query results.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/zeusync/geomkit/internal/config"
	"github.com/zeusync/geomkit/internal/observability/log"
)

func main() {
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := log.New(cfg.Level())
	defer func() { _ = logger.Sync() }()

	if err := run(ctx, cfg, os.Stdout, logger); err != nil {
		logger.Error("run failed", log.Error(err))
		_ = logger.Sync()
		config.Exitf("Error: %v", err)
	}
}
