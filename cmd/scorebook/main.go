// Command scorebook is the terminal client for the innings dataset
package main

import (
	"context"
	"os"
	"os/signal"

	"scorebook/internal/cli"
	"scorebook/internal/platform/config/raw"
	"scorebook/internal/platform/logger"
)

func main() {
	// keep the terminal quiet unless LOG_LEVEL asks otherwise
	opts := logger.FromEnv()
	opts.Level = raw.New().Prefix("LOG_").Get("LEVEL", "warn")
	logger.Init(opts)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := cli.Run(ctx, os.Args[1:], &cli.IO{In: os.Stdin, Out: os.Stdout, Err: os.Stderr})
	stop()
	os.Exit(code)
}
