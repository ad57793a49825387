// Package main provides the entry point for the library CLI tool.
package main

import (
	"context"
	"os"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/cmd/library/app"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
	builtBy = "unknown"
)

func main() {
	application, err := app.New(version, commit, date, builtBy)
	if err != nil {
		app.ExitOnError(err)
	}

	ctx := context.Background()
	runErr := application.Execute(ctx, os.Args[1:])

	// Shutdown runs on every path so the worker pool drains and bolt
	// releases its file lock.
	shutdownCtx, cancel := context.WithTimeout(ctx, application.Config().ShutdownTimeout)
	defer cancel()
	if err := application.Shutdown(shutdownCtx); err != nil {
		application.Logger().Error().Err(err).Msg("Shutdown error")
	}

	if runErr != nil {
		cancel()
		os.Exit(1)
	}
}
