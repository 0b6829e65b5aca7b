package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"todo-list/internal/cli"
	"todo-list/internal/config"
	"todo-list/internal/logging"
	"todo-list/internal/repository/sqlite"
	"todo-list/internal/tasklist"
)

func main() {
	logger := logging.New()
	defer logger.Sync()

	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// An unusable store degrades the session to memory-only instead of
	// aborting; the CLI surfaces the warning once.
	var repo sqlite.Repository
	if opened, err := config.CreateRepository(cfg); err != nil {
		logger.Error("task store unavailable", zap.Error(err))
	} else {
		repo = opened
		defer opened.Close()
	}

	manager := tasklist.NewManager(repo, logger)
	app := cli.NewApp(manager, os.Stdout)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Application.Timeout)
	defer cancel()

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
