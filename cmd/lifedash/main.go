package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path"

	"github.com/SscSPs/lifedash/internal/cli"
	"github.com/SscSPs/lifedash/internal/platform/config"
	"github.com/google/subcommands"
)

func main() {
	cfg, err := config.LoadClientConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelWarn
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx := context.Background()
	app, err := cli.NewApp(ctx, cfg)
	if err != nil {
		slog.Error("Failed to start", slog.String("error", err.Error()))
		os.Exit(1)
	}

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cli.Register(commander, app)

	flag.Parse()
	status := commander.Execute(ctx)
	if err := app.Close(); err != nil {
		slog.Warn("Failed to close state store", slog.String("error", err.Error()))
	}
	os.Exit(int(status))
}
