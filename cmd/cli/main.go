package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/aturkov/jobpilot/internal/buildinfo"
	"github.com/aturkov/jobpilot/internal/cli"
	"github.com/aturkov/jobpilot/internal/config"
	"github.com/aturkov/jobpilot/internal/logging"
)

func logLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, logLevel(cfg.LogLevel))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
