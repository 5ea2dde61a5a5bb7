package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	app "github.com/rocketscienceinc/tictactoe-ai/internal"
	"github.com/rocketscienceinc/tictactoe-ai/internal/config"
)

var configPath = flag.String("config", "./config.yml", "path to the config file")

// main - is the entry point of the application. It initializes the configuration, logger, and runs the game.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	flag.Parse()

	conf := config.MustLoad(*configPath)
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf, os.Stdin, os.Stdout); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize logger, on stderr so it stays out of the game dialogue.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	default:
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
