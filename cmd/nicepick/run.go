package main

import (
	"context"
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/philipp01105/nicepick/handler"
	"github.com/philipp01105/nicepick/logger"
)

// RunCommand creates the run command
func RunCommand() *cli.Command {
	return &cli.Command{
		Name:   "run",
		Usage:  "Log the application startup sequence",
		Action: runAction,
	}
}

func runAction(ctx context.Context, c *cli.Command) error {
	start := time.Now()
	logger.Debugf("Logger initialized in %v", time.Since(start))

	logger.Infof("Configuring application settings")
	settings := loadSettings()

	logger.Debugf("Application setup took %v", time.Since(start))
	logger.Okayf("Window configured: %dx%d, decorations=%t", settings.width, settings.height, settings.decorations)

	slog.Info("standard library logging is routed through the same worker")

	zl := zap.New(handler.NewZapCore(logger.Default()), zap.AddCaller()).Named("deps")
	zl.Info("zap logging is routed through the same worker", zap.Int("queue", 1024))

	return nil
}

type settings struct {
	width, height int
	decorations   bool
}

func loadSettings() settings {
	defer logger.Timed(logger.DebugLevel, "settings load")()
	return settings{width: 400, height: 200}
}
