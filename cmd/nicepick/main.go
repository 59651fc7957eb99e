package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/philipp01105/nicepick/core"
	"github.com/philipp01105/nicepick/handler"
	"github.com/philipp01105/nicepick/logger"
)

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.Command {
	return &cli.Command{
		Name:   "nicepick",
		Usage:  "Exercise the nicepick logging core",
		Writer: os.Stdout,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "level",
				Usage:   "Minimum log level (debug, info, okay, warning, fail)",
				Value:   logger.DefaultLevel.String(),
				Sources: cli.EnvVars("NICEPICK_LOG_LEVEL"),
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			level, err := core.ParseLevel(c.String("level"))
			if err != nil {
				return ctx, fmt.Errorf("parsing --level: %w", err)
			}
			logger.Init(level)
			slog.SetDefault(slog.New(handler.NewSlogHandler(logger.Default())))
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			// drain queued lines before the process exits
			return logger.Default().Close()
		},
		Action: runAction,
		Commands: []*cli.Command{
			RunCommand(),
			FloodCommand(),
		},
	}
}
