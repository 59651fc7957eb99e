package main

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/urfave/cli/v3"

	"github.com/philipp01105/nicepick/logger"
)

// FloodCommand creates the flood command
func FloodCommand() *cli.Command {
	return &cli.Command{
		Name:  "flood",
		Usage: "Saturate the queue from concurrent producers and report drops",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "producers",
				Usage: "Number of producing goroutines",
				Value: 8,
			},
			&cli.IntFlag{
				Name:  "messages",
				Usage: "Messages per producer",
				Value: 1000,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			producers, messages := int(c.Int("producers")), int(c.Int("messages"))
			if producers <= 0 || messages <= 0 {
				return fmt.Errorf("producers and messages must be positive")
			}
			return flood(c.Root().Writer, producers, messages)
		},
	}
}

// flood logs from concurrent producers, drains the default logger and
// reports its counters to w
func flood(w io.Writer, producers, messages int) error {
	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < messages; i++ {
				logger.Infof("producer %d message %d", p, i)
			}
		}(p)
	}
	wg.Wait()

	if err := logger.Default().Close(); err != nil {
		return err
	}

	stats := logger.Stats()
	_, err := fmt.Fprintf(w, "sent=%d processed=%d dropped=%d\n", producers*messages, stats.Processed, stats.DroppedTotal)
	return err
}
