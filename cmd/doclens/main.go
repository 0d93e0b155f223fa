package main

import (
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dgallion1/doclens/internal/config"
)

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	app := &cli.App{
		Name:  "doclens",
		Usage: "infer document structure and rank sections against an information need",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "optional YAML config overlay",
			},
		},
		Commands: []*cli.Command{
			outlineCommand(log),
			rankCommand(log),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Error("doclens failed", "error", err)
		os.Exit(1)
	}
}

// loadConfig builds the effective config: env first, then the optional
// YAML overlay, then command-line flags on top.
func loadConfig(c *cli.Context) (config.Config, error) {
	cfg := config.Load()
	if path := c.String("config"); path != "" {
		fc, err := config.LoadFile(path)
		if err != nil {
			return cfg, err
		}
		fc.Apply(&cfg)
	}
	if w := c.Int("workers"); w > 0 {
		cfg.WorkerCount = w
	}
	return cfg, nil
}
