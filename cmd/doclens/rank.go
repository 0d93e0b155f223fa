package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/dgallion1/doclens/internal/config"
	"github.com/dgallion1/doclens/internal/layout"
	"github.com/dgallion1/doclens/internal/parser"
	"github.com/dgallion1/doclens/internal/store"
	"github.com/dgallion1/doclens/internal/task"
)

func rankCommand(log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "rank",
		Usage: "rank document sections against a persona/job task",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "task", Usage: "task config JSON file", Required: true},
			&cli.StringFlag{Name: "docs", Usage: "directory holding the task's documents (defaults to the task file's directory)"},
			&cli.StringFlag{Name: "output", Usage: "output JSON file", Value: "ranking.json"},
			&cli.IntFlag{Name: "workers", Usage: "parallel documents"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			return runRank(c, cfg, log)
		},
	}
}

func runRank(c *cli.Context, cfg config.Config, log *slog.Logger) error {
	taskPath := c.String("task")
	docsDir := c.String("docs")
	if docsDir == "" {
		docsDir = filepath.Dir(taskPath)
	}

	f, err := os.Open(taskPath)
	if err != nil {
		return fmt.Errorf("open task config: %w", err)
	}
	taskCfg, err := task.Load(f)
	f.Close()
	if err != nil {
		return err
	}

	src := func(ctx context.Context, ref task.DocumentRef) (*layout.Document, error) {
		return parseFile(filepath.Join(docsDir, ref.Filename), ref.Filename, cfg)
	}

	report, err := task.Process(c.Context, taskCfg, src, task.Options{
		Workers:     cfg.WorkerCount,
		TopSections: cfg.TopSections,
		TopExcerpts: cfg.TopExcerpts,
	}, log)
	if err != nil {
		return err
	}

	return store.WriteJSON(c.String("output"), report)
}

func parseFile(path, name string, cfg config.Config) (*layout.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	p, err := parser.ForFile(name)
	if err != nil {
		return nil, err
	}
	if pdf, ok := p.(*parser.PDFParser); ok {
		pdf.FallbackPdftotext = cfg.PDFFallbackPdftotext
	}
	return p.Parse(f, name)
}
