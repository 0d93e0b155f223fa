package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"

	"github.com/dgallion1/doclens/internal/config"
	"github.com/dgallion1/doclens/internal/outline"
	"github.com/dgallion1/doclens/internal/parser"
	"github.com/dgallion1/doclens/internal/store"
)

func outlineCommand(log *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "outline",
		Usage: "extract a title and heading outline from each document in a directory",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Usage: "input directory", Required: true},
			&cli.StringFlag{Name: "output", Usage: "output directory", Value: "output"},
			&cli.IntFlag{Name: "workers", Usage: "parallel documents"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			return runOutline(c, cfg, log)
		},
	}
}

func runOutline(c *cli.Context, cfg config.Config, log *slog.Logger) error {
	inputDir := c.String("input")
	outputDir := c.String("output")

	files, err := listSupported(inputDir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		log.Warn("no supported documents found", "dir", inputDir)
		return nil
	}

	g, _ := errgroup.WithContext(c.Context)
	g.SetLimit(cfg.WorkerCount)

	for _, name := range files {
		name := name
		g.Go(func() error {
			// Per-document failures are logged and skipped; the batch
			// continues.
			if err := outlineOne(inputDir, outputDir, name, cfg); err != nil {
				log.Error("document failed", "document", name, "error", err)
				return nil
			}
			log.Info("processed", "document", name)
			return nil
		})
	}
	return g.Wait()
}

func outlineOne(inputDir, outputDir, name string, cfg config.Config) error {
	f, err := os.Open(filepath.Join(inputDir, name))
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	p, err := parser.ForFile(name)
	if err != nil {
		return err
	}
	if pdf, ok := p.(*parser.PDFParser); ok {
		pdf.FallbackPdftotext = cfg.PDFFallbackPdftotext
	}

	doc, err := p.Parse(f, name)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	result := outline.Extract(doc)
	return store.WriteJSON(filepath.Join(outputDir, store.OutputName(name)), result)
}

// listSupported returns the supported filenames in dir, sorted.
func listSupported(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read input dir: %w", err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !parser.IsSupportedExtension(e.Name()) {
			continue
		}
		files = append(files, e.Name())
	}
	sort.Strings(files)
	return files, nil
}
