package task

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dgallion1/doclens/internal/layout"
	"github.com/dgallion1/doclens/internal/rank"
	"github.com/dgallion1/doclens/internal/section"
)

// Options tunes task processing. Zero values fall back to defaults.
type Options struct {
	Workers     int
	TopSections int
	TopExcerpts int
	Scorer      rank.Scorer
}

// Source resolves a task document reference to its parsed form.
// Returning an error marks that document failed; the task continues
// with the remaining documents.
type Source func(ctx context.Context, ref DocumentRef) (*layout.Document, error)

// Process segments every task document, pools the sections, ranks them
// against the persona/job query, and builds the report. Documents are
// processed in parallel, but sections are pooled in input-list order
// and each document's internal discovery order is preserved, so score
// tie-breaking stays deterministic.
func Process(ctx context.Context, cfg *Config, src Source, opts Options, log *slog.Logger) (Report, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = 4
	}
	scorer := opts.Scorer
	if scorer == nil {
		scorer = rank.TFCosine{}
	}

	perDoc := make([][]section.Section, len(cfg.Documents))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, ref := range cfg.Documents {
		i, ref := i, ref
		g.Go(func() error {
			doc, err := src(gctx, ref)
			if err != nil {
				// Input errors degrade to an empty document; the task
				// keeps going.
				log.Warn("document skipped", "document", ref.Filename, "error", err)
				return nil
			}
			perDoc[i] = section.Segment(doc)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}

	var pooled []section.Section
	for _, secs := range perDoc {
		pooled = append(pooled, secs...)
	}

	ranked := rank.Rank(pooled, cfg.Persona.Role, cfg.Job.Task, scorer, opts.TopSections)
	excerpts := rank.Excerpts(ranked, opts.TopExcerpts)

	log.Info("task processed",
		"documents", len(cfg.Documents),
		"sections", len(pooled),
		"ranked", len(ranked),
	)
	return BuildReport(cfg, ranked, excerpts, time.Now()), nil
}
