package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/doclens/internal/config"
	"github.com/dgallion1/doclens/internal/layout"
	"github.com/dgallion1/doclens/internal/outline"
	"github.com/dgallion1/doclens/internal/parser"
	"github.com/dgallion1/doclens/internal/task"
)

// Worker processes a single job.
type Worker struct {
	log   *slog.Logger
	cfg   config.Config
	stats *Stats
}

func NewWorker(log *slog.Logger, cfg config.Config, stats *Stats) *Worker {
	return &Worker{log: log, cfg: cfg, stats: stats}
}

// Process runs the job's pipeline. Any failure marks the job failed
// and never propagates past it.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "kind", job.Kind)
	start := time.Now()

	switch job.Kind {
	case KindOutline:
		w.processOutline(log, job)
	case KindRank:
		w.processRank(ctx, log, job)
	default:
		job.AddError(fmt.Sprintf("unknown job kind: %s", job.Kind))
		job.SetStatus(StatusFailed, "dispatch")
	}

	w.stats.Record(time.Since(start))
}

func (w *Worker) processOutline(log *slog.Logger, job *Job) {
	job.SetStatus(StatusParsing, "parsing")
	doc, err := w.parse(job.Filename, job.fileData)
	if err != nil {
		log.Error("parse failed", "error", err)
		job.AddError(fmt.Sprintf("parse: %s", err))
		job.SetStatus(StatusFailed, "parsing")
		return
	}

	result := outline.Extract(doc)
	job.SetResult(result)
	job.SetStatus(StatusCompleted, "done")
	log.Info("outline extracted", "headings", len(result.Outline), "title", result.Title)
}

func (w *Worker) processRank(ctx context.Context, log *slog.Logger, job *Job) {
	job.SetStatus(StatusRanking, "ranking")

	src := func(ctx context.Context, ref task.DocumentRef) (*layout.Document, error) {
		data, ok := job.files[ref.Filename]
		if !ok {
			return nil, fmt.Errorf("document not uploaded: %s", ref.Filename)
		}
		return w.parse(ref.Filename, data)
	}

	report, err := task.Process(ctx, job.taskCfg, src, task.Options{
		Workers:     w.cfg.WorkerCount,
		TopSections: w.cfg.TopSections,
		TopExcerpts: w.cfg.TopExcerpts,
	}, log)
	if err != nil {
		log.Error("ranking failed", "error", err)
		job.AddError(fmt.Sprintf("rank: %s", err))
		job.SetStatus(StatusFailed, "ranking")
		return
	}

	job.SetResult(report)
	job.SetStatus(StatusCompleted, "done")
	log.Info("ranking complete", "sections", len(report.ExtractedSections))
}

func (w *Worker) parse(filename string, data []byte) (*layout.Document, error) {
	p, err := parser.ForFile(filename)
	if err != nil {
		return nil, err
	}
	if pdf, ok := p.(*parser.PDFParser); ok {
		pdf.FallbackPdftotext = w.cfg.PDFFallbackPdftotext
	}
	return p.Parse(bytes.NewReader(data), filename)
}
