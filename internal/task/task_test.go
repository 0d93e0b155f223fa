package task

import (
	"strings"
	"testing"
	"time"

	"github.com/dgallion1/doclens/internal/rank"
	"github.com/dgallion1/doclens/internal/section"
)

func TestLoad_ValidConfig(t *testing.T) {
	input := `{
		"documents": [{"filename": "guide.pdf", "title": "City Guide"}],
		"persona": {"role": "Travel Planner"},
		"job_to_be_done": {"task": "Plan a weekend trip"}
	}`
	cfg, err := Load(strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Documents) != 1 || cfg.Documents[0].Filename != "guide.pdf" {
		t.Errorf("unexpected documents: %+v", cfg.Documents)
	}
	if cfg.Persona.Role != "Travel Planner" {
		t.Errorf("unexpected persona: %q", cfg.Persona.Role)
	}
	if cfg.Job.Task != "Plan a weekend trip" {
		t.Errorf("unexpected job: %q", cfg.Job.Task)
	}
}

func TestValidate_MissingFields(t *testing.T) {
	cases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name:    "no documents",
			cfg:     Config{Persona: Persona{Role: "r"}, Job: Job{Task: "t"}},
			wantErr: "documents",
		},
		{
			name: "blank filename",
			cfg: Config{
				Documents: []DocumentRef{{Filename: ""}},
				Persona:   Persona{Role: "r"},
				Job:       Job{Task: "t"},
			},
			wantErr: "filename",
		},
		{
			name: "no persona role",
			cfg: Config{
				Documents: []DocumentRef{{Filename: "a.pdf"}},
				Job:       Job{Task: "t"},
			},
			wantErr: "persona.role",
		},
		{
			name: "no job task",
			cfg: Config{
				Documents: []DocumentRef{{Filename: "a.pdf"}},
				Persona:   Persona{Role: "r"},
			},
			wantErr: "job_to_be_done.task",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	if _, err := Load(strings.NewReader("{not json")); err == nil {
		t.Fatal("expected decode error, got nil")
	}
}

func TestBuildReport_Fields(t *testing.T) {
	cfg := &Config{
		Documents: []DocumentRef{{Filename: "a.pdf"}, {Filename: "b.pdf"}},
		Persona:   Persona{Role: "Researcher"},
		Job:       Job{Task: "Summarize findings"},
	}
	ranked := []rank.Ranked{
		{Section: section.Section{Document: "b.pdf", Title: "RESULTS", Page: 4}, Score: 0.8, Rank: 1},
		{Section: section.Section{Document: "a.pdf", Title: "METHODS", Page: 2}, Score: 0.5, Rank: 2},
	}
	excerpts := []rank.Excerpt{
		{Document: "b.pdf", Text: "The study found a clear effect.", Page: 4},
	}
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	report := BuildReport(cfg, ranked, excerpts, now)

	if got := report.Metadata.ProcessingTimestamp; got != "2026-08-29T12:00:00Z" {
		t.Errorf("unexpected timestamp: %q", got)
	}
	if len(report.Metadata.InputDocuments) != 2 || report.Metadata.InputDocuments[0] != "a.pdf" {
		t.Errorf("unexpected input documents: %v", report.Metadata.InputDocuments)
	}
	if report.Metadata.Persona != "Researcher" || report.Metadata.JobToBeDone != "Summarize findings" {
		t.Errorf("unexpected metadata: %+v", report.Metadata)
	}
	if len(report.ExtractedSections) != 2 {
		t.Fatalf("expected 2 extracted sections, got %d", len(report.ExtractedSections))
	}
	first := report.ExtractedSections[0]
	if first.Document != "b.pdf" || first.SectionTitle != "RESULTS" || first.ImportanceRank != 1 || first.PageNumber != 4 {
		t.Errorf("unexpected first section: %+v", first)
	}
	if len(report.SubsectionAnalysis) != 1 || report.SubsectionAnalysis[0].RefinedText != "The study found a clear effect." {
		t.Errorf("unexpected subsections: %+v", report.SubsectionAnalysis)
	}
}

func TestBuildReport_EmptyRanking(t *testing.T) {
	cfg := &Config{
		Documents: []DocumentRef{{Filename: "a.pdf"}},
		Persona:   Persona{Role: "r"},
		Job:       Job{Task: "t"},
	}
	report := BuildReport(cfg, nil, nil, time.Now())
	if report.ExtractedSections == nil || len(report.ExtractedSections) != 0 {
		t.Errorf("expected empty non-nil sections, got %+v", report.ExtractedSections)
	}
	if report.SubsectionAnalysis == nil || len(report.SubsectionAnalysis) != 0 {
		t.Errorf("expected empty non-nil subsections, got %+v", report.SubsectionAnalysis)
	}
}
