package task

import (
	"time"

	"github.com/dgallion1/doclens/internal/rank"
)

// Report is the ranking output document.
type Report struct {
	Metadata           Metadata           `json:"metadata"`
	ExtractedSections  []ExtractedSection `json:"extracted_sections"`
	SubsectionAnalysis []Subsection       `json:"subsection_analysis"`
}

type Metadata struct {
	InputDocuments      []string `json:"input_documents"`
	Persona             string   `json:"persona"`
	JobToBeDone         string   `json:"job_to_be_done"`
	ProcessingTimestamp string   `json:"processing_timestamp"`
}

type ExtractedSection struct {
	Document       string `json:"document"`
	SectionTitle   string `json:"section_title"`
	ImportanceRank int    `json:"importance_rank"`
	PageNumber     int    `json:"page_number"`
}

type Subsection struct {
	Document    string `json:"document"`
	RefinedText string `json:"refined_text"`
	PageNumber  int    `json:"page_number"`
}

// BuildReport assembles the output document from ranked sections and
// their excerpts.
func BuildReport(cfg *Config, ranked []rank.Ranked, excerpts []rank.Excerpt, now time.Time) Report {
	inputs := make([]string, len(cfg.Documents))
	for i, d := range cfg.Documents {
		inputs[i] = d.Filename
	}

	sections := make([]ExtractedSection, 0, len(ranked))
	for _, r := range ranked {
		sections = append(sections, ExtractedSection{
			Document:       r.Document,
			SectionTitle:   r.Title,
			ImportanceRank: r.Rank,
			PageNumber:     r.Page,
		})
	}

	subs := make([]Subsection, 0, len(excerpts))
	for _, e := range excerpts {
		subs = append(subs, Subsection{
			Document:    e.Document,
			RefinedText: e.Text,
			PageNumber:  e.Page,
		})
	}

	return Report{
		Metadata: Metadata{
			InputDocuments:      inputs,
			Persona:             cfg.Persona.Role,
			JobToBeDone:         cfg.Job.Task,
			ProcessingTimestamp: now.Format(time.RFC3339),
		},
		ExtractedSections:  sections,
		SubsectionAnalysis: subs,
	}
}
