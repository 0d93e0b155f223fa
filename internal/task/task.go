// Package task loads persona-driven ranking task configurations and
// assembles the ranking report for a pool of documents.
package task

import (
	"encoding/json"
	"fmt"
	"io"
)

// Config is the ranking task input: the documents to pool, the persona
// whose information need is being served, and the job to be done. The
// persona role and job task concatenate into the relevance query.
type Config struct {
	Documents []DocumentRef `json:"documents"`
	Persona   Persona       `json:"persona"`
	Job       Job           `json:"job_to_be_done"`
}

type DocumentRef struct {
	Filename string `json:"filename"`
	Title    string `json:"title,omitempty"`
}

type Persona struct {
	Role string `json:"role"`
}

type Job struct {
	Task string `json:"task"`
}

// Load reads and validates a task config.
func Load(r io.Reader) (*Config, error) {
	var cfg Config
	if err := json.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("decode task config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the required fields. A task missing any of them is
// an input error and is skipped by batch callers.
func (c *Config) Validate() error {
	if len(c.Documents) == 0 {
		return fmt.Errorf("task config: documents is required")
	}
	for i, d := range c.Documents {
		if d.Filename == "" {
			return fmt.Errorf("task config: documents[%d].filename is required", i)
		}
	}
	if c.Persona.Role == "" {
		return fmt.Errorf("task config: persona.role is required")
	}
	if c.Job.Task == "" {
		return fmt.Errorf("task config: job_to_be_done.task is required")
	}
	return nil
}
