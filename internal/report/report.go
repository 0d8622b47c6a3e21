// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package report writes the outcomes of a batch run to a YAML or JSON file.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/pdf-tools/pkg/types"
)

// Summary counts outcomes by status.
type Summary struct {
	Done    int `json:"done" yaml:"done"`
	Skipped int `json:"skipped" yaml:"skipped"`
	Failed  int `json:"failed" yaml:"failed"`
}

// Report is the document written for one run of a command.
type Report struct {
	Command  string          `json:"command" yaml:"command"`
	RunAt    time.Time       `json:"run_at" yaml:"run_at"`
	DryRun   bool            `json:"dry_run,omitempty" yaml:"dry_run,omitempty"`
	Summary  Summary         `json:"summary" yaml:"summary"`
	Outcomes []types.Outcome `json:"outcomes" yaml:"outcomes"`
}

// New builds a report for command from outcomes, counting them by status.
func New(command string, outcomes []types.Outcome) Report {
	r := Report{
		Command:  command,
		RunAt:    time.Now().UTC().Truncate(time.Second),
		Outcomes: outcomes,
	}
	if r.Outcomes == nil {
		r.Outcomes = []types.Outcome{}
	}
	for _, o := range outcomes {
		switch {
		case o.Status.Done():
			r.Summary.Done++
		case o.Status == types.StatusSkipped:
			r.Summary.Skipped++
		case o.Status == types.StatusFailed:
			r.Summary.Failed++
		}
	}
	return r
}

// Write stores r at path. A ".json" extension (any case) selects JSON;
// every other path is written as YAML.
func Write(path string, r Report) error {
	var (
		data []byte
		err  error
	)
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err = json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		data = append(data, '\n')
	} else {
		data, err = yaml.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing report %s: %w", path, err)
	}
	return nil
}
