// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the records shared by the pdf-tools commands.
package types

// Status indicates what happened to a single file during a batch run.
type Status string

const (
	// StatusWritten means a single-page PDF was written next to the source.
	StatusWritten Status = "written"
	// StatusRenamed means the file was renamed to its subject slug.
	StatusRenamed Status = "renamed"
	// StatusUnchanged means the file already carries its subject slug.
	StatusUnchanged Status = "unchanged"
	// StatusPlanned means a rename was resolved but not applied (dry run).
	StatusPlanned Status = "planned"
	// StatusSkipped means the file was left alone for an expected reason.
	StatusSkipped Status = "skipped"
	// StatusFailed means the file could not be processed.
	StatusFailed Status = "failed"
)

// Done reports whether the status counts as successfully processed.
func (s Status) Done() bool {
	switch s {
	case StatusWritten, StatusRenamed, StatusUnchanged, StatusPlanned:
		return true
	}
	return false
}

// Outcome is the result of processing one file or target.
type Outcome struct {
	// Source is the path that was processed.
	Source string `json:"source" yaml:"source"`

	// Target is the written or renamed path, empty when nothing changed.
	Target string `json:"target,omitempty" yaml:"target,omitempty"`

	Status Status `json:"status" yaml:"status"`

	// Reason explains a skip or failure.
	Reason string `json:"reason,omitempty" yaml:"reason,omitempty"`

	// Page is the requested page number (keep-page only).
	Page int `json:"page,omitempty" yaml:"page,omitempty"`
}
