// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// OutputConfig holds settings shared by both commands.
type OutputConfig struct {
	// Verbose enables debug logging on stderr.
	Verbose bool `json:"verbose" yaml:"verbose"`

	// ReportPath is an optional file receiving the batch outcomes.
	// A .json extension selects JSON; anything else is written as YAML.
	ReportPath string `json:"report,omitempty" yaml:"report,omitempty"`
}

// PageConfig holds settings for keep-page.
type PageConfig struct {
	OutputConfig `yaml:",inline"`

	// Page is the 1-based page number to keep.
	Page int `json:"page" yaml:"page"`

	// Targets lists PDF files and folders to process.
	Targets []string `json:"targets" yaml:"targets"`
}

// RenameConfig holds settings for rename-pdfs.
type RenameConfig struct {
	OutputConfig `yaml:",inline"`

	// Folder is the directory whose PDFs are renamed (default ".").
	Folder string `json:"folder" yaml:"folder"`

	// DryRun reports the planned renames without touching any file.
	DryRun bool `json:"dry_run" yaml:"dry_run"`
}
