// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package rename renames the PDFs in a folder after the subject line found on
// their first page.
package rename

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/pdf-tools/internal/naming"
	"github.com/pdiddy/pdf-tools/pkg/types"
)

// TextSource extracts the text of the first page of a PDF.
type TextSource interface {
	FirstPageText(path string) (string, error)
}

// Options control a rename run.
type Options struct {
	// DryRun resolves new names without renaming anything.
	DryRun bool
}

// BatchResult holds the outcome of renaming a folder.
type BatchResult struct {
	Renamed  int
	Skipped  int
	Failed   int
	Outcomes []types.Outcome
}

// Total returns the number of PDFs looked at.
func (r BatchResult) Total() int {
	return r.Renamed + r.Skipped + r.Failed
}

// HasFailures reports whether any file failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

func (r *BatchResult) add(o types.Outcome) {
	switch {
	case o.Status.Done():
		r.Renamed++
	case o.Status == types.StatusSkipped:
		r.Skipped++
	case o.Status == types.StatusFailed:
		r.Failed++
	}
	r.Outcomes = append(r.Outcomes, o)
}

// Renamer renames PDFs after their subject line.
type Renamer struct {
	Source TextSource
	Logger *zap.SugaredLogger
	Out    io.Writer
}

// Subject returns the subject line of the PDF at path. Extraction errors are
// logged with the file name and reported as not found.
func (r *Renamer) Subject(path string) (string, bool) {
	text, err := r.Source.FirstPageText(path)
	if err != nil {
		r.Logger.Warnw("could not read first page", "file", filepath.Base(path), "error", err)
		return "", false
	}
	return naming.SelectSubjectLine(text)
}

// ProcessFolder renames every PDF in folder. The folder listing is taken once
// up front and processed in lexical order; a failure on one file does not
// stop the others. One status line per PDF is printed to r.Out, followed by
// a summary.
func (r *Renamer) ProcessFolder(folder string, opts Options) (BatchResult, error) {
	var result BatchResult

	entries, err := os.ReadDir(folder)
	if err != nil {
		return result, fmt.Errorf("reading folder %s: %w", folder, err)
	}

	var names []string
	for _, e := range entries {
		if strings.HasSuffix(strings.ToLower(e.Name()), ".pdf") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	// Dry runs track the names earlier files would have taken or vacated.
	planned := make(map[string]bool)

	for _, name := range names {
		o := r.renameOne(folder, name, opts, planned)
		r.report(o)
		result.add(o)
	}

	fmt.Fprintf(r.Out, "\nBatch summary: %d renamed, %d skipped, %d failed (total: %d)\n",
		result.Renamed, result.Skipped, result.Failed, result.Total())
	return result, nil
}

func (r *Renamer) renameOne(folder, name string, opts Options, planned map[string]bool) types.Outcome {
	src := filepath.Join(folder, name)
	o := types.Outcome{Source: src}

	info, err := os.Lstat(src)
	if err != nil {
		o.Status = types.StatusFailed
		o.Reason = err.Error()
		return o
	}
	if !info.Mode().IsRegular() {
		o.Status = types.StatusSkipped
		o.Reason = "not a regular file"
		return o
	}

	subject, ok := r.Subject(src)
	if !ok {
		o.Status = types.StatusSkipped
		o.Reason = "no subject found"
		return o
	}

	base := naming.Slugify(subject)
	r.Logger.Debugw("subject found", "file", name, "subject", subject, "slug", base)

	newName, err := naming.ResolveNameReserved(folder, base, name, planned)
	if err != nil {
		o.Status = types.StatusFailed
		o.Reason = err.Error()
		return o
	}
	dst := filepath.Join(folder, newName)
	o.Target = dst

	if newName == name {
		o.Status = types.StatusUnchanged
		return o
	}
	if opts.DryRun {
		planned[newName] = true
		planned[name] = false
		o.Status = types.StatusPlanned
		return o
	}
	if err := os.Rename(src, dst); err != nil {
		o.Status = types.StatusFailed
		o.Reason = err.Error()
		o.Target = ""
		return o
	}
	o.Status = types.StatusRenamed
	return o
}

func (r *Renamer) report(o types.Outcome) {
	name := filepath.Base(o.Source)
	switch o.Status {
	case types.StatusRenamed:
		fmt.Fprintf(r.Out, "%s  →  %s\n", name, filepath.Base(o.Target))
	case types.StatusPlanned:
		fmt.Fprintf(r.Out, "%s  →  %s (dry run)\n", name, filepath.Base(o.Target))
	case types.StatusUnchanged:
		fmt.Fprintf(r.Out, "unchanged: %s\n", name)
	case types.StatusSkipped:
		fmt.Fprintf(r.Out, "skipped: %s (%s)\n", name, o.Reason)
	case types.StatusFailed:
		fmt.Fprintf(r.Out, "failed:  %s (%s)\n", name, o.Reason)
	}
}
