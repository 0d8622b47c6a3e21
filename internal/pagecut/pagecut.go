// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pagecut keeps a single page of PDF files: for every PDF target it
// writes a sibling file holding only the requested page.
package pagecut

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/pdf-tools/internal/pdfdoc"
	"github.com/pdiddy/pdf-tools/pkg/types"
)

// PageExtractor produces a serialized single-page PDF from a page of the
// document at path. Page numbers are 1-based. A page beyond the end of the
// document must be reported as a *pdfdoc.PageRangeError.
type PageExtractor interface {
	ExtractPage(path string, page int) (io.Reader, error)
}

// BatchResult holds the outcome of a batch run.
type BatchResult struct {
	Written  int
	Skipped  int
	Failed   int
	Outcomes []types.Outcome
}

// Total returns the number of items processed.
func (r BatchResult) Total() int {
	return r.Written + r.Skipped + r.Failed
}

// HasFailures reports whether any item failed.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

func (r *BatchResult) add(o types.Outcome) {
	switch o.Status {
	case types.StatusWritten:
		r.Written++
	case types.StatusSkipped:
		r.Skipped++
	case types.StatusFailed:
		r.Failed++
	}
	r.Outcomes = append(r.Outcomes, o)
}

var pdfSuffix = regexp.MustCompile(`(?i)\.pdf$`)

// OutputPath returns the path the extracted page of source is written to:
// the trailing ".pdf" (any case) is replaced by "_Seite<page>.pdf".
func OutputPath(source string, page int) string {
	return pdfSuffix.ReplaceAllLiteralString(source, "_Seite"+strconv.Itoa(page)+".pdf")
}

// IsPDFName reports whether name ends in ".pdf", ignoring case.
func IsPDFName(name string) bool {
	return strings.HasSuffix(strings.ToLower(name), ".pdf")
}

// ExtractSinglePage writes page of the PDF at source to OutputPath(source,
// page). The source is never modified. The returned outcome is written if
// the page was stored, skipped if the document is too short, and failed
// otherwise.
func ExtractSinglePage(x PageExtractor, source string, page int) types.Outcome {
	o := types.Outcome{Source: source, Page: page}

	r, err := x.ExtractPage(source, page)
	if err != nil {
		var rangeErr *pdfdoc.PageRangeError
		if errors.As(err, &rangeErr) {
			o.Status = types.StatusSkipped
			o.Reason = fmt.Sprintf("has only %d pages", rangeErr.Count)
			return o
		}
		o.Status = types.StatusFailed
		o.Reason = err.Error()
		return o
	}

	out := OutputPath(source, page)
	if err := writeAtomic(out, r); err != nil {
		o.Status = types.StatusFailed
		o.Reason = err.Error()
		return o
	}

	o.Status = types.StatusWritten
	o.Target = out
	return o
}

// writeAtomic writes r to a temporary file next to path and renames it into
// place, so a failed write leaves no partial output behind.
func writeAtomic(path string, r io.Reader) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".keep-page-*.pdf")
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Processor runs ExtractSinglePage over a list of targets.
type Processor struct {
	Extractor PageExtractor
	Logger    *zap.SugaredLogger
	Out       io.Writer
}

// ProcessTargets handles each target in order. Folders contribute every
// entry whose name ends in ".pdf"; PDF files are processed directly;
// anything else is skipped. One status line per item is printed to p.Out,
// followed by a summary. Failures never stop the batch.
func (p *Processor) ProcessTargets(targets []string, page int) BatchResult {
	var result BatchResult
	for _, t := range targets {
		info, err := os.Stat(t)
		switch {
		case err == nil && info.IsDir():
			p.processFolder(&result, t, page)
		case IsPDFName(t):
			p.processFile(&result, t, page)
		default:
			o := types.Outcome{Source: t, Page: page, Status: types.StatusSkipped, Reason: "neither PDF nor folder"}
			p.report(o)
			result.add(o)
		}
	}

	fmt.Fprintf(p.Out, "\nBatch summary: %d written, %d skipped, %d failed (total: %d)\n",
		result.Written, result.Skipped, result.Failed, result.Total())
	return result
}

func (p *Processor) processFolder(result *BatchResult, dir string, page int) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		o := types.Outcome{Source: dir, Page: page, Status: types.StatusFailed, Reason: err.Error()}
		p.report(o)
		result.add(o)
		return
	}

	var names []string
	for _, e := range entries {
		if IsPDFName(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	p.Logger.Debugw("scanning folder", "folder", dir, "pdfs", len(names))

	for _, name := range names {
		p.processFile(result, filepath.Join(dir, name), page)
	}
}

func (p *Processor) processFile(result *BatchResult, path string, page int) {
	p.Logger.Debugw("extracting page", "file", path, "page", page)
	o := ExtractSinglePage(p.Extractor, path, page)
	p.report(o)
	result.add(o)
}

func (p *Processor) report(o types.Outcome) {
	name := filepath.Base(o.Source)
	switch o.Status {
	case types.StatusWritten:
		fmt.Fprintf(p.Out, "written: %s -> %s\n", name, filepath.Base(o.Target))
	case types.StatusSkipped:
		fmt.Fprintf(p.Out, "skipped: %s (%s)\n", name, o.Reason)
	case types.StatusFailed:
		fmt.Fprintf(p.Out, "failed:  %s (%s)\n", name, o.Reason)
		p.Logger.Debugw("extraction failed", "file", o.Source, "error", o.Reason)
	}
}
