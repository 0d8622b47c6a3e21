// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdfdoc wraps the third-party PDF libraries used by the commands.
// pdfcpu reads, validates and splits documents; ledongthuc/pdf extracts text.
package pdfdoc

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// ErrNoPages is returned when a document has no readable first page.
var ErrNoPages = errors.New("document has no pages")

// PageRangeError reports a page number outside the document.
type PageRangeError struct {
	Page  int
	Count int
}

func (e *PageRangeError) Error() string {
	return fmt.Sprintf("page %d requested but document has only %d pages", e.Page, e.Count)
}

// Backend implements page extraction and text extraction on local files.
type Backend struct {
	conf *model.Configuration
}

// New returns a Backend using pdfcpu's default configuration.
func New() *Backend {
	conf := model.NewDefaultConfiguration()
	conf.Cmd = model.EXTRACTPAGES
	return &Backend{conf: conf}
}

// DisableConfigDir stops pdfcpu from creating its configuration directory in
// the user's home. Call before New.
func DisableConfigDir() {
	api.DisableConfigDir()
}

// PageCount returns the number of pages of the PDF at path.
func (b *Backend) PageCount(path string) (n int, err error) {
	defer recoverPanic(path, &err)

	ctx, closeFn, err := b.read(path)
	if err != nil {
		return 0, err
	}
	defer closeFn()
	return ctx.PageCount, nil
}

// ExtractPage returns a serialized single-page PDF holding page (1-based) of
// the document at path. A page beyond the end yields a *PageRangeError.
func (b *Backend) ExtractPage(path string, page int) (r io.Reader, err error) {
	defer recoverPanic(path, &err)

	ctx, closeFn, err := b.read(path)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	if page < 1 || page > ctx.PageCount {
		return nil, &PageRangeError{Page: page, Count: ctx.PageCount}
	}

	r, err = api.ExtractPage(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("extracting page %d of %s: %w", page, filepath.Base(path), err)
	}
	return r, nil
}

func (b *Backend) read(path string) (*model.Context, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	ctx, err := api.ReadValidateAndOptimize(f, b.conf)
	if err != nil {
		f.Close()
		return nil, nil, fmt.Errorf("reading %s: %w", filepath.Base(path), err)
	}
	return ctx, func() { f.Close() }, nil
}

// FirstPageText returns the text of the first page, one line per text row
// in content stream order.
func (b *Backend) FirstPageText(path string) (text string, err error) {
	return b.PageText(path, 1)
}

// PageText returns the text of page (1-based) of the PDF at path.
func (b *Backend) PageText(path string, page int) (text string, err error) {
	defer recoverPanic(path, &err)

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	n := r.NumPage()
	if n == 0 {
		return "", ErrNoPages
	}
	if page < 1 || page > n {
		return "", &PageRangeError{Page: page, Count: n}
	}
	p := r.Page(page)
	if p.V.IsNull() {
		return "", ErrNoPages
	}
	return joinLines(p.Content().Text), nil
}

// wordGap is the horizontal gap, as a fraction of the font size, between the
// end of one glyph and the start of the next that separates two words.
const wordGap = 0.16

// joinLines groups glyph runs into lines. A new line starts whenever the
// baseline moves by more than half the font size. On the same baseline a
// space is inserted when a glyph starts at least wordGap font sizes after the
// previous one ends, since most documents position words with Td moves or TJ
// offsets rather than literal spaces.
func joinLines(texts []pdf.Text) string {
	var b strings.Builder
	first := true
	var prevY, prevEnd float64
	for _, t := range texts {
		// ledongthuc/pdf emits a "\n" glyph after every TJ array.
		if t.S == "\n" {
			continue
		}
		if !first {
			tol := math.Max(t.FontSize/2, 1)
			switch {
			case math.Abs(t.Y-prevY) > tol:
				b.WriteByte('\n')
			case t.X-prevEnd >= wordGap*t.FontSize && !endsWithSpace(&b) && t.S != " ":
				b.WriteByte(' ')
			}
		}
		b.WriteString(t.S)
		prevY = t.Y
		prevEnd = t.X + t.W
		first = false
	}
	return b.String()
}

func endsWithSpace(b *strings.Builder) bool {
	s := b.String()
	return s != "" && s[len(s)-1] == ' '
}

// recoverPanic converts a panic from the PDF libraries into an error.
// Both libraries panic on some malformed input.
func recoverPanic(path string, err *error) {
	if v := recover(); v != nil {
		*err = fmt.Errorf("reading %s: malformed PDF: %v", filepath.Base(path), v)
	}
}
