// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pdftest builds small, valid PDF files for tests. Each page holds
// the given lines of text set in Helvetica, one line per text object. A
// Layout controls how the words of a line are positioned.
package pdftest

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Layout selects how a line of text is written into the content stream.
type Layout int

const (
	// Lines shows each line with a single Tj, words separated by literal spaces.
	Lines Layout = iota
	// WordRuns shows each word with its own Tj, moved right with Td.
	WordRuns
	// Kerned shows the line as one TJ array, words separated by negative
	// offsets instead of spaces.
	Kerned
)

// Build returns a PDF document with one page per element of pages.
// A nil or empty element produces a page without text.
func Build(pages ...[]string) []byte {
	return BuildLayout(Lines, pages...)
}

// BuildLayout is like Build but positions words according to layout.
func BuildLayout(layout Layout, pages ...[]string) []byte {
	var objs []string

	// 1: catalog, 2: page tree, 3: font, then (page, contents) pairs.
	kids := make([]string, len(pages))
	for i := range pages {
		kids[i] = fmt.Sprintf("%d 0 R", 4+2*i)
	}
	objs = append(objs,
		"<< /Type /Catalog /Pages 2 0 R >>",
		fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), len(pages)),
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica /Encoding /WinAnsiEncoding >>",
	)
	for i, lines := range pages {
		content := contentStream(layout, lines)
		objs = append(objs,
			fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 3 0 R >> >> /Contents %d 0 R >>", 5+2*i),
			fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content),
		)
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n")
	offsets := make([]int, len(objs))
	for i, o := range objs {
		offsets[i] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, o)
	}

	xref := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objs)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xref)
	return buf.Bytes()
}

// WriteFile writes a document built from pages to dir/name and returns its path.
func WriteFile(t testing.TB, dir, name string, pages ...[]string) string {
	t.Helper()
	return WriteFileLayout(t, dir, name, Lines, pages...)
}

// WriteFileLayout is like WriteFile but positions words according to layout.
func WriteFileLayout(t testing.TB, dir, name string, layout Layout, pages ...[]string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, BuildLayout(layout, pages...), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func contentStream(layout Layout, lines []string) string {
	var b strings.Builder
	y := 720
	for _, l := range lines {
		fmt.Fprintf(&b, "BT /F1 12 Tf 72 %d Td ", y)
		words := strings.Fields(l)
		switch {
		case layout == WordRuns && len(words) > 0:
			for i, w := range words {
				if i > 0 {
					// Td is relative to the start of the previous word.
					fmt.Fprintf(&b, "%d 0 Td ", 7*len(words[i-1])+6)
				}
				fmt.Fprintf(&b, "(%s) Tj ", escape(w))
			}
		case layout == Kerned && len(words) > 0:
			quoted := make([]string, len(words))
			for i, w := range words {
				quoted[i] = "(" + escape(w) + ")"
			}
			fmt.Fprintf(&b, "[%s] TJ ", strings.Join(quoted, " -400 "))
		default:
			fmt.Fprintf(&b, "(%s) Tj ", escape(l))
		}
		b.WriteString("ET\n")
		y -= 20
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// escape encodes s as the body of a PDF literal string in WinAnsi.
// Characters outside Latin-1 become '?'.
func escape(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r == '(' || r == ')' || r == '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case r >= 0x20 && r < 0x7f:
			b.WriteRune(r)
		case r >= 0xa0 && r <= 0xff:
			fmt.Fprintf(&b, "\\%03o", r)
		default:
			b.WriteByte('?')
		}
	}
	return b.String()
}
