// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package naming derives file names from PDF text: it selects a subject line,
// turns it into a filesystem-safe slug, and finds a free name in a folder.
package naming

import (
	"regexp"
	"strings"
)

// MaxSlugLength is the maximum length of a slug in characters.
const MaxSlugLength = 100

// umlauts maps German diacritics to ASCII digraphs. Order is fixed and the
// pairs are applied before the character filter.
var umlauts = []struct{ from, to string }{
	{"ä", "ae"},
	{"ö", "oe"},
	{"ü", "ue"},
	{"Ä", "Ae"},
	{"Ö", "Oe"},
	{"Ü", "Ue"},
	{"ß", "ss"},
}

var (
	unsafeChars = regexp.MustCompile(`[^A-Za-z0-9 _\-]`)
	spaceRuns   = regexp.MustCompile(`\s+`)
)

// Slugify converts text into a string usable as a file name stem.
// The result contains only ASCII letters, digits, underscores and hyphens
// and is at most MaxSlugLength characters long.
func Slugify(text string) string {
	s := strings.TrimSpace(text)
	for _, u := range umlauts {
		s = strings.ReplaceAll(s, u.from, u.to)
	}
	s = unsafeChars.ReplaceAllString(s, "_")
	s = spaceRuns.ReplaceAllString(s, "_")

	// Only ASCII survives the filter, so byte length equals character length.
	if len(s) > MaxSlugLength {
		s = s[:MaxSlugLength]
	}
	return s
}
