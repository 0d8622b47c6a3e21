// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package naming

import "strings"

// SelectSubjectLine returns the first non-empty line of text that contains
// neither a colon nor an "@". Colons usually mark letterhead fields
// ("Tel.:", "Fax:") and "@" marks e-mail addresses. The returned line is
// trimmed. ok is false when no line qualifies.
func SelectSubjectLine(text string) (line string, ok bool) {
	for _, l := range strings.FieldsFunc(text, isLineBreak) {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if strings.ContainsAny(l, ":@") {
			continue
		}
		return l, true
	}
	return "", false
}

// isLineBreak reports whether r ends a line. Besides \n and \r this covers
// the vertical tab, form feed, the file/group/record separators, NEL and the
// Unicode line and paragraph separators.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
