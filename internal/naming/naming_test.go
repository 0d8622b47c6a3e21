// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package naming

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"umlauts then symbols", "Büro: Müller & Co.", "Buero__Mueller___Co_"},
		{"plain words", "Angebot Nr 42", "Angebot_Nr_42"},
		{"trims surrounding whitespace", "  Rechnung 2024  ", "Rechnung_2024"},
		{"collapses space runs", "a    b", "a_b"},
		{"capital umlauts and sharp s", "ÄÖÜ Straße", "AeOeUe_Strasse"},
		{"keeps hyphen and underscore", "re-order_list", "re-order_list"},
		{"other accents become underscore", "Café", "Caf_"},
		{"tab is replaced not collapsed", "a\tb", "a_b"},
		{"punctuation adjacent to space", "Nr. 42", "Nr__42"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}

func TestSlugifyTruncates(t *testing.T) {
	got := Slugify(strings.Repeat("ab ", 60))
	assert.Len(t, got, MaxSlugLength)
	assert.True(t, strings.HasPrefix(got, "ab_ab_"))

	// Digraph expansion happens before truncation.
	got = Slugify(strings.Repeat("ü", 80))
	assert.Equal(t, strings.Repeat("ue", 50), got)
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Büro: Müller & Co.",
		"  Angebot   Nr. 42 / 2024 ",
		"Ärger über Öl",
		strings.Repeat("lang ", 40),
		"already_a_slug-1",
	}
	for _, in := range inputs {
		once := Slugify(in)
		assert.Equal(t, once, Slugify(once), "input %q", in)
	}
}

func TestSelectSubjectLine(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   string
		wantOK bool
	}{
		{
			name:   "first line qualifies",
			text:   "Müller GmbH\nTel.: 030-1234\nAngebot Nr. 42\n",
			want:   "Müller GmbH",
			wantOK: true,
		},
		{
			name:   "skips letterhead and email",
			text:   "Tel.: 030-1234\nFax: 030-5678\ninfo@example.com\n  Angebot Nr. 42  \n",
			want:   "Angebot Nr. 42",
			wantOK: true,
		},
		{
			name:   "skips blank lines",
			text:   "\n   \n\t\nBetreff\n",
			want:   "Betreff",
			wantOK: true,
		},
		{
			name:   "windows line endings",
			text:   "Sitz: Berlin\r\nKündigung\r\n",
			want:   "Kündigung",
			wantOK: true,
		},
		{
			name:   "form feed and unicode separators break lines",
			text:   "Fax: 030-5678\fSeite 1: Kopf\u2028Mahnung\u2029Anlage\n",
			want:   "Mahnung",
			wantOK: true,
		},
		{
			name:   "vertical tab and NEL break lines",
			text:   "info@example.com\vTel.: 1\u0085Kündigung\x1eRest",
			want:   "Kündigung",
			wantOK: true,
		},
		{
			name:   "genuine subject with colon is still skipped",
			text:   "Betreff: Angebot\nMit freundlichen Grüßen\n",
			want:   "Mit freundlichen Grüßen",
			wantOK: true,
		},
		{
			name: "nothing qualifies",
			text: "Tel.: 1\nmail@example.org\n",
		},
		{
			name: "empty text",
			text: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := SelectSubjectLine(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveName(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		self     string
		want     string
	}{
		{"free name", nil, "", "angebot_42.pdf"},
		{"first collision", []string{"angebot_42.pdf"}, "", "angebot_42_1.pdf"},
		{"second collision", []string{"angebot_42.pdf", "angebot_42_1.pdf"}, "", "angebot_42_2.pdf"},
		{"gap is filled", []string{"angebot_42.pdf", "angebot_42_2.pdf"}, "", "angebot_42_1.pdf"},
		{"file already named", []string{"angebot_42.pdf"}, "angebot_42.pdf", "angebot_42.pdf"},
		{"self found after collision", []string{"angebot_42.pdf", "angebot_42_1.pdf"}, "angebot_42_1.pdf", "angebot_42_1.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, name := range tt.existing {
				require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
			}

			got, err := ResolveName(dir, "angebot_42", tt.self)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveNameReserved(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "brief.pdf"), []byte("x"), 0o644))

	reserved := map[string]bool{"brief_1.pdf": true}
	got, err := ResolveNameReserved(dir, "brief", "", reserved)
	require.NoError(t, err)
	assert.Equal(t, "brief_2.pdf", got)

	// A name marked free in the overlay wins over the file on disk.
	freed := map[string]bool{"brief.pdf": false}
	got, err = ResolveNameReserved(dir, "brief", "", freed)
	require.NoError(t, err)
	assert.Equal(t, "brief.pdf", got)
}

func TestCandidate(t *testing.T) {
	assert.Equal(t, "x.pdf", Candidate("x", 0))
	assert.Equal(t, "x_1.pdf", Candidate("x", 1))
	assert.Equal(t, "x_12.pdf", Candidate("x", 12))
}
