package repo

import (
	"strings"
	"testing"
)

func TestDeriveFilename(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"plain heading", "# Hello\nbody", "Hello.md"},
		{"multiple hashes", "### Deep Dive\nbody", "Deep Dive.md"},
		{"no heading marker", "Shopping list\nmilk", "Shopping list.md"},
		{"keeps original case", "# Meeting NOTES", "Meeting NOTES.md"},
		{"strips punctuation", "# Hello, World!", "Hello World.md"},
		{"keeps digits", "# 2024 Plans", "2024 Plans.md"},
		{"keeps umlauts and eszett", "# Grüße aus Köln", "Grüße aus Köln.md"},
		{"drops other unicode", "# Caffè break", "Caff break.md"},
		{"empty content", "", ""},
		{"whitespace only", "   \n\nbody", ""},
		{"hashes only", "##\nbody", ""},
		{"punctuation only", "# !?!\nbody", ""},
		{"first line wins", "one\ntwo\nthree", "one.md"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DeriveFilename(tt.content); got != tt.want {
				t.Fatalf("DeriveFilename(%q) = %q, want %q", tt.content, got, tt.want)
			}
		})
	}
}

func TestDeriveFilenameTruncatesLongTitles(t *testing.T) {
	t.Parallel()

	got := DeriveFilename("# " + strings.Repeat("a", 80))
	want := strings.Repeat("a", 50) + ".md"
	if got != want {
		t.Fatalf("expected 50-rune truncation, got %q", got)
	}

	// Truncation counts runes, not bytes.
	got = DeriveFilename("# " + strings.Repeat("ä", 80))
	if n := len([]rune(strings.TrimSuffix(got, ".md"))); n != 50 {
		t.Fatalf("expected 50 runes after truncation, got %d", n)
	}
}
