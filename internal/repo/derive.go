package repo

import (
	"strings"
	"unicode"

	"github.com/Paintersrp/notiz/internal/storage"
)

// maxDerivedTitleLen caps the filename derived from a note's title.
const maxDerivedTitleLen = 50

// DeriveFilename derives a filename candidate from the first line of a
// note's content: the leading heading marker and whitespace are stripped,
// runes outside [a-z0-9äöüß ] (case-insensitively) are dropped, the result
// is trimmed and truncated before the note extension is appended. An empty
// derivation returns "" and the caller keeps the current filename.
func DeriveFilename(content string) string {
	line, _, _ := strings.Cut(content, "\n")
	line = strings.TrimSpace(strings.TrimLeft(line, "#"))

	var b strings.Builder
	for _, r := range line {
		if allowedTitleRune(unicode.ToLower(r)) {
			b.WriteRune(r)
		}
	}

	name := strings.TrimSpace(b.String())
	if name == "" {
		return ""
	}

	if runes := []rune(name); len(runes) > maxDerivedTitleLen {
		name = string(runes[:maxDerivedTitleLen])
	}

	return name + storage.NoteExt
}

func allowedTitleRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= '0' && r <= '9':
		return true
	case r == ' ', r == 'ä', r == 'ö', r == 'ü', r == 'ß':
		return true
	}
	return false
}
