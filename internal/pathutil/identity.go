package pathutil

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NoteID returns the canonical identity of a note: the lowercase,
// slash-joined folder/filename pair. Two files that differ only by casing
// share an identity.
func NoteID(folder, filename string) string {
	joined := filename
	if folder != "" {
		joined = folder + "/" + filename
	}

	return strings.ToLower(strings.ReplaceAll(joined, "\\", "/"))
}

// CanonicalFolder returns the comparison form of a folder name. The
// filesystem may hand back a name in a different Unicode normalization form
// than what was stored, so names are NFC-normalized before lowercasing.
func CanonicalFolder(name string) string {
	return strings.ToLower(norm.NFC.String(name))
}

// FoldersEqual reports whether two folder names refer to the same folder for
// metadata purposes.
func FoldersEqual(a, b string) bool {
	return CanonicalFolder(a) == CanonicalFolder(b)
}

// IsCaseOnlyRename reports whether old and new differ only by letter case.
// Case-insensitive filesystems treat such names as the same entry, so these
// renames must route through an intermediate name.
func IsCaseOnlyRename(oldName, newName string) bool {
	return oldName != newName && strings.EqualFold(oldName, newName)
}
