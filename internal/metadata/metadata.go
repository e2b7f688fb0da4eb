// Package metadata models the per-workspace sidecar document: folder
// decoration and the pinned-note set. Persistence lives in the storage
// backend; this package owns the document's shape and the cascades that keep
// it consistent with note and folder identity changes.
package metadata

import (
	"strings"

	"github.com/Paintersrp/notiz/internal/pathutil"
)

// FolderMeta decorates a folder for display purposes.
type FolderMeta struct {
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// AppMetadata is the full sidecar document for one workspace root. Stale
// entries (pins or folder keys pointing at nothing on disk) are tolerated and
// simply become inert.
type AppMetadata struct {
	Folders     map[string]FolderMeta `json:"folders"`
	PinnedNotes []string              `json:"pinnedNotes"`
}

// Default returns an empty document, the fallback for missing or unreadable
// sidecar files.
func Default() AppMetadata {
	return AppMetadata{Folders: map[string]FolderMeta{}, PinnedNotes: []string{}}
}

// Normalize repairs a freshly decoded document: nil maps become empty and
// pinned ids are lowered to their canonical form.
func (m *AppMetadata) Normalize() {
	if m.Folders == nil {
		m.Folders = map[string]FolderMeta{}
	}
	if m.PinnedNotes == nil {
		m.PinnedNotes = []string{}
		return
	}
	for i, id := range m.PinnedNotes {
		m.PinnedNotes[i] = strings.ToLower(id)
	}
}

// FolderMeta looks up decoration for a folder name. The match is
// case-insensitive and Unicode-normalization-insensitive because the
// filesystem may report the name in a different form than what was stored.
func (m *AppMetadata) FolderMeta(name string) (FolderMeta, bool) {
	if meta, ok := m.Folders[name]; ok {
		return meta, true
	}
	for stored, meta := range m.Folders {
		if pathutil.FoldersEqual(stored, name) {
			return meta, true
		}
	}
	return FolderMeta{}, false
}

// SetFolderMeta stores decoration under an existing equivalent key when one
// is present, otherwise under the given name.
func (m *AppMetadata) SetFolderMeta(name string, meta FolderMeta) {
	if m.Folders == nil {
		m.Folders = map[string]FolderMeta{}
	}
	for stored := range m.Folders {
		if pathutil.FoldersEqual(stored, name) {
			m.Folders[stored] = meta
			return
		}
	}
	m.Folders[name] = meta
}

// IsPinned reports membership of a note id in the pinned set.
func (m *AppMetadata) IsPinned(id string) bool {
	id = strings.ToLower(id)
	for _, pinned := range m.PinnedNotes {
		if pinned == id {
			return true
		}
	}
	return false
}

// TogglePin flips a note id in or out of the pinned set and reports the new
// membership.
func (m *AppMetadata) TogglePin(id string) bool {
	id = strings.ToLower(id)
	for i, pinned := range m.PinnedNotes {
		if pinned == id {
			m.PinnedNotes = append(m.PinnedNotes[:i], m.PinnedNotes[i+1:]...)
			return false
		}
	}
	m.PinnedNotes = append(m.PinnedNotes, id)
	return true
}

// RenameNote rewrites a single pinned id after a note rename, preserving pin
// state across retitles.
func (m *AppMetadata) RenameNote(oldID, newID string) {
	oldID = strings.ToLower(oldID)
	newID = strings.ToLower(newID)
	for i, pinned := range m.PinnedNotes {
		if pinned == oldID {
			m.PinnedNotes[i] = newID
		}
	}
}

// RenameFolder moves the folder's decoration entry to the new name and
// rewrites every pinned id under the old folder prefix.
func (m *AppMetadata) RenameFolder(oldName, newName string) {
	for stored, meta := range m.Folders {
		if pathutil.FoldersEqual(stored, oldName) {
			delete(m.Folders, stored)
			m.Folders[newName] = meta
			break
		}
	}

	oldPrefix := strings.ToLower(oldName) + "/"
	newPrefix := strings.ToLower(newName) + "/"
	for i, pinned := range m.PinnedNotes {
		if strings.HasPrefix(pinned, oldPrefix) {
			m.PinnedNotes[i] = newPrefix + strings.TrimPrefix(pinned, oldPrefix)
		}
	}
}

// RemoveFolder drops the folder's decoration entry and every pinned id under
// its prefix. Used by both folder deletion modes; notes moved to the root by
// move-mode deletion lose their pin, matching a fresh file at a new path.
func (m *AppMetadata) RemoveFolder(name string) {
	for stored := range m.Folders {
		if pathutil.FoldersEqual(stored, name) {
			delete(m.Folders, stored)
		}
	}

	prefix := strings.ToLower(name) + "/"
	kept := m.PinnedNotes[:0]
	for _, pinned := range m.PinnedNotes {
		if !strings.HasPrefix(pinned, prefix) {
			kept = append(kept, pinned)
		}
	}
	m.PinnedNotes = kept
}
