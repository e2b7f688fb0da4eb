// Package repo maintains the authoritative in-memory view of all notes and
// folders for one workspace root and mediates every disk mutation.
package repo

import (
	"fmt"
	"log"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/Paintersrp/notiz/internal/metadata"
	"github.com/Paintersrp/notiz/internal/pathutil"
	"github.com/Paintersrp/notiz/internal/storage"
)

const (
	untitledBase       = "Untitled note"
	placeholderContent = "# "

	// watchCooldown is how long watcher events are ignored after a
	// self-initiated write.
	watchCooldown = 3 * time.Second
)

// DeleteMode selects what happens to a folder's notes when the folder goes.
type DeleteMode int

const (
	// DeleteRecursive removes the folder and everything inside.
	DeleteRecursive DeleteMode = iota
	// DeleteMoveToRoot relocates every contained note to the workspace root
	// before removing the emptied tree.
	DeleteMoveToRoot
)

// Repository caches the workspace's notes, folders and metadata, and applies
// the save/rename/delete protocols on top of the storage backend. It is not
// safe for concurrent use; all calls are expected from a single event loop.
type Repository struct {
	backend *storage.Backend

	notes   []storage.Note
	folders []string
	meta    metadata.AppMetadata

	selectedID string
	category   *string
	search     string

	lastSave time.Time
	cooldown time.Duration
	now      func() time.Time
	collator *collate.Collator
}

func NewRepository(backend *storage.Backend) *Repository {
	return &Repository{
		backend:  backend,
		meta:     metadata.Default(),
		cooldown: watchCooldown,
		now:      time.Now,
		collator: collate.New(language.Und, collate.IgnoreCase),
	}
}

func (r *Repository) Backend() *storage.Backend {
	return r.backend
}

// Notes returns the full cached note list, most recently updated first.
func (r *Repository) Notes() []storage.Note {
	return r.notes
}

// Folders returns the workspace's top-level folder names.
func (r *Repository) Folders() []string {
	return r.folders
}

// Meta exposes the cached sidecar document for lookups.
func (r *Repository) Meta() *metadata.AppMetadata {
	return &r.meta
}

// Load refreshes the cache from disk: every note (deduplicated by identity,
// first occurrence winning), the top-level folders, and the metadata sidecar.
// Backend failures degrade to an empty workspace and a log line; Load never
// fails.
func (r *Repository) Load() {
	notes, err := r.backend.ListNotes()
	if err != nil {
		log.Printf("error listing notes: %v", err)
		notes = nil
	}

	seen := make(map[string]struct{}, len(notes))
	deduped := notes[:0]
	for _, n := range notes {
		id := n.ID()
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		deduped = append(deduped, n)
	}
	r.notes = deduped
	r.sortNotes(r.notes)

	folders, err := r.backend.ListFolders()
	if err != nil {
		log.Printf("error listing folders: %v", err)
		folders = nil
	}
	r.folders = folders

	r.meta = r.backend.ReadMetadata()
	r.reconcileSelection()
}

// CreateNote writes a placeholder note into the active category (or the
// root), picking the first untitled filename free in the in-memory cache.
// The collision check is only as fresh as the last Load; see DESIGN.md.
func (r *Repository) CreateNote() (storage.Note, error) {
	folder := ""
	if r.category != nil {
		folder = *r.category
	}

	filename := untitledBase + storage.NoteExt
	for i := 1; r.hasNote(folder, filename); i++ {
		filename = fmt.Sprintf("%s %d%s", untitledBase, i, storage.NoteExt)
	}

	if err := r.backend.SaveNote(folder, filename, placeholderContent); err != nil {
		return storage.Note{}, fmt.Errorf("create note: %w", err)
	}

	r.Load()
	r.selectedID = pathutil.NoteID(folder, filename)
	if n, ok := r.Selected(); ok {
		return n, nil
	}
	return storage.Note{Filename: filename, Folder: folder, Content: placeholderContent}, nil
}

// SaveNote persists a note's content. When the first line derives a new
// filename that no other note occupies, the file is renamed first; a derived
// name held by a different note silently keeps the old filename. The write
// is recorded for watcher suppression before the cache reloads.
func (r *Repository) SaveNote(filename, content, folder string) error {
	oldID := pathutil.NoteID(folder, filename)

	if derived := DeriveFilename(content); derived != "" && derived != filename {
		newID := pathutil.NoteID(folder, derived)
		if newID == oldID || !r.hasNote(folder, derived) {
			if err := r.backend.RenameNote(folder, filename, derived); err != nil {
				log.Printf("error renaming note %s: %v", r.backend.NotePath(folder, filename), err)
			} else {
				filename = derived
				if r.meta.IsPinned(oldID) {
					r.meta.RenameNote(oldID, newID)
					if err := r.backend.WriteMetadata(r.meta); err != nil {
						log.Printf("error saving metadata after note rename: %v", err)
					}
				}
				if r.selectedID == oldID {
					r.selectedID = newID
				}
			}
		}
	}

	if err := r.backend.SaveNote(folder, filename, content); err != nil {
		return fmt.Errorf("save note: %w", err)
	}

	r.lastSave = r.now()
	r.Load()
	return nil
}

// DeleteNote removes the note with the given identity from disk.
func (r *Repository) DeleteNote(id string) error {
	n, ok := r.findNote(id)
	if !ok {
		return fmt.Errorf("no note with id %q", id)
	}

	if err := r.backend.DeleteNote(n.Folder, n.Filename); err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	if r.selectedID == n.ID() {
		r.selectedID = ""
	}
	r.Load()
	return nil
}

// CreateFolder creates a folder at the workspace root, regardless of the
// active category.
func (r *Repository) CreateFolder(name string) error {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, "/\\") {
		return fmt.Errorf("invalid folder name %q", name)
	}

	if err := r.backend.CreateFolder(name); err != nil {
		return fmt.Errorf("create folder: %w", err)
	}

	r.Load()
	return nil
}

// RenameFolder renames a top-level folder on disk and cascades the change to
// folder metadata, pinned-note paths, the active category and the selection.
// A failed directory rename aborts before any dependent update.
func (r *Repository) RenameFolder(oldName, newName string) error {
	newName = strings.TrimSpace(newName)
	if newName == "" || strings.ContainsAny(newName, "/\\") {
		return fmt.Errorf("invalid folder name %q", newName)
	}

	if err := r.backend.RenameFolder(oldName, newName); err != nil {
		return fmt.Errorf("rename folder: %w", err)
	}

	r.meta.RenameFolder(oldName, newName)
	if err := r.backend.WriteMetadata(r.meta); err != nil {
		log.Printf("error saving metadata after folder rename: %v", err)
	}

	if r.category != nil && pathutil.FoldersEqual(*r.category, oldName) {
		renamed := newName
		r.category = &renamed
	}

	oldPrefix := strings.ToLower(oldName) + "/"
	if strings.HasPrefix(r.selectedID, oldPrefix) {
		r.selectedID = strings.ToLower(newName) + "/" + strings.TrimPrefix(r.selectedID, oldPrefix)
	}

	r.Load()
	return nil
}

// DeleteFolder removes a top-level folder in the requested mode, then strips
// its metadata and pins, clears a matching category selection, and reloads.
func (r *Repository) DeleteFolder(name string, mode DeleteMode) error {
	var err error
	switch mode {
	case DeleteMoveToRoot:
		err = r.backend.DeleteFolderMoveContents(name)
	default:
		err = r.backend.DeleteFolderRecursive(name)
	}
	if err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}

	r.meta.RemoveFolder(name)
	if err := r.backend.WriteMetadata(r.meta); err != nil {
		log.Printf("error saving metadata after folder delete: %v", err)
	}

	if r.category != nil && pathutil.FoldersEqual(*r.category, name) {
		r.category = nil
	}
	if strings.HasPrefix(r.selectedID, strings.ToLower(name)+"/") {
		r.selectedID = ""
	}

	r.Load()
	return nil
}

// SetFolderMeta stores icon/color decoration for a folder and persists the
// sidecar immediately.
func (r *Repository) SetFolderMeta(name string, meta metadata.FolderMeta) error {
	r.meta.SetFolderMeta(name, meta)
	return r.backend.WriteMetadata(r.meta)
}

// UpdateNoteLocally mutates the cached copy of a note without any disk I/O.
// The timestamp only moves when bumpTimestamp is set, which keeps a note
// from jumping to the top of the recency-sorted list while it is being typed
// in.
func (r *Repository) UpdateNoteLocally(filename, content, folder string, bumpTimestamp bool) {
	id := pathutil.NoteID(folder, filename)
	for i := range r.notes {
		if r.notes[i].ID() == id {
			r.notes[i].Content = content
			if bumpTimestamp {
				r.notes[i].UpdatedAt = r.now()
			}
			return
		}
	}
}

// TogglePin flips a note's membership in the pinned set and persists the
// sidecar immediately.
func (r *Repository) TogglePin(n storage.Note) error {
	r.meta.TogglePin(n.ID())
	return r.backend.WriteMetadata(r.meta)
}

// IsPinned reports whether a note is pinned.
func (r *Repository) IsPinned(n storage.Note) bool {
	return r.meta.IsPinned(n.ID())
}

// NoteChanged handles a watcher notification. Events arriving within the
// cool-down window after one of our own writes are dropped wholesale, so a
// save never bounces back as a reload mid-edit. Returns whether a reload
// happened.
func (r *Repository) NoteChanged() bool {
	if r.now().Sub(r.lastSave) < r.cooldown {
		return false
	}
	r.Load()
	return true
}

// Select marks a note as the open one.
func (r *Repository) Select(id string) {
	r.selectedID = strings.ToLower(id)
}

func (r *Repository) ClearSelection() {
	r.selectedID = ""
}

// Selected resolves the current selection against the cache.
func (r *Repository) Selected() (storage.Note, bool) {
	return r.findNote(r.selectedID)
}

func (r *Repository) SelectedID() string {
	return r.selectedID
}

// SetSearch installs the live search term. Selection is cleared when the
// selected note drops out of the filtered view.
func (r *Repository) SetSearch(term string) {
	r.search = term
	r.reconcileSelection()
}

func (r *Repository) Search() string {
	return r.search
}

// SetCategory filters the view to one folder; "" means the workspace root.
func (r *Repository) SetCategory(name string) {
	r.category = &name
	r.reconcileSelection()
}

// ClearCategory removes the folder filter entirely.
func (r *Repository) ClearCategory() {
	r.category = nil
	r.reconcileSelection()
}

// Category returns the active folder filter, if any.
func (r *Repository) Category() (string, bool) {
	if r.category == nil {
		return "", false
	}
	return *r.category, true
}

// Filtered derives the visible note list: search matches (case-insensitive
// substring against content or filename), category equality, then pinned
// notes first, newest first, filename ascending.
func (r *Repository) Filtered() []storage.Note {
	term := strings.ToLower(r.search)

	var out []storage.Note
	for _, n := range r.notes {
		if term != "" &&
			!strings.Contains(strings.ToLower(n.Content), term) &&
			!strings.Contains(strings.ToLower(n.Filename), term) {
			continue
		}
		if r.category != nil && n.Folder != *r.category {
			continue
		}
		out = append(out, n)
	}

	slices.SortStableFunc(out, func(a, b storage.Note) int {
		aPinned, bPinned := r.meta.IsPinned(a.ID()), r.meta.IsPinned(b.ID())
		if aPinned != bPinned {
			if aPinned {
				return -1
			}
			return 1
		}
		return r.compareRecency(a, b)
	})

	return out
}

func (r *Repository) sortNotes(notes []storage.Note) {
	slices.SortStableFunc(notes, r.compareRecency)
}

func (r *Repository) compareRecency(a, b storage.Note) int {
	if !a.UpdatedAt.Equal(b.UpdatedAt) {
		if a.UpdatedAt.After(b.UpdatedAt) {
			return -1
		}
		return 1
	}
	return r.collator.CompareString(a.Filename, b.Filename)
}

func (r *Repository) reconcileSelection() {
	if r.selectedID == "" {
		return
	}
	for _, n := range r.Filtered() {
		if n.ID() == r.selectedID {
			return
		}
	}
	r.selectedID = ""
}

func (r *Repository) hasNote(folder, filename string) bool {
	_, ok := r.findNote(pathutil.NoteID(folder, filename))
	return ok
}

func (r *Repository) findNote(id string) (storage.Note, bool) {
	for _, n := range r.notes {
		if n.ID() == id {
			return n, true
		}
	}
	return storage.Note{}, false
}
