// Package storage implements the filesystem backend for one workspace root:
// recursive note listing, note and folder CRUD, and the metadata sidecar.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Paintersrp/notiz/internal/metadata"
	"github.com/Paintersrp/notiz/internal/pathutil"
)

const (
	// NoteExt is the file extension a file must carry to count as a note.
	NoteExt = ".md"

	// MetadataFile is the reserved sidecar filename inside the workspace root.
	MetadataFile = "notiz.json"

	// renameTempSuffix is the intermediate name used for case-only renames.
	renameTempSuffix = ".tmp-rename"
)

// Note is the on-disk representation of a single markdown note.
type Note struct {
	Filename  string
	Folder    string // root-relative, forward slashes, "" for the root itself
	Content   string
	UpdatedAt time.Time
}

// ID returns the note's canonical identity.
func (n Note) ID() string {
	return pathutil.NoteID(n.Folder, n.Filename)
}

// Backend performs all disk access for a single workspace root.
type Backend struct {
	root string
}

func NewBackend(root string) *Backend {
	return &Backend{root: pathutil.NormalizePath(root)}
}

func (b *Backend) Root() string {
	return b.root
}

// NotePath returns the absolute path of a note addressed by folder and
// filename.
func (b *Backend) NotePath(folder, filename string) string {
	if folder == "" {
		return filepath.Join(b.root, filename)
	}
	return filepath.Join(b.root, filepath.FromSlash(folder), filename)
}

// ListNotes walks the workspace recursively and returns every note file.
// Dot-prefixed entries are skipped. A walk error degrades to an empty list;
// unreadable individual files are logged and skipped.
func (b *Backend) ListNotes() ([]Note, error) {
	var notes []Note

	err := filepath.WalkDir(b.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				return filepath.SkipDir
			}
			return err
		}

		name := d.Name()
		if strings.HasPrefix(name, ".") && path != b.root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() || !strings.EqualFold(filepath.Ext(name), NoteExt) {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			log.Printf("error reading note %s: %v", path, err)
			return nil
		}

		info, err := d.Info()
		if err != nil {
			log.Printf("error stating note %s: %v", path, err)
			return nil
		}

		rel, err := pathutil.RootRelative(b.root, path)
		if err != nil {
			return nil
		}
		folder, filename := pathutil.SplitRelative(rel)

		notes = append(notes, Note{
			Filename:  filename,
			Folder:    folder,
			Content:   string(content),
			UpdatedAt: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return notes, nil
}

// ListFolders returns the top-level folder names of the workspace, excluding
// dot-prefixed entries.
func (b *Backend) ListFolders() ([]string, error) {
	entries, err := os.ReadDir(b.root)
	if err != nil {
		return nil, err
	}

	var folders []string
	for _, e := range entries {
		if e.IsDir() && !strings.HasPrefix(e.Name(), ".") {
			folders = append(folders, e.Name())
		}
	}
	return folders, nil
}

// SaveNote writes a note's content, creating its directory if absent.
func (b *Backend) SaveNote(folder, filename, content string) error {
	path := b.NotePath(folder, filename)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create note directory: %w", err)
	}
	return os.WriteFile(path, []byte(content), 0o644)
}

// DeleteNote removes a note file.
func (b *Backend) DeleteNote(folder, filename string) error {
	return os.Remove(b.NotePath(folder, filename))
}

// RenameNote renames a note within its folder. Case-only renames route
// through an intermediate name because case-insensitive filesystems treat
// the old and new names as the same entry.
func (b *Backend) RenameNote(folder, oldName, newName string) error {
	oldPath := b.NotePath(folder, oldName)
	newPath := b.NotePath(folder, newName)

	if pathutil.IsCaseOnlyRename(oldName, newName) {
		tmpPath := oldPath + renameTempSuffix
		if err := os.Rename(oldPath, tmpPath); err != nil {
			return fmt.Errorf("rename note to temp name: %w", err)
		}
		if err := os.Rename(tmpPath, newPath); err != nil {
			// Try to restore the original name before reporting.
			if restoreErr := os.Rename(tmpPath, oldPath); restoreErr != nil {
				log.Printf("error restoring %s after failed rename: %v", oldPath, restoreErr)
			}
			return fmt.Errorf("rename note from temp name: %w", err)
		}
		return nil
	}

	return os.Rename(oldPath, newPath)
}

// CreateFolder ensures a top-level folder exists.
func (b *Backend) CreateFolder(name string) error {
	return os.MkdirAll(filepath.Join(b.root, name), 0o755)
}

// RenameFolder renames a top-level folder, with the same case-only-rename
// workaround as RenameNote.
func (b *Backend) RenameFolder(oldName, newName string) error {
	oldPath := filepath.Join(b.root, oldName)
	newPath := filepath.Join(b.root, newName)

	if pathutil.IsCaseOnlyRename(oldName, newName) {
		tmpPath := oldPath + renameTempSuffix
		if err := os.Rename(oldPath, tmpPath); err != nil {
			return fmt.Errorf("rename folder to temp name: %w", err)
		}
		if err := os.Rename(tmpPath, newPath); err != nil {
			if restoreErr := os.Rename(tmpPath, oldPath); restoreErr != nil {
				log.Printf("error restoring %s after failed rename: %v", oldPath, restoreErr)
			}
			return fmt.Errorf("rename folder from temp name: %w", err)
		}
		return nil
	}

	return os.Rename(oldPath, newPath)
}

// DeleteFolderRecursive removes a folder and everything below it.
func (b *Backend) DeleteFolderRecursive(name string) error {
	return os.RemoveAll(filepath.Join(b.root, name))
}

// DeleteFolderMoveContents moves every note file under the folder (nested
// subfolders included) to the workspace root, resolving filename collisions
// with _1, _2, ... suffixes before the extension, then removes the emptied
// tree. The sequential collision probe is best-effort under concurrent
// modification.
func (b *Backend) DeleteFolderMoveContents(name string) error {
	folderPath := filepath.Join(b.root, name)

	err := filepath.WalkDir(folderPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(d.Name()), NoteExt) {
			return nil
		}

		target := filepath.Join(b.root, d.Name())
		base := strings.TrimSuffix(d.Name(), filepath.Ext(d.Name()))
		ext := filepath.Ext(d.Name())
		for counter := 1; ; counter++ {
			if _, statErr := os.Stat(target); errors.Is(statErr, fs.ErrNotExist) {
				break
			}
			target = filepath.Join(b.root, fmt.Sprintf("%s_%d%s", base, counter, ext))
		}

		return os.Rename(path, target)
	})
	if err != nil {
		return fmt.Errorf("move folder contents: %w", err)
	}

	return os.RemoveAll(folderPath)
}

// ReadMetadata loads the sidecar document, falling back to the empty default
// when the file is missing or unreadable.
func (b *Backend) ReadMetadata() metadata.AppMetadata {
	meta := metadata.Default()

	data, err := os.ReadFile(filepath.Join(b.root, MetadataFile))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("error reading metadata sidecar: %v", err)
		}
		return meta
	}

	if err := json.Unmarshal(data, &meta); err != nil {
		log.Printf("error decoding metadata sidecar: %v", err)
		return metadata.Default()
	}

	meta.Normalize()
	return meta
}

// WriteMetadata persists the full sidecar document, human-readable.
func (b *Backend) WriteMetadata(meta metadata.AppMetadata) error {
	data, err := json.MarshalIndent(meta, "", "  ")
	if err != nil {
		return fmt.Errorf("encode metadata sidecar: %w", err)
	}
	return os.WriteFile(filepath.Join(b.root, MetadataFile), data, 0o644)
}
