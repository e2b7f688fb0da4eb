package metadata

import (
	"slices"
	"testing"
)

func TestNormalizeRepairsDecodedDocument(t *testing.T) {
	t.Parallel()

	m := AppMetadata{PinnedNotes: []string{"Projects/Ideas.md"}}
	m.Normalize()

	if m.Folders == nil {
		t.Fatalf("expected folders map to be initialized")
	}
	if got := m.PinnedNotes[0]; got != "projects/ideas.md" {
		t.Fatalf("expected pinned id to be lowercased, got %q", got)
	}

	empty := AppMetadata{}
	empty.Normalize()
	if empty.PinnedNotes == nil {
		t.Fatalf("expected pinned set to default to empty slice")
	}
}

func TestFolderMetaLookupIsNormalizationInsensitive(t *testing.T) {
	t.Parallel()

	m := Default()
	m.SetFolderMeta("Bücher", FolderMeta{Icon: "book", Color: "#aabbcc"})

	meta, ok := m.FolderMeta("Bücher")
	if !ok {
		t.Fatalf("expected lookup via decomposed form to succeed")
	}
	if meta.Icon != "book" {
		t.Fatalf("unexpected folder meta: %+v", meta)
	}

	// A second write through an equivalent name must not create a second key.
	m.SetFolderMeta("bücher", FolderMeta{Icon: "shelf"})
	if len(m.Folders) != 1 {
		t.Fatalf("expected a single folder entry, got %d", len(m.Folders))
	}
}

func TestTogglePin(t *testing.T) {
	t.Parallel()

	m := Default()
	if !m.TogglePin("Work/Plan.md") {
		t.Fatalf("expected first toggle to pin")
	}
	if !m.IsPinned("work/plan.md") {
		t.Fatalf("expected pin lookup to be case-insensitive")
	}
	if m.TogglePin("WORK/PLAN.MD") {
		t.Fatalf("expected second toggle to unpin")
	}
	if len(m.PinnedNotes) != 0 {
		t.Fatalf("expected empty pinned set, got %v", m.PinnedNotes)
	}
}

func TestRenameFolderCascadesPinnedPaths(t *testing.T) {
	t.Parallel()

	m := Default()
	m.SetFolderMeta("A", FolderMeta{Icon: "star"})
	m.TogglePin("A/x.md")
	m.TogglePin("A/sub/y.md")
	m.TogglePin("other/z.md")

	m.RenameFolder("A", "B")

	if _, ok := m.Folders["B"]; !ok {
		t.Fatalf("expected folder meta moved to new key, got %v", m.Folders)
	}
	if _, ok := m.Folders["A"]; ok {
		t.Fatalf("expected old folder key removed")
	}

	want := []string{"b/x.md", "b/sub/y.md", "other/z.md"}
	if !slices.Equal(m.PinnedNotes, want) {
		t.Fatalf("pinned cascade mismatch: got %v, want %v", m.PinnedNotes, want)
	}
}

func TestRemoveFolderStripsMetaAndPins(t *testing.T) {
	t.Parallel()

	m := Default()
	m.SetFolderMeta("Archive", FolderMeta{Color: "#333"})
	m.TogglePin("Archive/old.md")
	m.TogglePin("keep.md")

	m.RemoveFolder("archive")

	if len(m.Folders) != 0 {
		t.Fatalf("expected folder meta removed, got %v", m.Folders)
	}
	want := []string{"keep.md"}
	if !slices.Equal(m.PinnedNotes, want) {
		t.Fatalf("expected only unrelated pins to survive, got %v", m.PinnedNotes)
	}
}

func TestRenameNoteRewritesPin(t *testing.T) {
	t.Parallel()

	m := Default()
	m.TogglePin("Untitled note.md")

	m.RenameNote("untitled note.md", "Hello.md")

	if !m.IsPinned("hello.md") {
		t.Fatalf("expected pin to follow rename, got %v", m.PinnedNotes)
	}
}
