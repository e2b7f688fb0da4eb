package notes

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Paintersrp/notiz/internal/metadata"
	"github.com/Paintersrp/notiz/internal/repo"
	"github.com/Paintersrp/notiz/internal/storage"
)

func newTestRepo(t *testing.T) (*repo.Repository, string) {
	t.Helper()
	root := t.TempDir()
	r := repo.NewRepository(storage.NewBackend(root))
	return r, root
}

func writeNote(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", rel, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", rel, err)
	}
}

func TestMakeItemsCarriesPinAndFolderDecoration(t *testing.T) {
	r, root := newTestRepo(t)

	writeNote(t, root, "Work/plan.md", "# Plan\nbody")
	writeNote(t, root, "loose.md", "# Loose")
	r.Load()

	if err := r.SetFolderMeta("Work", metadata.FolderMeta{Icon: "💼", Color: "#0AF"}); err != nil {
		t.Fatalf("failed to set folder meta: %v", err)
	}
	for _, n := range r.Notes() {
		if n.ID() == "work/plan.md" {
			if err := r.TogglePin(n); err != nil {
				t.Fatalf("failed to pin note: %v", err)
			}
		}
	}

	items := makeItems(r)
	if len(items) != 2 {
		t.Fatalf("expected two items, got %d", len(items))
	}

	// Pinned note sorts first.
	plan := items[0]
	if plan.Note().ID() != "work/plan.md" {
		t.Fatalf("expected pinned note first, got %q", plan.Note().ID())
	}
	if !strings.HasPrefix(plan.Title(), "📌 ") {
		t.Fatalf("expected pin marker in title, got %q", plan.Title())
	}
	if !strings.Contains(plan.Description(), "💼") || !strings.Contains(plan.Description(), "[Work]") {
		t.Fatalf("expected folder decoration in description, got %q", plan.Description())
	}

	loose := items[1]
	if strings.Contains(loose.Description(), "[") {
		t.Fatalf("expected no folder tag for root note, got %q", loose.Description())
	}
}

func TestListItemTitleFallsBackToFilename(t *testing.T) {
	item := ListItem{note: storage.Note{Filename: "Meeting notes.md", Content: ""}}
	if item.Title() != "Meeting notes" {
		t.Fatalf("expected filename-derived title, got %q", item.Title())
	}
}
