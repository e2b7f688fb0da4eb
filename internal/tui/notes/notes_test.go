package notes

import (
	"testing"

	"github.com/Paintersrp/notiz/internal/state"
)

func newTestModel(t *testing.T) (*NoteListModel, string) {
	t.Helper()
	r, root := newTestRepo(t)
	s := &state.State{Backend: r.Backend(), Repo: r, Workspace: root}
	return NewNoteListModel(s), root
}

func TestCycleCategoryWalksFoldersAndWrapsAround(t *testing.T) {
	m, root := newTestModel(t)

	writeNote(t, root, "A/x.md", "# X")
	writeNote(t, root, "B/y.md", "# Y")
	m.state.Repo.Load()

	if _, active := m.state.Repo.Category(); active {
		t.Fatalf("expected no category filter initially")
	}

	m.cycleCategory()
	if cat, active := m.state.Repo.Category(); !active || cat != "" {
		t.Fatalf("expected workspace root filter, got %q (%v)", cat, active)
	}

	m.cycleCategory()
	if cat, _ := m.state.Repo.Category(); cat != "A" {
		t.Fatalf("expected first folder, got %q", cat)
	}

	m.cycleCategory()
	if cat, _ := m.state.Repo.Category(); cat != "B" {
		t.Fatalf("expected second folder, got %q", cat)
	}

	m.cycleCategory()
	if _, active := m.state.Repo.Category(); active {
		t.Fatalf("expected wrap-around back to no filter")
	}
}

func TestCategoryTitleReflectsFilterAndDecoration(t *testing.T) {
	m, root := newTestModel(t)

	writeNote(t, root, "Work/plan.md", "# Plan")
	m.state.Repo.Load()

	if got := categoryTitle(m.state); got != "All notes" {
		t.Fatalf("expected 'All notes', got %q", got)
	}

	m.state.Repo.SetCategory("")
	if got := categoryTitle(m.state); got != "Workspace root" {
		t.Fatalf("expected 'Workspace root', got %q", got)
	}

	m.state.Repo.SetCategory("Work")
	if got := categoryTitle(m.state); got != "Work" {
		t.Fatalf("expected folder name, got %q", got)
	}
}

func TestRefreshItemsTracksRepositoryView(t *testing.T) {
	m, root := newTestModel(t)

	writeNote(t, root, "a.md", "# A\nalpha")
	writeNote(t, root, "b.md", "# B\nbeta")
	m.state.Repo.Load()
	m.refreshItems()

	if len(m.list.Items()) != 2 {
		t.Fatalf("expected two items, got %d", len(m.list.Items()))
	}

	m.state.Repo.SetSearch("beta")
	m.refreshItems()

	items := m.list.Items()
	if len(items) != 1 {
		t.Fatalf("expected one filtered item, got %d", len(items))
	}
	if items[0].(ListItem).Note().ID() != "b.md" {
		t.Fatalf("expected matching note, got %q", items[0].(ListItem).Note().ID())
	}
}

func TestOpenAndCloseEditor(t *testing.T) {
	m, root := newTestModel(t)

	writeNote(t, root, "a.md", "# A\nbody")
	m.state.Repo.Load()
	m.refreshItems()

	n := m.state.Repo.Notes()[0]
	m.openEditor(n)

	if !m.editing {
		t.Fatalf("expected editing mode after open")
	}
	if m.state.Repo.SelectedID() != "a.md" {
		t.Fatalf("expected note selected, got %q", m.state.Repo.SelectedID())
	}
	if m.textarea.Value() != "# A\nbody" {
		t.Fatalf("expected buffer seeded with note content, got %q", m.textarea.Value())
	}

	m.closeEditor()
	if m.editing {
		t.Fatalf("expected editing mode cleared after close")
	}
	if m.session.NoteID() != "" {
		t.Fatalf("expected session detached after close")
	}
}
