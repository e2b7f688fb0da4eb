package state

import (
	"testing"

	"github.com/fsnotify/fsnotify"
)

func TestEventKindMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		op   fsnotify.Op
		want EventKind
		ok   bool
	}{
		{fsnotify.Create, EventAdd, true},
		{fsnotify.Write, EventChange, true},
		{fsnotify.Remove, EventUnlink, true},
		{fsnotify.Rename, EventUnlink, true},
		{fsnotify.Chmod, "", false},
	}

	for _, tt := range tests {
		kind, ok := eventKind(fsnotify.Event{Op: tt.op})
		if ok != tt.ok || kind != tt.want {
			t.Fatalf("eventKind(%v) = %q, %v; want %q, %v", tt.op, kind, ok, tt.want, tt.ok)
		}
	}
}

func TestRelativePathFiltersDotEntries(t *testing.T) {
	root := t.TempDir()

	w, err := NewWorkspaceWatcher(root)
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}
	defer w.Close()

	rel, err := w.relativePath(root + "/Work/plan.md")
	if err != nil || rel != "Work/plan.md" {
		t.Fatalf("expected relative path, got %q, %v", rel, err)
	}

	rel, err = w.relativePath(root + "/.git/index.md")
	if err != nil || rel != "" {
		t.Fatalf("expected dot entry filtered, got %q, %v", rel, err)
	}

	rel, err = w.relativePath(root)
	if err != nil || rel != "" {
		t.Fatalf("expected root itself filtered, got %q, %v", rel, err)
	}
}

func TestCloseIsIdempotent(t *testing.T) {
	w, err := NewWorkspaceWatcher(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create watcher: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("first close failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("second close failed: %v", err)
	}
}
