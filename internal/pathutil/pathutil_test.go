package pathutil

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestRootRelativeReturnsForwardSlashes(t *testing.T) {
	rootParts := []string{"home", "user", "workspace"}
	fileParts := append(append([]string{}, rootParts...), "subdir", "file.md")

	posixRoot := filepath.Join(rootParts...)
	posixFile := filepath.Join(fileParts...)

	rel, err := RootRelative(posixRoot, posixFile)
	if err != nil {
		t.Fatalf("RootRelative returned error for POSIX paths: %v", err)
	}
	if rel != "subdir/file.md" {
		t.Fatalf("expected relative path 'subdir/file.md', got %q", rel)
	}

	windowsRoot := strings.ReplaceAll(posixRoot, string(filepath.Separator), "\\")
	windowsFile := strings.ReplaceAll(posixFile, string(filepath.Separator), "\\")

	rel, err = RootRelative(windowsRoot, windowsFile)
	if err != nil {
		t.Fatalf("RootRelative returned error for Windows paths: %v", err)
	}
	if rel != "subdir/file.md" {
		t.Fatalf("expected relative path 'subdir/file.md', got %q", rel)
	}
}

func TestSplitRelativeHandlesRootAndNested(t *testing.T) {
	folder, name := SplitRelative("root.md")
	if folder != "" {
		t.Fatalf("expected empty folder for root file, got %q", folder)
	}
	if name != "root.md" {
		t.Fatalf("expected filename 'root.md', got %q", name)
	}

	folder, name = SplitRelative("sub/dir/note.md")
	if folder != "sub/dir" {
		t.Fatalf("expected folder 'sub/dir', got %q", folder)
	}
	if name != "note.md" {
		t.Fatalf("expected filename 'note.md', got %q", name)
	}

	folder, name = SplitRelative("")
	if folder != "" || name != "" {
		t.Fatalf("expected empty split for empty path, got %q/%q", folder, name)
	}
}
