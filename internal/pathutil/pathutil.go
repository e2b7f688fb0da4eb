package pathutil

import (
	"path/filepath"
	"strings"
)

// NormalizePath converts Windows-style separators to the current platform's separator
// and cleans the resulting path.
func NormalizePath(p string) string {
	if p == "" {
		return ""
	}

	replaced := strings.ReplaceAll(p, "\\", "/")
	return filepath.Clean(filepath.FromSlash(replaced))
}

// RootRelative returns the path to target relative to the workspace root.
// The returned path always uses forward slashes to simplify downstream
// processing and ensure platform agnosticism.
func RootRelative(root, target string) (string, error) {
	base := NormalizePath(root)
	cleanedTarget := NormalizePath(target)

	rel, err := filepath.Rel(base, cleanedTarget)
	if err != nil {
		return "", err
	}

	return filepath.ToSlash(rel), nil
}

// SplitRelative splits a root-relative path into its containing folder and the
// bare filename. The folder is "" for files directly under the root and keeps
// forward slashes when nested.
func SplitRelative(rel string) (folder, filename string) {
	rel = strings.TrimPrefix(filepath.ToSlash(rel), "./")
	if rel == "." || rel == "" {
		return "", ""
	}

	idx := strings.LastIndex(rel, "/")
	if idx < 0 {
		return "", rel
	}

	return rel[:idx], rel[idx+1:]
}
