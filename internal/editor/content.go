package editor

import "strings"

// SplitContent divides a note's raw markdown into its title line and body.
// The title is the first line without the leading heading marker; the body
// is everything after the first newline, unchanged.
func SplitContent(content string) (title, body string) {
	title, body, _ = strings.Cut(content, "\n")
	title = strings.TrimSpace(strings.TrimLeft(title, "#"))
	return title, body
}

// JoinContent reassembles a single content string from an edited title and
// body, reapplying the heading marker to the title line.
func JoinContent(title, body string) string {
	return "# " + title + "\n" + body
}
