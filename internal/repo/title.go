package repo

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/Paintersrp/notiz/internal/storage"
)

// DisplayTitle returns a human-readable title for a note: the text of the
// first markdown heading, the first non-empty line as a fallback, or the
// filename without its extension when the content offers nothing.
func DisplayTitle(n storage.Note) string {
	if title := firstHeading(n.Content); title != "" {
		return title
	}

	for _, line := range strings.Split(n.Content, "\n") {
		line = strings.TrimSpace(strings.TrimLeft(line, "#"))
		if line != "" {
			return line
		}
	}

	return strings.TrimSuffix(n.Filename, storage.NoteExt)
}

func firstHeading(content string) string {
	source := []byte(content)
	document := goldmark.DefaultParser().Parse(text.NewReader(source))

	var title string
	_ = ast.Walk(document, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if heading, ok := n.(*ast.Heading); ok {
			title = strings.TrimSpace(string(heading.Text(source)))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})

	return title
}
