package notes

import (
	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"
)

func renderMarkdownPreview(content string, w int) string {
	wrap := 100
	if w > 0 && w < wrap {
		wrap = w
	}

	r, _ := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(wrap),
		glamour.WithColorProfile(termenv.ANSI256),
	)

	markdown, err := r.Render(content)
	if err != nil {
		return "Error rendering markdown"
	}

	return markdown
}
