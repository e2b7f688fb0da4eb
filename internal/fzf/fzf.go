package fzf

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/ktr0731/go-fuzzyfinder"
	"github.com/muesli/termenv"

	"github.com/Paintersrp/notiz/internal/repo"
	"github.com/Paintersrp/notiz/internal/storage"
)

// FuzzyFinder offers interactive fuzzy selection over the workspace's notes
// with a rendered markdown preview.
type FuzzyFinder struct {
	repo   *repo.Repository
	Header string
	notes  []storage.Note
}

func NewFuzzyFinder(r *repo.Repository, header string) *FuzzyFinder {
	return &FuzzyFinder{repo: r, Header: header}
}

// Run presents the picker and returns the selected note.
func (f *FuzzyFinder) Run() (storage.Note, error) {
	return f.RunWithQuery("")
}

// RunWithQuery presents the picker with a pre-filled query.
func (f *FuzzyFinder) RunWithQuery(query string) (storage.Note, error) {
	f.repo.Load()
	f.notes = f.repo.Notes()

	idx, err := f.selectNote(query)
	if err != nil {
		return storage.Note{}, err
	}
	if idx < 0 || idx >= len(f.notes) {
		return storage.Note{}, fmt.Errorf("no note selected")
	}

	return f.notes[idx], nil
}

func (f *FuzzyFinder) selectNote(query string) (int, error) {
	options := []fuzzyfinder.Option{
		fuzzyfinder.WithPreviewWindow(f.renderMarkdownPreview),
	}

	if query != "" {
		options = append(options, fuzzyfinder.WithQuery(query))
	}

	if f.Header != "" {
		options = append(options, fuzzyfinder.WithHeader(f.Header))
	}

	labels := make([]string, len(f.notes))
	for i, n := range f.notes {
		title := repo.DisplayTitle(n)
		if n.Folder == "" {
			labels[i] = title
		} else {
			labels[i] = fmt.Sprintf("%s [%s]", title, n.Folder)
		}
	}

	return fuzzyfinder.Find(f.notes, func(i int) string {
		return labels[i]
	}, options...)
}

func (f *FuzzyFinder) renderMarkdownPreview(i, w, h int) string {
	if i == -1 {
		return ""
	}

	r, _ := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dracula"),
		glamour.WithWordWrap(100),
		glamour.WithColorProfile(termenv.ANSI256),
	)

	markdown, err := r.Render(f.notes[i].Content)
	if err != nil {
		return "Error rendering markdown"
	}

	return markdown
}

// IsAbort reports whether the picker was dismissed without a selection.
func IsAbort(err error) bool {
	return err == fuzzyfinder.ErrAbort
}
