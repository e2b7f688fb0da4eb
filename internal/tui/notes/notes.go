// Package notes implements the interactive two-pane workspace UI: the note
// list with search and folder filtering on the left, a markdown preview or
// the live editor on the right.
package notes

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Paintersrp/notiz/internal/editor"
	"github.com/Paintersrp/notiz/internal/state"
	"github.com/Paintersrp/notiz/internal/storage"
)

type NoteListModel struct {
	list        list.Model
	keys        *listKeyMap
	state       *state.State
	session     *editor.Session
	textarea    textarea.Model
	searchInput textinput.Model
	current     storage.Note
	preview     string
	width       int
	height      int
	editing     bool
	searching   bool
}

func NewNoteListModel(s *state.State) *NoteListModel {
	lkeys := newListKeyMap()

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = selectedItemStyle
	delegate.Styles.SelectedDesc = selectedItemStyle

	l := list.New(castToListItems(makeItems(s.Repo)), delegate, 0, 0)
	l.Title = categoryTitle(s)
	l.Styles.Title = titleStyle
	l.SetShowFilter(false)
	l.SetFilteringEnabled(false)

	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{
			lkeys.openNote,
			lkeys.create,
			lkeys.search,
		}
	}
	l.AdditionalFullHelpKeys = lkeys.fullHelp

	input := textinput.New()
	input.Placeholder = "Search notes..."

	return &NoteListModel{
		list:        l,
		keys:        lkeys,
		state:       s,
		session:     editor.NewSession(editor.Config{}),
		textarea:    newEditorArea(),
		searchInput: input,
	}
}

func (m NoteListModel) Init() tea.Cmd {
	return m.state.Watcher.Start()
}

func (m NoteListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		h, v := appStyle.GetFrameSize()
		m.list.SetSize(msg.Width/2-h, msg.Height-v)
		m.textarea.SetWidth(msg.Width/2 - h)
		m.textarea.SetHeight(msg.Height - v - 2)

	case state.NoteChangedMsg:
		if m.state.Repo.NoteChanged() {
			cmds = append(cmds, m.refreshItems())
			if m.editing {
				if n, ok := m.state.Repo.Selected(); ok {
					m.session.Open(n)
					m.current = n
				}
			}
		}
		return m, tea.Batch(append(cmds, m.state.Watcher.Start())...)

	case state.WatcherErrMsg:
		cmds = append(cmds, m.list.NewStatusMessage(statusStyle(fmt.Sprintf("Watcher error: %v", msg.Err))))
		return m, tea.Batch(append(cmds, m.state.Watcher.Start())...)

	case saveTickMsg:
		return m, m.handleSaveTick(msg)

	case tea.KeyMsg:
		switch {
		case m.editing:
			return m.handleEditingKey(msg)
		case m.searching:
			return m.handleSearchKey(msg)
		default:
			model, cmd, handled := m.handleDefaultKey(msg)
			if handled {
				return model, cmd
			}
		}
	}

	if m.editing {
		cmds = append(cmds, m.handleEditorUpdate(msg))
		return m, tea.Batch(cmds...)
	}

	nl, cmd := m.list.Update(msg)
	m.list = nl
	cmds = append(cmds, cmd)

	m.handlePreview()
	return m, tea.Batch(cmds...)
}

func (m NoteListModel) handleEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.exitAltView) {
		m.closeEditor()
		return m, m.refreshItems()
	}

	return m, m.handleEditorUpdate(msg)
}

func (m NoteListModel) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.exitAltView):
		m.searching = false
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.state.Repo.SetSearch("")
		return m, m.refreshItems()

	case key.Matches(msg, m.keys.submitAltView):
		m.searching = false
		m.searchInput.Blur()
		return m, nil
	}

	input, cmd := m.searchInput.Update(msg)
	m.searchInput = input
	m.state.Repo.SetSearch(m.searchInput.Value())
	return m, tea.Batch(cmd, m.refreshItems())
}

func (m NoteListModel) handleDefaultKey(msg tea.KeyMsg) (tea.Model, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.quit):
		return m, tea.Quit, true

	case key.Matches(msg, m.keys.openNote):
		if item, ok := m.list.SelectedItem().(ListItem); ok {
			m.openEditor(item.Note())
		}
		return m, nil, true

	case key.Matches(msg, m.keys.create):
		n, err := m.state.Repo.CreateNote()
		if err != nil {
			return m, m.list.NewStatusMessage(statusStyle("Failed to create note")), true
		}
		m.openEditor(n)
		return m, m.refreshItems(), true

	case key.Matches(msg, m.keys.delete):
		if item, ok := m.list.SelectedItem().(ListItem); ok {
			n := item.Note()
			if err := m.state.Repo.DeleteNote(n.ID()); err != nil {
				return m, m.list.NewStatusMessage(statusStyle("Failed to delete " + n.Filename)), true
			}
			return m, m.refreshItems(), true
		}
		return m, nil, true

	case key.Matches(msg, m.keys.togglePin):
		if item, ok := m.list.SelectedItem().(ListItem); ok {
			if err := m.state.Repo.TogglePin(item.Note()); err != nil {
				return m, m.list.NewStatusMessage(statusStyle("Failed to update pins")), true
			}
			return m, m.refreshItems(), true
		}
		return m, nil, true

	case key.Matches(msg, m.keys.cycleCategory):
		m.cycleCategory()
		return m, m.refreshItems(), true

	case key.Matches(msg, m.keys.clearCategory):
		m.state.Repo.ClearCategory()
		return m, m.refreshItems(), true

	case key.Matches(msg, m.keys.search):
		m.searching = true
		m.searchInput.SetValue(m.state.Repo.Search())
		m.searchInput.Focus()
		return m, nil, true

	case key.Matches(msg, m.keys.yank):
		if item, ok := m.list.SelectedItem().(ListItem); ok {
			if err := clipboard.WriteAll(item.Note().Content); err != nil {
				return m, m.list.NewStatusMessage(statusStyle("Failed to copy to clipboard")), true
			}
			return m, m.list.NewStatusMessage(statusStyle("Copied " + item.Note().Filename)), true
		}
		return m, nil, true

	case key.Matches(msg, m.keys.toggleHelpMenu):
		m.list.SetShowHelp(!m.list.ShowHelp())
		return m, nil, true
	}

	return m, nil, false
}

func (m NoteListModel) View() string {
	left := m.list.View()
	if m.searching {
		left = lipgloss.JoinVertical(
			lipgloss.Left,
			searchStyle.Render(m.searchInput.View()),
			left,
		)
	}
	left = listStyle.Width(m.width / 2).Render(left)

	var right string
	if m.editing {
		right = editorStyle.Render(
			lipgloss.NewStyle().
				Height(m.list.Height()).
				MaxHeight(m.list.Height()).
				Render(fmt.Sprintf("%s\n%s", titleStyle.Render(m.current.Filename), m.textarea.View())),
		)
	} else {
		right = previewStyle.Render(
			lipgloss.NewStyle().
				Height(m.list.Height()).
				MaxHeight(m.list.Height()).
				MaxWidth(800).
				Render(fmt.Sprintf("%s\n%s", titleStyle.Render("Preview"), m.preview)),
		)
	}

	layout := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return appStyle.Render(layout)
}

func Run(s *state.State) error {
	m := NewNoteListModel(s)

	if _, err := tea.NewProgram(m, tea.WithInput(os.Stdin), tea.WithAltScreen()).Run(); err != nil {
		if strings.Contains(err.Error(), "resource temporarily unavailable") {
			os.Exit(0)
		} else {
			log.Fatalf("Error running program: %v", err)
		}
	}

	return nil
}

func (m *NoteListModel) handlePreview() {
	if item, ok := m.list.SelectedItem().(ListItem); ok {
		m.preview = renderMarkdownPreview(item.Note().Content, m.width/2)
	} else {
		m.preview = ""
	}
}

func (m *NoteListModel) refreshItems() tea.Cmd {
	m.list.Title = categoryTitle(m.state)
	cmd := m.list.SetItems(castToListItems(makeItems(m.state.Repo)))
	m.handlePreview()
	return cmd
}

// cycleCategory steps the folder filter through: all notes, the workspace
// root, then each top-level folder in turn.
func (m *NoteListModel) cycleCategory() {
	folders := m.state.Repo.Folders()

	current, active := m.state.Repo.Category()
	switch {
	case !active:
		m.state.Repo.SetCategory("")
	case current == "":
		if len(folders) == 0 {
			m.state.Repo.ClearCategory()
		} else {
			m.state.Repo.SetCategory(folders[0])
		}
	default:
		next := -1
		for i, f := range folders {
			if f == current {
				next = i + 1
				break
			}
		}
		if next < 0 || next >= len(folders) {
			m.state.Repo.ClearCategory()
		} else {
			m.state.Repo.SetCategory(folders[next])
		}
	}
}

func categoryTitle(s *state.State) string {
	name, active := s.Repo.Category()
	switch {
	case !active:
		return "All notes"
	case name == "":
		return "Workspace root"
	default:
		if meta, ok := s.Repo.Meta().FolderMeta(name); ok && meta.Icon != "" {
			return meta.Icon + " " + name
		}
		return name
	}
}

func castToListItems(items []ListItem) []list.Item {
	out := make([]list.Item, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
