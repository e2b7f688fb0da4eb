package notes

import (
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Paintersrp/notiz/internal/editor"
	"github.com/Paintersrp/notiz/internal/storage"
)

// saveTickMsg is a fired debounce timer. The generation lets the session
// discard timers that a later keystroke superseded.
type saveTickMsg struct {
	gen int
}

func saveTick(delay time.Duration, gen int) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return saveTickMsg{gen: gen}
	})
}

func newEditorArea() textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "Start typing..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	return ta
}

// openEditor points the session and the textarea at a note and enters
// editing mode.
func (m *NoteListModel) openEditor(n storage.Note) {
	m.state.Repo.Select(n.ID())
	m.session.Open(n)
	m.current = n
	m.textarea.SetValue(n.Content)
	m.textarea.Focus()
	m.editing = true
}

func (m *NoteListModel) closeEditor() {
	m.session.Close()
	m.textarea.Blur()
	m.editing = false
}

// handleEditorUpdate feeds a message to the textarea and runs the
// synchronization effects on the resulting buffer: an optimistic cache
// update for significant changes and a restarted save timer.
func (m *NoteListModel) handleEditorUpdate(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	before := m.textarea.Value()
	ta, cmd := m.textarea.Update(msg)
	m.textarea = ta
	cmds = append(cmds, cmd)

	if m.textarea.Value() == before {
		return tea.Batch(cmds...)
	}

	propagate, gen := m.session.SetBuffer(m.textarea.Value())
	if propagate {
		m.state.Repo.UpdateNoteLocally(m.current.Filename, m.textarea.Value(), m.current.Folder, false)
	}
	if gen != 0 {
		cmds = append(cmds, saveTick(editor.DefaultSaveDelay, gen))
	}

	return tea.Batch(cmds...)
}

// handleSaveTick persists the session buffer when the fired timer is still
// current, then refreshes the list to pick up a possible title-derived
// rename.
func (m *NoteListModel) handleSaveTick(msg saveTickMsg) tea.Cmd {
	n, ok := m.session.Flush(msg.gen)
	if !ok {
		return nil
	}

	if err := m.state.Repo.SaveNote(n.Filename, n.Content, n.Folder); err != nil {
		return m.list.NewStatusMessage(statusStyle("Failed to save " + n.Filename))
	}

	if saved, ok := m.state.Repo.Selected(); ok {
		m.current = saved
		m.session.Open(saved)
	}

	return m.refreshItems()
}
