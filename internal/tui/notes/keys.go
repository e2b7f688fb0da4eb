package notes

import "github.com/charmbracelet/bubbles/key"

type listKeyMap struct {
	openNote       key.Binding
	create         key.Binding
	delete         key.Binding
	togglePin      key.Binding
	cycleCategory  key.Binding
	clearCategory  key.Binding
	search         key.Binding
	yank           key.Binding
	toggleHelpMenu key.Binding
	exitAltView    key.Binding
	submitAltView  key.Binding
	quit           key.Binding
}

func newListKeyMap() *listKeyMap {
	return &listKeyMap{
		openNote: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "open"),
		),
		create: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "create"),
		),
		delete: key.NewBinding(
			key.WithKeys("D"),
			key.WithHelp("D", "delete"),
		),
		togglePin: key.NewBinding(
			key.WithKeys("P"),
			key.WithHelp("P", "pin/unpin"),
		),
		cycleCategory: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next folder"),
		),
		clearCategory: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "all folders"),
		),
		search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		yank: key.NewBinding(
			key.WithKeys("Y"),
			key.WithHelp("Y", "copy content"),
		),
		toggleHelpMenu: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "toggle help"),
		),
		exitAltView: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		submitAltView: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("↵", "submit"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (m listKeyMap) fullHelp() []key.Binding {
	return []key.Binding{
		m.openNote,
		m.create,
		m.delete,
		m.togglePin,
		m.cycleCategory,
		m.clearCategory,
		m.search,
		m.yank,
		m.toggleHelpMenu,
	}
}
