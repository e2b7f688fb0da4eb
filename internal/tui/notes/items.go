package notes

import (
	"fmt"
	"strings"

	"github.com/Paintersrp/notiz/internal/repo"
	"github.com/Paintersrp/notiz/internal/storage"
)

type ListItem struct {
	note       storage.Note
	pinned     bool
	folderIcon string
}

func (i ListItem) Title() string {
	title := repo.DisplayTitle(i.note)
	if i.pinned {
		return "📌 " + title
	}
	return title
}

func (i ListItem) Description() string {
	description := ""

	if i.note.Folder != "" {
		if i.folderIcon != "" {
			description += fmt.Sprintf("%s [%s] ", i.folderIcon, i.note.Folder)
		} else {
			description += fmt.Sprintf("[%s] ", i.note.Folder)
		}
	}

	description += i.note.UpdatedAt.Format("2006-01-02 15:04")
	return description
}

func (i ListItem) FilterValue() string {
	return strings.Join([]string{i.Title(), i.note.Filename, "[" + i.note.Folder + "]"}, " ")
}

func (i ListItem) Note() storage.Note {
	return i.note
}

func makeItems(r *repo.Repository) []ListItem {
	notes := r.Filtered()
	items := make([]ListItem, len(notes))
	for idx, n := range notes {
		var icon string
		if meta, ok := r.Meta().FolderMeta(n.Folder); ok {
			icon = meta.Icon
		}
		items[idx] = ListItem{
			note:       n,
			pinned:     r.IsPinned(n),
			folderIcon: icon,
		}
	}
	return items
}
