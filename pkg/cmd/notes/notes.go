package notes

import (
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/notiz/internal/state"
	"github.com/Paintersrp/notiz/internal/tui/notes"
)

func NewCmdNotes(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notes",
		Aliases: []string{"ui"},
		Short:   "Open the interactive note browser and editor",
		Long: heredoc.Doc(`
			Open the two-pane workspace UI: note list with search and folder
			filtering on the left, markdown preview or the live editor on the
			right. Edits are saved automatically.
		`),
		RunE: func(cmd *cobra.Command, args []string) error {
			return notes.Run(s)
		},
	}

	return cmd
}
