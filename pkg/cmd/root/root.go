package root

import (
	"github.com/spf13/cobra"

	"github.com/Paintersrp/notiz/internal/constants"
	"github.com/Paintersrp/notiz/internal/state"
	"github.com/Paintersrp/notiz/pkg/cmd/find"
	"github.com/Paintersrp/notiz/pkg/cmd/folder"
	"github.com/Paintersrp/notiz/pkg/cmd/new"
	"github.com/Paintersrp/notiz/pkg/cmd/notes"
	"github.com/Paintersrp/notiz/pkg/cmd/pin"
	"github.com/Paintersrp/notiz/pkg/cmd/workspace"
)

func NewCmdRoot(s *state.State) (*cobra.Command, error) {
	cmd := &cobra.Command{
		Use:     "notiz",
		Version: constants.Version,
		Short:   "A markdown note workspace in the terminal",
		Long: `Markdown notes backed by a plain folder of files: folders,
pinning, search and live file-system synchronization.

Run without arguments to open the interactive UI.`,
		RunE: notes.NewCmdNotes(s).RunE,
	}

	cmd.AddCommand(
		notes.NewCmdNotes(s),
		new.NewCmdNew(s),
		find.NewCmdFind(s),
		pin.NewCmdPin(s),
		folder.NewCmdFolder(s),
		workspace.NewCmdWorkspace(s.Home),
	)

	return cmd, nil
}
