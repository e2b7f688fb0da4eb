package folder

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/erikgeiser/promptkit/selection"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/notiz/internal/metadata"
	"github.com/Paintersrp/notiz/internal/repo"
	"github.com/Paintersrp/notiz/internal/state"
)

const (
	deleteChoiceRecursive = "Delete the folder and all notes inside"
	deleteChoiceMove      = "Move contained notes to the workspace root"
)

func NewCmdFolder(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folder",
		Short: "Manage top-level folders",
	}

	cmd.AddCommand(
		newCmdFolderAdd(s),
		newCmdFolderRename(s),
		newCmdFolderDelete(s),
		newCmdFolderDecorate(s),
		newCmdFolderList(s),
	)

	return cmd
}

func newCmdFolderAdd(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "add [name]",
		Short: "Create a folder at the workspace root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.Repo.CreateFolder(args[0])
		},
	}
}

func newCmdFolderRename(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "rename [old] [new]",
		Short: "Rename a folder, keeping pins and decoration attached",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.Repo.RenameFolder(args[0], args[1])
		},
	}
}

func newCmdFolderDelete(s *state.State) *cobra.Command {
	var mode string

	cmd := &cobra.Command{
		Use:   "delete [name]",
		Short: "Delete a folder",
		Long: heredoc.Doc(`
			Delete a top-level folder. The contained notes are either deleted
			with it or moved to the workspace root; without --mode the choice
			is prompted interactively.
		`),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deleteMode, err := resolveDeleteMode(mode)
			if err != nil {
				return err
			}

			return s.Repo.DeleteFolder(args[0], deleteMode)
		},
	}

	cmd.Flags().StringVarP(&mode, "mode", "m", "", "Deletion mode: recursive or move")
	return cmd
}

func resolveDeleteMode(mode string) (repo.DeleteMode, error) {
	switch mode {
	case "recursive":
		return repo.DeleteRecursive, nil
	case "move":
		return repo.DeleteMoveToRoot, nil
	case "":
	default:
		return 0, fmt.Errorf("invalid mode %q, expected recursive or move", mode)
	}

	sel := selection.New(
		"What should happen to the notes inside?",
		[]string{deleteChoiceMove, deleteChoiceRecursive},
	)
	sel.Filter = nil

	choice, err := sel.RunPrompt()
	if err != nil {
		return 0, err
	}

	if choice == deleteChoiceRecursive {
		return repo.DeleteRecursive, nil
	}
	return repo.DeleteMoveToRoot, nil
}

func newCmdFolderDecorate(s *state.State) *cobra.Command {
	var icon string
	var color string

	cmd := &cobra.Command{
		Use:   "decorate [name]",
		Short: "Set a folder's icon and color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.Repo.SetFolderMeta(args[0], metadata.FolderMeta{
				Icon:  icon,
				Color: color,
			})
		},
	}

	cmd.Flags().StringVar(&icon, "icon", "", "Icon shown next to the folder")
	cmd.Flags().StringVar(&color, "color", "", "Folder accent color")
	return cmd
}

func newCmdFolderList(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List top-level folders",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range s.Repo.Folders() {
				if meta, ok := s.Repo.Meta().FolderMeta(name); ok && meta.Icon != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", meta.Icon, name)
				} else {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
			}
			return nil
		},
	}
}
