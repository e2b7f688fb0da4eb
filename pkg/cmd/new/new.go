package new

import (
	"fmt"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/notiz/internal/pathutil"
	"github.com/Paintersrp/notiz/internal/repo"
	"github.com/Paintersrp/notiz/internal/state"
)

func NewCmdNew(s *state.State) *cobra.Command {
	var folder string

	cmd := &cobra.Command{
		Use:     "new [title]",
		Aliases: []string{"n"},
		Short:   "Create a note",
		Long: heredoc.Doc(`
			Create a note in the workspace. Without a title an untitled
			placeholder note is created; with one, the note's filename is
			derived from the title.

			notiz new
			notiz new "Meeting notes" --folder Work
		`),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, s, args, folder)
		},
	}

	cmd.Flags().StringVarP(&folder, "folder", "f", "", "Folder to create the note in")
	return cmd
}

func run(cmd *cobra.Command, s *state.State, args []string, folder string) error {
	if folder != "" {
		s.Repo.SetCategory(folder)
	}

	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		n, err := s.Repo.CreateNote()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), s.Backend.NotePath(n.Folder, n.Filename))
		return nil
	}

	content := "# " + strings.TrimSpace(args[0]) + "\n"
	filename := repo.DeriveFilename(content)
	if filename == "" {
		return fmt.Errorf("title %q yields no usable filename", args[0])
	}

	// Saving under an existing note's name would overwrite it.
	id := pathutil.NoteID(folder, filename)
	for _, n := range s.Repo.Notes() {
		if n.ID() == id {
			return fmt.Errorf("note %s already exists", s.Backend.NotePath(folder, filename))
		}
	}

	if err := s.Repo.SaveNote(filename, content, folder); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), s.Backend.NotePath(folder, filename))
	return nil
}
