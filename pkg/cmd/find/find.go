package find

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/Paintersrp/notiz/internal/fzf"
	"github.com/Paintersrp/notiz/internal/state"
)

func NewCmdFind(s *state.State) *cobra.Command {
	var yank bool

	cmd := &cobra.Command{
		Use:     "find [query]",
		Aliases: []string{"f"},
		Short:   "Fuzzy-find a note and print its path",
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			finder := fzf.NewFuzzyFinder(s.Repo, "Find note")

			n, err := finder.RunWithQuery(strings.Join(args, " "))
			if err != nil {
				if fzf.IsAbort(err) {
					return nil
				}
				return err
			}

			if yank {
				if err := clipboard.WriteAll(n.Content); err != nil {
					return fmt.Errorf("copy to clipboard: %w", err)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), s.Backend.NotePath(n.Folder, n.Filename))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yank, "yank", "y", false, "Copy the note's content to the clipboard")
	return cmd
}
