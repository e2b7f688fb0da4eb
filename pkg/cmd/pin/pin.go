package pin

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/notiz/internal/fzf"
	"github.com/Paintersrp/notiz/internal/repo"
	"github.com/Paintersrp/notiz/internal/state"
)

func NewCmdPin(s *state.State) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pin",
		Short: "Pin notes to the top of the list",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToggle(s)
		},
	}

	cmd.AddCommand(newCmdPinList(s))
	return cmd
}

func runToggle(s *state.State) error {
	finder := fzf.NewFuzzyFinder(s.Repo, "Toggle pin")
	n, err := finder.Run()
	if err != nil {
		if fzf.IsAbort(err) {
			return nil
		}
		return err
	}

	if err := s.Repo.TogglePin(n); err != nil {
		return err
	}

	if s.Repo.IsPinned(n) {
		fmt.Printf("Pinned %s\n", n.ID())
	} else {
		fmt.Printf("Unpinned %s\n", n.ID())
	}
	return nil
}

func newCmdPinList(s *state.State) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List pinned notes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, n := range s.Repo.Notes() {
				if s.Repo.IsPinned(n) {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", n.ID(), repo.DisplayTitle(n))
				}
			}
			return nil
		},
	}
}
