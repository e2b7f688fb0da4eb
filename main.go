package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/notiz/internal/config"
	"github.com/Paintersrp/notiz/internal/state"
	"github.com/Paintersrp/notiz/pkg/cmd/root"
	"github.com/Paintersrp/notiz/pkg/cmd/workspace"
)

func main() {
	s, err := state.NewState()
	if err != nil {
		var initErr *config.ConfigInitError
		if errors.As(err, &initErr) {
			runSetup()
			return
		}
		cobra.CheckErr(err)
	}
	defer s.Close()

	cmd, err := root.NewCmdRoot(s)
	cobra.CheckErr(err)
	cobra.CheckErr(cmd.Execute())
}

// runSetup exposes only workspace configuration until a workspace root has
// been chosen.
func runSetup() {
	home, err := state.GetHomeDir()
	cobra.CheckErr(err)

	cmd := &cobra.Command{
		Use:   "notiz",
		Short: "A markdown note workspace in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(os.Stderr, "No workspace configured. Run 'notiz workspace set <directory>' first.")
			return nil
		},
	}
	cmd.AddCommand(workspace.NewCmdWorkspace(home))

	cobra.CheckErr(cmd.Execute())
}
