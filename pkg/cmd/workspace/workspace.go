package workspace

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Paintersrp/notiz/internal/config"
)

func NewCmdWorkspace(home string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workspace",
		Short: "Manage the workspace directory",
	}

	cmd.AddCommand(
		newCmdWorkspaceSet(home),
		newCmdWorkspaceShow(home),
	)

	return cmd
}

func newCmdWorkspaceSet(home string) *cobra.Command {
	return &cobra.Command{
		Use:   "set [directory]",
		Short: "Set the workspace directory all notes live under",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.EnsureConfigExists(home); err != nil {
				var initErr *config.ConfigInitError
				if !errors.As(err, &initErr) {
					return err
				}
			}

			cfg, err := config.Load(home)
			if err != nil {
				return err
			}

			if err := cfg.ChangeWorkspace(args[0]); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Workspace set to %s\n", cfg.WorkspaceDir)
			return nil
		},
	}
}

func newCmdWorkspaceShow(home string) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the configured workspace directory",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(home)
			if err != nil {
				return err
			}

			if !cfg.HasWorkspace() {
				fmt.Fprintln(cmd.OutOrStdout(), "No workspace configured")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), cfg.WorkspaceDir)
			return nil
		},
	}
}
