package main

import "github.com/spf13/cobra"

func newListCmd() *cobra.Command {
	var status bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List worktrees",
		GroupID: GroupCore,
		Long: `List all worktrees of the current repository with their branch,
location, and HEAD commit. With --status each worktree is also checked
for uncommitted changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, status)
		},
	}

	cmd.Flags().BoolVar(&status, "status", false, "Include clean/modified status (slower)")

	return cmd
}
