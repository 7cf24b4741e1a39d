package main

import "github.com/spf13/cobra"

func newCleanupCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "cleanup",
		Short:   "Prune stale worktree metadata",
		GroupID: GroupCore,
		Long: `Remove metadata for worktrees whose directories no longer exist,
for example after a manual rm -rf. With --dry-run the entries are only
listed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCleanup(cmd, dryRun)
		},
	}

	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "Only show what would be pruned")

	return cmd
}
