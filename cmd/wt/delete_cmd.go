package main

import "github.com/spf13/cobra"

func newDeleteCmd() *cobra.Command {
	var (
		force      bool
		keepBranch bool
	)

	cmd := &cobra.Command{
		Use:     "delete <branch>",
		Aliases: []string{"rm"},
		Short:   "Run post_delete hooks and remove a worktree",
		GroupID: GroupCore,
		Long: `Remove the worktree checked out on the given branch.

The post_delete hooks run first, while the worktree still exists. A
dirty worktree is refused without --force, and with confirm_delete
enabled (the default) a prompt asks before anything happens. The local
branch is deleted too unless --keep-branch is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd, args[0], force, keepBranch)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation and discard uncommitted changes")
	cmd.Flags().BoolVar(&keepBranch, "keep-branch", false, "Keep the local branch")

	return cmd
}
