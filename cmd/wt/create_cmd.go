package main

import "github.com/spf13/cobra"

func newCreateCmd() *cobra.Command {
	var (
		pathFlag  string
		skipHooks bool
	)

	cmd := &cobra.Command{
		Use:     "create <branch>",
		Short:   "Create a worktree for a branch and run post_create hooks",
		GroupID: GroupCore,
		Long: `Create a new git worktree for the given branch.

The worktree location comes from the configured worktree_dir pattern
(default ".worktrees/{branch}" inside the repository). If the branch
doesn't exist yet it is created; with track_remote enabled, a branch
that exists on origin is set up to track it.

After creation the post_create hooks run in order.`,
		Example: `  wt create feature/login
  wt create hotfix --path /tmp/hotfix-tree
  wt create experiment --skip-hooks`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, args[0], pathFlag, skipHooks)
		},
	}

	cmd.Flags().StringVar(&pathFlag, "path", "", "Worktree location, overrides worktree_dir")
	cmd.Flags().BoolVar(&skipHooks, "skip-hooks", false, "Don't run post_create hooks")

	return cmd
}
