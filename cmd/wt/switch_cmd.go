package main

import "github.com/spf13/cobra"

func newSwitchCmd() *cobra.Command {
	var copyPath bool

	cmd := &cobra.Command{
		Use:     "switch [branch]",
		Short:   "Run pre_switch hooks and print a worktree's path",
		GroupID: GroupCore,
		Long: `Print the path of the worktree checked out on the given branch,
after running the pre_switch hooks. Without a branch argument an
interactive picker lists the current worktrees.

A subprocess can't change its parent shell's directory, so wt prints
the path for the shell to consume:

  cd "$(wt switch feature/login)"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			branch := ""
			if len(args) > 0 {
				branch = args[0]
			}
			return runSwitch(cmd, branch, copyPath)
		},
	}

	cmd.Flags().BoolVarP(&copyPath, "copy", "c", false, "Also copy the path to the clipboard")

	return cmd
}
