package main

import (
	"github.com/spf13/cobra"

	"github.com/easydaniel/wt-tools/internal/git"
	"github.com/easydaniel/wt-tools/internal/log"
)

func runCleanup(cmd *cobra.Command, dryRun bool) error {
	ctx := cmd.Context()
	l := log.FromContext(ctx)

	rc, err := loadRepoContext(ctx)
	if err != nil {
		return err
	}

	report, err := git.PruneWorktrees(ctx, rc.repoRoot, dryRun)
	if err != nil {
		return err
	}

	if report == "" {
		l.Println("Nothing to prune")
		return nil
	}
	l.Println(report)
	if dryRun {
		l.Println("Dry run - nothing was removed")
	}
	return nil
}
