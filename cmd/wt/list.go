package main

import (
	"github.com/spf13/cobra"

	"github.com/easydaniel/wt-tools/internal/git"
	"github.com/easydaniel/wt-tools/internal/log"
	"github.com/easydaniel/wt-tools/internal/output"
	"github.com/easydaniel/wt-tools/internal/ui"
)

func runList(cmd *cobra.Command, status bool) error {
	ctx := cmd.Context()
	p := output.FromContext(ctx)

	rc, err := loadRepoContext(ctx)
	if err != nil {
		return err
	}

	worktrees, err := git.ListWorktrees(ctx, rc.repoRoot)
	if err != nil {
		return err
	}
	if len(worktrees) == 0 {
		log.FromContext(ctx).Println("No worktrees found")
		return nil
	}

	var rows []ui.WorktreeRow
	for _, wt := range worktrees {
		row := ui.WorktreeRow{
			Branch: wt.Branch,
			Path:   wt.Path,
			Head:   shortHash(wt.CommitHash),
		}
		if status {
			row.Status = "clean"
			if dirty, err := git.IsDirty(ctx, wt.Path); err == nil && dirty {
				row.Status = "modified"
			}
		}
		rows = append(rows, row)
	}

	p.Print(ui.FormatWorktreesTable(rows, status))
	return nil
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
