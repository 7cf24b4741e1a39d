package main

import (
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/easydaniel/wt-tools/internal/config"
	"github.com/easydaniel/wt-tools/internal/git"
	"github.com/easydaniel/wt-tools/internal/hooks"
	"github.com/easydaniel/wt-tools/internal/log"
	"github.com/easydaniel/wt-tools/internal/output"
)

func runSwitch(cmd *cobra.Command, branch string, copyPath bool) error {
	ctx := cmd.Context()
	l := log.FromContext(ctx)
	p := output.FromContext(ctx)

	rc, err := loadRepoContext(ctx)
	if err != nil {
		return err
	}

	worktrees, err := git.ListWorktrees(ctx, rc.repoRoot)
	if err != nil {
		return err
	}

	if branch == "" {
		if branch, err = pickBranch(worktrees); err != nil {
			return err
		}
	}

	var target *git.Worktree
	for i := range worktrees {
		if worktrees[i].Branch == branch {
			target = &worktrees[i]
			break
		}
	}
	if target == nil {
		return unknownBranchError(branch, worktrees)
	}

	hctx := rc.hookContext(ctx, branch, target.Path)
	result := hooks.Run(ctx, config.EventPreSwitch, rc.cfg.Hooks.PreSwitch, hctx)
	if result.Status == hooks.StatusFailed {
		return result.Err()
	}

	p.Println(target.Path)

	if copyPath {
		if err := clipboard.WriteAll(target.Path); err != nil {
			l.Warnf("could not copy to clipboard: %v", err)
		} else {
			l.Println("Copied path to clipboard")
		}
	}

	// Hooks that failed under continue/warn still ran the switch, but
	// the exit code reflects them.
	return result.Err()
}
