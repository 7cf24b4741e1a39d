package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/easydaniel/wt-tools/internal/config"
	"github.com/easydaniel/wt-tools/internal/git"
	"github.com/easydaniel/wt-tools/internal/hooks"
	"github.com/easydaniel/wt-tools/internal/log"
)

func runDelete(cmd *cobra.Command, branch string, force, keepBranch bool) error {
	ctx := cmd.Context()
	l := log.FromContext(ctx)

	rc, err := loadRepoContext(ctx)
	if err != nil {
		return err
	}

	worktrees, err := git.ListWorktrees(ctx, rc.repoRoot)
	if err != nil {
		return err
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
	if target.Path == rc.repoRoot {
		return fmt.Errorf("refusing to delete the main worktree at %s", target.Path)
	}

	if !force {
		dirty, err := git.IsDirty(ctx, target.Path)
		if err != nil {
			return err
		}
		if dirty {
			return fmt.Errorf("worktree %s has uncommitted changes (use --force to discard)", target.Path)
		}

		if rc.cfg.Settings.ConfirmDelete {
			ok, err := askConfirm(fmt.Sprintf("Delete worktree %s (branch %s)?", target.Path, branch))
			if err != nil {
				return err
			}
			if !ok {
				l.Println("Aborted")
				return nil
			}
		}
	}

	// post_delete hooks run while the worktree still exists; an abort
	// failure cancels the deletion.
	hctx := rc.hookContext(ctx, branch, target.Path)
	result := hooks.Run(ctx, config.EventPostDelete, rc.cfg.Hooks.PostDelete, hctx)
	if result.Status == hooks.StatusFailed {
		return fmt.Errorf("worktree not removed: %w", result.Err())
	}

	if err := git.RemoveWorktree(ctx, rc.repoRoot, target.Path, force); err != nil {
		return fmt.Errorf("failed to remove worktree: %w", err)
	}
	l.Printf("Removed worktree %s\n", target.Path)

	if !keepBranch {
		if err := git.DeleteBranch(ctx, rc.repoRoot, branch, force); err != nil {
			l.Warnf("could not delete branch %s: %v", branch, err)
		} else {
			l.Printf("Deleted branch %s\n", branch)
		}
	}

	if rc.cfg.Settings.AutoCleanup {
		if _, err := git.PruneWorktrees(ctx, rc.repoRoot, false); err != nil {
			l.Warnf("prune failed: %v", err)
		}
	}

	return result.Err()
}
