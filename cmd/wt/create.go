package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/easydaniel/wt-tools/internal/config"
	"github.com/easydaniel/wt-tools/internal/git"
	"github.com/easydaniel/wt-tools/internal/gitignore"
	"github.com/easydaniel/wt-tools/internal/hooks"
	"github.com/easydaniel/wt-tools/internal/log"
	"github.com/easydaniel/wt-tools/internal/output"
	"github.com/easydaniel/wt-tools/internal/worktree"
)

func runCreate(cmd *cobra.Command, branch, pathFlag string, skipHooks bool) error {
	ctx := cmd.Context()
	l := log.FromContext(ctx)
	p := output.FromContext(ctx)

	rc, err := loadRepoContext(ctx)
	if err != nil {
		return err
	}

	if existing, err := git.FindWorktree(ctx, rc.repoRoot, branch); err != nil {
		return err
	} else if existing != nil {
		return fmt.Errorf("worktree for branch %q already exists at %s", branch, existing.Path)
	}

	hctx := rc.hookContext(ctx, branch, "")

	path := pathFlag
	if path != "" {
		if path, err = filepath.Abs(path); err != nil {
			return err
		}
	} else {
		if path, err = resolveWorktreeDir(ctx, rc, hctx); err != nil {
			return err
		}
	}
	hctx.Path = path

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	createBranch := !git.BranchExists(ctx, rc.repoRoot, branch)
	track := createBranch &&
		rc.cfg.Settings.TrackRemote &&
		git.RemoteBranchExists(ctx, rc.repoRoot, branch)

	if err := git.AddWorktree(ctx, rc.repoRoot, path, branch, createBranch, track); err != nil {
		return fmt.Errorf("failed to create worktree: %w", err)
	}

	switch {
	case track:
		l.Printf("Created worktree for %s (tracking origin/%s)\n", branch, branch)
	case createBranch:
		l.Printf("Created worktree and branch %s\n", branch)
	default:
		l.Printf("Created worktree for %s\n", branch)
	}
	p.Println(path)

	if skipHooks {
		l.Println("Skipping post_create hooks")
		return nil
	}

	result := hooks.Run(ctx, config.EventPostCreate, rc.cfg.Hooks.PostCreate, hctx)
	return result.Err()
}

// resolveWorktreeDir resolves the configured worktree_dir pattern. An
// in-repo location needs its top-level directory in .gitignore; when
// the user declines, the fallback pattern is used instead.
func resolveWorktreeDir(ctx context.Context, rc *repoContext, hctx hooks.Context) (string, error) {
	l := log.FromContext(ctx)

	path, err := worktree.ResolvePath(rc.cfg.WorktreeDir, hctx, rc.repoRoot)
	if err != nil {
		return "", err
	}

	if !worktree.IsInsideRepo(path, rc.repoRoot) {
		return path, nil
	}

	pattern := ignorePatternFor(path, rc.repoRoot)
	ok, err := gitignore.EnsureIgnored(rc.repoRoot, []string{pattern}, "wt worktrees", func(prompt string) bool {
		answer, err := askConfirm(prompt)
		return err == nil && answer
	})
	if err != nil {
		return "", err
	}
	if ok {
		return path, nil
	}

	l.Printf("Keeping %s out of the repository, using fallback location\n", pattern)
	return worktree.ResolvePath(rc.cfg.WorktreeDirFallback, hctx, rc.repoRoot)
}

// ignorePatternFor returns the first path segment of the worktree
// location relative to the repo root, as a directory pattern
// (".worktrees/" for the default layout).
func ignorePatternFor(path, repoRoot string) string {
	rel, err := filepath.Rel(repoRoot, path)
	if err != nil {
		return filepath.Base(path) + "/"
	}
	segments := strings.Split(filepath.ToSlash(rel), "/")
	return segments[0] + "/"
}
