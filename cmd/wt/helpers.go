package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/easydaniel/wt-tools/internal/config"
	"github.com/easydaniel/wt-tools/internal/git"
	"github.com/easydaniel/wt-tools/internal/hooks"
	"github.com/easydaniel/wt-tools/internal/ui"
	"github.com/easydaniel/wt-tools/internal/ui/prompt"
)

// repoContext bundles everything a command needs about the current
// repository: the main repo root and the merged configuration.
type repoContext struct {
	repoRoot string // main repository root, even when invoked inside a worktree
	project  string
	cfg      config.Config
}

// loadRepoContext discovers the main repository from the working
// directory and loads both config layers. Invalid config is a hard
// error; missing files are not.
func loadRepoContext(ctx context.Context) (*repoContext, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	root, err := git.MainRepoRoot(ctx, wd)
	if err != nil {
		return nil, err
	}

	global, err := config.LoadGlobal()
	if err != nil {
		return nil, err
	}
	project, err := config.LoadProject(root)
	if err != nil {
		return nil, err
	}

	return &repoContext{
		repoRoot: root,
		project:  git.ProjectName(root),
		cfg:      config.Merge(global, project),
	}, nil
}

// hookContext builds the runtime substitution context for a worktree.
func (rc *repoContext) hookContext(ctx context.Context, branch, path string) hooks.Context {
	return hooks.NewContext(branch, path, rc.project, git.ShortCommitHash(ctx, rc.repoRoot))
}

// askConfirm shows a y/N prompt. Without an interactive terminal the
// answer is always no, so scripted runs never hang.
func askConfirm(message string) (bool, error) {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return false, nil
	}
	res, err := prompt.Confirm(message)
	if err != nil {
		return false, err
	}
	return res.Confirmed && !res.Cancelled, nil
}

// pickBranch lets the user choose a worktree interactively. Without a
// terminal there is nothing to pick from, so the branch argument is
// required.
func pickBranch(worktrees []git.Worktree) (string, error) {
	branches := worktreeBranches(worktrees)
	if len(branches) == 0 {
		return "", fmt.Errorf("no worktrees with a checked-out branch")
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return "", fmt.Errorf("branch argument required in non-interactive mode")
	}

	res, err := prompt.Select("Switch to worktree", branches)
	if err != nil {
		return "", err
	}
	if res.Cancelled {
		return "", fmt.Errorf("no worktree selected")
	}
	return res.Value, nil
}

// worktreeBranches returns the branch names of all current worktrees,
// skipping detached entries.
func worktreeBranches(worktrees []git.Worktree) []string {
	var branches []string
	for _, wt := range worktrees {
		if wt.Branch != git.DetachedBranch {
			branches = append(branches, wt.Branch)
		}
	}
	return branches
}

// unknownBranchError builds a not-found error with a fuzzy
// "did you mean" hint when a close branch name exists.
func unknownBranchError(branch string, worktrees []git.Worktree) error {
	if hint := ui.SuggestClosest(branch, worktreeBranches(worktrees)); hint != "" {
		return fmt.Errorf("no worktree for branch %q (did you mean %q?)", branch, hint)
	}
	return fmt.Errorf("no worktree for branch %q", branch)
}
