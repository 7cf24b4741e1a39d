package git

import (
	"context"
	"fmt"
	"strings"
)

// Worktree is one entry from git worktree list.
type Worktree struct {
	Path       string
	Branch     string // DetachedBranch when HEAD is detached
	CommitHash string // full hash, callers truncate as needed
}

// ListWorktrees returns all worktrees of the repository at repoRoot,
// main worktree first (git's own ordering).
func ListWorktrees(ctx context.Context, repoRoot string) ([]Worktree, error) {
	out, err := outputGit(ctx, repoRoot, "worktree", "list", "--porcelain")
	if err != nil {
		return nil, fmt.Errorf("failed to list worktrees: %w", err)
	}
	return parseWorktreePorcelain(string(out)), nil
}

// parseWorktreePorcelain parses `git worktree list --porcelain` output.
// Entries are blocks of "key value" lines separated by blank lines.
func parseWorktreePorcelain(output string) []Worktree {
	var worktrees []Worktree
	var current Worktree

	for _, line := range strings.Split(output, "\n") {
		switch {
		case strings.HasPrefix(line, "worktree "):
			if current.Path != "" {
				worktrees = append(worktrees, current)
			}
			current = Worktree{Path: strings.TrimPrefix(line, "worktree ")}
		case strings.HasPrefix(line, "HEAD "):
			current.CommitHash = strings.TrimPrefix(line, "HEAD ")
		case strings.HasPrefix(line, "branch refs/heads/"):
			current.Branch = strings.TrimPrefix(line, "branch refs/heads/")
		case line == "detached":
			current.Branch = DetachedBranch
		}
	}
	if current.Path != "" {
		worktrees = append(worktrees, current)
	}

	return worktrees
}

// FindWorktree returns the worktree checked out on branch, or nil.
func FindWorktree(ctx context.Context, repoRoot, branch string) (*Worktree, error) {
	worktrees, err := ListWorktrees(ctx, repoRoot)
	if err != nil {
		return nil, err
	}
	for i := range worktrees {
		if worktrees[i].Branch == branch {
			return &worktrees[i], nil
		}
	}
	return nil, nil
}

// AddWorktree creates a worktree at path for branch.
// createBranch adds -b (branch must not exist yet); track sets the
// upstream to origin/<branch> for a new local branch.
func AddWorktree(ctx context.Context, repoRoot, path, branch string, createBranch, track bool) error {
	args := []string{"worktree", "add"}
	switch {
	case createBranch && track:
		args = append(args, "--track", "-b", branch, path, "origin/"+branch)
	case createBranch:
		args = append(args, "-b", branch, path)
	default:
		args = append(args, path, branch)
	}
	return runGit(ctx, repoRoot, args...)
}

// RemoveWorktree removes the worktree at path. Force discards
// uncommitted changes.
func RemoveWorktree(ctx context.Context, repoRoot, path string, force bool) error {
	args := []string{"worktree", "remove"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, path)
	return runGit(ctx, repoRoot, args...)
}

// PruneWorktrees removes stale worktree metadata. With dryRun it only
// reports what would be pruned, one line per entry.
func PruneWorktrees(ctx context.Context, repoRoot string, dryRun bool) (string, error) {
	args := []string{"worktree", "prune", "-v"}
	if dryRun {
		args = append(args, "--dry-run")
	}
	out, err := outputGit(ctx, repoRoot, args...)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}
