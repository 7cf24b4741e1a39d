package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DetachedBranch is the sentinel branch name for a detached HEAD.
const DetachedBranch = "(detached)"

// RepoRoot returns the top-level directory of the repository
// containing dir (a worktree's own root when inside a worktree).
func RepoRoot(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not inside a git repository: %w", err)
	}
	return strings.TrimSpace(string(out)), nil
}

// MainRepoRoot returns the main repository's root even when dir is
// inside a linked worktree. Worktrees have a .git *file* whose gitdir
// line points into <main>/.git/worktrees/<name>.
func MainRepoRoot(ctx context.Context, dir string) (string, error) {
	root, err := RepoRoot(ctx, dir)
	if err != nil {
		return "", err
	}

	gitPath := filepath.Join(root, ".git")
	info, err := os.Stat(gitPath)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return root, nil
	}

	data, err := os.ReadFile(gitPath)
	if err != nil {
		return "", err
	}
	gitdir := strings.TrimSpace(strings.TrimPrefix(string(data), "gitdir:"))
	// <main>/.git/worktrees/<name> -> <main>
	mainGitDir := filepath.Dir(filepath.Dir(gitdir))
	if filepath.Base(mainGitDir) != ".git" {
		return "", fmt.Errorf("unexpected gitdir layout: %s", gitdir)
	}
	return filepath.Dir(mainGitDir), nil
}

// ProjectName returns the repository name, the basename of the main
// repo root.
func ProjectName(repoRoot string) string {
	return filepath.Base(repoRoot)
}

// CurrentBranch returns the checked-out branch in dir, or
// DetachedBranch for a detached HEAD.
func CurrentBranch(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "branch", "--show-current")
	if err != nil {
		return "", err
	}
	branch := strings.TrimSpace(string(out))
	if branch == "" {
		return DetachedBranch, nil
	}
	return branch, nil
}

// ShortCommitHash returns the abbreviated HEAD hash, or "" when the
// repository has no commits yet.
func ShortCommitHash(ctx context.Context, dir string) string {
	out, err := outputGit(ctx, dir, "rev-parse", "--short=7", "HEAD")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}

// BranchExists reports whether a local branch exists.
func BranchExists(ctx context.Context, dir, branch string) bool {
	err := runGit(ctx, dir, "show-ref", "--verify", "--quiet", "refs/heads/"+branch)
	return err == nil
}

// RemoteBranchExists reports whether the branch exists on origin.
func RemoteBranchExists(ctx context.Context, dir, branch string) bool {
	err := runGit(ctx, dir, "show-ref", "--verify", "--quiet", "refs/remotes/origin/"+branch)
	return err == nil
}

// DeleteBranch deletes a local branch. Force uses -D.
func DeleteBranch(ctx context.Context, dir, branch string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}
	return runGit(ctx, dir, "branch", flag, branch)
}

// IsDirty reports whether the worktree at dir has uncommitted changes,
// including untracked files.
func IsDirty(ctx context.Context, dir string) (bool, error) {
	out, err := outputGit(ctx, dir, "status", "--porcelain")
	if err != nil {
		return false, err
	}
	return len(strings.TrimSpace(string(out))) > 0, nil
}
