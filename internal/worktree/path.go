// Package worktree resolves worktree locations from configured
// directory patterns.
package worktree

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/easydaniel/wt-tools/internal/hooks"
)

// ResolvePath turns a worktree_dir pattern into an absolute path.
// Placeholders are substituted first; then ~/ expands to the home
// directory, absolute paths stay as-is, and relative paths are joined
// to the main repository root.
func ResolvePath(pattern string, hctx hooks.Context, repoRoot string) (string, error) {
	path := hooks.Substitute(pattern, hctx, nil)

	switch {
	case path == "~" || len(path) >= 2 && path[:2] == "~/":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~ in worktree dir: %w", err)
		}
		path = filepath.Join(home, path[1:])
	case filepath.IsAbs(path):
		// keep
	default:
		path = filepath.Join(repoRoot, path)
	}

	return filepath.Clean(path), nil
}

// IsInsideRepo reports whether path is within repoRoot, which decides
// if the worktree location needs a .gitignore entry.
func IsInsideRepo(path, repoRoot string) bool {
	rel, err := filepath.Rel(repoRoot, path)
	if err != nil {
		return false
	}
	return rel == "." || filepath.IsLocal(rel)
}
